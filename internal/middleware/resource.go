package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

// RequireTask loads the task named by the :id parameter into the context
func RequireTask(ws *workspace.Workspace) gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := ws.Task(c.Param("id"))
		if !ok {
			apierrors.AbortWithError(c, http.StatusNotFound,
				apierrors.NewAPIError(apierrors.ErrCodeNotFound, "Task not found"))
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}

// RequireEvent loads the event named by the :id parameter into the context
func RequireEvent(ws *workspace.Workspace) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := ws.Event(c.Param("id"))
		if !ok {
			apierrors.AbortWithError(c, http.StatusNotFound,
				apierrors.NewAPIError(apierrors.ErrCodeNotFound, "Event not found"))
			return
		}

		c.Set(constants.ContextKeyEvent, event)
		c.Next()
	}
}

func GetTask(c *gin.Context) (models.Task, bool) {
	v, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}
	task, ok := v.(models.Task)
	return task, ok
}

func GetEvent(c *gin.Context) (models.Event, bool) {
	v, exists := c.Get(constants.ContextKeyEvent)
	if !exists {
		return models.Event{}, false
	}
	event, ok := v.(models.Event)
	return event, ok
}
