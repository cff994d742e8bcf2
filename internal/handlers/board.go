package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/utils"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

// BoardHandler serves the read-only board configuration and the activity
// feed.
type BoardHandler struct {
	ws *workspace.Workspace
}

func NewBoardHandler(ws *workspace.Workspace) *BoardHandler {
	return &BoardHandler{ws: ws}
}

// GetBoard returns the kanban columns and event types
func (h *BoardHandler) GetBoard(c *gin.Context) {
	c.JSON(http.StatusOK, h.ws.Board())
}

// ListActivities returns a page of the activity log, newest first
func (h *BoardHandler) ListActivities(c *gin.Context) {
	category := models.ActivityCategory(c.Query("category"))
	switch category {
	case "", models.CategoryTask, models.CategoryEvent, models.CategoryTeam:
	default:
		apierrors.BadRequest(c, "category must be one of task, event, team")
		return
	}

	page, meta := utils.Paginate(h.ws.ActivitiesByCategory(category), utils.GetPaginationParams(c))
	c.JSON(http.StatusOK, dto.ActivityListResponse{
		Activities:         page,
		PaginationResponse: meta,
	})
}
