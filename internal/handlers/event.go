package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/middleware"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

type EventHandler struct {
	ws *workspace.Workspace
}

func NewEventHandler(ws *workspace.Workspace) *EventHandler {
	return &EventHandler{ws: ws}
}

// ListEvents returns events, optionally limited to dates within [from, to]
func (h *EventHandler) ListEvents(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from != "" && to != "" && from > to {
		apierrors.BadRequest(c, "from must not be after to")
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(h.ws.EventsBetween(from, to)))
}

// GetEvent returns the event loaded by RequireEvent
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, ok := middleware.GetEvent(c)
	if !ok {
		apierrors.InternalError(c, "Event not found in context")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	c.JSON(http.StatusCreated, h.ws.CreateEvent(req.ToEvent()))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, ok := h.ws.UpdateEvent(c.Param("id"), req.ToPatch())
	if !ok {
		apierrors.NotFound(c, "Event not found")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if removed := h.ws.DeleteEvent(c.Param("id")); removed == nil {
		apierrors.NotFound(c, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
	})
}
