package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/services"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

type UserHandler struct {
	ws          *workspace.Workspace
	authService *services.AuthService
}

func NewUserHandler(ws *workspace.Workspace, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		ws:          ws,
		authService: authService,
	}
}

// ListUsers returns the team roster without passwords
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"users": dto.ToUserDTOs(h.ws.Users()),
	})
}

// CreateUser adds a team member. Owner only.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.authService.CreateMember(services.CreateMemberInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Avatar:   req.Avatar,
		Role:     req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(user))
}

// UpdateUser edits a profile. Members may edit only themselves; owners may
// edit anyone. Only owners may change a role.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	id := c.Param("id")
	actor := h.ws.CurrentActor()
	if actor == nil {
		apierrors.Unauthorized(c, "")
		return
	}
	if !actor.IsOwner() && (actor.ID != id || req.Role != nil) {
		apierrors.Forbidden(c, "Members can only edit their own profile")
		return
	}

	user, err := h.authService.UpdateMember(id, req.ToPatch())
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(user))
}

// DeleteUser removes a team member. Owner only; nobody can delete themselves.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	removed, err := h.ws.DeleteUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, workspace.ErrCannotDeleteSelf) {
			apierrors.Conflict(c, apierrors.ErrCodeCannotDeleteSelf, err.Error())
			return
		}
		_ = c.Error(err)
		apierrors.InternalError(c, "")
		return
	}
	if removed == nil {
		apierrors.NotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User removed successfully",
	})
}
