package dto

import (
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/utils"
)

// UserDTO represents a user in API responses. The password never leaves
// the server.
type UserDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Avatar   string          `json:"avatar"`
	Role     models.UserRole `json:"role"`
	Email    string          `json:"email"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateUserRequest is the body of POST /api/users
type CreateUserRequest struct {
	Name     string          `json:"name"`
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Email    string          `json:"email"`
	Avatar   string          `json:"avatar"`
	Role     models.UserRole `json:"role" binding:"omitempty,oneof=Owner Member"`
}

// UpdateUserRequest is the body of PATCH /api/users/:id
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Username *string          `json:"username"`
	Password *string          `json:"password"`
	Email    *string          `json:"email"`
	Avatar   *string          `json:"avatar"`
	Role     *models.UserRole `json:"role" binding:"omitempty,oneof=Owner Member"`
}

// ActivityListResponse is a page of the activity log
type ActivityListResponse struct {
	Activities []models.ActivityEntry `json:"activities"`
	utils.PaginationResponse
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Avatar:   user.Avatar,
		Role:     user.Role,
		Email:    user.Email,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

func (r UpdateUserRequest) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:     r.Name,
		Username: r.Username,
		Password: r.Password,
		Avatar:   r.Avatar,
		Role:     r.Role,
		Email:    r.Email,
	}
}
