package models

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yukikurage/kerja-workspace/internal/constants"
)

type UserRole string

const (
	RoleOwner  UserRole = "Owner"
	RoleMember UserRole = "Member"
)

// User is a team member. Password is persisted as given; the auth service
// stores bcrypt hashes for members it creates.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Avatar   string   `json:"avatar"`
	Role     UserRole `json:"role"`
	Email    string   `json:"email"`
}

// IsOwner reports whether the user may manage members.
func (u User) IsOwner() bool {
	return u.Role == RoleOwner
}

// AvatarFor builds the generated avatar URL for a display name.
func AvatarFor(name string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return fmt.Sprintf(constants.AvatarURLFormat, escaped)
}

// DefaultAdmin is the administrator seeded whenever the user collection is empty.
func DefaultAdmin() User {
	return User{
		ID:       constants.DefaultAdminID,
		Name:     constants.DefaultAdminName,
		Username: constants.DefaultAdminUsername,
		Password: constants.DefaultAdminPassword,
		Avatar:   AvatarFor("Admin"),
		Role:     RoleOwner,
		Email:    constants.DefaultAdminEmail,
	}
}

// UserPatch carries the fields of a partial profile update.
type UserPatch struct {
	Name     *string
	Username *string
	Password *string
	Avatar   *string
	Role     *UserRole
	Email    *string
}

// Apply merges the patch onto u and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
