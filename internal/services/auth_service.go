package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUsernameRequired     = errors.New("username is required")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// bcryptPrefix marks a stored password as a bcrypt hash. Anything else is a
// plaintext password from a seeded or imported roster.
const bcryptPrefix = "$2"

// AuthService handles credential checks and member accounts.
type AuthService struct {
	ws *workspace.Workspace
}

// NewAuthService creates a new AuthService.
func NewAuthService(ws *workspace.Workspace) *AuthService {
	return &AuthService{
		ws: ws,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Authenticate verifies credentials without touching the session.
func (s *AuthService) Authenticate(input LoginInput) (models.User, error) {
	user, ok := s.ws.UserByUsername(strings.TrimSpace(input.Username))
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if !passwordMatches(user.Password, input.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Login verifies credentials and makes the user the workspace's actor.
func (s *AuthService) Login(input LoginInput) (models.User, error) {
	user, err := s.Authenticate(input)
	if err != nil {
		return models.User{}, err
	}
	s.ws.Login(user)
	return user, nil
}

// Logout ends the workspace session.
func (s *AuthService) Logout() {
	s.ws.Logout()
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (models.User, error) {
	user, ok := s.ws.User(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateMemberInput represents the information needed to add a member.
type CreateMemberInput struct {
	Name     string
	Username string
	Password string
	Email    string
	Avatar   string
	Role     models.UserRole
}

// CreateMember validates and hashes the password, then adds the member.
func (s *AuthService) CreateMember(input CreateMemberInput) (models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return models.User{}, ErrUsernameRequired
	}
	if _, taken := s.ws.UserByUsername(username); taken {
		return models.User{}, ErrUsernameTaken
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = username
	}

	return s.ws.CreateUser(models.User{
		Name:     name,
		Username: username,
		Password: hashed,
		Avatar:   input.Avatar,
		Role:     input.Role,
		Email:    input.Email,
	}), nil
}

// UpdateMember applies a profile patch. A new password is hashed and a new
// username must not belong to anyone else.
func (s *AuthService) UpdateMember(id string, patch models.UserPatch) (models.User, error) {
	if _, ok := s.ws.User(id); !ok {
		return models.User{}, ErrUserNotFound
	}

	if patch.Username != nil {
		username := strings.TrimSpace(*patch.Username)
		if username == "" {
			return models.User{}, ErrUsernameRequired
		}
		if other, taken := s.ws.UserByUsername(username); taken && other.ID != id {
			return models.User{}, ErrUsernameTaken
		}
		patch.Username = &username
	}

	if patch.Password != nil {
		hashed, err := HashPassword(*patch.Password)
		if err != nil {
			return models.User{}, err
		}
		patch.Password = &hashed
	}

	user, ok := s.ws.UpdateUser(id, patch)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// HashPassword checks the minimum length and returns a bcrypt hash.
func HashPassword(password string) (string, error) {
	if len(password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToHashPassword, err)
	}
	return string(hashed), nil
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
