// Package session tracks the workspace's single authenticated actor.
package session

import "github.com/yukikurage/kerja-workspace/internal/models"

// Manager holds at most one current actor. It has no expiry; the actor stays
// until Logout.
type Manager struct {
	actor *models.User
}

func NewManager() *Manager {
	return &Manager{}
}

// Restore sets the actor to the user whose id equals pointer. A pointer that
// is empty or resolves to no user leaves the manager unauthenticated.
func (m *Manager) Restore(pointer string, users []models.User) bool {
	m.actor = nil
	if pointer == "" {
		return false
	}
	for _, u := range users {
		if u.ID == pointer {
			actor := u
			m.actor = &actor
			return true
		}
	}
	return false
}

func (m *Manager) Login(user models.User) {
	m.actor = &user
}

func (m *Manager) Logout() {
	m.actor = nil
}

// Refresh replaces the actor's profile when user is the current actor.
func (m *Manager) Refresh(user models.User) {
	if m.actor != nil && m.actor.ID == user.ID {
		m.actor = &user
	}
}

// Actor returns a copy of the current actor, or nil.
func (m *Manager) Actor() *models.User {
	if m.actor == nil {
		return nil
	}
	actor := *m.actor
	return &actor
}

// Pointer is the id persisted for the current actor, "" when logged out.
func (m *Manager) Pointer() string {
	if m.actor == nil {
		return ""
	}
	return m.actor.ID
}

func (m *Manager) IsActor(id string) bool {
	return m.actor != nil && m.actor.ID == id
}
