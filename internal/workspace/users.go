package workspace

import (
	"errors"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/describe"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// ErrCannotDeleteSelf is returned when the current actor tries to delete
// their own account.
var ErrCannotDeleteSelf = errors.New("you cannot delete yourself")

// Users returns the team roster in the order members were added.
func (w *Workspace) Users() []models.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.User{}, w.users...)
}

func (w *Workspace) User(id string) (models.User, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.userIndex(id); i >= 0 {
		return w.users[i], true
	}
	return models.User{}, false
}

// UserByUsername returns the first user with the given username.
func (w *Workspace) UserByUsername(username string) (models.User, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, u := range w.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser adds a member at the end of the roster. A missing avatar is
// generated from the name and a missing role defaults to Member.
func (w *Workspace) CreateUser(data models.User) models.User {
	w.mu.Lock()
	defer w.mu.Unlock()

	user := data
	user.ID = w.newID(constants.UserIDPrefix)
	if user.Avatar == "" {
		user.Avatar = models.AvatarFor(user.Name)
	}
	if user.Role == "" {
		user.Role = models.RoleMember
	}

	w.users = append(w.users, user)
	logged := w.record(describe.UserCreated, user.Name, models.CategoryTeam)
	w.commitMutation(constants.StorageKeyUsers, logged)
	return user
}

// UpdateUser merges patch onto a user's profile. When the user is the
// current actor, later activity entries carry the new profile; existing
// entries keep the old one.
func (w *Workspace) UpdateUser(id string, patch models.UserPatch) (models.User, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.userIndex(id)
	if i < 0 {
		return models.User{}, false
	}

	next := patch.Apply(w.users[i])
	next.ID = w.users[i].ID
	w.users[i] = next
	w.session.Refresh(next)

	logged := w.record(describe.UserUpdated, next.Name, models.CategoryTeam)
	w.commitMutation(constants.StorageKeyUsers, logged)
	return next, true
}

// DeleteUser removes a member and returns it, or nil when the id is unknown.
// Deleting the current actor is refused with ErrCannotDeleteSelf and changes
// nothing. Tasks and events keep references to the removed id. Removing the
// last member reseeds the default administrator.
func (w *Workspace) DeleteUser(id string) (*models.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session.IsActor(id) {
		return nil, ErrCannotDeleteSelf
	}

	i := w.userIndex(id)
	if i < 0 {
		return nil, nil
	}

	removed := w.users[i]
	w.users = append(w.users[:i:i], w.users[i+1:]...)
	w.ensureUsers()

	logged := w.record(describe.UserDeleted, removed.Name, models.CategoryTeam)
	w.commitMutation(constants.StorageKeyUsers, logged)
	return &removed, nil
}

func (w *Workspace) userIndex(id string) int {
	for i, u := range w.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
