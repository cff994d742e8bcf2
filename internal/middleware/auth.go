package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

// RequireAuth checks that the session cookie names the workspace's current
// actor. A cookie left over from an earlier login is rejected once someone
// else has logged in or the workspace has logged out.
func RequireAuth(ws *workspace.Workspace) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(constants.ContextKeyUserID).(string)

		if userID == "" {
			apierrors.AbortWithError(c, http.StatusUnauthorized,
				apierrors.NewAPIError(apierrors.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		actor := ws.CurrentActor()
		if actor == nil || actor.ID != userID {
			apierrors.AbortWithError(c, http.StatusUnauthorized,
				apierrors.NewAPIError(apierrors.ErrCodeSessionMismatch, "Session is no longer active"))
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// RequireOwner allows the request only when the current actor has the Owner
// role. It must run after RequireAuth.
func RequireOwner(ws *workspace.Workspace) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ws.CurrentActor()
		if actor == nil {
			apierrors.AbortWithError(c, http.StatusUnauthorized,
				apierrors.NewAPIError(apierrors.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if !actor.IsOwner() {
			apierrors.AbortWithError(c, http.StatusForbidden,
				apierrors.NewAPIError(apierrors.ErrCodeForbidden, "Only owners can manage team members"))
			return
		}

		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}
