package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth redirects anonymous visitors to the login page and exposes the
// session identity to downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(sessionUserID).(uint)
		if !ok {
			session.AddFlash("Please login to manage recipes.", flashError)
			if err := session.Save(); err != nil {
				log.Error("failed to save session", "error", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionUserID, userID)
		if username, ok := session.Get(sessionUsername).(string); ok {
			c.Set(sessionUsername, username)
		}
	}
}

// currentUserID returns the authenticated user's id. It must only be called
// from handlers behind RequireAuth.
func currentUserID(c *gin.Context) uint {
	return c.MustGet(sessionUserID).(uint)
}
