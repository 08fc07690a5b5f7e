// Package handler contains the HTTP handlers for all pages and form posts.
package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tastyrecipes/tastyrecipes/internal/auth"
	"github.com/tastyrecipes/tastyrecipes/internal/database"
)

// Session keys and flash categories.
const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
	flashSuccess    = "success"
	flashError      = "error"
)

type Handler struct {
	db   *database.Client
	auth *auth.Service
}

func New(db *database.Client, authService *auth.Service) *Handler {
	return &Handler{
		db:   db,
		auth: authService,
	}
}

// addFlash queues a message for the next rendered page.
func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
}

// render draws an HTML page, merging the session identity and any pending
// flash messages into the template data.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	session := sessions.Default(c)
	data["Successes"] = session.Flashes(flashSuccess)
	data["Errors"] = session.Flashes(flashError)

	var userID uint
	if id, ok := session.Get(sessionUserID).(uint); ok {
		userID = id
	}
	data["UserID"] = userID
	if username, ok := session.Get(sessionUsername).(string); ok {
		data["Username"] = username
	}

	// Reading flashes removes them, so the session must be saved.
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}

	c.HTML(status, name, data)
}

// NotFound renders the 404 page. It also backs the router's NoRoute handler.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", nil)
}
