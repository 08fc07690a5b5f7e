package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/tastyrecipes/tastyrecipes/internal/auth"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		addFlash(c, flashError, "Username and password are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), username, password); err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			addFlash(c, flashError, "Username already exists!")
		} else {
			log.Error("failed to register user", "error", err)
			addFlash(c, flashError, "Registration failed, please try again.")
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	addFlash(c, flashSuccess, "Registration successful! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(sessionUserID) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Error("failed to authenticate user", "error", err)
		}
		addFlash(c, flashError, "Invalid username or password!")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	session.AddFlash("Login successful!", flashSuccess)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionUserID)
	session.Delete(sessionUsername)
	session.AddFlash("You have been logged out.", flashSuccess)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
