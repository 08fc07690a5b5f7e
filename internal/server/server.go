// Package server wires the HTTP surface: routing, sessions and page rendering.
package server

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/tastyrecipes/tastyrecipes/internal/auth"
	"github.com/tastyrecipes/tastyrecipes/internal/config"
	"github.com/tastyrecipes/tastyrecipes/internal/database"
	"github.com/tastyrecipes/tastyrecipes/internal/server/handler"
	"github.com/tastyrecipes/tastyrecipes/web"
	"github.com/tastyrecipes/tastyrecipes/web/templates/components"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        *database.Client
}

func New(cfg *config.Config, db *database.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.Default(),
		db:        db,
	}

	if err := s.setupTemplates(); err != nil {
		return nil, err
	}
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) setupTemplates() error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"reltime": components.FormatRelativeTime,
		"count":   components.FormatCount,
	}).ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.ginEngine.SetHTMLTemplate(tmpl)
	return nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("tastyrecipes_session", store))
}

func (s *Server) setupRoutes() error {
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	s.setupSession()

	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static files: %w", err)
	}
	s.ginEngine.StaticFS("/static", http.FS(staticFS))

	h := handler.New(s.db, auth.New(s.db))

	s.ginEngine.GET("/", h.Home)
	s.ginEngine.GET("/recipes", h.ListRecipes)
	s.ginEngine.GET("/about", h.About)
	s.ginEngine.GET("/register", h.RegisterForm)
	s.ginEngine.POST("/register", h.Register)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.Logout)
	s.ginEngine.GET("/recipe/:id", h.ViewRecipe)

	protected := s.ginEngine.Group("/")
	protected.Use(handler.RequireAuth())
	protected.GET("/add", h.AddRecipeForm)
	protected.POST("/add", h.AddRecipe)
	protected.GET("/edit/:id", h.EditRecipeForm)
	protected.POST("/edit/:id", h.EditRecipe)
	// Deletion by GET is kept for old links, but the templates post a form.
	protected.GET("/delete/:id", h.DeleteRecipe)
	protected.POST("/delete/:id", h.DeleteRecipe)

	s.ginEngine.NoRoute(h.NotFound)
	return nil
}

func (s *Server) Run() error {
	return s.ginEngine.Run(s.cfg.Listen)
}
