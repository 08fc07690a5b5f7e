package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const (
	featuredCount = 3
	latestCount   = 4
)

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := h.db.LatestRecipes(ctx, featuredCount)
	if err != nil {
		log.Error("failed to load featured recipes", "error", err)
	}
	latest, err := h.db.LatestRecipes(ctx, latestCount)
	if err != nil {
		log.Error("failed to load latest recipes", "error", err)
	}

	h.render(c, http.StatusOK, "home.html", gin.H{
		"Featured": featured,
		"Latest":   latest,
	})
}

func (h *Handler) About(c *gin.Context) {
	ctx := c.Request.Context()

	recipeCount, err := h.db.CountRecipes(ctx)
	if err != nil {
		log.Error("failed to count recipes", "error", err)
	}
	userCount, err := h.db.CountUsers(ctx)
	if err != nil {
		log.Error("failed to count users", "error", err)
	}

	h.render(c, http.StatusOK, "about.html", gin.H{
		"RecipeCount": recipeCount,
		"UserCount":   userCount,
	})
}
