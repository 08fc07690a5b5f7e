package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/tastyrecipes/tastyrecipes/internal/database"
)

func (h *Handler) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()
	category := strings.TrimSpace(c.Query("category"))
	search := strings.TrimSpace(c.Query("search"))

	recipes, err := h.db.ListRecipes(ctx, category, search)
	if err != nil {
		log.Error("failed to list recipes", "error", err)
	}
	categories, err := h.db.RecipeCategories(ctx)
	if err != nil {
		log.Error("failed to load categories", "error", err)
	}

	h.render(c, http.StatusOK, "recipes.html", gin.H{
		"Recipes":         recipes,
		"Categories":      categories,
		"CurrentCategory": category,
		"Search":          search,
	})
}

func (h *Handler) ViewRecipe(c *gin.Context) {
	id, err := recipeID(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to load recipe", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	h.render(c, http.StatusOK, "recipe_detail.html", gin.H{
		"Recipe":      recipe,
		"Ingredients": splitLines(recipe.Ingredients),
		"Steps":       splitLines(recipe.Instructions),
	})
}

func (h *Handler) AddRecipeForm(c *gin.Context) {
	h.render(c, http.StatusOK, "recipe_form.html", gin.H{
		"Title":  "Add Recipe",
		"Action": "/add",
		"Recipe": &database.Recipe{},
	})
}

func (h *Handler) AddRecipe(c *gin.Context) {
	form, err := parseRecipeForm(c)
	if err != nil {
		addFlash(c, flashError, err.Error())
		c.Redirect(http.StatusFound, "/add")
		return
	}

	recipe := form.recipe()
	recipe.UserID = currentUserID(c)
	if err := h.db.CreateRecipe(c.Request.Context(), &recipe); err != nil {
		addFlash(c, flashError, "Failed to add recipe, please try again.")
		c.Redirect(http.StatusFound, "/add")
		return
	}

	addFlash(c, flashSuccess, "Recipe added successfully!")
	c.Redirect(http.StatusFound, "/recipes")
}

func (h *Handler) EditRecipeForm(c *gin.Context) {
	id, err := recipeID(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	recipe, err := h.db.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrRecipeNotFound) {
			h.NotFound(c)
			return
		}
		log.Error("failed to load recipe", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if recipe.UserID != currentUserID(c) {
		addFlash(c, flashError, "You can only edit your own recipes!")
		c.Redirect(http.StatusFound, "/recipes")
		return
	}

	h.render(c, http.StatusOK, "recipe_form.html", gin.H{
		"Title":  "Edit Recipe",
		"Action": fmt.Sprintf("/edit/%d", recipe.ID),
		"Recipe": recipe,
	})
}

func (h *Handler) EditRecipe(c *gin.Context) {
	id, err := recipeID(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	form, err := parseRecipeForm(c)
	if err != nil {
		addFlash(c, flashError, err.Error())
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit/%d", id))
		return
	}

	if _, err := h.db.UpdateRecipe(c.Request.Context(), id, form.recipe(), currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, database.ErrRecipeNotFound):
			h.NotFound(c)
		case errors.Is(err, database.ErrNotOwner):
			addFlash(c, flashError, "You can only edit your own recipes!")
			c.Redirect(http.StatusFound, "/recipes")
		default:
			addFlash(c, flashError, "Failed to update recipe, please try again.")
			c.Redirect(http.StatusFound, "/recipes")
		}
		return
	}

	addFlash(c, flashSuccess, "Recipe updated successfully!")
	c.Redirect(http.StatusFound, "/recipes")
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	id, err := recipeID(c)
	if err != nil {
		h.NotFound(c)
		return
	}

	if err := h.db.DeleteRecipe(c.Request.Context(), id, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, database.ErrRecipeNotFound):
			h.NotFound(c)
		case errors.Is(err, database.ErrNotOwner):
			addFlash(c, flashError, "You can only delete your own recipes!")
			c.Redirect(http.StatusFound, "/recipes")
		default:
			addFlash(c, flashError, "Failed to delete recipe, please try again.")
			c.Redirect(http.StatusFound, "/recipes")
		}
		return
	}

	addFlash(c, flashSuccess, "Recipe deleted successfully!")
	c.Redirect(http.StatusFound, "/recipes")
}

// splitLines splits free text into trimmed, non-empty lines for display as
// list items.
func splitLines(s string) []string {
	return lo.FilterMap(strings.Split(s, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		return line, line != ""
	})
}
