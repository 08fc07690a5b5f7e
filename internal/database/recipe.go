package database

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Recipe represents a single recipe owned by a user.
// Recipes are hard-deleted, so the model carries no soft-delete column.
// UserID never changes after creation.
type Recipe struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"not null"`
	Category     string `gorm:"not null;index"`
	PrepTime     int    `gorm:"not null"`
	CookTime     int    `gorm:"not null"`
	Servings     int    `gorm:"not null"`
	Ingredients  string `gorm:"type:text;not null"`
	Instructions string `gorm:"type:text;not null"`
	ImageURL     string
	UserID       uint `gorm:"not null;index"`
	CreatedAt    time.Time
}

// ListRecipes returns all recipes, newest first. A category of "" or "all"
// means unfiltered; otherwise only recipes whose category exactly equals the
// capitalized term match. A non-empty search term further restricts to
// recipes whose name contains it, case-insensitively.
func (c *Client) ListRecipes(ctx context.Context, category, search string) ([]Recipe, error) {
	query := c.db.WithContext(ctx).Model(&Recipe{})

	if category != "" && !strings.EqualFold(category, "all") {
		query = query.Where("category = ?", capitalize(category))
	}
	if search != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var recipes []Recipe
	if err := query.Order("created_at DESC, id DESC").Find(&recipes).Error; err != nil {
		log.Error("failed to list recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}

func (c *Client) GetRecipe(ctx context.Context, id uint) (*Recipe, error) {
	var recipe Recipe
	if err := c.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		log.Error("failed to get recipe", "error", err)
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) CreateRecipe(ctx context.Context, recipe *Recipe) error {
	if err := c.db.WithContext(ctx).Create(recipe).Error; err != nil {
		log.Error("failed to create recipe", "error", err)
		return err
	}
	return nil
}

// UpdateRecipe overwrites all mutable fields of the recipe with the values
// from updated. The owner and creation time never change. Only the owner may
// update a recipe.
func (c *Client) UpdateRecipe(ctx context.Context, id uint, updated Recipe, requesterID uint) (*Recipe, error) {
	recipe, err := c.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != requesterID {
		return nil, ErrNotOwner
	}

	recipe.Name = updated.Name
	recipe.Category = updated.Category
	recipe.PrepTime = updated.PrepTime
	recipe.CookTime = updated.CookTime
	recipe.Servings = updated.Servings
	recipe.Ingredients = updated.Ingredients
	recipe.Instructions = updated.Instructions
	recipe.ImageURL = updated.ImageURL

	if err := c.db.WithContext(ctx).Save(recipe).Error; err != nil {
		log.Error("failed to update recipe", "error", err)
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe. Only the owner may delete it.
func (c *Client) DeleteRecipe(ctx context.Context, id, requesterID uint) error {
	recipe, err := c.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != requesterID {
		return ErrNotOwner
	}

	if err := c.db.WithContext(ctx).Delete(&Recipe{}, recipe.ID).Error; err != nil {
		log.Error("failed to delete recipe", "error", err)
		return err
	}
	return nil
}

// LatestRecipes returns the n most recently created recipes. The home page
// uses this for both its "featured" and "latest" sections.
func (c *Client) LatestRecipes(ctx context.Context, n int) ([]Recipe, error) {
	var recipes []Recipe
	if err := c.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(n).Find(&recipes).Error; err != nil {
		log.Error("failed to get latest recipes", "error", err)
		return nil, err
	}
	return recipes, nil
}

func (c *Client) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&Recipe{}).Count(&count).Error; err != nil {
		log.Error("failed to count recipes", "error", err)
		return 0, err
	}
	return count, nil
}

// RecipeCategories returns the distinct categories in use, sorted.
func (c *Client) RecipeCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.db.WithContext(ctx).Model(&Recipe{}).Distinct("category").Order("category").Pluck("category", &categories).Error; err != nil {
		log.Error("failed to get recipe categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// capitalize uppercases the first rune and lowercases the rest, matching how
// category filter terms are normalized before comparison.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
