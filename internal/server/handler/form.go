package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ccoveille/go-safecast"
	"github.com/gin-gonic/gin"
	"github.com/tastyrecipes/tastyrecipes/internal/database"
)

// FieldError reports a form value that could not be coerced to a number.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s must be a whole number, got %q", strings.ReplaceAll(e.Field, "_", " "), e.Value)
}

// recipeForm is the statically-typed shape of the add/edit recipe form.
type recipeForm struct {
	Name         string
	Category     string
	PrepTime     int
	CookTime     int
	Servings     int
	Ingredients  string
	Instructions string
	ImageURL     string
}

func parseRecipeForm(c *gin.Context) (*recipeForm, error) {
	f := &recipeForm{
		Name:         strings.TrimSpace(c.PostForm("name")),
		Category:     strings.TrimSpace(c.PostForm("category")),
		Ingredients:  strings.TrimSpace(c.PostForm("ingredients")),
		Instructions: strings.TrimSpace(c.PostForm("instructions")),
		ImageURL:     strings.TrimSpace(c.PostForm("image_url")),
	}

	var err error
	if f.PrepTime, err = intField(c, "prep_time"); err != nil {
		return nil, err
	}
	if f.CookTime, err = intField(c, "cook_time"); err != nil {
		return nil, err
	}
	if f.Servings, err = intField(c, "servings"); err != nil {
		return nil, err
	}
	return f, nil
}

// recipe converts the form values into a store entity. Owner and creation
// time are set by the caller and the store respectively.
func (f *recipeForm) recipe() database.Recipe {
	return database.Recipe{
		Name:         f.Name,
		Category:     f.Category,
		PrepTime:     f.PrepTime,
		CookTime:     f.CookTime,
		Servings:     f.Servings,
		Ingredients:  f.Ingredients,
		Instructions: f.Instructions,
		ImageURL:     f.ImageURL,
	}
}

func intField(c *gin.Context, field string) (int, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw}
	}
	return n, nil
}

// recipeID parses the :id route parameter.
func recipeID(c *gin.Context) (uint, error) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.ToUint(raw)
}
