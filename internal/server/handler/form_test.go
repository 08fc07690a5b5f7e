package handler

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formContext(t *testing.T, form url.Values) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest("POST", "/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	return c
}

func TestParseRecipeForm(t *testing.T) {
	c := formContext(t, url.Values{
		"name":         {"  Soup  "},
		"category":     {"Dinner"},
		"prep_time":    {"10"},
		"cook_time":    {"20"},
		"servings":     {"4"},
		"ingredients":  {"water\nsalt"},
		"instructions": {"boil"},
		"image_url":    {"http://example.com/soup.jpg"},
	})

	form, err := parseRecipeForm(c)
	require.NoError(t, err)
	assert.Equal(t, "Soup", form.Name)
	assert.Equal(t, "Dinner", form.Category)
	assert.Equal(t, 10, form.PrepTime)
	assert.Equal(t, 20, form.CookTime)
	assert.Equal(t, 4, form.Servings)
	assert.Equal(t, "http://example.com/soup.jpg", form.ImageURL)
}

func TestParseRecipeForm_ImageURLOptional(t *testing.T) {
	c := formContext(t, url.Values{
		"name":         {"Soup"},
		"category":     {"Dinner"},
		"prep_time":    {"10"},
		"cook_time":    {"20"},
		"servings":     {"4"},
		"ingredients":  {"water"},
		"instructions": {"boil"},
	})

	form, err := parseRecipeForm(c)
	require.NoError(t, err)
	assert.Equal(t, "", form.ImageURL)
}

func TestParseRecipeForm_BadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{name: "non-numeric prep time", field: "prep_time", value: "ten"},
		{name: "empty cook time", field: "cook_time", value: ""},
		{name: "decimal servings", field: "servings", value: "4.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{
				"name":         {"Soup"},
				"category":     {"Dinner"},
				"prep_time":    {"10"},
				"cook_time":    {"20"},
				"servings":     {"4"},
				"ingredients":  {"water"},
				"instructions": {"boil"},
			}
			form.Set(tt.field, tt.value)

			_, err := parseRecipeForm(formContext(t, form))
			require.Error(t, err)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.value, fieldErr.Value)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"water", "salt"}, splitLines("water\n\n  salt  \n"))
	assert.Empty(t, splitLines("  \n \n"))
}
