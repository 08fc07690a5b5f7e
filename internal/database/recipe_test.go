package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	// A file-backed database per test: an in-memory DSN would give every
	// pooled connection its own empty database.
	client, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return client
}

func seedUser(t *testing.T, c *Client, username string) *User {
	t.Helper()
	user, err := c.CreateUser(context.Background(), username, "hash")
	require.NoError(t, err)
	return user
}

func seedRecipe(t *testing.T, c *Client, owner uint, name, category string, createdAt time.Time) *Recipe {
	t.Helper()
	recipe := &Recipe{
		Name:         name,
		Category:     category,
		PrepTime:     10,
		CookTime:     20,
		Servings:     4,
		Ingredients:  "flour\nsugar",
		Instructions: "mix\nbake",
		UserID:       owner,
		CreatedAt:    createdAt,
	}
	require.NoError(t, c.CreateRecipe(context.Background(), recipe))
	return recipe
}

func TestListRecipes_Ordering(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	user := seedUser(t, client, "alice")

	now := time.Now()
	first := seedRecipe(t, client, user.ID, "Oldest", "Dinner", now.Add(-2*time.Hour))
	second := seedRecipe(t, client, user.ID, "Middle", "Dinner", now.Add(-1*time.Hour))
	third := seedRecipe(t, client, user.ID, "Newest", "Dinner", now)

	recipes, err := client.ListRecipes(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, third.ID, recipes[0].ID)
	assert.Equal(t, second.ID, recipes[1].ID)
	assert.Equal(t, first.ID, recipes[2].ID)
}

func TestListRecipes_Filters(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	user := seedUser(t, client, "alice")

	now := time.Now()
	seedRecipe(t, client, user.ID, "Chocolate Cake", "Dessert", now.Add(-3*time.Minute))
	seedRecipe(t, client, user.ID, "Carrot CAKE", "Dessert", now.Add(-2*time.Minute))
	seedRecipe(t, client, user.ID, "Tomato Soup", "Dinner", now.Add(-1*time.Minute))

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{
			name: "unfiltered returns everything",
			want: []string{"Tomato Soup", "Carrot CAKE", "Chocolate Cake"},
		},
		{
			name:     "category all is unfiltered",
			category: "all",
			want:     []string{"Tomato Soup", "Carrot CAKE", "Chocolate Cake"},
		},
		{
			name:     "lowercase category matches capitalized rows",
			category: "dessert",
			want:     []string{"Carrot CAKE", "Chocolate Cake"},
		},
		{
			name:     "uppercase category matches capitalized rows",
			category: "DESSERT",
			want:     []string{"Carrot CAKE", "Chocolate Cake"},
		},
		{
			name:   "search is a case-insensitive substring match",
			search: "cake",
			want:   []string{"Carrot CAKE", "Chocolate Cake"},
		},
		{
			name:     "category and search combine with AND",
			category: "dessert",
			search:   "chocolate",
			want:     []string{"Chocolate Cake"},
		},
		{
			name:     "no matches",
			category: "breakfast",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, err := client.ListRecipes(ctx, tt.category, tt.search)
			require.NoError(t, err)
			var names []string
			for _, r := range recipes {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestUpdateRecipe(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	owner := seedUser(t, client, "alice")
	other := seedUser(t, client, "bob")
	recipe := seedRecipe(t, client, owner.ID, "Soup", "Dinner", time.Now())

	updated := Recipe{
		Name:         "Better Soup",
		Category:     "Lunch",
		PrepTime:     5,
		CookTime:     15,
		Servings:     2,
		Ingredients:  "water\nsalt",
		Instructions: "boil",
		ImageURL:     "",
	}

	t.Run("non-owner is rejected and recipe unchanged", func(t *testing.T) {
		_, err := client.UpdateRecipe(ctx, recipe.ID, updated, other.ID)
		assert.ErrorIs(t, err, ErrNotOwner)

		got, err := client.GetRecipe(ctx, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, "Soup", got.Name)
		assert.Equal(t, "Dinner", got.Category)
	})

	t.Run("owner update overwrites every mutable field", func(t *testing.T) {
		got, err := client.UpdateRecipe(ctx, recipe.ID, updated, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Better Soup", got.Name)
		assert.Equal(t, "Lunch", got.Category)
		assert.Equal(t, 5, got.PrepTime)
		assert.Equal(t, 15, got.CookTime)
		assert.Equal(t, 2, got.Servings)
		assert.Equal(t, "water\nsalt", got.Ingredients)
		assert.Equal(t, "boil", got.Instructions)
		assert.Equal(t, "", got.ImageURL)
		// The owner never changes.
		assert.Equal(t, owner.ID, got.UserID)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := client.UpdateRecipe(ctx, 9999, updated, owner.ID)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	owner := seedUser(t, client, "alice")
	other := seedUser(t, client, "bob")
	recipe := seedRecipe(t, client, owner.ID, "Soup", "Dinner", time.Now())

	err := client.DeleteRecipe(ctx, recipe.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	before, err := client.CountRecipes(ctx)
	require.NoError(t, err)

	require.NoError(t, client.DeleteRecipe(ctx, recipe.ID, owner.ID))

	_, err = client.GetRecipe(ctx, recipe.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	after, err := client.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, before-1, after)

	err = client.DeleteRecipe(ctx, recipe.ID, owner.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestLatestRecipes(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	user := seedUser(t, client, "alice")

	now := time.Now()
	for i, name := range []string{"A", "B", "C", "D", "E"} {
		seedRecipe(t, client, user.ID, name, "Dinner", now.Add(time.Duration(i)*time.Minute))
	}

	latest, err := client.LatestRecipes(ctx, 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "E", latest[0].Name)
	assert.Equal(t, "D", latest[1].Name)
	assert.Equal(t, "C", latest[2].Name)

	// Asking for more than exist returns everything.
	all, err := client.LatestRecipes(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRecipeCategories(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	user := seedUser(t, client, "alice")

	now := time.Now()
	seedRecipe(t, client, user.ID, "Cake", "Dessert", now)
	seedRecipe(t, client, user.ID, "Pie", "Dessert", now)
	seedRecipe(t, client, user.ID, "Soup", "Dinner", now)

	categories, err := client.RecipeCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dessert", "Dinner"}, categories)
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dessert", "Dessert"},
		{"DESSERT", "Dessert"},
		{"dEsSeRt", "Dessert"},
		{"Dinner", "Dinner"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, capitalize(tt.in))
	}
}
