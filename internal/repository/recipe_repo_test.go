package repository_test

import (
	"testing"

	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *repository.UserRepository, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name}
	require.NoError(t, u.SetPassword("pw"))
	require.NoError(t, users.Create(u))
	return u
}

func seedRecipe(t *testing.T, recipes *repository.RecipeRepository, owner uint, title, ingredients string) *models.Recipe {
	t.Helper()
	r := &models.Recipe{
		Title:        title,
		Ingredients:  ingredients,
		Instructions: "cook it",
		ChefName:     "Chef",
		Cuisine:      "Any",
		UserID:       owner,
	}
	require.NoError(t, recipes.Create(r))
	return r
}

func titles(list []models.Recipe) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Title)
	}
	return out
}

func TestRecipeGetByIDRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)
	alice := seedUser(t, users, "alice")

	created := &models.Recipe{
		Title:        "Soup",
		Ingredients:  "water,salt",
		Instructions: "boil",
		ChefName:     "Alice",
		Cuisine:      "French",
		UserID:       alice.ID,
	}
	require.NoError(t, recipes.Create(created))
	require.NotZero(t, created.ID)

	got, err := recipes.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Ingredients, got.Ingredients)
	assert.Equal(t, created.Instructions, got.Instructions)
	assert.Equal(t, created.ChefName, got.ChefName)
	assert.Equal(t, created.Cuisine, got.Cuisine)
	assert.Equal(t, alice.ID, got.UserID)
}

func TestRecipeGetByIDNotFound(t *testing.T) {
	recipes := repository.NewRecipeRepository(testutil.NewTestDB(t))

	_, err := recipes.GetByID(42)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
}

func TestRecipeSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	seedRecipe(t, recipes, alice.ID, "Tomato Soup", "tomato,water")
	seedRecipe(t, recipes, bob.ID, "Pancakes", "flour,milk,egg")
	seedRecipe(t, recipes, bob.ID, "Omelette", "egg,butter")
	seedRecipe(t, recipes, alice.ID, "100% Rye", "rye,water")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match", "Soup", []string{"Tomato Soup"}},
		{"ingredients match across owners", "egg", []string{"Pancakes", "Omelette"}},
		{"title or ingredients", "water", []string{"Tomato Soup", "100% Rye"}},
		{"percent is literal", "0%", []string{"100% Rye"}},
		{"underscore is literal", "_", []string{}},
		{"no match", "caviar", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recipes.Search(tt.query)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, titles(got))
		})
	}
}

func TestRecipeListAndListByUserID(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)
	alice := seedUser(t, users, "alice")
	bob := seedUser(t, users, "bob")

	seedRecipe(t, recipes, alice.ID, "Soup", "water")
	seedRecipe(t, recipes, bob.ID, "Stew", "beef")
	seedRecipe(t, recipes, alice.ID, "Salad", "lettuce")

	all, err := recipes.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Soup", "Stew", "Salad"}, titles(all))

	mine, err := recipes.ListByUserID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Soup", "Salad"}, titles(mine))

	theirs, err := recipes.ListByUserID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stew"}, titles(theirs))
}

func TestRecipeDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)
	alice := seedUser(t, users, "alice")
	r := seedRecipe(t, recipes, alice.ID, "Soup", "water")

	require.NoError(t, recipes.Delete(r.ID))

	_, err := recipes.GetByID(r.ID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
	assert.ErrorIs(t, recipes.Delete(r.ID), repository.ErrRecipeNotFound)
}
