package service

import (
	"errors"

	"github.com/recipe-share/internal/metrics"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
)

// DeleteOutcome classifies the result of deleting a recipe
type DeleteOutcome int

const (
	DeleteDeleted DeleteOutcome = iota
	DeleteNotFound
	DeleteFailed
)

// DeleteResult carries the outcome of a delete and, for DeleteFailed, the cause
type DeleteResult struct {
	Outcome DeleteOutcome
	Err     error
}

// RecipeService handles recipe operations. Reads and deletes are not
// restricted to the recipe's owner.
type RecipeService struct {
	recipeRepo *repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo *repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipeRepo: recipeRepo}
}

// CreateRecipeRequest is the create-recipe form
type CreateRecipeRequest struct {
	Title        string `form:"title" binding:"required"`
	Ingredients  string `form:"ingredients" binding:"required"`
	Instructions string `form:"instructions" binding:"required"`
	ChefName     string `form:"chef_name" binding:"required"`
	Cuisine      string `form:"cuisine" binding:"required"`
}

// Create stores a new recipe owned by userID
func (s *RecipeService) Create(userID uint, req *CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ChefName:     req.ChefName,
		Cuisine:      req.Cuisine,
		UserID:       userID,
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	metrics.RecipesCreated.Inc()
	return recipe, nil
}

// List returns all recipes, or only those whose title or ingredients
// contain query when it is non-empty
func (s *RecipeService) List(query string) ([]models.Recipe, error) {
	if query != "" {
		return s.recipeRepo.Search(query)
	}
	return s.recipeRepo.List()
}

// ListByUser returns the recipes owned by userID
func (s *RecipeService) ListByUser(userID uint) ([]models.Recipe, error) {
	return s.recipeRepo.ListByUserID(userID)
}

// GetByID returns a recipe regardless of its owner
func (s *RecipeService) GetByID(id uint) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(id)
}

// Delete removes a recipe regardless of its owner
func (s *RecipeService) Delete(id uint) DeleteResult {
	if _, err := s.recipeRepo.GetByID(id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return DeleteResult{Outcome: DeleteNotFound}
		}
		return DeleteResult{Outcome: DeleteFailed, Err: err}
	}

	if err := s.recipeRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return DeleteResult{Outcome: DeleteNotFound}
		}
		return DeleteResult{Outcome: DeleteFailed, Err: err}
	}

	metrics.RecipesDeleted.Inc()
	return DeleteResult{Outcome: DeleteDeleted}
}
