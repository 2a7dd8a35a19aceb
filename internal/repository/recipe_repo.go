package repository

import (
	"errors"
	"strings"

	"github.com/recipe-share/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// RecipeRepository handles recipe data access
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByID retrieves a recipe by ID regardless of owner
func (r *RecipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	result := r.db.First(&recipe, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, result.Error
	}
	return &recipe, nil
}

// List retrieves every recipe in the system
func (r *RecipeRepository) List() ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := r.db.Order("id ASC").Find(&recipes)
	return recipes, result.Error
}

// Search retrieves recipes whose title or ingredients contain query.
// Wildcard characters in query match literally.
func (r *RecipeRepository) Search(query string) ([]models.Recipe, error) {
	pattern := "%" + likeEscaper.Replace(query) + "%"

	var recipes []models.Recipe
	result := r.db.
		Where(`title LIKE ? ESCAPE '\' OR ingredients LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&recipes)
	return recipes, result.Error
}

// ListByUserID retrieves all recipes owned by a user
func (r *RecipeRepository) ListByUserID(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	result := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&recipes)
	return recipes, result.Error
}

// Delete removes a recipe by ID
func (r *RecipeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// Count returns the number of stored recipes
func (r *RecipeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Count(&count).Error
	return count, err
}
