package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/pkg/response"
)

const (
	msgRecipeCreated = "Recipe created successfully!"
	msgDeleteFailed  = "There was an error deleting your recipe!"
)

// RecipeHandler handles recipe pages
type RecipeHandler struct {
	recipeService *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes lists every recipe, filtered by the q search term when present
// GET /recipes?q=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	query := c.Query("q")

	recipes, err := h.recipeService.List(query)
	if err != nil {
		middleware.LogError("list recipes q=%q: %v", query, err)
		response.InternalError(c)
		return
	}

	render(c, http.StatusOK, "recipes.html", gin.H{
		"Recipes": recipes,
		"Query":   query,
	})
}

// ShowCreateRecipe renders the recipe form
// GET /recipe/create
func (h *RecipeHandler) ShowCreateRecipe(c *gin.Context) {
	render(c, http.StatusOK, "create_recipe.html", nil)
}

// CreateRecipe stores a recipe owned by the current user
// POST /recipe/create
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req service.CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.AddFlash(c, middleware.FlashError, msgMissingFields)
		render(c, http.StatusBadRequest, "create_recipe.html", gin.H{"Form": req})
		return
	}

	recipe, err := h.recipeService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		middleware.LogError("create recipe for user %d: %v", middleware.GetUserID(c), err)
		response.InternalError(c)
		return
	}

	middleware.LogInfo("recipe created: id=%d user=%d", recipe.ID, recipe.UserID)
	middleware.AddFlash(c, middleware.FlashSuccess, msgRecipeCreated)
	response.Redirect(c, "/recipes")
}

// RecipeDetail shows any user's recipe
// GET /recipe/:id
func (h *RecipeHandler) RecipeDetail(c *gin.Context) {
	h.showRecipe(c, "recipe_detail.html")
}

// MyRecipeDetail shows a recipe from the "my recipes" list. The lookup is
// the same as RecipeDetail and is not limited to the user's own recipes.
// GET /myrecipedeets/:id
func (h *RecipeHandler) MyRecipeDetail(c *gin.Context) {
	h.showRecipe(c, "my_recipes_detail.html")
}

// MyRecipes lists the current user's recipes
// GET /my_recipes
func (h *RecipeHandler) MyRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListByUser(middleware.GetUserID(c))
	if err != nil {
		middleware.LogError("list recipes of user %d: %v", middleware.GetUserID(c), err)
		response.InternalError(c)
		return
	}

	render(c, http.StatusOK, "my_recipes.html", gin.H{"Recipes": recipes})
}

// DeleteRecipe deletes any user's recipe
// GET /delete/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := h.recipeService.Delete(id)
	switch result.Outcome {
	case service.DeleteNotFound:
		response.NotFound(c)
	case service.DeleteFailed:
		middleware.LogError("delete recipe %d by user %d: %v", id, middleware.GetUserID(c), result.Err)
		response.Text(c, http.StatusInternalServerError, msgDeleteFailed)
	default:
		middleware.LogInfo("recipe deleted: id=%d by user=%d", id, middleware.GetUserID(c))
		response.Redirect(c, "/my_recipes")
	}
}

func (h *RecipeHandler) showRecipe(c *gin.Context, template string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			response.NotFound(c)
			return
		}
		middleware.LogError("get recipe %d: %v", id, err)
		response.InternalError(c)
		return
	}

	render(c, http.StatusOK, template, gin.H{"Recipe": recipe})
}

// RegisterRoutes registers recipe routes, all behind requireLogin
func (h *RecipeHandler) RegisterRoutes(r gin.IRouter, requireLogin gin.HandlerFunc) {
	protected := r.Group("")
	protected.Use(requireLogin)
	{
		protected.GET("/recipes", h.ListRecipes)
		protected.GET("/recipe/create", h.ShowCreateRecipe)
		protected.POST("/recipe/create", h.CreateRecipe)
		protected.GET("/recipe/:id", h.RecipeDetail)
		protected.GET("/myrecipedeets/:id", h.MyRecipeDetail)
		protected.GET("/my_recipes", h.MyRecipes)
		protected.GET("/delete/:id", h.DeleteRecipe)
	}
}
