package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/handler"
	"github.com/recipe-share/internal/metrics"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/internal/session"
	"github.com/recipe-share/pkg/response"
	"github.com/recipe-share/web"
	"gorm.io/gorm"
)

// Deps are everything the HTTP application needs. Nothing is read from
// package-level state.
type Deps struct {
	DB         *gorm.DB
	Sessions   session.Store
	Secret     []byte
	SessionTTL time.Duration
	Cookie     middleware.SessionCookie
	Build      handler.BuildInfo
}

// New builds the router with every page registered
func New(deps Deps) (*gin.Engine, error) {
	if len(deps.Secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}

	metrics.Register()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	userRepo := repository.NewUserRepository(deps.DB)
	recipeRepo := repository.NewRecipeRepository(deps.DB)

	authService := service.NewAuthService(userRepo, deps.Sessions, deps.Secret, deps.SessionTTL)
	recipeService := service.NewRecipeService(recipeRepo)

	pageHandler := handler.NewPageHandler(deps.Build)
	authHandler := handler.NewAuthHandler(authService, deps.Cookie)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.FlashMiddleware(deps.Secret, deps.Cookie.Secure))
	router.Use(middleware.SessionMiddleware(authService, deps.Cookie))

	requireLogin := middleware.RequireLogin()
	pageHandler.RegisterRoutes(router, requireLogin)
	authHandler.RegisterRoutes(router, requireLogin)
	recipeHandler.RegisterRoutes(router, requireLogin)

	router.NoRoute(response.NotFound)

	return router, nil
}
