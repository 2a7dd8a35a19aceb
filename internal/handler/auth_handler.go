package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/middleware"
	"github.com/recipe-share/internal/service"
	"github.com/recipe-share/pkg/response"
)

const (
	msgUsernameExists = "Username already exists. Please choose a different username."
	msgAccountCreated = "Account created successfully! Please login"
	msgLoggedIn       = "Logged in successfully!"
	msgInvalidLogin   = "Invalid username or password!"
	msgLoggedOut      = "Logged out successfully!"
	msgMissingFields  = "Please fill in all fields."
)

// AuthHandler handles account creation, login and logout pages
type AuthHandler struct {
	authService *service.AuthService
	cookie      middleware.SessionCookie
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// ShowCreateAccount renders the registration form
// GET /create_account
func (h *AuthHandler) ShowCreateAccount(c *gin.Context) {
	render(c, http.StatusOK, "create_account.html", nil)
}

// CreateAccount handles user registration
// POST /create_account
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.AddFlash(c, middleware.FlashError, msgMissingFields)
		render(c, http.StatusBadRequest, "create_account.html", gin.H{"Username": req.Username})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			middleware.AddFlash(c, middleware.FlashError, msgUsernameExists)
			render(c, http.StatusOK, "create_account.html", gin.H{"Username": req.Username})
			return
		}
		middleware.LogError("register %q: %v", req.Username, err)
		response.InternalError(c)
		return
	}

	middleware.LogInfo("user registered: id=%d username=%s", user.ID, user.Username)
	middleware.AddFlash(c, middleware.FlashSuccess, msgAccountCreated)
	response.Redirect(c, "/login")
}

// ShowLogin renders the login form
// GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login handles user login. A failed login is sent to the account creation
// page rather than back to the login form.
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.AddFlash(c, middleware.FlashError, msgMissingFields)
		render(c, http.StatusBadRequest, "login.html", nil)
		return
	}

	_, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AddFlash(c, middleware.FlashError, msgInvalidLogin)
			response.Redirect(c, "/create_account")
			return
		}
		middleware.LogError("login %q: %v", req.Username, err)
		response.InternalError(c)
		return
	}

	h.cookie.Set(c, token.Value, int(h.authService.SessionTTL().Seconds()))
	middleware.AddFlash(c, middleware.FlashSuccess, msgLoggedIn)
	response.Redirect(c, "/options")
}

// Logout ends the current session
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.GetSession(c)); err != nil {
		middleware.LogError("logout user %d: %v", middleware.GetUserID(c), err)
	}
	h.cookie.Clear(c)
	middleware.AddFlash(c, middleware.FlashSuccess, msgLoggedOut)
	response.Redirect(c, "/")
}

// RegisterRoutes registers account routes
func (h *AuthHandler) RegisterRoutes(r gin.IRouter, requireLogin gin.HandlerFunc) {
	r.GET("/create_account", h.ShowCreateAccount)
	r.POST("/create_account", h.CreateAccount)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", requireLogin, h.Logout)
}
