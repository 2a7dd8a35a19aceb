package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/service"
)

const (
	// ContextKeyUser is the key for the logged-in user in gin context
	ContextKeyUser = "user"
	// ContextKeySession is the key for the session claims in gin context
	ContextKeySession = "session"

	// LoginPath is where anonymous visitors of protected pages are sent
	LoginPath = "/login"
)

// SessionCookie describes the cookie holding the signed session token
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set stores token in the browser for maxAge seconds
func (sc SessionCookie) Set(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, maxAge, "/", "", sc.Secure, true)
}

// Clear removes the session cookie from the browser
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// SessionMiddleware resolves the session cookie to the current user.
// Requests without a usable session continue anonymously.
func SessionMiddleware(authService *service.AuthService, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookie.Name)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, claims, err := authService.LoadSession(c.Request.Context(), token)
		if err != nil {
			if !isAnonymousSession(err) {
				LogError("load session: %v", err)
			}
			c.Next()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeySession, claims)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page without
// running the handler
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUser(c) == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUser returns the logged-in user, or nil for anonymous requests
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	return user.(*models.User)
}

// GetUserID returns the logged-in user's ID, or 0 for anonymous requests
func GetUserID(c *gin.Context) uint {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return 0
}

// GetSession returns the current session claims, or nil
func GetSession(c *gin.Context) *service.SessionClaims {
	claims, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	return claims.(*service.SessionClaims)
}

func isAnonymousSession(err error) bool {
	return errors.Is(err, service.ErrInvalidToken) ||
		errors.Is(err, service.ErrSessionRevoked) ||
		errors.Is(err, repository.ErrUserNotFound)
}
