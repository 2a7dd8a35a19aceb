package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	contextKeyFlash = "flash"
	flashCookieName = "flash"
	flashTTL        = 5 * time.Minute
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time notice shown on the next rendered page
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type flashClaims struct {
	Flashes []Flash `json:"flashes"`
	jwt.RegisteredClaims
}

type flashState struct {
	secret  []byte
	secure  bool
	pending []Flash
}

// FlashMiddleware loads notices left by the previous response. They are
// carried in a signed short-lived cookie.
func FlashMiddleware(secret []byte, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := &flashState{secret: secret, secure: secure}
		if raw, err := c.Cookie(flashCookieName); err == nil && raw != "" {
			state.pending = state.decode(raw)
		}
		c.Set(contextKeyFlash, state)
		c.Next()
	}
}

// AddFlash queues a notice for the next rendered page
func AddFlash(c *gin.Context, category, message string) {
	state := getFlashState(c)
	if state == nil {
		return
	}
	state.pending = append(state.pending, Flash{Category: category, Message: message})

	value, err := state.encode()
	if err != nil {
		LogError("encode flash: %v", err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, value, int(flashTTL.Seconds()), "/", "", state.secure, true)
}

// Flashes returns and consumes all queued notices
func Flashes(c *gin.Context) []Flash {
	state := getFlashState(c)
	if state == nil || len(state.pending) == 0 {
		return nil
	}
	out := state.pending
	state.pending = nil
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, "", -1, "/", "", state.secure, true)
	return out
}

func getFlashState(c *gin.Context) *flashState {
	v, exists := c.Get(contextKeyFlash)
	if !exists {
		return nil
	}
	return v.(*flashState)
}

func (s *flashState) encode() (string, error) {
	claims := &flashClaims{
		Flashes: s.pending,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(flashTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// decode drops tampered or expired cookies silently
func (s *flashState) decode(raw string) []Flash {
	token, err := jwt.ParseWithClaims(raw, &flashClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}
	return token.Claims.(*flashClaims).Flashes
}
