package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/session"
	"github.com/recipe-share/pkg/keygen"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionRevoked     = errors.New("session revoked")
)

const sessionIssuer = "recipe-share"

// AuthService handles registration, login and session tokens
type AuthService struct {
	userRepo *repository.UserRepository
	sessions session.Store
	secret   []byte
	ttl      time.Duration
}

// NewAuthService creates a new AuthService. Tokens are signed with secret and
// expire after ttl.
func NewAuthService(userRepo *repository.UserRepository, sessions session.Store, secret []byte, ttl time.Duration) *AuthService {
	if sessions == nil {
		sessions = session.CookieStore{}
	}
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
	}
}

// RegisterRequest is the create-account form
type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginRequest is the login form
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SessionClaims are carried in the signed session cookie. The registered
// claim ID is the session id known to the session store.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionToken is a freshly issued session
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}

// Register creates a new user unless the username is already taken
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	user := &models.User{Username: req.Username}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and opens a new session for the user
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.User, *SessionToken, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	return user, token, nil
}

// ValidateToken checks the signature and expiry of a session token
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(sessionIssuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// LoadSession resolves a session token to the logged-in user. Any error means
// the request must be treated as anonymous.
func (s *AuthService) LoadSession(ctx context.Context, tokenString string) (*models.User, *SessionClaims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, nil, err
	}

	live, err := s.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if !live {
		return nil, nil, ErrSessionRevoked
	}

	user, err := s.GetUserByID(claims.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, claims, nil
}

// Logout revokes the session described by claims
func (s *AuthService) Logout(ctx context.Context, claims *SessionClaims) error {
	if claims == nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// SessionTTL is how long an issued session stays valid
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) issueToken(ctx context.Context, user *models.User) (*SessionToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	sessionID := keygen.GenerateSessionID()

	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, sessionID, user.ID, s.ttl); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return &SessionToken{
		Value:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}
