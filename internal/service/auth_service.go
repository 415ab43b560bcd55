package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopstock/internal/domain"
	"shopstock/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims are the JWT claims carried by a session token.
type Claims struct {
	UserID   string      `json:"user_id"`
	Role     domain.Role `json:"role"`
	FullName string      `json:"full_name"`
	jwt.RegisteredClaims
}

// AuthService authenticates users against the user store and issues
// session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user domain.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	users       *store.UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService signing tokens with the given
// secret.
func NewAuthService(users *store.UserStore, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		users:       users,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Login checks the credentials against the user collection. The match is
// a plain-text comparison on email, password and the active flag, exactly
// the rule of the system this replaces; credential hardening is a declared
// non-goal.
func (s *authService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive || user.Password != password {
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// ValidateToken parses a session token and returns its claims.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) generateToken(user domain.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Role:     user.Role,
		FullName: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
