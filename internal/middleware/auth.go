package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "finnews/internal/errors"
	"finnews/internal/models"
)

const (
	userIDKey      = "userID"
	currentUserKey = "currentUser"
	tokenIssuer    = "finnews-api"
)

// JWTClaims represents the claims in the JWT. Subject carries the username.
type JWTClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and token lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime of issued tokens.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue generates an access token bound to the user's username.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates a token string and returns its claims.
func (i *TokenIssuer) Parse(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == 0 || claims.Subject == "" {
		return nil, errors.New("token is missing subject")
	}
	return claims, nil
}

// UserLoader looks up the account behind a token.
type UserLoader interface {
	GetUserByID(id uint) (*models.User, error)
}

// AuthMiddleware verifies the bearer token and loads the current user into the
// context. Tokens of deleted or inactive users, or whose username no longer
// matches, are rejected.
func AuthMiddleware(issuer *TokenIssuer, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortWithError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := users.GetUserByID(claims.UserID)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.Code == apperrors.ErrUserNotFound.Code {
				abortWithError(c, apperrors.ErrInvalidToken)
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !user.IsActive || user.Username != claims.Subject {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user loaded by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// SetCurrentUser stores user in the context as AuthMiddleware would.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userIDKey, user.ID)
	c.Set(currentUserKey, user)
}
