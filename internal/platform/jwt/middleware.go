package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"movie_backend/internal/api"
	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
	"movie_backend/internal/platform/session"
)

// contextUserKey is the gin context key the resolved user is stored under.
// Handlers read it through CurrentUser only.
const contextUserKey = "authUser"

// UserResolver looks up the user bound to a verified token subject.
// Following Go conventions, the interface is defined by the consumer (middleware),
// not the provider (adapters).
type UserResolver interface {
	// FindByID retrieves a user matching the specified ID.
	// It returns usecase.ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// SetCurrentUser attaches the resolved identity to the request context.
// Outside of the middleware itself this is only useful in handler tests.
func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(contextUserKey, u)
}

// CurrentUser returns the identity the auth middleware attached to the request.
// It returns false when the request did not pass through AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}

// AuthRequired returns a Gin middleware function that validates JWT tokens,
// resolves the bound user, and restricts access to authenticated users only.
//
// Rejections are deliberately uniform: a tampered, malformed, and expired token
// all produce the same 401 body, so the response does not help credential guessing.
func AuthRequired(secret string, users UserResolver) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		// 1. Extract a candidate token (Authorization header wins over the cookie)
		tokenStr, ok := session.ExtractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No token provided"})
			return
		}

		// 2. Fail closed on a missing secret (operator fault, not a caller fault)
		if len(secretBytes) == 0 {
			slog.Error("jwt signing secret is empty, rejecting all requests")
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			return
		}

		// 3. Parse and verify JWT signature and expiry
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid token"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid token"})
			return
		}

		// 4. Confirm the subject still exists (covers users deleted after issuance)
		user, err := users.FindByID(c.Request.Context(), sub)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User no longer exists"})
				return
			}
			// Transient store failure is a 5xx so clients can distinguish
			// "try again" from "log in again"
			slog.Error("user lookup failed during token verification", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			return
		}

		// 5. Attach the resolved identity and pass control to the next handler
		SetCurrentUser(c, user)
		c.Next()
	}
}
