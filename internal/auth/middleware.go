package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_id"

const (
	contextKeyUser  = "auth_user"
	contextKeyToken = "auth_token"
)

// UserLookup resolves the user behind a session.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TokenFromRequest returns the session token from an "Authorization: Bearer" header
// or, failing that, from the session cookie.
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if token, err := c.Cookie(SessionCookieName); err == nil {
		return token
	}
	return ""
}

// CurrentUser returns the user set by RequireSession, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

// CurrentToken returns the session token accepted by RequireSession, or "".
func CurrentToken(c *gin.Context) string {
	return c.GetString(contextKeyToken)
}

// RequireSession returns a middleware that resolves the session token to a user and
// stores it in the context. Missing, expired or orphaned sessions answer 401.
func RequireSession(sessions Store, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		token := TokenFromRequest(c)
		if token == "" {
			abortUnauthenticated(c)
			return
		}

		userID, err := sessions.UserID(ctx, token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				abortUnauthenticated(c)
				return
			}
			logger.FromContext(ctx).ErrorContext(ctx, "Session lookup failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				abortUnauthenticated(c)
				return
			}
			logger.FromContext(ctx).ErrorContext(ctx, "Session user lookup failed",
				slog.String("user_id", userID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
			return
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyToken, token)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	metrics.ObserveAuthEvent("session", metrics.ResultUnauthorized)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}
