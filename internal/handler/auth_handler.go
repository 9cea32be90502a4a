package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/service"
)

// AuthHandler handles registration, login, logout and the current account.
type AuthHandler struct {
	userService  service.UserServiceInterface
	sessions     auth.Store
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session cookie Secure.
func NewAuthHandler(userService service.UserServiceInterface, sessions auth.Store, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	obj, err := readObject(c)
	if err != nil {
		writeError(c, err)
		return
	}
	cr, err := decodeCredentials(obj)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), cr.Name, cr.Email, cr.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	obj, err := readObject(c)
	if err != nil {
		writeError(c, err)
		return
	}
	cr, err := decodeCredentials(obj)
	if err != nil {
		writeError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), cr.Email, cr.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.startSession(c, http.StatusOK, user)
}

// Logout handles POST /api/v1/auth/logout. It runs behind auth.RequireSession.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.sessions.Delete(ctx, auth.CurrentToken(c)); err != nil {
		logger.FromContext(ctx).WarnContext(ctx, "Session delete failed", slog.String("error", err.Error()))
	}
	metrics.ObserveAuthEvent("logout", metrics.ResultSuccess)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me. It runs behind auth.RequireSession.
func (h *AuthHandler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		writeError(c, domain.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) startSession(c *gin.Context, status int, user *domain.User) {
	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(h.sessions.TTL().Seconds()), "/", "", h.secureCookie, true)
	c.JSON(status, SessionResponse{Token: token, User: toUserResponse(user)})
}
