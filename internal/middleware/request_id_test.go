package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-api/internal/logger"
	"blog-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveWithRequestID runs one request through RequestID and returns the response
// header together with the id the handler saw on its context.
func serveWithRequestID(t *testing.T, clientID string) (header, seen string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/posts", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	if clientID != "" {
		req.Header.Set(middleware.RequestIDHeader, clientID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return w.Header().Get(middleware.RequestIDHeader), seen
}

func TestRequestID_GeneratesID(t *testing.T) {
	header, seen := serveWithRequestID(t, "")

	_, err := uuid.Parse(header)
	assert.NoError(t, err)
	assert.Equal(t, header, seen)
}

func TestRequestID_KeepsLoggableClientID(t *testing.T) {
	for _, id := range []string{"client-provided-id-12345", "trace:01.ab_CD", strings.Repeat("a", 128)} {
		header, seen := serveWithRequestID(t, id)
		assert.Equal(t, id, header)
		assert.Equal(t, id, seen)
	}
}

func TestRequestID_ReplacesUnsafeClientID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("x", 129)},
		{"spaces", "a b"},
		{"markup", "<script>"},
		{"json breakout", `id","level":"ERROR`},
		{"non ascii", "idé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, seen := serveWithRequestID(t, tt.id)
			assert.NotEqual(t, tt.id, header)
			_, err := uuid.Parse(header)
			assert.NoError(t, err)
			assert.Equal(t, header, seen)
		})
	}
}

func TestRequestID_DiffersPerRequest(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		header, _ := serveWithRequestID(t, "")
		seen[header] = struct{}{}
	}
	assert.Len(t, seen, 3)
}
