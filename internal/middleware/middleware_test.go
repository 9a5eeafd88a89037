package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intake-service/internal/middleware"
	pkgLog "task-intake-service/pkg/log"
)

func newEngine(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Recovery(), mw.RequestID(), mw.AccessLog(), mw.CORS(), mw.RateLimit())
	r.GET("/", handlers...)
	r.POST("/parse_task", handlers...)
	return r
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"request_id": pkgLog.RequestIDFromContext(c.Request.Context())})
}

func do(r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{}), okHandler)

	t.Run("echoes inbound id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/", map[string]string{middleware.HeaderRequestID: "abc-123"})

		assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
		assert.JSONEq(t, `{"request_id":"abc-123"}`, w.Body.String())
	})

	t.Run("generates uuid when absent", func(t *testing.T) {
		w := do(r, http.MethodGet, "/", nil)

		id := w.Header().Get(middleware.HeaderRequestID)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("ids differ across requests", func(t *testing.T) {
		a := do(r, http.MethodGet, "/", nil).Header().Get(middleware.HeaderRequestID)
		b := do(r, http.MethodGet, "/", nil).Header().Get(middleware.HeaderRequestID)
		assert.NotEqual(t, a, b)
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{}), func(c *gin.Context) {
		panic("boom")
	})

	w := do(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("preflight any origin", func(t *testing.T) {
		r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{AllowedOrigins: []string{"*"}}), okHandler)

		w := do(r, http.MethodOptions, "/parse_task", map[string]string{
			"Origin":                        "http://localhost:3000",
			"Access-Control-Request-Method": "POST",
		})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origin", func(t *testing.T) {
		r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{AllowedOrigins: []string{"http://app.local"}}), okHandler)

		allowed := do(r, http.MethodGet, "/", map[string]string{"Origin": "http://app.local"})
		assert.Equal(t, http.StatusOK, allowed.Code)
		assert.Equal(t, "http://app.local", allowed.Header().Get("Access-Control-Allow-Origin"))

		denied := do(r, http.MethodGet, "/", map[string]string{"Origin": "http://evil.local"})
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled never rejects", func(t *testing.T) {
		r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{RateLimitPerMin: 0}), okHandler)

		for i := 0; i < 200; i++ {
			w := do(r, http.MethodGet, "/", nil)
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("rejects burst per client", func(t *testing.T) {
		// 60/min gives a burst of 6.
		r := newEngine(middleware.New(pkgLog.NewNop(), middleware.Config{RateLimitPerMin: 60}), okHandler)

		var limited *httptest.ResponseRecorder
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				limited = w
				break
			}
		}
		require.NotNil(t, limited, "expected a 429 within the burst window")
		assert.JSONEq(t, `{"detail":"Too Many Requests"}`, limited.Body.String())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		wantAny bool
		want    []string
	}{
		{name: "empty allows any", origins: nil, wantAny: true, want: []string{"*"}},
		{name: "wildcard", origins: []string{"http://a.local", "*"}, wantAny: true, want: []string{"*"}},
		{name: "restricted", origins: []string{"http://a.local", "http://b.local"}, wantAny: false, want: []string{"http://a.local", "http://b.local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := middleware.New(pkgLog.NewNop(), middleware.Config{AllowedOrigins: tt.origins})

			assert.Equal(t, tt.wantAny, mw.AllowsAnyOrigin())
			assert.Equal(t, tt.want, mw.AllowedOrigins())
		})
	}
}
