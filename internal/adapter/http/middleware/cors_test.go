package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gestion_oficina/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func preflight(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newCORSRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(cfg))
	r.POST("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORS(t *testing.T) {
	t.Run("development allows any origin", func(t *testing.T) {
		r := newCORSRouter(config.Config{Env: "development"})
		w := preflight(r, "http://localhost:5173")
		if w.Header().Get("Access-Control-Allow-Origin") == "" {
			t.Fatalf("expected allow-origin header, got %v", w.Header())
		}
	})

	t.Run("production honours allowlist", func(t *testing.T) {
		r := newCORSRouter(config.Config{Env: "production", CORSAllowedOrigins: []string{"https://oficina.example.com"}})

		w := preflight(r, "https://oficina.example.com")
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://oficina.example.com" {
			t.Fatalf("allow-origin = %q", got)
		}

		w = preflight(r, "https://evil.example.com")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for foreign origin, got %d", w.Code)
		}
	})

	t.Run("production without allowlist denies all", func(t *testing.T) {
		r := newCORSRouter(config.Config{Env: "production"})
		w := preflight(r, "https://oficina.example.com")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
