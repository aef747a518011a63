package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGuardDecision(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		hasSession bool
		want       GuardOutcome
	}{
		{"protected page without session", "/admin/inventario", false, GuardToLogin},
		{"protected page with session", "/admin/inventario", true, GuardPass},
		{"pedidos without session", "/admin/pedidos", false, GuardToLogin},
		{"login without session", "/admin/login", false, GuardPass},
		{"login with session", "/admin/login", true, GuardToDashboard},
		{"dashboard root without session", "/admin", false, GuardToLogin},
		{"dashboard root with session", "/admin", true, GuardPass},
		{"unrelated path without session", "/api/health", false, GuardPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuardDecision(tt.path, tt.hasSession))
		})
	}
}

func TestSessionGuardRedirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionGuard())
	r.GET("/admin/inventario", func(c *gin.Context) { c.String(http.StatusOK, "inventario") })
	r.GET("/admin/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })

	t.Run("no cookie redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/inventario", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, LoginRoute, w.Header().Get("Location"))
	})

	t.Run("cookie passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/inventario", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "inventario", w.Body.String())
	})

	t.Run("login with cookie redirects to dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, DashboardRoute, w.Header().Get("Location"))
	})
}
