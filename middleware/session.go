package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// Routes the guard cares about.
const (
	LoginRoute     = "/admin/login"
	DashboardRoute = "/admin"
)

var protectedRoutes = map[string]bool{
	"/admin/inventario": true,
	"/admin/pedidos":    true,
}

// GuardOutcome is the decision the session guard takes for one request.
type GuardOutcome int

const (
	GuardPass GuardOutcome = iota
	GuardToLogin
	GuardToDashboard
)

// GuardDecision applies the redirect rules for admin pages. Rules are
// evaluated in order and the first match wins; the decision depends only on
// the path and whether a session cookie is present, so it is re-evaluated
// on every request.
func GuardDecision(path string, hasSession bool) GuardOutcome {
	if protectedRoutes[path] && !hasSession {
		return GuardToLogin
	}
	if path == LoginRoute && hasSession {
		return GuardToDashboard
	}
	if path == DashboardRoute && !hasSession {
		return GuardToLogin
	}
	return GuardPass
}

// SessionGuard redirects unauthenticated requests away from admin pages and
// authenticated requests away from the login page.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := c.Cookie(SessionCookie)
		switch GuardDecision(c.Request.URL.Path, err == nil) {
		case GuardToLogin:
			c.Redirect(http.StatusFound, LoginRoute)
			c.Abort()
		case GuardToDashboard:
			c.Redirect(http.StatusFound, DashboardRoute)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireSession verifies the PASETO session token on API requests and puts
// the authenticated uid into the context.
func RequireSession(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión requerida"})
			return
		}

		var token paseto.JSONToken
		var footer string
		if err := paseto.NewV2().Decrypt(tokenString, secretKey, &token, &footer); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida o expirada"})
			return
		}
		if time.Now().After(token.Expiration) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesión inválida o expirada"})
			return
		}

		c.Set("uid", token.Subject)
		c.Next()
	}
}
