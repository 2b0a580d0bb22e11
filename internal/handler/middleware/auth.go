package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const ctxClaimsKey = "jwt_claims"

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}
		if claims.Role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions")
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// IsAuthenticated reports whether the request carries a valid admin token,
// without aborting.
func (m *AuthMiddleware) IsAuthenticated(c *gin.Context) bool {
	token := bearerToken(c)
	if token == "" {
		return false
	}
	claims, err := m.tokens.ValidateToken(token)
	return err == nil && claims.Role == jwt.RoleAdmin
}

// ClaimsFromContext returns the claims stored by RequireAdmin, if any.
func ClaimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
