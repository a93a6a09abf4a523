package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"nft-market/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Bearer-token auth for the operator surface. The public purchase and
// lookup endpoints are unauthenticated; only reconciliation requires a
// token.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxOperatorKey = "operator"
	ctxRoleKey     = "operator_role"
)

var roleHierarchy = map[string]int{
	jwt.RoleOperator: 1,
	jwt.RoleAdmin:    2,
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorKey, claims.Subject)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetOperatorRole(c)
		if !ok {
			// Unexpected: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole string) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func GetOperator(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxOperatorKey); exists {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func GetOperatorRole(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxRoleKey); exists {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}
