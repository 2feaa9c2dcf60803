package middleware

import (
	"net/http"
	"strings"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"
	"github.com/Sannikov1993/PosResto-sub020/internal/handler/httperr"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

var roleHierarchy = map[user.Role]int{
	user.RoleWaiter:  1,
	user.RoleManager: 2,
	user.RoleAdmin:   3,
}

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				usecase.ErrTokenValidation, "Access token required", nil)
			return
		}

		userID, role, err := m.auth.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Next()
	}
}

// RequireRole gates a route to staff at or above minRole. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				usecase.ErrTokenValidation, "Authentication required", nil)
			return
		}
		if roleHierarchy[role] < roleHierarchy[minRole] {
			httperr.AbortWithError(c, http.StatusForbidden,
				usecase.ErrTokenValidation, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
