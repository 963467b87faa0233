package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	adminRepo "fixify/database/repository/admin"
	providerRepo "fixify/database/repository/provider"
	userRepo "fixify/database/repository/user"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	CtxPrincipalID = "principalID"
	CtxRole        = "role"
)

const authCacheTTL = time.Hour

// blockChecker answers the live block status for one role's principals.
type blockChecker func(id string) (blocked bool, err error)

// tokenFromRequest reads the access token, preferring the httpOnly
// cookie and falling back to a bearer header for non-browser clients.
func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(utils.AccessTokenCookie); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// requireRole validates the access token, checks the role claim and
// looks up the live block status. The block status goes through the
// dedicated Redis auth cache; a blocked principal is rejected with 401
// no matter how fresh their token is.
func requireRole(role string, isBlocked blockChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		blocked, err := blockStatus(role, claims.Subject, isBlocked)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if blocked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account is blocked"})
			return
		}

		c.Set(CtxPrincipalID, claims.Subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// blockStatus consults the auth cache before hitting the database. The
// cached value is dropped by sign-in and by admin block/unblock, so a
// stale entry lives at most authCacheTTL.
func blockStatus(role, id string, isBlocked blockChecker) (bool, error) {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + role + ":" + id
	// Read the client var directly: it is nil until InitRedis runs,
	// and the DB lookup below is the answer either way.
	authCache := utils.AuthCacheClient

	if authCache != nil {
		val, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			return val == "blocked", nil
		}
		if err != redis.Nil {
			zap.L().Warn("auth cache read failed, falling back to DB", zap.Error(err))
		}
	}

	blocked, err := isBlocked(id)
	if err != nil {
		return false, err
	}

	if authCache != nil {
		val := "ok"
		if blocked {
			val = "blocked"
		}
		if err := authCache.Set(ctx, cacheKey, val, authCacheTTL).Err(); err != nil {
			zap.L().Warn("auth cache write failed", zap.Error(err))
		}
	}
	return blocked, nil
}

// UserAuth guards customer routes.
func UserAuth(repo userRepo.UserRepository) gin.HandlerFunc {
	return requireRole(utils.RoleUser, func(id string) (bool, error) {
		u, err := repo.GetByID(id)
		if err != nil {
			return false, err
		}
		return u.IsBlocked, nil
	})
}

// ProviderAuth guards technician routes.
func ProviderAuth(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return requireRole(utils.RoleProvider, func(id string) (bool, error) {
		p, err := repo.GetByID(id)
		if err != nil {
			return false, err
		}
		return p.IsBlocked, nil
	})
}

// AdminAuth guards moderation routes. Admin accounts cannot be blocked.
func AdminAuth(repo adminRepo.AdminRepository) gin.HandlerFunc {
	return requireRole(utils.RoleAdmin, func(id string) (bool, error) {
		if _, err := repo.GetByID(id); err != nil {
			return false, err
		}
		return false, nil
	})
}

// PrincipalID returns the authenticated principal set by requireRole.
func PrincipalID(c *gin.Context) string {
	return c.GetString(CtxPrincipalID)
}
