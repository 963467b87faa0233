package handlers

import (
	"fixify/config"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to
// the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// setAuthCookies installs the token pair as httpOnly cookies scoped to
// the whole API.
func setAuthCookies(c *gin.Context, access, refresh string) {
	secure := config.IsProduction()
	c.SetCookie(utils.AccessTokenCookie, access, int(utils.AccessTokenTTL.Seconds()), "/", "", secure, true)
	if refresh != "" {
		c.SetCookie(utils.RefreshTokenCookie, refresh, int(utils.RefreshTokenTTL.Seconds()), "/", "", secure, true)
	}
}

// clearAuthCookies expires both token cookies.
func clearAuthCookies(c *gin.Context) {
	secure := config.IsProduction()
	c.SetCookie(utils.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(utils.RefreshTokenCookie, "", -1, "/", "", secure, true)
}
