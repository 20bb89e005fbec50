package middlewares

import (
	"strconv"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/gin-gonic/gin"
)

// IdentityMiddleware resolves the acting user from the X-User-ID header,
// falling back to the fixed demo identity. This is request scoping, not
// authentication; the app has a single demo account.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := models.DemoUserID
		if v := c.GetHeader("X-User-ID"); v != "" {
			if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
				uid = uint(n)
			}
		}
		c.Set("userID", uid)
		c.Next()
	}
}
