// Package middleware provides gin middleware for the notepanel web server.
package middleware

import (
	"notepanel/database"
	"notepanel/logger"
	"notepanel/web/service"
	"notepanel/web/session"

	"github.com/gin-gonic/gin"
)

// LoginUserKey is the gin context key under which ResolveUser stores the
// authenticated *model.User for the duration of one request.
const LoginUserKey = "loginUser"

// ResolveUser loads the session user once per request and places it in the
// gin context, so handlers never re-derive identity from the cookie ad hoc.
// A session id that no longer maps to a user leaves the context unset; the
// controllers decide between a silent logout and a 401.
func ResolveUser(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := session.GetUserId(c)
		if !ok {
			c.Next()
			return
		}

		user, err := userService.GetUserById(userId)
		if err != nil {
			if !database.IsNotFound(err) {
				logger.Warning("resolve session user err:", err)
			}
			c.Next()
			return
		}

		c.Set(LoginUserKey, user)
		c.Next()
	}
}
