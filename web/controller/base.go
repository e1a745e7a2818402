// Package controller implements the HTTP handlers of notepanel: login and
// registration, the per-user notes pages and the admin area.
package controller

import (
	"net/http"
	"net/url"

	"notepanel/database/model"
	"notepanel/logger"
	"notepanel/web/middleware"
	"notepanel/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController carries the authentication checks shared by all controllers.
type BaseController struct{}

// loginUser returns the user resolved by the ResolveUser middleware, or nil.
func loginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(middleware.LoginUserKey); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

// checkLogin guards a route group against anonymous requests. Browser
// requests are sent to the login page with the original URI preserved; AJAX
// requests get a 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if session.IsLogin(c) {
		c.Next()
		return
	}
	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
	} else {
		c.Redirect(http.StatusFound, "/login?redirectTo="+url.QueryEscape(c.Request.RequestURI))
	}
	c.Abort()
}

// requireUser returns the resolved user and fails the request with a 401
// when the session references a user that no longer exists. Routes using
// this must not proceed anonymously.
func (a *BaseController) requireUser(c *gin.Context) *model.User {
	user := loginUser(c)
	if user == nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "session user no longer exists")
		c.Abort()
		return nil
	}
	return user
}

// getUser returns the resolved user, treating a stale session as anonymous:
// the dangling cookie is cleared instead of failing the request.
func (a *BaseController) getUser(c *gin.Context) *model.User {
	user := loginUser(c)
	if user == nil && session.IsLogin(c) {
		if err := session.ClearSession(c); err != nil {
			logger.Warning("clear stale session err:", err)
		}
	}
	return user
}
