// Package session reads and writes the cookie-backed login session. Only the
// user id is stored client-side; resolving it to a user is the caller's job.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserId = "LOGIN_USER_ID"

// CookieName is the name of the session cookie set by the web server.
const CookieName = "notepanel"

// SetLoginUser records the user id in the session. The session is not
// persisted until Save is called (SetMaxAge saves).
func SetLoginUser(c *gin.Context, userId int) error {
	s := sessions.Default(c)
	s.Set(loginUserId, userId)
	return s.Save()
}

// SetMaxAge sets the cookie lifetime in seconds and saves the session.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetUserId returns the logged-in user id from the cookie, without touching
// the database. The second result is false for anonymous requests.
func GetUserId(c *gin.Context) (int, bool) {
	s := sessions.Default(c)
	if obj := s.Get(loginUserId); obj != nil {
		if id, ok := obj.(int); ok {
			return id, true
		}
	}
	return 0, false
}

// IsLogin reports whether the request carries a valid session cookie.
func IsLogin(c *gin.Context) bool {
	_, ok := GetUserId(c)
	return ok
}

// ClearSession drops all session state and expires the cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
