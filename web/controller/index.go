package controller

import (
	"net/http"
	"strings"

	"notepanel/config"
	"notepanel/database"
	"notepanel/logger"
	"notepanel/web/entity"
	"notepanel/web/service"
	"notepanel/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the login request body.
type LoginForm struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	Remember   bool   `json:"remember" form:"remember"`
	RedirectTo string `json:"redirectTo" form:"redirectTo"`
}

// JoinForm is the registration request body.
type JoinForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the home page, login, registration and logout.
type IndexController struct {
	BaseController

	settings *config.Settings

	userService service.UserService
}

func NewIndexController(g *gin.RouterGroup, settings *config.Settings) *IndexController {
	a := &IndexController{settings: settings}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginForm)
	g.GET("/join", a.joinForm)
	g.GET("/logout", a.logout)

	g.POST("/login", a.login)
	g.POST("/join", a.join)
	g.POST("/logout", a.logout)
}

// index redirects logged-in users to their notes; anonymous visitors get a
// small status payload. A stale session is cleared silently here.
func (a *IndexController) index(c *gin.Context) {
	if user := a.getUser(c); user != nil {
		c.Redirect(http.StatusFound, "/notes")
		return
	}
	jsonObj(c, gin.H{"name": config.GetName(), "version": config.GetVersion()}, nil)
}

func (a *IndexController) loginForm(c *gin.Context) {
	if user := a.getUser(c); user != nil {
		c.Redirect(http.StatusFound, "/notes")
		return
	}
	jsonObj(c, gin.H{"redirectTo": safeRedirectTarget(c.Query("redirectTo"), "/notes")}, nil)
}

func (a *IndexController) joinForm(c *gin.Context) {
	if user := a.getUser(c); user != nil {
		c.Redirect(http.StatusFound, "/notes")
		return
	}
	jsonObj(c, gin.H{"redirectTo": "/notes"}, nil)
}

func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	if !validEmail(form.Email) {
		jsonFieldErrors(c, entity.EmailInvalid())
		return
	}
	if form.Password == "" {
		jsonFieldErrors(c, entity.PasswordRequired())
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Email, getRemoteIp(c))
		jsonFieldErrors(c, entity.InvalidCredentials())
		return
	}

	maxAge := a.settings.SessionMaxAge
	if form.Remember {
		maxAge = a.settings.RememberMaxAge
	}
	if err := session.SetMaxAge(c, maxAge); err != nil {
		jsonMsg(c, "set session lifetime", err)
		return
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	logger.Infof("%s logged in from %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, safeRedirectTarget(form.RedirectTo, "/notes"))
}

func (a *IndexController) join(c *gin.Context) {
	var form JoinForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	if !validEmail(form.Email) {
		jsonFieldErrors(c, entity.EmailInvalid())
		return
	}
	if len(form.Password) < 8 {
		jsonFieldErrors(c, entity.PasswordTooShort())
		return
	}
	if existing, err := a.userService.GetUserByEmail(form.Email); err == nil && existing != nil {
		jsonFieldErrors(c, entity.EmailTaken())
		return
	}

	user, err := a.userService.CreateUser(form.Email, form.Password)
	if err != nil {
		// a concurrent registration can slip past the existence check and
		// land on the unique index instead
		if database.IsDuplicated(err) {
			jsonFieldErrors(c, entity.EmailTaken())
			return
		}
		jsonMsg(c, "create user", err)
		return
	}

	if err := session.SetMaxAge(c, a.settings.SessionMaxAge); err != nil {
		jsonMsg(c, "set session lifetime", err)
		return
	}
	if err := session.SetLoginUser(c, user.Id); err != nil {
		jsonMsg(c, "save session", err)
		return
	}

	logger.Infof("new user %s registered from %s", user.Email, getRemoteIp(c))
	c.Redirect(http.StatusFound, "/notes")
}

func (a *IndexController) logout(c *gin.Context) {
	if user := loginUser(c); user != nil {
		logger.Infof("%s logged out", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session err:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	return len(email) > 3 && strings.Contains(email[1:len(email)-1], "@")
}
