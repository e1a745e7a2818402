// Package web provides the notepanel web server: routing, the cookie
// session store, controllers and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"notepanel/config"
	"notepanel/logger"
	"notepanel/util/common"
	"notepanel/util/random"
	"notepanel/web/controller"
	"notepanel/web/job"
	"notepanel/web/middleware"
	"notepanel/web/service"
	"notepanel/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the notepanel web server with its controllers and scheduled
// jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index *controller.IndexController
	notes *controller.NotesController
	admin *controller.AdminController

	userService service.UserService

	settings *config.Settings

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter configures gin, the session cookie store, shared middleware
// and the controllers.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := s.settings.SessionSecret
	if secret == "" {
		// Sessions sealed with an ephemeral secret do not survive a
		// process restart.
		secret = random.Seq(32)
		logger.Warning("no session secret configured, generated an ephemeral one")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.settings.SessionMaxAge,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(session.CookieName, store))

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.ResolveUser(&s.userService))

	g := engine.Group("/")
	s.index = controller.NewIndexController(g, s.settings)
	s.notes = controller.NewNotesController(g)
	s.admin = controller.NewAdminController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
}

// Start loads settings, binds the listener and begins serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.settings, err = config.LoadSettings()
	if err != nil {
		return err
	}

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(s.settings.Listen, strconv.Itoa(s.settings.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		defer common.Recover("serve http")
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the server and its cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }

// GetCron returns the server's cron scheduler.
func (s *Server) GetCron() *cron.Cron { return s.cron }
