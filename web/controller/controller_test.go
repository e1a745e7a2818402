package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"notepanel/config"
	"notepanel/database"
	"notepanel/logger"
	"notepanel/web/middleware"
	"notepanel/web/service"
	"notepanel/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@notepanel.local"
	adminPassword = "admin"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestMain(m *testing.M) {
	os.Setenv("NP_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter builds the same middleware and controller chain as the web
// server, without binding a listener.
func setupRouter() *gin.Engine {
	engine := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{Path: "/", HttpOnly: true})
	engine.Use(sessions.Sessions(session.CookieName, store))

	userService := service.UserService{}
	engine.Use(middleware.ResolveUser(&userService))

	settings := &config.Settings{
		SessionMaxAge:  3600,
		RememberMaxAge: 30 * 24 * 3600,
	}

	g := engine.Group("/")
	NewIndexController(g, settings)
	NewNotesController(g)
	NewAdminController(g)
	return engine
}

func doGet(engine *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func doPost(engine *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// sessionCookies picks the freshest session cookie out of a response. The
// session layer may write the cookie more than once per request; the last
// write is the authoritative one.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var last *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == session.CookieName {
			last = ck
		}
	}
	if last == nil {
		return nil
	}
	return []*http.Cookie{last}
}

func login(t *testing.T, engine *gin.Engine, email string, password string) []*http.Cookie {
	t.Helper()
	w := doPost(engine, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := sessionCookies(w)
	require.NotNil(t, cookies)
	return cookies
}

func join(t *testing.T, engine *gin.Engine, email string, password string) []*http.Cookie {
	t.Helper()
	w := doPost(engine, "/join", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/notes", w.Header().Get("Location"))
	cookies := sessionCookies(w)
	require.NotNil(t, cookies)
	return cookies
}

type msgResponse struct {
	Success bool                       `json:"success"`
	Msg     string                     `json:"msg"`
	Obj     map[string]json.RawMessage `json:"obj"`
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) msgResponse {
	t.Helper()
	var m msgResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

// createNote posts a new note and returns its id from the redirect target.
func createNote(t *testing.T, engine *gin.Engine, cookies []*http.Cookie, title string, body string) string {
	t.Helper()
	w := doPost(engine, "/notes/new", url.Values{
		"title": {title},
		"body":  {body},
	}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/notes/"))
	return strings.TrimPrefix(location, "/notes/")
}
