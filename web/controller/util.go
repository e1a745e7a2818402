package controller

import (
	"net"
	"net/http"
	"strings"

	"notepanel/logger"
	"notepanel/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real client IP from proxy headers or the remote
// address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, "", obj, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		m.Msg = msg
		c.JSON(http.StatusOK, m)
		return
	}
	m.Success = false
	m.Msg = msg
	logger.Warning(msg+" failed: ", err)
	c.JSON(http.StatusInternalServerError, m)
}

// pureJsonMsg sends the envelope with an explicit status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// jsonFieldErrors sends a 400 with per-field validation messages.
func jsonFieldErrors(c *gin.Context, errors any) {
	c.JSON(http.StatusBadRequest, entity.Msg{
		Success: false,
		Msg:     "validation failed",
		Obj:     gin.H{"errors": errors},
	})
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

// safeRedirectTarget keeps post-login redirects on this site. Anything that
// is not a local absolute path falls back to the default.
func safeRedirectTarget(target string, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}
