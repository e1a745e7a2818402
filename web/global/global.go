// Package global holds the running web server reference so the process
// signal loop can restart it.
package global

import (
	"context"

	"github.com/robfig/cron/v3"
)

var webServer WebServer

type WebServer interface {
	GetCron() *cron.Cron
	GetCtx() context.Context
}

func SetWebServer(s WebServer) {
	webServer = s
}

func GetWebServer() WebServer {
	return webServer
}
