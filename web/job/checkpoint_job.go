// Package job contains the background jobs scheduled by the web server.
package job

import (
	"notepanel/database"
	"notepanel/logger"
	"notepanel/web/global"
)

// CheckpointJob flushes the sqlite WAL into the main database file so the
// on-disk copy stays compact and backup-friendly.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	// a stopping server may have closed the database already
	server := global.GetWebServer()
	if server == nil || server.GetCtx().Err() != nil {
		return
	}
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
