package job

import (
	"context"
	"os"
	"testing"

	"notepanel/database"
	"notepanel/logger"
	"notepanel/web/global"

	"github.com/op/go-logging"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
)

type stubServer struct {
	ctx context.Context
}

func (s *stubServer) GetCron() *cron.Cron     { return nil }
func (s *stubServer) GetCtx() context.Context { return s.ctx }

func TestMain(m *testing.M) {
	os.Setenv("NP_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func TestCheckpointJobRuns(t *testing.T) {
	os.Remove("test.db")
	defer os.Remove("test.db")
	require.NoError(t, database.InitDB("test.db"))
	defer func() {
		db, _ := database.GetDB().DB()
		db.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	global.SetWebServer(&stubServer{ctx: ctx})

	NewCheckpointJob().Run()
}

func TestCheckpointJobSkipsStoppedServer(t *testing.T) {
	// the database is not open here; a checkpoint attempt would blow up
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	global.SetWebServer(&stubServer{ctx: ctx})

	NewCheckpointJob().Run()
}

func TestCheckpointJobSkipsWithoutServer(t *testing.T) {
	global.SetWebServer(nil)

	NewCheckpointJob().Run()
}
