package service

import (
	"os"
	"testing"

	"notepanel/database"
	"notepanel/logger"

	"github.com/op/go-logging"
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
	os.Exit(m.Run())
}
