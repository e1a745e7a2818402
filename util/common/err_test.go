package common

import (
	"errors"
	"os"
	"testing"

	"notepanel/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("NP_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.DEBUG)
	os.Exit(m.Run())
}

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine())
	assert.NoError(t, Combine(nil, nil))

	err := Combine(errors.New("listener"), nil, errors.New("scheduler"))
	assert.EqualError(t, err, "listener, scheduler")
}

func TestRecoverStopsPanic(t *testing.T) {
	ran := false
	func() {
		defer Recover("background task")
		ran = true
		panic("boom")
	}()
	// reaching this line means the panic did not propagate
	assert.True(t, ran)
}
