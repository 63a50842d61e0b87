package providers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"lifedash/internal/structures"
)

func loggerConfig(dir string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "debug",
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestGetLogTypeByRequestType(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType(http.MethodPost))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType(http.MethodGet))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType(http.MethodDelete))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType(""))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogProvider(loggerConfig(dir))
	assert.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "started with %d widgets", 7)
	logger.Warnf(TypeGet, "slow request")
	logger.Errorf(TypePost, "write failed")
	logger.Debugf(TypeApp, "debug detail")

	for _, name := range []string{"app.log", "get.log", "post.log"} {
		info, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "log file %s should exist", name)
		assert.NotNil(t, info)
	}

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "started with 7 widgets")

	data, err = os.ReadFile(filepath.Join(dir, "get.log"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "slow request")

	data, err = os.ReadFile(filepath.Join(dir, "post.log"))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "write failed")
}

func TestNewLogProvider_LevelFiltersOutput(t *testing.T) {
	dir := t.TempDir()
	conf := loggerConfig(dir)
	conf.Logger.Level = "error"

	logger, err := NewLogProvider(conf)
	assert.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "should be dropped")
	logger.Errorf(TypeApp, "should be kept")

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "should be dropped")
	assert.Contains(t, string(data), "should be kept")
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := loggerConfig(t.TempDir())
	conf.Logger.Level = "loudest"

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_UnwritableDir(t *testing.T) {
	conf := loggerConfig("/nonexistent/lifedash-logs")

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
