package initializers

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_MissingFileWrapsCause(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer os.Chdir(wd)

	// No .env file exists in a fresh temp dir.
	assert.NoError(t, os.Chdir(t.TempDir()))

	loadErr := LoadEnv()
	assert.Error(t, loadErr)
	assert.Contains(t, loadErr.Error(), "env not loading")
	assert.NotNil(t, errors.Unwrap(loadErr))
}
