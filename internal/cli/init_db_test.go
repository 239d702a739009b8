package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booksinventory/internal/config"
)

func TestInitDBCommand_ParseFlags(t *testing.T) {
	cmd := NewInitDBCommand()

	require.NoError(t, cmd.ParseFlags([]string{"-db", "/tmp/other.db"}))

	assert.Equal(t, "/tmp/other.db", cmd.DatabasePath)
	assert.Equal(t, config.DriverSQLite, cmd.Driver)
}

func TestInitDBCommand_ParseFlags_Unknown(t *testing.T) {
	cmd := NewInitDBCommand()

	assert.Error(t, cmd.ParseFlags([]string{"-nope"}))
}

func TestInitDBCommand_Run(t *testing.T) {
	cmd := &InitDBCommand{
		Driver:       config.DriverSQLite,
		DatabasePath: filepath.Join(t.TempDir(), "init.db"),
	}

	require.NoError(t, cmd.Run())
	// Second run must not fail or reseed
	require.NoError(t, cmd.Run())
}

func TestInitDBCommand_Run_BadDriver(t *testing.T) {
	cmd := &InitDBCommand{Driver: "mongo", DatabasePath: "x.db"}

	assert.Error(t, cmd.Run())
}
