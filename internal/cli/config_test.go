package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duckno.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "location: /tmp/data.db\nin_memory: false\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data.db", cfg.Location)
	assert.False(t, cfg.InMemory)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "location: [unclosed\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfigFileSuppliesLocation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "from-config.db")
	cfg := writeConfig(t, "location: "+db+"\n")

	_, err := execute(t, "set", "k", `"v"`, "--config", cfg)
	require.NoError(t, err)

	out, err := execute(t, "get", "k", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "\"v\"\n", out)

	// The store landed where the config said
	_, err = os.Stat(db)
	assert.NoError(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfgDB := filepath.Join(t.TempDir(), "config.db")
	flagDB := filepath.Join(t.TempDir(), "flag.db")
	cfg := writeConfig(t, "location: "+cfgDB+"\n")

	_, err := execute(t, "set", "k", "1", "--config", cfg, "--db", flagDB)
	require.NoError(t, err)

	if _, err := os.Stat(cfgDB); !os.IsNotExist(err) {
		t.Error("config location used despite --db flag")
	}
	_, err = os.Stat(flagDB)
	assert.NoError(t, err)
}

func TestConfigInMemory(t *testing.T) {
	cfg := writeConfig(t, "in_memory: true\n")

	out, err := execute(t, "path", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "(in-memory)\n", out)
}
