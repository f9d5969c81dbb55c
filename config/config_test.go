package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(""))
	is.Equal(c.LogLevel, "info")
	is.Equal(c.DefaultEngine, "astar")
	is.Equal(c.NodeBudget, 0)
	is.Equal(c.DBPath, "")
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("HRD_NODE_BUDGET", "5000")
	t.Setenv("HRD_DEFAULT_ENGINE", "dfs")
	c := &Config{}
	is.NoErr(c.Load(""))
	is.Equal(c.NodeBudget, 5000)
	is.Equal(c.DefaultEngine, "dfs")
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "hrd.yml")
	is.NoErr(os.WriteFile(path, []byte("log-level: debug\nnode-budget: 77\n"), 0644))
	c := &Config{}
	is.NoErr(c.Load(path))
	is.Equal(c.LogLevel, "debug")
	is.Equal(c.NodeBudget, 77)
}

func TestMissingConfigFile(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(filepath.Join(t.TempDir(), "nope.yml"))
	is.True(err != nil)
}
