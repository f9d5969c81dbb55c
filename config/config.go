package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries the knobs the shell and engines care about. Values
// come from defaults, an optional hrd.yml, and HRD_* environment
// variables, in increasing priority.
type Config struct {
	LogLevel      string
	DefaultEngine string
	// NodeBudget caps expansions per search; 0 means unlimited. The
	// reachable space of the fixed layout is small, so this is a safety
	// valve, not a tuning knob.
	NodeBudget  int
	DBPath      string
	HistoryFile string
}

func defaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("default-engine", "astar")
	v.SetDefault("node-budget", 0)
	v.SetDefault("db-path", "")
	v.SetDefault("history-file", "/tmp/hrd_readline.tmp")
}

// Load reads the configuration. configPath may be empty; a missing
// config file is not an error, only a malformed one is.
func (c *Config) Load(configPath string) error {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix("hrd")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	c.LogLevel = v.GetString("log-level")
	c.DefaultEngine = v.GetString("default-engine")
	c.NodeBudget = v.GetInt("node-budget")
	c.DBPath = v.GetString("db-path")
	c.HistoryFile = v.GetString("history-file")
	return nil
}
