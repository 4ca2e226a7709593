package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINES"

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Mode       string    `mapstructure:"mode"`
	Difficulty string    `mapstructure:"difficulty"`
	Seed       uint64    `mapstructure:"seed"` // 0 picks a random seed
	Log        LogConfig `mapstructure:"log"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"difficulty":       c.Difficulty,
		"seed":             c.Seed,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// LogLevel parses Log.Level, falling back to debug in development and info
// otherwise.
func (c Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level == "" {
		if c.Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(c.Log.Level)
}

func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.StringP("difficulty", "d", "", "Easy, Medium, Hard or W:H:M")
	fs.String("mode", "", "production or development")
	fs.Uint64("seed", 0, "random seed for mine placement")
	fs.String("log-level", "", "log level")
	fs.String("log-file", "", "log file path")
	return fs
}

var flagKeys = map[string]string{
	"mode":       "mode",
	"difficulty": "difficulty",
	"seed":       "seed",
	"log.level":  "log-level",
	"log.file":   "log-file",
}

// Load merges, from lowest to highest priority: defaults, the config file
// named by the --config flag or MINES_CONFIG, MINES_* environment variables
// and flags that were set on fs.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("mode", "production")
	v.SetDefault("difficulty", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			if err := v.BindPFlag("config", f); err != nil {
				return nil, fmt.Errorf("unable to bind flag config: %w", err)
			}
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	switch config.Mode {
	case "production", "development":
	default:
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}
	if _, err := config.LogLevel(); err != nil {
		return nil, err
	}

	return config, nil
}
