package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Settings configures the CLI and HTTP shell (not the scenarios themselves).
type Settings struct {
	Server ServerSettings `mapstructure:"server"`
	Log    LogSettings    `mapstructure:"log"`
	Output OutputSettings `mapstructure:"output"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

type LogSettings struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

const (
	DefaultServerAddr   = ":8080"
	DefaultLogLevel     = "info"
	DefaultOutputFormat = "console"
	DefaultOutputDir    = "."

	// EnvPrefix prefixes environment overrides, e.g. PROJEVAL_SERVER_ADDR.
	EnvPrefix = "PROJEVAL"
)

// LoadSettings reads settings from path (optional; empty means defaults and
// environment only).
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"server.addr":     DefaultServerAddr,
		"log.level":       DefaultLogLevel,
		"log.development": false,
		"output.format":   DefaultOutputFormat,
		"output.dir":      DefaultOutputDir,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, validateSettings(&s)
}

func validateSettings(s *Settings) error {
	if s.Server.Addr == "" {
		return errors.New("server.addr is empty")
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of debug, info, warn, error")
	}
	if s.Output.Format == "" {
		return errors.New("output.format is empty")
	}
	return nil
}
