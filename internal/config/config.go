package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the portfolio server.
type Config struct {
	Port         string        `mapstructure:"port"`
	GinMode      string        `mapstructure:"gin_mode"`
	ContactDelay time.Duration `mapstructure:"contact_delay"`
	ScrollOffset float64       `mapstructure:"scroll_offset"`
	ResumeFile   string        `mapstructure:"resume_file"` // empty serves the embedded copy
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("contact_delay", time.Second)
	v.SetDefault("scroll_offset", 100)
	v.SetDefault("resume_file", "")
}

// Load reads configuration from defaults, the optional YAML file at path and
// environment variables (PORT, GIN_MODE, CONTACT_DELAY, SCROLL_OFFSET,
// RESUME_FILE), in increasing order of precedence. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q: must be one of debug, release, test", c.GinMode)
	}
	if c.ContactDelay < 0 {
		return errors.New("contact_delay must be non-negative")
	}
	if c.ScrollOffset < 0 {
		return errors.New("scroll_offset must be non-negative")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
