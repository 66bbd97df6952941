// Package config loads sdlparse settings from TOML or YAML files.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "SDLPARSE_CONFIG"

// Engines accepted by Parser.Engine.
const (
	EngineTokens  = "tokens"
	EngineGrammar = "grammar"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level   string `toml:"level" yaml:"level"`
	File    string `toml:"file" yaml:"file"`       // JSON log file, off when empty
	Journal bool   `toml:"journal" yaml:"journal"` // also log to the systemd journal
}

// ParserConfig holds parsing settings
type ParserConfig struct {
	Engine        string `toml:"engine" yaml:"engine"`
	MaxInputBytes int    `toml:"max_input_bytes" yaml:"max_input_bytes"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CacheConfig holds parse result cache settings
type CacheConfig struct {
	Disabled bool     `toml:"disabled" yaml:"disabled"`
	MaxItems int      `toml:"max_items" yaml:"max_items"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML formats the duration as a string
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a .toml, .yaml or .yml file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by SDLPARSE_CONFIG, else the first
// config found in the default locations, else the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	home, _ := os.UserHomeDir()
	for _, p := range []string{
		"./sdlparse.toml",
		"./sdlparse.yaml",
		filepath.Join(home, ".config", "sdlparse", "config.toml"),
	} {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Parser.Engine {
	case EngineTokens, EngineGrammar:
	default:
		return fmt.Errorf("unknown parser engine %q (want %s or %s)", c.Parser.Engine, EngineTokens, EngineGrammar)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Parser.Engine == "" {
		c.Parser.Engine = EngineTokens
	}
	if c.Parser.MaxInputBytes == 0 {
		c.Parser.MaxInputBytes = 1 << 20
	}

	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 5 * time.Second
	}

	if c.Cache.MaxItems == 0 {
		c.Cache.MaxItems = 1024
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = 5 * time.Minute
	}
}
