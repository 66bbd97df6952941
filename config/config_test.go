package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Parser.Engine != EngineTokens {
		t.Errorf("unexpected engine: %s", cfg.Parser.Engine)
	}
	if cfg.Server.Addr() != "localhost:8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Cache.TTL.Duration != 5*time.Minute {
		t.Errorf("unexpected ttl: %s", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "sdlparse.toml", `
[log]
level = "debug"

[parser]
engine = "grammar"

[server]
port = 9090
read_timeout = "3s"

[cache]
ttl = "1m30s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Parser.Engine != EngineGrammar {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout.Duration != 10*time.Second {
		t.Errorf("default write timeout not applied: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Cache.TTL.Duration != 90*time.Second {
		t.Errorf("unexpected ttl: %s", cfg.Cache.TTL)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "sdlparse.yml", `
log:
  file: /tmp/sdlparse.log
server:
  host: 0.0.0.0
  shutdown_timeout: 2s
cache:
  disabled: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.File != "/tmp/sdlparse.log" || cfg.Log.Level != "info" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" || cfg.Server.ShutdownTimeout.Duration != 2*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if !cfg.Cache.Disabled {
		t.Error("cache should be disabled")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"format", "c.json", "{}", "unsupported config format"},
		{"engine", "c.toml", "[parser]\nengine = \"regex\"", "unknown parser engine"},
		{"duration", "c.yaml", "server:\n  read_timeout: soon", "failed to parse config"},
		{"syntax", "c.toml", "[server\nport = 1", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := write(t, "env.toml", "[parser]\nmax_input_bytes = 42")
	t.Setenv(EnvVar, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Parser.MaxInputBytes != 42 {
		t.Errorf("unexpected max input: %d", cfg.Parser.MaxInputBytes)
	}
}
