package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty environment defaults to development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.ApplyDefaults()
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
		if cfg.Logging.ServiceName != "svc" {
			t.Errorf("expected logging service name to follow name, got %q", cfg.Logging.ServiceName)
		}
	})

	t.Run("production environment keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		c := *DefaultConfig("svc")
		return c
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"missing name", func(c *Config) { c.Name = "" }, "config.name is required"},
		{"invalid environment", func(c *Config) { c.Environment = "qa" }, "config.environment must be one of"},
		{"invalid log level", func(c *Config) { c.Logging.Level = "loud" }, "config.logging"},
		{"negative timeout", func(c *Config) { c.Pipeline.Timeout = -time.Second }, "pipeline.timeout"},
		{"negative max concurrent", func(c *Config) { c.Pipeline.MaxConcurrent = -1 }, "pipeline.max_concurrent"},
		{"metrics without endpoint", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Endpoint = ""
		}, "metrics.endpoint"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("orders")
	p := cfg.Pipeline
	if !p.RequestID || !p.Recover || !p.Logging || !p.Validation {
		t.Errorf("expected core behaviors on by default, got %+v", p)
	}
	if p.Metrics || p.Timeout != 0 || p.MaxConcurrent != 0 {
		t.Errorf("expected optional behaviors off by default, got %+v", p)
	}
	if p.SlowThreshold != 500*time.Millisecond {
		t.Errorf("expected 500ms slow threshold, got %v", p.SlowThreshold)
	}
	if cfg.Metrics.Interval != 15*time.Second {
		t.Errorf("expected 15s metric interval, got %v", cfg.Metrics.Interval)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", `
name: orders
environment: staging
version: "1.2.0"
logging:
  level: warn
  format: json
pipeline:
  logging: false
  timeout: 2s
  max_concurrent: 8
metrics:
  enabled: true
  endpoint: collector:4318
`)

	cfg, err := Load("orders", WithConfigFile(configPath), WithEnvPrefix("CFGTEST_NONE"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "orders" || cfg.Environment != "staging" || cfg.Version != "1.2.0" {
		t.Errorf("unexpected service fields: %+v", cfg.ServiceConfig)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Pipeline.Logging {
		t.Error("expected pipeline.logging=false from file")
	}
	if !cfg.Pipeline.RequestID {
		t.Error("expected pipeline.request_id default to survive")
	}
	if cfg.Pipeline.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.Pipeline.Timeout)
	}
	if cfg.Pipeline.MaxConcurrent != 8 {
		t.Errorf("expected max_concurrent 8, got %d", cfg.Pipeline.MaxConcurrent)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Endpoint != "collector:4318" {
		t.Errorf("unexpected metrics: %+v", cfg.Metrics)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: orders\npipeline:\n  timeout: 2s\n")
	t.Setenv("CFGTEST_PIPELINE_TIMEOUT", "5s")
	t.Setenv("CFGTEST_PIPELINE_MAX_CONCURRENT", "3")
	t.Setenv("CFGTEST_LOGGING_LEVEL", "error")

	cfg, err := Load("orders", WithConfigFile(configPath), WithEnvPrefix("CFGTEST"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Pipeline.Timeout != 5*time.Second {
		t.Errorf("expected env timeout 5s, got %v", cfg.Pipeline.Timeout)
	}
	if cfg.Pipeline.MaxConcurrent != 3 {
		t.Errorf("expected env max_concurrent 3, got %d", cfg.Pipeline.MaxConcurrent)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "CFGENV_NAME=from-dotenv\nCFGENV_ENVIRONMENT=production\n")
	t.Cleanup(func() {
		os.Unsetenv("CFGENV_NAME")
		os.Unsetenv("CFGENV_ENVIRONMENT")
	})

	cfg, err := Load("orders", WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath), WithEnvPrefix("CFGENV"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "from-dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
	if cfg.Environment != "production" || cfg.Debug {
		t.Errorf("expected production without debug, got %s/%v", cfg.Environment, cfg.Debug)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("fallback", WithConfigFile("/nonexistent/path.yml"), WithEnvPrefix("CFGTEST_NONE"))
	if err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
	if cfg.Name != "fallback" {
		t.Errorf("expected service name fallback, got %q", cfg.Name)
	}
	if !cfg.Pipeline.Recover {
		t.Error("expected default pipeline behaviors")
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: orders\nenvironment: moon\n")

	if _, err := Load("orders", WithConfigFile(configPath), WithEnvPrefix("CFGTEST_NONE")); err == nil {
		t.Fatal("expected validation error")
	}
}

type extendedConfig struct {
	Config    `yaml:",inline" mapstructure:",squash"`
	Warehouse string `yaml:"warehouse" mapstructure:"warehouse"`
}

func TestLoadConfigEmbedded(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yml", "name: orders\nwarehouse: north\npipeline:\n  metrics: true\n")

	var cfg extendedConfig
	if err := LoadConfig("orders", &cfg, WithConfigFile(configPath), WithEnvPrefix("CFGTEST_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Warehouse != "north" || cfg.Name != "orders" || !cfg.Pipeline.Metrics {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/orders.yml":  true,
		"./config.yml":         true,
		"./config/.env.orders": true,
		"./.env":               true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("orders", LoaderConfig{})
	if files.ConfigFile != "./config/orders.yml" {
		t.Errorf("expected ./config/orders.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./config/.env.orders" {
		t.Errorf("expected ./config/.env.orders, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("orders", LoaderConfig{ConfigFile: "x.yml", EnvFile: "y.env"})
	if explicit.ConfigFile != "x.yml" || explicit.EnvFile != "y.env" {
		t.Errorf("explicit paths must win, got %+v", explicit)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("PIPELINE_MAX_CONCURRENT")
	for _, want := range []string{"pipeline_max_concurrent", "pipeline.max_concurrent", "pipeline.max.concurrent"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("expected single variant, got %v", got)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithFileSystem(&mockFS{})(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("app_")(&lc)
	WithDefaults(map[string]any{"a": 1})(&lc)
	WithDefaults(map[string]any{"b": 2})(&lc)

	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config: %+v", lc)
	}
	if lc.EnvPrefix != "APP" {
		t.Errorf("expected prefix APP, got %q", lc.EnvPrefix)
	}
	if len(lc.Defaults) != 2 {
		t.Errorf("expected merged defaults, got %v", lc.Defaults)
	}
}
