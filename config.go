package gamebyte

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration, loaded from a gamebyte.yaml
// manifest with environment variable overrides on top.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Window WindowConfig `yaml:"window"`
	Serve  ServeConfig  `yaml:"serve"`
}

// AppConfig identifies the game and its runtime environment.
type AppConfig struct {
	Name  string `yaml:"name"`
	Env   string `yaml:"env"` // local | production | testing
	Debug bool   `yaml:"debug"`
}

// WindowConfig controls the game window and logical resolution.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ServeConfig configures the browser-build dev server (gamebyte serve).
type ServeConfig struct {
	Addr string `yaml:"addr"`
	Dir  string `yaml:"dir"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() *Config {
	return &Config{
		App:    AppConfig{Name: "GameByte", Env: "local", Debug: false},
		Window: WindowConfig{Title: "GameByte", Width: 640, Height: 480},
		Serve:  ServeConfig{Addr: ":8080", Dir: "web"},
	}
}

// LoadConfig reads the YAML manifest at path (skipped if the file does not
// exist), then applies .env files and GAMEBYTE_* environment overrides.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No manifest is fine; defaults plus env apply.
	case err != nil:
		return nil, fmt.Errorf("gamebyte: reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("gamebyte: parsing config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// Non-fatal: .env may not exist outside local development.
	_ = godotenv.Load(envFiles...)

	cfg.App.Name = env("GAMEBYTE_NAME", cfg.App.Name)
	cfg.App.Env = env("GAMEBYTE_ENV", cfg.App.Env)
	cfg.App.Debug = envBool("GAMEBYTE_DEBUG", cfg.App.Debug)
	cfg.Window.Title = env("GAMEBYTE_TITLE", cfg.Window.Title)
	cfg.Window.Width = envInt("GAMEBYTE_WIDTH", cfg.Window.Width)
	cfg.Window.Height = envInt("GAMEBYTE_HEIGHT", cfg.Window.Height)
	cfg.Serve.Addr = env("GAMEBYTE_SERVE_ADDR", cfg.Serve.Addr)
	cfg.Serve.Dir = env("GAMEBYTE_SERVE_DIR", cfg.Serve.Dir)

	return cfg, nil
}

// ── env helpers ──────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
