package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(Options{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BoardSize != 8 || cfg.MaxDepth != search.DefaultDepth || cfg.Side() != othello.Dark {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Weights != eval.DefaultWeights() {
		t.Errorf("weights = %s, want %s", cfg.Weights, eval.DefaultWeights())
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("level = %s, want info", cfg.Level())
	}

	limits := cfg.Limits()
	if limits.Depth != search.DefaultDepth || limits.Movetime != search.DefaultMovetimeLimit || limits.Pause != 0 {
		t.Errorf("limits = %s", limits)
	}
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "othello.yaml", `
board_size: 6
perspective: light
max_depth: 4
movetime_ms: 500
pause_ms: 100
log_level: debug
weights:
  corner: 10
  corner_helper: 3
arena:
  games: 20
  workers: 4
`)

	cfg, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}

	want := Config{
		BoardSize:   6,
		Perspective: "light",
		MaxDepth:    4,
		MovetimeMs:  500,
		PauseMs:     100,
		LogLevel:    "debug",
		Weights:     eval.Weights{Corner: 10, CornerHelper: 3, Disc: 1},
		Arena:       ArenaConfig{Games: 20, Workers: 4},
	}
	if *cfg != want {
		t.Errorf("config = %+v, want %+v", *cfg, want)
	}

	limits := cfg.Limits()
	if limits.Depth != 4 || limits.Movetime != 500 || limits.Pause != 100 {
		t.Errorf("limits = %s", limits)
	}

	pos, err := cfg.NewPosition()
	if err != nil || pos.Size() != 6 || pos.Perspective() != othello.Light {
		t.Errorf("NewPosition = %v, %v", pos, err)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeFile(t, "othello.yaml", "max_depth: 4\n")
	t.Setenv("OTHELLO_MAX_DEPTH", "3")
	t.Setenv("OTHELLO_WEIGHTS_DISC", "0")

	cfg, err := Load(Options{ConfigPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 3 || cfg.Weights.Disc != 0 {
		t.Errorf("env should override the file: depth=%d disc=%d", cfg.MaxDepth, cfg.Weights.Disc)
	}
}

func TestEnvFile(t *testing.T) {
	envFile := writeFile(t, ".env", "OTHELLO_ARENA_WORKERS=5\n")
	t.Cleanup(func() { os.Unsetenv("OTHELLO_ARENA_WORKERS") })

	cfg, err := Load(Options{EnvFile: envFile})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arena.Workers != 5 {
		t.Errorf("workers = %d, want 5 from the .env file", cfg.Arena.Workers)
	}

	if _, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")}); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestFlags(t *testing.T) {
	path := writeFile(t, "othello.yaml", "board_size: 6\nmax_depth: 4\n")
	t.Setenv("OTHELLO_MAX_DEPTH", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse([]string{"--config", path, "-d", "2", "--perspective", "white"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(Options{Flags: flags})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardSize != 6 {
		t.Errorf("board size = %d, want 6 from the file", cfg.BoardSize)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("depth = %d, flags should win over env and file", cfg.MaxDepth)
	}
	if cfg.Side() != othello.Light {
		t.Errorf("side = %s, want light", cfg.Side())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"odd-size", func(c *Config) { c.BoardSize = 7 }},
		{"small-size", func(c *Config) { c.BoardSize = 2 }},
		{"big-size", func(c *Config) { c.BoardSize = 18 }},
		{"perspective", func(c *Config) { c.Perspective = "grey" }},
		{"depth", func(c *Config) { c.MaxDepth = 0 }},
		{"pause", func(c *Config) { c.PauseMs = -1 }},
		{"log-level", func(c *Config) { c.LogLevel = "loud" }},
		{"workers", func(c *Config) { c.Arena.Workers = 0 }},
		{"games", func(c *Config) { c.Arena.Games = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}

	path := writeFile(t, "othello.yaml", "board_size: 5\n")
	if _, err := Load(Options{ConfigPath: path}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load: err = %v, want ErrInvalidConfig", err)
	}
}
