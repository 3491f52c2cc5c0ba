package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/IlikeChooros/go-othello/pkg/eval"
	"github.com/IlikeChooros/go-othello/pkg/othello"
	"github.com/IlikeChooros/go-othello/pkg/search"
)

var ErrInvalidConfig = errors.New("invalid config")

// Environment variables override the file, e.g. OTHELLO_MAX_DEPTH or OTHELLO_WEIGHTS_CORNER
const EnvPrefix = "OTHELLO"

type ArenaConfig struct {
	Games   int `mapstructure:"games"`
	Workers int `mapstructure:"workers"`
}

type Config struct {
	BoardSize   int          `mapstructure:"board_size"`
	Perspective string       `mapstructure:"perspective"`
	MaxDepth    int          `mapstructure:"max_depth"`
	MovetimeMs  int          `mapstructure:"movetime_ms"`
	PauseMs     int          `mapstructure:"pause_ms"`
	LogLevel    string       `mapstructure:"log_level"`
	Weights     eval.Weights `mapstructure:"weights"`
	Arena       ArenaConfig  `mapstructure:"arena"`
}

type Options struct {
	ConfigPath string         // optional config file (yaml, json, toml...)
	EnvFile    string         // optional .env file, missing file is not an error
	Flags      *pflag.FlagSet // flags registered with RegisterFlags
}

// Flag name -> config key
var flagKeys = map[string]string{
	"size":        "board_size",
	"perspective": "perspective",
	"depth":       "max_depth",
	"movetime":    "movetime_ms",
	"pause":       "pause_ms",
	"log-level":   "log_level",
	"games":       "arena.games",
	"workers":     "arena.workers",
}

func setDefaults(v *viper.Viper) {
	weights := eval.DefaultWeights()
	v.SetDefault("board_size", 8)
	v.SetDefault("perspective", othello.Dark.String())
	v.SetDefault("max_depth", search.DefaultDepth)
	v.SetDefault("movetime_ms", -1)
	v.SetDefault("pause_ms", 0)
	v.SetDefault("log_level", zerolog.InfoLevel.String())
	v.SetDefault("weights.corner", weights.Corner)
	v.SetDefault("weights.corner_helper", weights.CornerHelper)
	v.SetDefault("weights.disc", weights.Disc)
	v.SetDefault("arena.games", 100)
	v.SetDefault("arena.workers", 2)
}

func Default() *Config {
	cfg, _ := Load(Options{})
	return cfg
}

// Add the config flags to given flag set, values are read by Load
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "path to the config file")
	flags.Int("size", 8, "board size (even, 4-16)")
	flags.String("perspective", "dark", "local player's side (dark or light)")
	flags.IntP("depth", "d", search.DefaultDepth, "maximum search depth")
	flags.Int("movetime", -1, "search time in ms, checked between depths (-1 = no limit)")
	flags.Int("pause", 0, "delay between depths in ms")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Int("games", 100, "number of arena games")
	flags.Int("workers", 2, "number of arena workers")
}

// Load the configuration: defaults < config file < .env / environment < flags
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := opts.ConfigPath
	if configPath == "" && opts.Flags != nil {
		configPath, _ = opts.Flags.GetString("config")
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if flag := opts.Flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.BoardSize < othello.MinSize || c.BoardSize > othello.MaxSize || c.BoardSize%2 != 0 {
		return fmt.Errorf("%w: board_size %d (want an even size in [%d, %d])",
			ErrInvalidConfig, c.BoardSize, othello.MinSize, othello.MaxSize)
	}
	if _, err := othello.ParseSide(c.Perspective); err != nil {
		return fmt.Errorf("%w: perspective: %v", ErrInvalidConfig, err)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.PauseMs < 0 {
		return fmt.Errorf("%w: pause_ms %d", ErrInvalidConfig, c.PauseMs)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Arena.Games < 0 || c.Arena.Workers < 1 {
		return fmt.Errorf("%w: arena games=%d workers=%d", ErrInvalidConfig, c.Arena.Games, c.Arena.Workers)
	}
	return nil
}

// Search limits described by the config
func (c *Config) Limits() *search.Limits {
	limits := search.DefaultLimits().SetDepth(c.MaxDepth).SetPause(c.PauseMs)
	if c.MovetimeMs >= 0 {
		limits.SetMovetime(c.MovetimeMs)
	}
	return limits
}

func (c *Config) Evaluator() eval.Evaluator {
	return eval.NewHeuristic(c.Weights)
}

// Perspective as a side, dark if invalid
func (c *Config) Side() othello.Side {
	side, _ := othello.ParseSide(c.Perspective)
	return side
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) NewPosition() (*othello.Position, error) {
	return othello.NewPosition(c.BoardSize, c.Side())
}
