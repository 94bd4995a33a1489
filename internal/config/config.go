package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/mapgen"
)

// SafetyBoxCells is the size of the 3x3 box around the first guess that
// never holds a mine.
const SafetyBoxCells = 9

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds board settings
type GameConfig struct {
	Height int   `mapstructure:"height"`
	Width  int   `mapstructure:"width"`
	Mines  int   `mapstructure:"mines"`
	Seed   int64 `mapstructure:"seed"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds terminal rendering settings
type UIConfig struct {
	Color      bool `mapstructure:"color"`
	Unicode    bool `mapstructure:"unicode"`
	ShowLegend bool `mapstructure:"show_legend"`
	ShowStatus bool `mapstructure:"show_status"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	LogEvents bool `mapstructure:"log_events"`
	DevMode   bool `mapstructure:"dev_mode"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	board := mapgen.DefaultMapConfig()
	v.SetDefault("game.height", board.Height)
	v.SetDefault("game.width", board.Width)
	v.SetDefault("game.mines", board.MineCount)
	v.SetDefault("game.seed", 0)

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// UI defaults
	v.SetDefault("ui.color", true)
	v.SetDefault("ui.unicode", true)
	v.SetDefault("ui.show_legend", true)
	v.SetDefault("ui.show_status", true)

	// Development defaults
	v.SetDefault("development.log_events", false)
	v.SetDefault("development.dev_mode", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()
	setViperDefaults(nv)

	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/minesweeper")
	}

	nv.SetEnvPrefix("MINES")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	if err := nv.ReadInConfig(); err != nil {
		// A named file that is missing falls back to defaults; in the search
		// paths only a missing file is tolerated.
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	c := &Config{}
	if err := nv.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	mu.Lock()
	v = nv
	cfg = c
	mu.Unlock()

	return nil
}

// Get returns a snapshot of the global config
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()

	if c == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		mu.RLock()
		c = cfg
		mu.RUnlock()
	}

	snapshot := *c
	return &snapshot
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded config; a reload that fails validation is reported through errFn
// and the previous config stays in effect.
func WatchConfig(onChange func(*Config), errFn func(error)) {
	wv := GetViper()
	wv.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := wv.Unmarshal(next); err != nil {
			if errFn != nil {
				errFn(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		if err := Validate(next); err != nil {
			if errFn != nil {
				errFn(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}

		mu.Lock()
		cfg = next
		mu.Unlock()

		if onChange != nil {
			snapshot := *next
			onChange(&snapshot)
		}
	})
	wv.WatchConfig()
}

// MaxMines is the largest mine count that still leaves room outside the
// first guess's safety box.
func MaxMines(height, width int) int {
	return height*width - SafetyBoxCells
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Height <= 0 || c.Game.Width <= 0 {
		return fmt.Errorf("game dimensions must be positive, got %dx%d", c.Game.Height, c.Game.Width)
	}
	if c.Game.Mines <= 0 {
		return fmt.Errorf("game.mines must be positive")
	}
	if limit := MaxMines(c.Game.Height, c.Game.Width); c.Game.Mines > limit {
		return fmt.Errorf("game.mines must be at most %d for a %dx%d board", limit, c.Game.Height, c.Game.Width)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
