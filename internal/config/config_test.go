package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/mapgen"
)

func resetGlobals() {
	mu.Lock()
	cfg = nil
	v = nil
	mu.Unlock()
}

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  height: 16
  width: 30
  mines: 99
  seed: 42
logging:
  level: debug
ui:
  unicode: false
`
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	c := Get()
	assert.Equal(t, 16, c.Game.Height)
	assert.Equal(t, 30, c.Game.Width)
	assert.Equal(t, 99, c.Game.Mines)
	assert.Equal(t, int64(42), c.Game.Seed)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.False(t, c.UI.Unicode)
	// untouched keys keep their defaults
	assert.True(t, c.UI.Color)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, configFile, ConfigFilePath())
}

func TestInitWithDefaults(t *testing.T) {
	resetGlobals()

	require.NoError(t, Init("/non/existent/path/config.yaml"))

	c := Get()
	assert.Equal(t, 9, c.Game.Height)
	assert.Equal(t, 9, c.Game.Width)
	assert.Equal(t, 10, c.Game.Mines)
	assert.Equal(t, int64(0), c.Game.Seed)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.True(t, c.UI.Color)
	assert.True(t, c.UI.Unicode)
	assert.True(t, c.UI.ShowLegend)
	assert.True(t, c.UI.ShowStatus)
	assert.False(t, c.Development.LogEvents)
	assert.False(t, c.Development.DevMode)
}

func TestGameDefaultsFollowMapConfig(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/config.yaml"))

	board := mapgen.DefaultMapConfig()
	c := Get()
	assert.Equal(t, board.Height, c.Game.Height)
	assert.Equal(t, board.Width, c.Game.Width)
	assert.Equal(t, board.MineCount, c.Game.Mines)
	assert.NoError(t, Validate(c))
}

func TestGetInitializesLazily(t *testing.T) {
	resetGlobals()
	t.Chdir(t.TempDir())

	c := Get()
	require.NotNil(t, c)
	assert.Equal(t, 10, c.Game.Mines)
}

func TestGetReturnsSnapshot(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/config.yaml"))

	c := Get()
	c.Game.Mines = 1
	assert.Equal(t, 10, Get().Game.Mines)
}

func TestEnvironmentVariables(t *testing.T) {
	resetGlobals()
	t.Chdir(t.TempDir())

	t.Setenv("MINES_GAME_HEIGHT", "12")
	t.Setenv("MINES_GAME_MINES", "20")
	t.Setenv("MINES_UI_COLOR", "false")

	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, 12, c.Game.Height)
	assert.Equal(t, 20, c.Game.Mines)
	assert.False(t, c.UI.Color)
}

func TestInvalidConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("game:\n  mines: 200\n"), 0644))

	resetGlobals()
	err := Init(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestSet(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/config.yaml"))

	Set("game.mines", 15)
	Set("ui.show_legend", false)

	c := Get()
	assert.Equal(t, 15, c.Game.Mines)
	assert.False(t, c.UI.ShowLegend)
}

func TestGetHelpers(t *testing.T) {
	resetGlobals()
	require.NoError(t, Init("/non/existent/config.yaml"))

	Set("test.string", "hello")
	Set("test.int", 42)
	Set("test.bool", true)

	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.Equal(t, true, GetBool("test.bool"))
	assert.Equal(t, 9, GetInt("game.height"))
}

func TestGetViperPanicsBeforeInit(t *testing.T) {
	resetGlobals()
	assert.Panics(t, func() { GetViper() })
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Game:    GameConfig{Height: 9, Width: 9, Mines: 10},
			Logging: LoggingConfig{Level: "warn", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"json format", func(c *Config) { c.Logging.Format = "json" }, ""},
		{"max mines", func(c *Config) { c.Game.Mines = 72 }, ""},
		{"zero height", func(c *Config) { c.Game.Height = 0 }, "dimensions must be positive"},
		{"negative width", func(c *Config) { c.Game.Width = -3 }, "dimensions must be positive"},
		{"zero mines", func(c *Config) { c.Game.Mines = 0 }, "game.mines must be positive"},
		{"too many mines", func(c *Config) { c.Game.Mines = 73 }, "at most 72"},
		{"tiny board", func(c *Config) { c.Game.Height, c.Game.Width, c.Game.Mines = 3, 3, 1 }, "at most 0"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMaxMines(t *testing.T) {
	assert.Equal(t, 72, MaxMines(9, 9))
	assert.Equal(t, 471, MaxMines(16, 30))
}

func TestWatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  color: true\n"), 0644))

	resetGlobals()
	require.NoError(t, Init(configFile))

	changed := make(chan *Config, 16)
	WatchConfig(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	}, nil)

	require.NoError(t, os.WriteFile(configFile, []byte("ui:\n  color: false\n"), 0644))

	// a truncating write can surface as more than one event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.UI.Color {
				continue
			}
			assert.False(t, Get().UI.Color)
			return
		case <-timeout:
			t.Skip("no fsnotify event delivered on this filesystem")
		}
	}
}
