// Package engine ties the ECS core to platform subsystems. An explicit
// Context owns the world, the loaded config, the logger, and the subsystem
// backends; there is no package-level state.
package engine

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config drives Context construction. Zero values fall back to defaults,
// so a partial YAML file is fine.
type Config struct {
	AppName       string  `yaml:"app_name"`
	WindowWidth   int     `yaml:"window_width"`
	WindowHeight  int     `yaml:"window_height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	FixedTimestep float64 `yaml:"fixed_timestep"`
	MaxFPS        int     `yaml:"max_fps"`
	AssetRoot     string  `yaml:"asset_root"`
	MaxAssets     int     `yaml:"max_assets"`
	LogLevel      string  `yaml:"log_level"`
}

// DefaultConfig returns a runnable windowed configuration.
func DefaultConfig() Config {
	return Config{
		AppName:       "gantry",
		WindowWidth:   1280,
		WindowHeight:  720,
		VSync:         true,
		FixedTimestep: 1.0 / 60.0,
		MaxFPS:        60,
		AssetRoot:     "assets",
		MaxAssets:     1024,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML config file and overlays it onto the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildLogger constructs a console zap logger at the config's level.
func (c Config) BuildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named(c.AppName), nil
}
