// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds output and rasterization settings.
type RenderConfig struct {
	Views        int    `yaml:"views"`
	Size         int    `yaml:"size"`
	Supersample  int    `yaml:"supersample"`
	OutDir       string `yaml:"out_dir"`
	Annotate     bool   `yaml:"annotate"`
	Background   string `yaml:"background"`   // hex RGB
	ObjectColor  string `yaml:"object_color"` // hex RGB
	MaxTriangles int    `yaml:"max_triangles"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxRetries int  `yaml:"max_retries"` // asset load retries per change event
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Views:        12,
			Size:         768,
			Supersample:  2,
			OutDir:       "renders",
			Annotate:     true,
			Background:   "ffffff",
			ObjectColor:  "777777",
			MaxTriangles: 0,
		},
		Watch: WatchConfig{
			Enabled:    false,
			MaxRetries: 5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
