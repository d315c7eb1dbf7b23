package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagViews       = flag.Int("n", 0, "Number of views to render")
	flagOut         = flag.String("o", "", "Output directory for rendered views")
	flagSize        = flag.Int("s", 0, "Image size (width = height)")
	flagSupersample = flag.Int("supersample", 0, "Supersampling factor")
	flagNoAnnotate  = flag.Bool("no-annotate", false, "Skip labeled copies of each view")
	flagWatch       = flag.Bool("watch", false, "Keep running and re-render when the asset changes")
	flagMaxTris     = flag.Int("max-triangles", -1, "Decimate meshes above this triangle count (0 disables)")
)

// ParseFlags parses the command line.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// AssetPath returns the positional asset argument, if any.
func AssetPath() string {
	return flag.Arg(0)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagViews > 0 {
		cfg.Render.Views = *flagViews
	}
	if *flagOut != "" {
		cfg.Render.OutDir = *flagOut
	}
	if *flagSize > 0 {
		cfg.Render.Size = *flagSize
	}
	if *flagSupersample > 0 {
		cfg.Render.Supersample = *flagSupersample
	}
	if *flagNoAnnotate {
		cfg.Render.Annotate = false
	}
	if *flagWatch {
		cfg.Watch.Enabled = true
	}
	if *flagMaxTris >= 0 {
		cfg.Render.MaxTriangles = *flagMaxTris
	}
}
