package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagFOV     = flag.Float64("fov", 0, "Field of view in degrees")
	flagWorkers = flag.Int("workers", -1, "Shape render workers (0 = no limit)")
	flagFPS     = flag.Int("fps", 0, "Frame rate cap")
	flagLog     = flag.String("log", "", "Log file path")
	flagSave    = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns the path given via --save-config, if any.
func SavePath() string {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFOV > 0 {
		cfg.Render.FOVDegrees = *flagFOV
	}
	if *flagWorkers >= 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagFPS > 0 {
		cfg.Controls.FPS = *flagFPS
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
}
