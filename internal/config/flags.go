package config

import (
	"flag"
	"fmt"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath string
	LogLevel       string
	LogFilePath    string
	Width          int
	Height         int
	HistoryLimit   int
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.set = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default <config dir>/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.IntVar(&f.Width, "width", 0, "Canvas width in pixels - Overrides config file")
	fs.IntVar(&f.Height, "height", 0, "Canvas height in pixels - Overrides config file")
	fs.IntVar(&f.HistoryLimit, "history", -1, "Maximum undo checkpoints, 0 for unbounded - Overrides config file")
}

// Parse defines the flags on fs and parses args.
func (f *Flags) Parse(fs *flag.FlagSet, args []string) error {
	f.DefineFlags(fs)
	return fs.Parse(args)
}

// ApplyOverrides updates cfg with values from flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.set == nil {
		return
	}
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.Level = f.LogLevel
			}
		case "logfile":
			cfg.Logger.File = f.LogFilePath
		case "width":
			if f.Width > 0 {
				cfg.Canvas.Width = f.Width
			}
		case "height":
			if f.Height > 0 {
				cfg.Canvas.Height = f.Height
			}
		case "history":
			if f.HistoryLimit >= 0 {
				cfg.Canvas.HistoryLimit = f.HistoryLimit
			}
		}
	})
}
