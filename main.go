package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/config"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/editor"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/ui"
)

func main() {
	var flags config.Flags
	if err := flags.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, src, cfgErr := config.Load(flags.ConfigFilePath, &flags)

	out, closeLog, err := openLog(cfg.Logger.File)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.File, err)
	}
	defer closeLog()
	logger.Init(logger.ParseLevel(cfg.Logger.Level), out)

	logger.Infof("Starting canvas...")
	src.Log()
	if cfgErr != nil {
		logger.Warnf("Config: %v, using defaults", cfgErr)
	}

	opts, err := cfg.EditorOptions()
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}
	session, err := editor.New(opts)
	if err != nil {
		logger.Errorf("Error initializing session: %v", err)
		os.Exit(1)
	}

	ui.RunApp(session)
	logger.Infof("Canvas finished.")
}

// openLog opens the log destination; empty or "-" is stderr.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return f, func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close log: %v\n", err)
		}
	}, nil
}
