package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/mordilloSan/pink-log/logger"
)

// Example demonstrating pink-log usage.
func main() {
	// Usage: ./pink-log [settings.yaml]
	// Example: ./pink-log ./pink-log.yaml
	var settings logger.Settings
	if len(os.Args) > 1 {
		var err error
		settings, err = logger.LoadSettings(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		// Console only, everything enabled.
		settings = logger.NewSettingsBuilder(logger.TraceLevel).
			SetWriteLogToFile(false).
			Build()
	}

	log := logger.New(settings)
	if settings.WriteLogToFile() {
		log.Info("Logging to file: " + log.LogPath())
	} else {
		log.Info("Logging to console only (provide a settings file to enable file logging)")
	}

	log.Trace("")
	log.Trace("entering main")
	log.Debug("debug is on")
	log.Info("hello world")
	log.Warn("be careful")

	cause := errors.New("connection refused")
	log.Error(errors.Wrap(cause, "dial database"))
	log.Fatal(errors.Wrapf(cause, "giving up after %d attempts", 3))
}
