// Package logger provides a leveled logger that writes "[LEVEL] message"
// lines to the console and/or a single log file.
//
// # Levels
//
// Levels are ranked by verbosity: TRACE (5), DEBUG (4), INFO (3), WARN (2),
// ERROR (1), FATAL (0). A message is emitted when the configured threshold
// ranks at least as high as the message level, so an INFO threshold emits
// INFO, WARN, ERROR and FATAL. The NONE threshold (-1) emits nothing.
//
// # Usage
//
// Build settings once and keep the Logger:
//
//	settings := logger.NewSettingsBuilder(logger.DebugLevel).
//	    SetLogFile("logs/app.txt").
//	    SetSilent(true).
//	    Build()
//	log := logger.New(settings)
//
//	log.Info("server started")
//	log.Error(errors.Wrap(err, "connect"))
//	log.Trace("") // stack only
//
// Or take the defaults (INFO, console on, file under pink_log/):
//
//	log := logger.Default()
//
// Settings can also be loaded from YAML with LoadSettings.
//
// # File Output
//
// By default each emitted line replaces the whole file, so the file holds
// only the latest line. SetAppend switches to appending. Write failures are
// never returned; they print a "[pink-log] [WARN]" line on the console even
// when the Logger is silent.
//
// # Console Output
//
// Plain output is used by default. SetColorize colours the level tag.
package logger
