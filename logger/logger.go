package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultLogDir holds generated log files when Settings has no file path.
const DefaultLogDir = "pink_log"

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout

	// formatLine builds the line for an emitted message. It is never reached
	// for messages below the threshold.
	formatLine = func(level Level, content string) string {
		return "[" + level.String() + "] " + content
	}
)

var levelColors = map[Level]*color.Color{
	TraceLevel: forcedColor(color.FgHiBlack),
	DebugLevel: forcedColor(color.FgCyan),
	InfoLevel:  forcedColor(color.FgGreen),
	WarnLevel:  forcedColor(color.FgYellow),
	ErrorLevel: forcedColor(color.FgRed),
	FatalLevel: forcedColor(color.FgMagenta),
}

func forcedColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// Leveled is the logging surface shared by Logger and anything standing in
// for it: one method per message level.
type Leveled interface {
	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	Fatal(err error)
}

var _ Leveled = (*Logger)(nil)

// Logger writes leveled lines to the console and/or a file.
// Its settings and file path are fixed at construction, so a Logger may be
// shared between goroutines without locking.
type Logger struct {
	settings Settings
	logPath  string
	out      io.Writer
}

// New creates a Logger. When settings carries no file path a fresh one is
// generated as pink_log/<uuid>.txt.
func New(settings Settings) *Logger {
	logPath, ok := settings.LogFile()
	if !ok {
		logPath = generateLogPath()
	}
	return &Logger{
		settings: settings,
		logPath:  logPath,
		out:      outStdout,
	}
}

// Default returns a new Logger at InfoLevel that writes to the console and
// to a generated file.
func Default() *Logger {
	return New(NewSettingsBuilder(InfoLevel).Build())
}

func generateLogPath() string {
	return DefaultLogDir + "/" + uuid.New().String() + ".txt"
}

// Settings returns the Logger configuration.
func (l *Logger) Settings() Settings { return l.settings }

// LogPath returns the file sink path resolved at construction.
func (l *Logger) LogPath() string { return l.logPath }

// Trace logs msg followed by the caller's stack. An empty msg logs the stack alone.
func (l *Logger) Trace(msg string) {
	if !ShouldLog(l.settings.level, TraceLevel) {
		return
	}

	l.write(TraceLevel, formatLine(TraceLevel, msg+captureBacktrace(1)))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	if !ShouldLog(l.settings.level, DebugLevel) {
		return
	}

	l.write(DebugLevel, formatLine(DebugLevel, msg))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	if !ShouldLog(l.settings.level, InfoLevel) {
		return
	}

	l.write(InfoLevel, formatLine(InfoLevel, msg))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	if !ShouldLog(l.settings.level, WarnLevel) {
		return
	}

	l.write(WarnLevel, formatLine(WarnLevel, msg))
}

// Error logs err rendered with %v, so wrapped errors show their whole chain.
func (l *Logger) Error(err error) {
	if !ShouldLog(l.settings.level, ErrorLevel) {
		return
	}

	l.write(ErrorLevel, formatLine(ErrorLevel, fmt.Sprintf("%v", err)))
}

// Fatal logs err like Error at FatalLevel. Unlike log.Fatal it does not exit.
func (l *Logger) Fatal(err error) {
	if !ShouldLog(l.settings.level, FatalLevel) {
		return
	}

	l.write(FatalLevel, formatLine(FatalLevel, fmt.Sprintf("%v", err)))
}

func (l *Logger) write(level Level, line string) {
	if l.settings.writeLogToFile {
		l.writeToLogFile(line)
	}

	if !l.settings.silent {
		fmt.Fprintln(l.out, l.consoleLine(level, line))
	}
}

// writeToLogFile never fails outward; errors become a console warning
// regardless of Silent.
func (l *Logger) writeToLogFile(line string) {
	if err := writeLogFile(l.logPath, line, l.settings.append); err != nil {
		fmt.Fprintf(l.out, "[pink-log] [WARN] %v\n", errors.Wrapf(err, "write log file %s", l.logPath))
	}
}

// writeLogFile replaces the file with line, or appends line plus a newline
// when appendMode is set. Missing parent directories are created.
func writeLogFile(path, line string, appendMode bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if !appendMode {
		return os.WriteFile(path, []byte(line), 0o644)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// consoleLine colours the level tag when Colorize is set.
func (l *Logger) consoleLine(level Level, line string) string {
	if !l.settings.colorize {
		return line
	}
	c, ok := levelColors[level]
	tag := "[" + level.String() + "]"
	if !ok || !strings.HasPrefix(line, tag) {
		return line
	}
	return c.Sprint(tag) + line[len(tag):]
}
