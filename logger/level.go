package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Level defines log severity.
type Level int

const (
	// TraceLevel enables everything, including call-stack traces.
	TraceLevel Level = iota
	// DebugLevel enables debug logging.
	DebugLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// FatalLevel enables fatal logging only.
	FatalLevel
	// NoneLevel disables logging. Only valid as a threshold.
	NoneLevel
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognise.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns every message level, most verbose first.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		FatalLevel,
	}
}

// Rank orders levels by verbosity: Trace is 5, Fatal is 0 and None is -1.
// Comparisons go through Rank, never through the constant values.
func (l Level) Rank() int {
	switch l {
	case TraceLevel:
		return 5
	case DebugLevel:
		return 4
	case InfoLevel:
		return 3
	case WarnLevel:
		return 2
	case ErrorLevel:
		return 1
	case FatalLevel:
		return 0
	default:
		return -1
	}
}

// String returns the upper-case tag used in log lines.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ShouldLog reports whether a message at level passes the threshold.
// A NoneLevel threshold rejects everything. level must be a message level;
// NoneLevel or any unknown value there is a caller error and yields false.
func ShouldLog(threshold, level Level) bool {
	if threshold.Rank() < 0 || level.Rank() < 0 {
		return false
	}
	return threshold.Rank() >= level.Rank()
}

// ParseLevel parses a level name, ignoring case and surrounding space.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "none", "off":
		return NoneLevel, nil
	}
	return NoneLevel, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseLevel(name)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
