package logger

// Settings is the immutable configuration of a Logger.
// Build one with NewSettingsBuilder or LoadSettings.
type Settings struct {
	level          Level
	logFile        string
	hasLogFile     bool
	writeLogToFile bool
	silent         bool
	append         bool
	colorize       bool
}

// LogLevel returns the threshold; messages less verbose than or equal to it are emitted.
func (s Settings) LogLevel() Level { return s.level }

// LogFile returns the configured file path and whether one was set.
// When unset, the Logger generates a path under pink_log/.
func (s Settings) LogFile() (string, bool) { return s.logFile, s.hasLogFile }

// WriteLogToFile reports whether lines go to the file sink.
// Default: true
func (s Settings) WriteLogToFile() bool { return s.writeLogToFile }

// Silent reports whether console output is suppressed.
// Default: false
func (s Settings) Silent() bool { return s.silent }

// Append reports whether the file sink appends lines instead of replacing the file.
// Default: false
func (s Settings) Append() bool { return s.append }

// Colorize reports whether console level tags use ANSI colours.
// Default: false
func (s Settings) Colorize() bool { return s.colorize }

// SettingsBuilder stages a Settings value. It is single use: Build may be
// called once.
type SettingsBuilder struct {
	settings Settings
	built    bool
}

// NewSettingsBuilder starts from the required threshold with file writing
// enabled, console output enabled and a generated file path.
func NewSettingsBuilder(level Level) *SettingsBuilder {
	return &SettingsBuilder{
		settings: Settings{
			level:          level,
			writeLogToFile: true,
		},
	}
}

// SetLogLevel overrides the threshold.
func (b *SettingsBuilder) SetLogLevel(level Level) *SettingsBuilder {
	b.settings.level = level
	return b
}

// SetLogFile sets the file sink path. The path is not validated.
func (b *SettingsBuilder) SetLogFile(path string) *SettingsBuilder {
	b.settings.logFile = path
	b.settings.hasLogFile = true
	return b
}

// SetWriteLogToFile enables or disables the file sink.
func (b *SettingsBuilder) SetWriteLogToFile(write bool) *SettingsBuilder {
	b.settings.writeLogToFile = write
	return b
}

// SetSilent suppresses console output for emitted lines.
// File write failures are still reported on the console.
func (b *SettingsBuilder) SetSilent(silent bool) *SettingsBuilder {
	b.settings.silent = silent
	return b
}

// SetAppend switches the file sink from replace-on-write to append.
func (b *SettingsBuilder) SetAppend(enabled bool) *SettingsBuilder {
	b.settings.append = enabled
	return b
}

// SetColorize enables coloured level tags on the console.
func (b *SettingsBuilder) SetColorize(colorize bool) *SettingsBuilder {
	b.settings.colorize = colorize
	return b
}

// Build returns the staged Settings. It panics if the builder was already built.
func (b *SettingsBuilder) Build() Settings {
	if b.built {
		panic("logger: SettingsBuilder.Build called twice")
	}
	b.built = true
	return b.settings
}
