package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// captureStdout redirects console output for loggers created afterwards.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldStdout := outStdout
	t.Cleanup(func() { outStdout = oldStdout })
	outStdout = &buf
	return &buf
}

// countFormatting counts formatLine calls for the rest of the test.
func countFormatting(t *testing.T) *int {
	t.Helper()
	calls := 0
	oldFormat := formatLine
	t.Cleanup(func() { formatLine = oldFormat })
	formatLine = func(level Level, content string) string {
		calls++
		return oldFormat(level, content)
	}
	return &calls
}

func consoleLogger(level Level) *Logger {
	return New(NewSettingsBuilder(level).SetWriteLogToFile(false).Build())
}

func TestConsole_InfoThreshold(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(InfoLevel)

	log.Debug("x")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at INFO, got: %q", buf.String())
	}

	log.Info("y")
	log.Warn("z")

	if got, want := buf.String(), "[INFO] y\n[WARN] z\n"; got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
}

func TestGuardClause_SkipsFormatting(t *testing.T) {
	buf := captureStdout(t)
	calls := countFormatting(t)
	log := consoleLogger(WarnLevel)

	log.Trace("hidden")
	log.Debug("hidden")
	if *calls != 0 {
		t.Fatalf("filtered levels must not format, got %d calls", *calls)
	}
	if buf.Len() != 0 {
		t.Fatalf("filtered levels must not write, got: %q", buf.String())
	}

	log.Warn("w")
	log.Error(errors.New("e"))
	log.Fatal(errors.New("f"))
	if *calls != 3 {
		t.Fatalf("expected 3 formatted lines, got %d", *calls)
	}
	if got, want := buf.String(), "[WARN] w\n[ERROR] e\n[FATAL] f\n"; got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
}

func TestNoneThreshold_EmitsNothing(t *testing.T) {
	buf := captureStdout(t)
	calls := countFormatting(t)
	log := consoleLogger(NoneLevel)

	log.Trace("")
	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error(errors.New("e"))
	log.Fatal(errors.New("f"))

	if *calls != 0 || buf.Len() != 0 {
		t.Fatalf("NONE threshold should emit nothing, got %d calls and %q", *calls, buf.String())
	}
}

func TestTrace_WithoutMessage(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(TraceLevel)

	log.Trace("")

	out := buf.String()
	if !strings.HasPrefix(out, "[TRACE] \n") {
		t.Fatalf("trace should start with tag then stack, got: %q", out)
	}
	if !strings.Contains(out, "TestTrace_WithoutMessage") {
		t.Fatalf("stack should include the calling test, got: %q", out)
	}
	if strings.Contains(out, "captureBacktrace") {
		t.Fatalf("stack should start at the caller, got: %q", out)
	}
}

func TestTrace_WithMessage(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(TraceLevel)

	log.Trace("hello")

	out := buf.String()
	if !strings.HasPrefix(out, "[TRACE] hello\n") {
		t.Fatalf("trace should start with the message, got: %q", out)
	}
	if !strings.Contains(out, "TestTrace_WithMessage") || !strings.Contains(out, "logger_behavior_test.go:") {
		t.Fatalf("stack should include caller frame, got: %q", out)
	}
}

func TestErrorAndFatal_RenderChain(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(FatalLevel)

	log.Error(errors.New("filtered"))
	log.Fatal(errors.Wrap(errors.New("disk full"), "save report"))

	if got, want := buf.String(), "[FATAL] save report: disk full\n"; got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
}

func TestError_NilValue(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(ErrorLevel)

	log.Error(nil)

	if got, want := buf.String(), "[ERROR] <nil>\n"; got != want {
		t.Fatalf("console output = %q, want %q", got, want)
	}
}

func TestPlainOutput_NoAnsi(t *testing.T) {
	buf := captureStdout(t)
	log := consoleLogger(InfoLevel)

	log.Info("plain-info")

	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("output should be plain (no ANSI codes), got %q", buf.String())
	}
}

func TestColorizedOutput_UsesAnsi(t *testing.T) {
	buf := captureStdout(t)
	log := New(NewSettingsBuilder(InfoLevel).SetWriteLogToFile(false).SetColorize(true).Build())

	log.Info("color-info")

	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Fatalf("expected ANSI color codes when Colorize is enabled, got: %q", out)
	}
	if !strings.HasPrefix(out, "\033[32m[INFO]\033[0m") {
		t.Fatalf("expected the whole [INFO] tag inside the coloured span, got: %q", out)
	}
	if !strings.HasSuffix(out, "\033[0m color-info\n") {
		t.Fatalf("expected reset code followed by message, got: %q", out)
	}
}

var defaultPathPattern = regexp.MustCompile(`^pink_log/[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.txt$`)

func TestDefault_GeneratedPath(t *testing.T) {
	first := Default()
	second := Default()

	if !defaultPathPattern.MatchString(first.LogPath()) {
		t.Fatalf("unexpected default path: %q", first.LogPath())
	}
	if first.LogPath() == second.LogPath() {
		t.Fatalf("default loggers should get distinct paths, both got %q", first.LogPath())
	}

	s := first.Settings()
	if s.LogLevel() != InfoLevel || !s.WriteLogToFile() || s.Silent() {
		t.Fatalf("unexpected default settings: %+v", s)
	}
}

func TestNew_PathResolvedOnce(t *testing.T) {
	generated := New(NewSettingsBuilder(InfoLevel).Build())
	if !defaultPathPattern.MatchString(generated.LogPath()) {
		t.Fatalf("unexpected generated path: %q", generated.LogPath())
	}

	explicit := New(NewSettingsBuilder(InfoLevel).SetLogFile("app.txt").Build())
	if explicit.LogPath() != "app.txt" {
		t.Fatalf("expected configured path, got %q", explicit.LogPath())
	}
}
