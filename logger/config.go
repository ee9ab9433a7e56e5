package logger

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrMissingLevel is returned by LoadSettings when the document has no level.
var ErrMissingLevel = errors.New("missing log level")

// fileConfig mirrors the YAML settings document. Pointers tell an absent key
// from an explicit zero value so builder defaults survive.
type fileConfig struct {
	Level       *Level  `yaml:"level"`
	File        *string `yaml:"file"`
	WriteToFile *bool   `yaml:"write_to_file"`
	Silent      *bool   `yaml:"silent"`
	Append      *bool   `yaml:"append"`
	Colorize    *bool   `yaml:"colorize"`
}

// LoadSettings reads Settings from a YAML file. Only level is required:
//
//	level: info
//	file: logs/app.txt
//	write_to_file: true
//	silent: false
//	append: false
//	colorize: false
func LoadSettings(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "read settings %s", path)
	}
	return parseSettings(path, raw)
}

func parseSettings(path string, raw []byte) (Settings, error) {
	var fc fileConfig
	if err := yaml.UnmarshalStrict(raw, &fc); err != nil {
		return Settings{}, errors.Wrapf(err, "parse settings %s", path)
	}
	if fc.Level == nil {
		return Settings{}, errors.Wrapf(ErrMissingLevel, "parse settings %s", path)
	}

	b := NewSettingsBuilder(*fc.Level)
	if fc.File != nil {
		b.SetLogFile(*fc.File)
	}
	if fc.WriteToFile != nil {
		b.SetWriteLogToFile(*fc.WriteToFile)
	}
	if fc.Silent != nil {
		b.SetSilent(*fc.Silent)
	}
	if fc.Append != nil {
		b.SetAppend(*fc.Append)
	}
	if fc.Colorize != nil {
		b.SetColorize(*fc.Colorize)
	}
	return b.Build(), nil
}
