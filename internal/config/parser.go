package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// DefaultPath is where presets are looked for when no path is given.
const DefaultPath = "spectrum.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParsePresets loads a presets file from disk, validates it, and returns the resulting model.
func ParsePresets(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, spectrumerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates presets from data. path is only used in errors.
func Parse(path string, data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, spectrumerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePresets(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Load reads path, falling back to the built-in presets when it does not
// exist. The second result reports whether the file was used.
func Load(path string) (*File, bool, error) {
	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Builtin(), false, nil
	}
	file, err := ParsePresets(path)
	if err != nil {
		return nil, false, err
	}
	return file, true, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
