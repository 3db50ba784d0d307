package theme

import (
	"bufio"
	"fmt"
	"strings"

	spectrumerrors "github.com/alexisbeaulieu97/spectrum/pkg/errors"
)

// ParseSnippet reads custom-property declarations back out of a snippet
// produced by Snippet or StyleVars.CSS.
func ParseSnippet(src string) (StyleVars, error) {
	return ParseStylesheet("snippet", src)
}

// ParseStylesheet parses "--name: value;" declarations, one per line.
// Selector lines, closing braces, blank lines and single-line comments are
// skipped. The name is used to label parse errors.
func ParseStylesheet(name, src string) (StyleVars, error) {
	vars := make(StyleVars)
	scanner := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "", text == "}", strings.HasSuffix(text, "{"):
			continue
		case strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/"):
			continue
		}

		key, value, err := parseDeclaration(text)
		if err != nil {
			return nil, spectrumerrors.NewParseError(name, line, err)
		}
		if _, dup := vars[key]; dup {
			return nil, spectrumerrors.NewParseError(name, line, fmt.Errorf("duplicate declaration of --%s", key))
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, spectrumerrors.NewParseError(name, line, err)
	}
	if len(vars) == 0 {
		return nil, spectrumerrors.NewParseError(name, 0, fmt.Errorf("no custom property declarations found"))
	}
	return vars, nil
}

func parseDeclaration(text string) (string, string, error) {
	if !strings.HasPrefix(text, "--") {
		return "", "", fmt.Errorf("expected custom property, got %q", text)
	}
	if !strings.HasSuffix(text, ";") {
		return "", "", fmt.Errorf("missing ';' after %q", text)
	}
	key, value, ok := strings.Cut(strings.TrimSuffix(text, ";"), ":")
	if !ok {
		return "", "", fmt.Errorf("missing ':' in %q", text)
	}
	key = strings.TrimSpace(strings.TrimPrefix(key, "--"))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", fmt.Errorf("empty property name in %q", text)
	}
	if value == "" {
		return "", "", fmt.Errorf("empty value for --%s", key)
	}
	return key, value, nil
}

// Drift describes one token whose value does not match the expected theme.
type Drift struct {
	Name    string `json:"name" yaml:"name"`
	Want    string `json:"want" yaml:"want"`
	Got     string `json:"got,omitempty" yaml:"got,omitempty"`
	Missing bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
}

func (d Drift) String() string {
	if d.Missing {
		return fmt.Sprintf("--%s: missing (want %s)", d.Name, d.Want)
	}
	return fmt.Sprintf("--%s: got %s, want %s", d.Name, d.Got, d.Want)
}

// Diff reports every entry of want that is absent from got or holds a
// different value, in want's name order.
func Diff(want, got StyleVars) []Drift {
	var drifts []Drift
	for _, name := range want.Names() {
		expected := want[name]
		actual, ok := got[name]
		switch {
		case !ok:
			drifts = append(drifts, Drift{Name: name, Want: expected, Missing: true})
		case actual != expected:
			drifts = append(drifts, Drift{Name: name, Want: expected, Got: actual})
		}
	}
	return drifts
}
