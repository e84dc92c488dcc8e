// Package scenario handles reading and hashing files of named credit action inputs.
package scenario

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/dshills/creditimpact/internal/impact"
	"gopkg.in/yaml.v3"
)

// Scenario is a named set of credit actions.
type Scenario struct {
	Name         string `yaml:"name"`
	impact.Input `yaml:",inline"`
}

// File holds a loaded scenario file with its content and metadata.
type File struct {
	FilePath  string
	Raw       []byte
	Hash      string
	Scenarios []Scenario
}

type document struct {
	Scenarios    []Scenario `yaml:"scenarios"`
	impact.Input `yaml:",inline"`
}

// Load reads a scenario file and computes its SHA-256 hash.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario.Load: %w", err)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario.Load: %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &File{
		FilePath:  path,
		Raw:       data,
		Hash:      fmt.Sprintf("sha256:%x", h),
		Scenarios: scenarios,
	}, nil
}

// Parse decodes scenario YAML (or JSON). A document without a "scenarios"
// key is a single unnamed scenario. Unnamed entries are named by position.
func Parse(data []byte) ([]Scenario, error) {
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(keys) == 0 {
		return nil, errors.New("no scenarios defined")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("multiple YAML documents are not supported; list inputs under scenarios")
	}

	if _, ok := keys["scenarios"]; !ok {
		return []Scenario{{Name: "scenario-1", Input: doc.Input}}, nil
	}
	if len(keys) > 1 {
		return nil, errors.New("top-level input fields cannot be combined with scenarios")
	}
	if len(doc.Scenarios) == 0 {
		return nil, errors.New("no scenarios defined")
	}

	seen := make(map[string]bool, len(doc.Scenarios))
	for i := range doc.Scenarios {
		s := &doc.Scenarios[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scenarios[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
	}
	return doc.Scenarios, nil
}

// ParseUtilization coerces free text to a utilization change the way a
// numeric form field does: leading whitespace is skipped, an optional sign
// and the leading run of digits are read, and anything unparseable is 0.
// The second result reports whether s was a clean integer.
func ParseUtilization(s string) (int, bool) {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	digits := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(t[:end])
	if err != nil {
		return 0, false
	}
	return v, end == len(strings.TrimRightFunc(t, unicode.IsSpace))
}
