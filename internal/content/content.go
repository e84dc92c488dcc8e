// Package content loads the static text shown alongside an estimate:
// title, tips, disclaimer and footer notes.
package content

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the built-in content set used when none is requested.
const DefaultName = "default"

// Content is a set of display strings independent of any input.
type Content struct {
	Name       string   `yaml:"name"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Tips       []string `yaml:"tips"`
	Disclaimer string   `yaml:"disclaimer"`
	Notes      []string `yaml:"notes"`
	Copyright  string   `yaml:"copyright"`
}

// LoadBuiltin loads a built-in content set by name.
func LoadBuiltin(name string) (*Content, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("content.LoadBuiltin: unknown content %q: %w", name, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("content.LoadBuiltin: parse %q: %w", name, err)
	}
	return c, nil
}

// Load reads a content set from a YAML file on disk.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content.Load: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("content.Load: parse %s: %w", path, err)
	}
	return c, nil
}

// List returns the names of all available built-in content sets.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

func parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Title == "" {
		return nil, errors.New("title is required")
	}
	c.Disclaimer = strings.TrimSpace(c.Disclaimer)
	return &c, nil
}
