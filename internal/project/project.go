// Package project saves and loads packing projects as JSON, YAML or TOML.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/maxrects/internal/model"
)

// Format is a project file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DefaultDir returns the per-user directory for maxrects files, ~/.maxrects.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".maxrects")
}

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported project file extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Save writes the project to path in the format implied by its extension,
// creating missing parent directories.
func Save(path string, p model.Project) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Marshal(format, p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Load reads a project from path. Missing slices come back empty, and every
// box and bin is validated.
func Load(path string) (model.Project, error) {
	format, err := FormatFor(path)
	if err != nil {
		return model.Project{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	p, err := Unmarshal(format, data)
	if err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// Marshal encodes a project.
func Marshal(format Format, p model.Project) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(p)
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(p)
		data = buf.Bytes()
	default:
		return nil, fmt.Errorf("unknown project format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project as %s: %w", format, err)
	}
	return data, nil
}

// Unmarshal decodes and normalizes a project.
func Unmarshal(format Format, data []byte) (model.Project, error) {
	var p model.Project
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &p)
	case FormatYAML:
		err = yaml.Unmarshal(data, &p)
	case FormatTOML:
		err = toml.Unmarshal(data, &p)
	default:
		return model.Project{}, fmt.Errorf("unknown project format %q", format)
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}

	normalize(&p)
	if err := validate(p); err != nil {
		return model.Project{}, fmt.Errorf("invalid project: %w", err)
	}
	return p, nil
}

func normalize(p *model.Project) {
	if p.Boxes == nil {
		p.Boxes = []model.Box{}
	}
	if p.Bins == nil {
		p.Bins = []model.Bin{}
	}
	for i := range p.Bins {
		p.Bins[i] = p.Bins[i].Clone()
	}
	if r := p.Result; r != nil {
		if r.Placed == nil {
			r.Placed = []model.PlacedItem{}
		}
		if r.Remaining == nil {
			r.Remaining = []model.Box{}
		}
		if r.Bins == nil {
			r.Bins = []model.Bin{}
		}
		for i := range r.Bins {
			r.Bins[i] = r.Bins[i].Clone()
		}
	}
}

func validate(p model.Project) error {
	for _, b := range p.Boxes {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	for _, b := range p.Bins {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
