// Package character drives the climber's animation clips.
package character

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrMissingClip is returned when a required clip is absent from the manifest.
var ErrMissingClip = errors.New("missing animation clip")

// Clip is a named frame range of the climber model.
type Clip struct {
	Name string `yaml:"name"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
}

// Frames returns the clip length in frames.
func (c Clip) Frames() int {
	return c.To - c.From + 1
}

// Library holds the clips found in a manifest, by name.
type Library map[string]Clip

// Manifest is the on-disk clip list.
type Manifest struct {
	Model string `yaml:"model"` // Source model, informational
	FPS   int    `yaml:"fps"`
	Clips []Clip `yaml:"clips"`
}

// LoadLibrary reads a YAML clip manifest.
func LoadLibrary(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clip manifest: %w", err)
	}
	return ParseLibrary(data)
}

// ParseLibrary parses manifest YAML and checks every frame range.
func ParseLibrary(data []byte) (Library, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse clip manifest: %w", err)
	}

	lib := make(Library, len(m.Clips))
	for _, c := range m.Clips {
		if c.Name == "" {
			return nil, errors.New("clip manifest: clip without a name")
		}
		if c.From < 0 || c.To < c.From {
			return nil, fmt.Errorf("clip manifest: %s has bad range %d..%d", c.Name, c.From, c.To)
		}
		if _, dup := lib[c.Name]; dup {
			return nil, fmt.Errorf("clip manifest: duplicate clip %s", c.Name)
		}
		lib[c.Name] = c
	}
	return lib, nil
}

// ClipSet names the clip played for each animation intent. Screen-relative:
// MoveLeft plays ShimmyLeft or HopLeft.
type ClipSet struct {
	Hang        string
	ClimbUp     string
	ClimbDown   string
	ShimmyLeft  string
	ShimmyRight string
	HopLeft     string
	HopRight    string
	Extra       []string // Not driven directly, stopped on hang
}

func (s ClipSet) required() []string {
	return []string{s.Hang, s.ClimbUp, s.ClimbDown, s.ShimmyLeft, s.ShimmyRight, s.HopLeft, s.HopRight}
}
