// Package presetpack loads named animation presets from YAML pack files
// and overlays them on the built-in preset tables. Packs let a design team
// tune spring and timing parameters without recompiling the host.
package presetpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/motion/pkg/motion"
)

// Pack load errors.
var (
	ErrInvalidPack  = errors.New("presetpack: invalid pack")
	ErrEmptyPreset  = errors.New("presetpack: preset name is empty")
	ErrBadSpring    = errors.New("presetpack: spring parameters must be positive")
	ErrBadTiming    = errors.New("presetpack: timing duration must be positive")
	ErrReservedName = errors.New("presetpack: built-in preset names cannot be overridden")
)

// SpringDef is a spring preset as written in a pack file.
type SpringDef struct {
	Damping   float64 `yaml:"damping"`
	Stiffness float64 `yaml:"stiffness"`
}

// TimingDef is a timing preset as written in a pack file. Durations are
// whole milliseconds.
type TimingDef struct {
	DurationMs int `yaml:"durationMs"`
}

// Pack is one parsed pack file.
type Pack struct {
	Name    string               `yaml:"name"`
	Springs map[string]SpringDef `yaml:"springs"`
	Timings map[string]TimingDef `yaml:"timings"`
}

// Load reads and validates a pack file.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("presetpack: read %s: %w", path, err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPack, path, err)
	}
	if pack.Name == "" {
		pack.Name = packNameFromPath(path)
	}

	if err := pack.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &pack, nil
}

// packNameFromPath derives a pack name from the file name.
func packNameFromPath(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// validate rejects empty names, non-positive parameters, and overrides of
// the built-in preset names.
func (p *Pack) validate() error {
	for name, def := range p.Springs {
		if name == "" {
			return ErrEmptyPreset
		}
		if _, builtin := motion.SpringByName(name); builtin {
			return fmt.Errorf("%w: spring %q", ErrReservedName, name)
		}
		if def.Damping <= 0 || def.Stiffness <= 0 {
			return fmt.Errorf("%w: spring %q", ErrBadSpring, name)
		}
	}
	for name, def := range p.Timings {
		if name == "" {
			return ErrEmptyPreset
		}
		if _, builtin := motion.TimingByName(name); builtin {
			return fmt.Errorf("%w: timing %q", ErrReservedName, name)
		}
		if def.DurationMs <= 0 {
			return fmt.Errorf("%w: timing %q", ErrBadTiming, name)
		}
	}
	return nil
}

// SpringNames returns the pack's spring preset names, sorted.
func (p *Pack) SpringNames() []string {
	names := make([]string, 0, len(p.Springs))
	for name := range p.Springs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TimingNames returns the pack's timing preset names, sorted.
func (p *Pack) TimingNames() []string {
	names := make([]string, 0, len(p.Timings))
	for name := range p.Timings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
