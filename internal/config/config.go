// SPDX-License-Identifier: MIT

// Package config loads and validates linkgrid scenario files.
//
// A scenario describes one run of the driver: the grid size, the distance
// window, the seed for link colours and the list of deformations applied in
// order. Files are TOML or YAML, chosen by extension:
//
//	size = [9, 9, 1]
//	min_distance = [0.2, 0.2, 0.2]
//	max_distance = [1.0, 1.0, 1.0]
//	seed = 1
//
//	[[deformations]]
//	displacement = [0.75, -1.75]
//	at = [1, 1, 0]
//
// Keys left out of a file take the values of Default, except deformations,
// which stay empty.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkgrid/constraint"
	"github.com/katalvlaran/linkgrid/lattice"
)

var (
	// ErrUnsupportedFormat is returned by Load for an unknown file extension.
	ErrUnsupportedFormat = errors.New("config: unsupported scenario format")
	// ErrInvalid wraps every Validate failure.
	ErrInvalid = errors.New("config: invalid scenario")
)

// Scenario is the on-disk description of a driver run.
type Scenario struct {
	Size         []int         `toml:"size" yaml:"size"`
	MinDistance  []float64     `toml:"min_distance" yaml:"min_distance"`
	MaxDistance  []float64     `toml:"max_distance" yaml:"max_distance"`
	Seed         int64         `toml:"seed" yaml:"seed"`
	Step         float64       `toml:"step,omitempty" yaml:"step,omitempty"`
	MaxSweeps    int           `toml:"max_sweeps,omitempty" yaml:"max_sweeps,omitempty"`
	Deformations []Deformation `toml:"deformations" yaml:"deformations"`
}

// Deformation moves the link at At by Displacement (x, y).
type Deformation struct {
	Displacement []float64 `toml:"displacement" yaml:"displacement"`
	At           []int     `toml:"at" yaml:"at"`
}

// Default returns the classic demo: a 9×9 sheet, window [0.2, 1] on every
// axis, one deformation of (0.75, -1.75) at (1,1,0).
func Default() Scenario {
	return Scenario{
		Size:        []int{9, 9, 1},
		MinDistance: []float64{0.2, 0.2, 0.2},
		MaxDistance: []float64{1, 1, 1},
		Seed:        1,
		Step:        constraint.DefaultStep,
		MaxSweeps:   constraint.DefaultMaxSweeps,
		Deformations: []Deformation{
			{Displacement: []float64{0.75, -1.75}, At: []int{1, 1, 0}},
		},
	}
}

// Load reads a scenario from path, fills missing keys and validates it.
func Load(path string) (Scenario, error) {
	var s Scenario

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return s, fmt.Errorf("config: %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("config: %s: %w", path, err)
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Normalize fills unset keys from Default. Deformations are left as given.
func (s *Scenario) Normalize() {
	def := Default()
	if len(s.Size) == 0 {
		s.Size = def.Size
	}
	if len(s.MinDistance) == 0 {
		s.MinDistance = def.MinDistance
	}
	if len(s.MaxDistance) == 0 {
		s.MaxDistance = def.MaxDistance
	}
	if s.Step == 0 {
		s.Step = def.Step
	}
	if s.MaxSweeps == 0 {
		s.MaxSweeps = def.MaxSweeps
	}
}

// Validate checks shapes and ranges. Every error wraps ErrInvalid.
func (s Scenario) Validate() error {
	if len(s.Size) != 3 {
		return fmt.Errorf("%w: size needs 3 components, got %d", ErrInvalid, len(s.Size))
	}
	size := s.GridSize()
	if err := lattice.ValidateSize(size); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(s.MinDistance) != 3 || len(s.MaxDistance) != 3 {
		return fmt.Errorf("%w: min_distance and max_distance need 3 components", ErrInvalid)
	}
	if err := s.Model().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(s.Step > 0) || math.IsInf(s.Step, 0) {
		return fmt.Errorf("%w: step must be a positive number, got %v", ErrInvalid, s.Step)
	}
	if s.MaxSweeps < 1 {
		return fmt.Errorf("%w: max_sweeps must be ≥ 1, got %d", ErrInvalid, s.MaxSweeps)
	}

	grid, _ := lattice.NewFourWay(size)
	for i, d := range s.Deformations {
		if len(d.Displacement) != 2 {
			return fmt.Errorf("%w: deformation %d: displacement needs 2 components, got %d", ErrInvalid, i, len(d.Displacement))
		}
		for _, v := range d.Displacement {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: deformation %d: displacement is not finite", ErrInvalid, i)
			}
		}
		if len(d.At) != 3 {
			return fmt.Errorf("%w: deformation %d: at needs 3 components, got %d", ErrInvalid, i, len(d.At))
		}
		if !grid.InBounds(d.Index()) {
			return fmt.Errorf("%w: deformation %d: %v outside grid %v", ErrInvalid, i, d.Index(), size)
		}
	}

	return nil
}

// GridSize returns Size as a lattice index. Missing components read as 0.
func (s Scenario) GridSize() lattice.Index {
	return toIndex(s.Size)
}

// Model returns the distance window.
func (s Scenario) Model() constraint.Model {
	return constraint.Model{Min: toVec(s.MinDistance), Max: toVec(s.MaxDistance)}
}

// Vector returns the displacement as an r2.Vec.
func (d Deformation) Vector() r2.Vec {
	var v r2.Vec
	if len(d.Displacement) > 0 {
		v.X = d.Displacement[0]
	}
	if len(d.Displacement) > 1 {
		v.Y = d.Displacement[1]
	}

	return v
}

// Index returns the seed index of the deformation.
func (d Deformation) Index() lattice.Index {
	return toIndex(d.At)
}

func toIndex(v []int) lattice.Index {
	var c [3]int
	copy(c[:], v)
	return lattice.Index{X: c[0], Y: c[1], Z: c[2]}
}

func toVec(v []float64) r3.Vec {
	var c [3]float64
	copy(c[:], v)
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}
