// Package world loads the categorized climbing map.
package world

import (
	"fmt"
	gomath "math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cliffhanger/internal/engine/picking"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// MeshDef is one box of map geometry as written in the map file.
type MeshDef struct {
	ID  string     `yaml:"id"`
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

// File is the on-disk map layout.
type File struct {
	Name   string               `yaml:"name"`
	Spawn  [3]float32           `yaml:"spawn"`
	Facing float32              `yaml:"facing"` // Degrees
	Meshes map[string][]MeshDef `yaml:"meshes"` // Category name -> meshes
}

// Map is a loaded map: geometry, its categories and the spawn point.
type Map struct {
	Name     string
	Spawn    math.Vec3
	Facing   float32 // Radians
	Meshes   []climb.Mesh
	Registry *climb.Registry
}

// Load reads and parses a map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a Map from YAML. Every category must be present, even if
// empty; a missing one yields an error wrapping climb.ErrMissingCategory.
func Parse(data []byte) (*Map, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	byKind := make(map[climb.SurfaceKind][]MeshDef, len(f.Meshes))
	for name, defs := range f.Meshes {
		kind, err := climb.ParseSurfaceKind(name)
		if err != nil {
			return nil, err
		}
		if _, dup := byKind[kind]; dup {
			return nil, fmt.Errorf("category %s listed twice", kind)
		}
		byKind[kind] = defs
	}

	groups := make(map[climb.SurfaceKind][]string, len(byKind))
	var meshes []climb.Mesh
	seen := make(map[string]bool)
	for _, kind := range climb.SurfaceKinds {
		defs, ok := byKind[kind]
		if !ok {
			continue
		}
		ids := make([]string, 0, len(defs))
		for _, d := range defs {
			if d.ID == "" {
				return nil, fmt.Errorf("%s: mesh without an id", kind)
			}
			ids = append(ids, d.ID)
			// A mesh listed under two categories keeps the first geometry.
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			meshes = append(meshes, climb.Mesh{
				ID:     d.ID,
				Bounds: picking.NewAABB(vec(d.Min), vec(d.Max)),
			})
		}
		groups[kind] = ids
	}

	registry, err := climb.NewRegistry(groups)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(meshes, func(i, j int) bool { return meshes[i].ID < meshes[j].ID })

	return &Map{
		Name:     f.Name,
		Spawn:    vec(f.Spawn),
		Facing:   f.Facing * gomath.Pi / 180,
		Meshes:   meshes,
		Registry: registry,
	}, nil
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Bounds returns the box enclosing every mesh.
func (m *Map) Bounds() picking.AABB {
	if len(m.Meshes) == 0 {
		return picking.AABB{}
	}
	b := m.Meshes[0].Bounds
	for _, mesh := range m.Meshes[1:] {
		b.Min = math.Vec3{
			X: min(b.Min.X, mesh.Bounds.Min.X),
			Y: min(b.Min.Y, mesh.Bounds.Min.Y),
			Z: min(b.Min.Z, mesh.Bounds.Min.Z),
		}
		b.Max = math.Vec3{
			X: max(b.Max.X, mesh.Bounds.Max.X),
			Y: max(b.Max.Y, mesh.Bounds.Max.Y),
			Z: max(b.Max.Z, mesh.Bounds.Max.Z),
		}
	}
	return b
}
