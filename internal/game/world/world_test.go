package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/cliffhanger/internal/engine/camera"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

const smallMap = `
name: test
spawn: [1, 2, 3]
facing: 90
meshes:
  decors:
    - {id: tree, min: [5, 0, -1], max: [4, 3, 1]}
  obstacles: []
  slippery_objects:
    - {id: ice, min: [0, 0, -1], max: [1, 1, 0]}
  GrippableObjects:
    - {id: rock, min: [0, 1, -1], max: [1, 2, 0]}
    - {id: ice, min: [9, 9, 9], max: [10, 10, 10]}
  end:
    - {id: top, min: [0, 2, -1], max: [1, 3, 0]}
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if m.Name != "test" {
		t.Errorf("Name = %q, want test", m.Name)
	}
	if m.Spawn != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Spawn = %v, want (1, 2, 3)", m.Spawn)
	}
	if m.Facing < 1.5707 || m.Facing > 1.5709 {
		t.Errorf("Facing = %v, want pi/2", m.Facing)
	}
	if len(m.Meshes) != 4 {
		t.Fatalf("len(Meshes) = %d, want 4", len(m.Meshes))
	}

	for _, mesh := range m.Meshes {
		switch mesh.ID {
		case "tree":
			// Corners are reordered.
			if mesh.Bounds.Min.X != 4 || mesh.Bounds.Max.X != 5 {
				t.Errorf("tree bounds = %v, want x in [4, 5]", mesh.Bounds)
			}
		case "ice":
			// First category in classification order keeps the geometry.
			if mesh.Bounds.Max.X != 1 {
				t.Errorf("ice bounds = %v, want the slippery_objects box", mesh.Bounds)
			}
		}
	}

	if got := m.Registry.Count(climb.GrippableObjects); got != 2 {
		t.Errorf("Count(grippable) = %d, want 2", got)
	}
	if kind, _ := m.Registry.Kind("ice"); kind != climb.SlipperyObjects {
		t.Errorf("Kind(ice) = %v, want slippery_objects", kind)
	}
}

func TestParseMissingCategory(t *testing.T) {
	data := strings.Replace(smallMap, "  obstacles: []\n", "", 1)
	_, err := Parse([]byte(data))
	if !errors.Is(err, climb.ErrMissingCategory) {
		t.Fatalf("Parse() = %v, want ErrMissingCategory", err)
	}
	if !strings.Contains(err.Error(), "obstacles") {
		t.Errorf("Parse() error %q does not name obstacles", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "meshes: [unterminated"},
		{"unknown category", smallMap + "  lava: []\n"},
		{"duplicate category", smallMap + "  grippable_objects: []\n"},
		{"mesh without id", strings.Replace(smallMap, "id: top, ", "", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(smallMap), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestMapBounds(t *testing.T) {
	m, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatal(err)
	}
	b := m.Bounds()
	if b.Min != (math.Vec3{X: 0, Y: 0, Z: -1}) || b.Max != (math.Vec3{X: 5, Y: 3, Z: 1}) {
		t.Errorf("Bounds() = %v", b)
	}
	if got := (&Map{}).Bounds(); got.Min != got.Max {
		t.Errorf("empty Bounds() = %v, want zero box", got)
	}
}

// The shipped map must put the spawn point in front of a grippable face as
// seen from the default player camera.
func TestShippedMapSpawnIsGrippable(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "..", "assets", "maps", "cliff.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cam := camera.NewArcRotateCamera(camera.DefaultAlpha, camera.DefaultBeta, camera.DefaultRadius)
	view := climb.Viewpoint{Offset: cam.Offset(), Forward: cam.Forward()}
	c, err := climb.NewClassifier(m.Meshes, m.Registry, view, climb.DefaultRayLength)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Probe(m.Spawn); got != climb.GrippableObjects {
		t.Errorf("Probe(spawn) = %v, want grippable_objects", got)
	}
	if got := c.Probe(math.Vec3{X: -20, Y: 47, Z: 1}); got != climb.SlipperyObjects {
		t.Errorf("Probe(ice) = %v, want slippery_objects", got)
	}
	if got := c.Probe(math.Vec3{X: 30, Y: 5, Z: 1}); got != climb.Decors {
		t.Errorf("Probe(right of wall) = %v, want decors", got)
	}
	if got := c.Probe(math.Vec3{X: -20, Y: 97, Z: 1}); got != climb.End {
		t.Errorf("Probe(summit) = %v, want end", got)
	}
}
