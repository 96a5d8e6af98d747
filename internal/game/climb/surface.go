package climb

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/cliffhanger/internal/engine/picking"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// SurfaceKind is the category of geometry the climber is facing.
type SurfaceKind int

const (
	Decors SurfaceKind = iota
	Obstacles
	SlipperyObjects
	GrippableObjects
	End
)

// SurfaceKinds lists every kind in classification order.
// When a mesh is registered under several kinds the first one here wins.
var SurfaceKinds = [...]SurfaceKind{Decors, Obstacles, SlipperyObjects, GrippableObjects, End}

var surfaceKindNames = [...]string{"decors", "obstacles", "slippery_objects", "grippable_objects", "end"}

func (k SurfaceKind) String() string {
	if k < 0 || int(k) >= len(surfaceKindNames) {
		return fmt.Sprintf("SurfaceKind(%d)", int(k))
	}
	return surfaceKindNames[k]
}

// Holdable reports whether the climber can hold on (possibly slipping).
func (k SurfaceKind) Holdable() bool {
	return k == SlipperyObjects || k == GrippableObjects
}

// ParseSurfaceKind accepts the snake_case config names ("slippery_objects")
// and the asset group names ("SlipperyObjects").
func ParseSurfaceKind(name string) (SurfaceKind, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for i, s := range surfaceKindNames {
		if strings.ReplaceAll(s, "_", "") == n {
			return SurfaceKind(i), nil
		}
	}
	return Decors, fmt.Errorf("unknown surface kind %q", name)
}

// ErrMissingCategory is returned when a map does not define every surface kind.
var ErrMissingCategory = errors.New("missing mesh category")

// Registry maps mesh identifiers to surface kinds. Immutable once built.
type Registry struct {
	groups [len(SurfaceKinds)]map[string]struct{}
}

// NewRegistry builds a registry. Every SurfaceKind must have an entry in
// groups, even if its list is empty.
func NewRegistry(groups map[SurfaceKind][]string) (*Registry, error) {
	var missing []string
	r := &Registry{}
	for _, kind := range SurfaceKinds {
		ids, ok := groups[kind]
		if !ok {
			missing = append(missing, kind.String())
			continue
		}
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		r.groups[kind] = set
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCategory, strings.Join(missing, ", "))
	}
	return r, nil
}

// Kind returns the kind of mesh id, checking categories in SurfaceKinds order.
func (r *Registry) Kind(id string) (SurfaceKind, bool) {
	for _, kind := range SurfaceKinds {
		if _, ok := r.groups[kind][id]; ok {
			return kind, true
		}
	}
	return Decors, false
}

// Count returns how many meshes are registered under kind.
func (r *Registry) Count(kind SurfaceKind) int {
	if kind < 0 || int(kind) >= len(r.groups) {
		return 0
	}
	return len(r.groups[kind])
}

// Mesh is a piece of map geometry reduced to its bounding box.
type Mesh struct {
	ID     string
	Bounds picking.AABB
}

// Viewpoint places the probe ray relative to the climber.
type Viewpoint struct {
	Offset  math.Vec3 // ray origin relative to the climber position
	Forward math.Vec3 // ray direction
}

// RayFrom returns the probe ray for a climber at pos.
func (v Viewpoint) RayFrom(pos math.Vec3) picking.Ray {
	return picking.NewRay(pos.Add(v.Offset), v.Forward)
}

// DefaultRayLength bounds the probe ray.
const DefaultRayLength = 100.0

// Classifier casts a bounded ray against categorized meshes.
type Classifier struct {
	meshes    []Mesh
	registry  *Registry
	view      Viewpoint
	rayLength float32
	ignore    map[string]struct{}
}

// NewClassifier creates a classifier. ignore lists the climber's own mesh ids,
// which the ray passes through.
func NewClassifier(meshes []Mesh, registry *Registry, view Viewpoint, rayLength float32, ignore ...string) (*Classifier, error) {
	if registry == nil {
		return nil, errors.New("classifier: nil registry")
	}
	if view.Forward.Length() == 0 {
		return nil, errors.New("classifier: zero forward direction")
	}
	if rayLength <= 0 {
		return nil, fmt.Errorf("classifier: ray length must be positive, got %v", rayLength)
	}
	skip := make(map[string]struct{}, len(ignore))
	for _, id := range ignore {
		skip[id] = struct{}{}
	}
	return &Classifier{
		meshes:    meshes,
		registry:  registry,
		view:      view,
		rayLength: rayLength,
		ignore:    skip,
	}, nil
}

// Cast returns the nearest mesh hit by ray within the ray length.
func (c *Classifier) Cast(ray picking.Ray) (Mesh, float32, bool) {
	var (
		best  Mesh
		bestT float32
		found bool
	)
	for _, m := range c.meshes {
		if _, skip := c.ignore[m.ID]; skip {
			continue
		}
		t, hit := ray.IntersectAABB(m.Bounds)
		if !hit || t > c.rayLength {
			continue
		}
		if !found || t < bestT {
			best, bestT, found = m, t, true
		}
	}
	return best, bestT, found
}

// Classify returns the kind of the first mesh hit by ray. A miss, or a hit on
// an uncategorized mesh, is Decors.
func (c *Classifier) Classify(ray picking.Ray) SurfaceKind {
	m, _, ok := c.Cast(ray)
	if !ok {
		return Decors
	}
	kind, _ := c.registry.Kind(m.ID)
	return kind
}

// Probe classifies the surface in front of a climber standing at pos.
func (c *Classifier) Probe(pos math.Vec3) SurfaceKind {
	return c.Classify(c.view.RayFrom(pos))
}

// Meshes returns the classifier's geometry. Callers must not modify it.
func (c *Classifier) Meshes() []Mesh {
	return c.meshes
}

// KindOf returns the registered kind of a mesh, Decors when uncategorized.
func (c *Classifier) KindOf(id string) SurfaceKind {
	kind, _ := c.registry.Kind(id)
	return kind
}
