package debug

import (
	"testing"

	"github.com/Faultbox/cliffhanger/internal/engine/picking"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

func TestGenerateBBoxWireframeVertices(t *testing.T) {
	box := picking.NewAABB(math.Vec3{X: -1, Y: -2, Z: -3}, math.Vec3{X: 1, Y: 2, Z: 3})
	v := GenerateBBoxWireframeVertices(box)

	if got := len(v) / 3; got != BBoxWireframeVertexCount {
		t.Fatalf("vertex count = %d, want %d", got, BBoxWireframeVertexCount)
	}
	for i := 0; i < len(v); i += 3 {
		p := math.Vec3{X: v[i], Y: v[i+1], Z: v[i+2]}
		if !box.Contains(p) {
			t.Errorf("vertex %d = %v lies outside %v", i/3, p, box)
		}
	}
}

func TestColoredWireframe(t *testing.T) {
	box := picking.NewAABB(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})
	red := Color{1, 0, 0}

	v := ColoredWireframe(nil, box, 0.5, red)
	if got := len(v); got != BBoxWireframeVertexCount*ColoredVertexStride {
		t.Fatalf("len = %d, want %d", got, BBoxWireframeVertexCount*ColoredVertexStride)
	}
	// First vertex is the padded min corner.
	if v[0] != -0.5 || v[1] != -0.5 || v[2] != -0.5 {
		t.Errorf("first vertex = %v, want padded min corner", v[:3])
	}
	if v[3] != 1 || v[4] != 0 || v[5] != 0 {
		t.Errorf("first colour = %v, want %v", v[3:6], red)
	}

	v = ColoredWireframe(v, box, 0, red)
	if got := len(v); got != 2*BBoxWireframeVertexCount*ColoredVertexStride {
		t.Errorf("append len = %d, want %d", got, 2*BBoxWireframeVertexCount*ColoredVertexStride)
	}
}
