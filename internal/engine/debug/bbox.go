// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/cliffhanger/internal/engine/picking"
)

// Color is an RGB triple in [0, 1].
type Color [3]float32

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// ColoredVertexStride is the float count per vertex in ColoredWireframe output.
const ColoredVertexStride = 6

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(box picking.AABB) []float32 {
	minX, minY, minZ := box.Min.X, box.Min.Y, box.Min.Z
	maxX, maxY, maxZ := box.Max.X, box.Max.Y, box.Max.Z
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// ColoredWireframe appends the box wireframe to dst as interleaved
// [x, y, z, r, g, b] vertices. padding grows the box on every side.
func ColoredWireframe(dst []float32, box picking.AABB, padding float32, c Color) []float32 {
	box.Min.X -= padding
	box.Min.Y -= padding
	box.Min.Z -= padding
	box.Max.X += padding
	box.Max.Y += padding
	box.Max.Z += padding

	pos := GenerateBBoxWireframeVertices(box)
	for i := 0; i < len(pos); i += 3 {
		dst = append(dst, pos[i], pos[i+1], pos[i+2], c[0], c[1], c[2])
	}
	return dst
}
