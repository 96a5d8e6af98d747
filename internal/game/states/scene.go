package states

import (
	"github.com/Faultbox/cliffhanger/internal/engine/camera"
	"github.com/Faultbox/cliffhanger/internal/engine/debug"
	"github.com/Faultbox/cliffhanger/internal/game/climb"
	"github.com/Faultbox/cliffhanger/pkg/math"
)

// Drawer is the slice of the renderer the states draw through.
type Drawer interface {
	DrawLines(vertices []float32, mvp math.Mat4)
	AspectRatio() float32
}

// Wireframe colours.
var (
	kindColors = map[climb.SurfaceKind]debug.Color{
		climb.Decors:           {0.35, 0.55, 0.35},
		climb.Obstacles:        {0.85, 0.45, 0.15},
		climb.SlipperyObjects:  {0.55, 0.85, 1.0},
		climb.GrippableObjects: {0.55, 0.45, 0.35},
		climb.End:              {1.0, 0.85, 0.1},
	}
	climberColor = debug.Color{0.9, 0.1, 0.1}
)

// sceneLines builds the map wireframe, one box per mesh coloured by kind.
func sceneLines(meshes []climb.Mesh, kindOf func(id string) climb.SurfaceKind) []float32 {
	v := make([]float32, 0, len(meshes)*debug.BBoxWireframeVertexCount*debug.ColoredVertexStride)
	for _, m := range meshes {
		v = debug.ColoredWireframe(v, m.Bounds, 0, kindColors[kindOf(m.ID)])
	}
	return v
}

// drawScene draws pre-built lines from cam.
func drawScene(d Drawer, lines []float32, cam camera.Camera, proj camera.Projection) {
	d.DrawLines(lines, camera.ViewProjection(cam, proj, d.AspectRatio()))
}
