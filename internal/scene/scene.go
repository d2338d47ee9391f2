package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"cactus-gen/internal/cactus"
	"cactus-gen/internal/geom"
	"cactus-gen/internal/orbit"
	"cactus-gen/internal/primitives"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 120
	axisLineAlpha  = 200

	fovy = 50
	// dragSensitivity converts mouse pixels to radians of orbit.
	dragSensitivity = 0.005
	// zoomStep is the distance factor per wheel notch.
	zoomStep = 0.9
)

// Background is the clear colour behind the cactus (stone-50).
var Background = rl.NewColor(0xfa, 0xfa, 0xf9, 255)

// lightPos is where the directional light shines from; the light points at the origin.
var lightPos = geom.V3(5, 10, 7.5)

// Scene holds the orbit camera and draws the current cactus. Update runs camera
// logic; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	// floor is the grid height: the bottom of the shown cactus.
	floor  float32
	orbit  *orbit.Orbit
	meshes *primitives.Registry
}

// New returns a scene with a perspective camera at (0,1,8) looking at the origin,
// drawing through meshes. Grid is visible and auto-rotation on by default.
func New(meshes *primitives.Registry) *Scene {
	s := &Scene{
		GridVisible: true,
		orbit:       orbit.New(geom.V3(0, 1, 8), geom.Vec3{}),
		meshes:      meshes,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetAutoRotate turns the idle camera spin on or off.
func (s *Scene) SetAutoRotate(on bool) {
	s.orbit.AutoRotate = on
}

// AutoRotate reports whether the camera spins while idle.
func (s *Scene) AutoRotate() bool {
	return s.orbit.AutoRotate
}

// Show makes g the drawn cactus and points the camera at its focus.
func (s *Scene) Show(g *cactus.Group) {
	if g == s.meshes.Group() {
		return
	}
	s.meshes.Sync(g)
	if g != nil {
		s.orbit.Target = g.Focus
		if box := g.Bounds(); !box.IsEmpty() {
			s.floor = box.Min.Y
		}
	}
}

// Update runs once per frame. When input is true the left mouse button drags
// the orbit and the wheel zooms; otherwise only auto-rotation moves the camera.
func (s *Scene) Update(input bool) {
	if input {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.GetMouseDelta()
			s.orbit.Drag(-d.X*dragSensitivity, d.Y*dragSensitivity)
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.orbit.Zoom(math32.Pow(zoomStep, wheel))
		}
	}
	s.orbit.Step(rl.GetFrameTime())
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	eye, target := s.orbit.Eye(), s.orbit.Target
	s.Camera.Position = rl.NewVector3(eye.X, eye.Y, eye.Z)
	s.Camera.Target = rl.NewVector3(target.X, target.Y, target.Z)
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
// Draws the grid first when GridVisible is true, then the cactus.
func (s *Scene) Draw() {
	eye := s.orbit.Eye()
	light := lightPos.Normalize()
	s.meshes.SetView([3]float32{eye.X, eye.Y, eye.Z}, [3]float32{light.X, light.Y, light.Z})

	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGroundGrid(s.floor)
	}
	s.meshes.Draw()
	rl.EndMode3D()
}

// drawGroundGrid draws a grid on the horizontal plane at height y with major/minor lines
// and the X and Z axes. Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGroundGrid(y float32) {
	minor := rl.NewColor(120, 113, 108, gridMinorAlpha)
	major := rl.NewColor(87, 83, 78, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(i), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(i)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), y, 0
	end.X, end.Y, end.Z = float32(gridExtent), y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, y, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
