// Package orbit implements the viewer's orbit camera: yaw and pitch around a
// target at a bounded distance, with optional auto-rotation and damping.
package orbit

import (
	"github.com/chewxy/math32"

	"cactus-gen/internal/geom"
)

const (
	MinDistance = 2
	MaxDistance = 20

	// AutoRotateSpeed is the idle spin in radians per second: one turn a minute.
	AutoRotateSpeed = 2 * math32.Pi / 60
	// Damping is the share of the remaining drag velocity removed each 60 Hz frame.
	Damping = 0.05

	// pitchLimit keeps the camera off the poles so the up vector stays valid.
	pitchLimit = math32.Pi/2 - 0.01
	// settle is the velocity below which damping stops.
	settle = 1e-5
)

// Orbit is the camera state. The zero value is not useful; use New.
type Orbit struct {
	Target     geom.Vec3
	Yaw        float32
	Pitch      float32
	Distance   float32
	AutoRotate bool

	yawVel, pitchVel float32
}

// New returns an orbit whose camera starts at eye looking at target.
func New(eye, target geom.Vec3) *Orbit {
	o := &Orbit{Target: target, AutoRotate: true}
	d := eye.Sub(target)
	o.Distance = clampDistance(d.Length())
	if l := d.Length(); l > 0 {
		o.Pitch = math32.Asin(min(max(d.Y/l, -1), 1))
		o.Yaw = math32.Atan2(d.X, d.Z)
	}
	return o
}

func clampDistance(d float32) float32 {
	return min(max(d, MinDistance), MaxDistance)
}

// Drag adds angular velocity in radians, e.g. from a mouse delta.
func (o *Orbit) Drag(dYaw, dPitch float32) {
	o.yawVel += dYaw
	o.pitchVel += dPitch
}

// Zoom scales the distance by factor, kept within [MinDistance, MaxDistance].
func (o *Orbit) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	o.Distance = clampDistance(o.Distance * factor)
}

// Step advances the orbit by dt seconds: applies pending drag with damping
// and, when enabled, auto-rotation.
func (o *Orbit) Step(dt float32) {
	if dt <= 0 {
		return
	}
	if o.AutoRotate {
		o.Yaw += AutoRotateSpeed * dt
	}
	o.Yaw += o.yawVel
	o.Pitch = min(max(o.Pitch+o.pitchVel, -pitchLimit), pitchLimit)

	keep := math32.Pow(1-Damping, dt*60)
	o.yawVel *= keep
	o.pitchVel *= keep
	if math32.Abs(o.yawVel) < settle {
		o.yawVel = 0
	}
	if math32.Abs(o.pitchVel) < settle {
		o.pitchVel = 0
	}
}

// Eye returns the camera position.
func (o *Orbit) Eye() geom.Vec3 {
	sp, cp := math32.Sincos(o.Pitch)
	sy, cy := math32.Sincos(o.Yaw)
	return o.Target.Add(geom.V3(cp*sy, sp, cp*cy).Scale(o.Distance))
}
