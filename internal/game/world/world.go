// Package world holds the walkthrough's movement state: the camera, the
// ground it walks on, and the objects that travel with it.
package world

import (
	"github.com/Faultbox/heightwalk/internal/engine/camera"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// HeightSampler answers ground-height queries. *terrain.Terrain implements it.
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// Follower is moved by the same offset as the camera, so it stays centred
// on the viewer. Skybox faces follow the camera.
type Follower interface {
	Shift(dx, dy, dz float32)
}

// Controls is one frame of held movement keys.
type Controls struct {
	Forward, Back bool
	Left, Right   bool
	YawLeft       bool // decreases RY
	YawRight      bool // increases RY
	PitchUp       bool // increases RX
	PitchDown     bool // decreases RX
}

// Moving reports whether any translation key is held.
func (c Controls) Moving() bool {
	return c.Forward || c.Back || c.Left || c.Right
}

// Turning reports whether any rotation key is held.
func (c Controls) Turning() bool {
	return c.YawLeft || c.YawRight || c.PitchUp || c.PitchDown
}

// World is the per-frame movement state.
type World struct {
	Camera    *camera.FirstPerson
	Ground    HeightSampler
	Followers []Follower
}

// New creates a world with the camera standing on the ground.
func New(cam *camera.FirstPerson, ground HeightSampler) *World {
	w := &World{Camera: cam, Ground: ground}
	w.Spawn()
	return w
}

// Spawn drops the camera onto the ground at its current X and Z.
func (w *World) Spawn() {
	w.Camera.Y = w.groundAt(w.Camera.X, w.Camera.Z) + w.Camera.Height
}

// Follow registers objects that move with the camera.
func (w *World) Follow(f ...Follower) {
	w.Followers = append(w.Followers, f...)
}

// Step applies one frame of controls over dt seconds and reports whether
// the view changed.
//
// Each held direction contributes a step of MovementSpeed*dt along the
// camera's heading; the steps add up, so diagonals are faster. After moving,
// the eye is put back at ground height plus eye height and every follower is
// shifted by the step itself. Rotation is applied after translation, so a
// frame's movement uses the previous frame's heading.
func (w *World) Step(c Controls, dt float32) bool {
	cam := w.Camera

	if c.Moving() {
		speed := cam.MovementSpeed * dt
		var step math.Vec4
		add := func(right, back float32) {
			h := cam.Heading(right, back)
			step[0] += h[0]
			step[1] += h[1]
			step[2] += h[2]
		}

		if c.Forward {
			add(0, -speed)
		}
		if c.Left {
			add(-speed, 0)
		}
		if c.Back {
			add(0, speed)
		}
		if c.Right {
			add(speed, 0)
		}

		cam.Translate(step)
		cam.Y = w.groundAt(cam.X, cam.Z) + cam.Height
		for _, f := range w.Followers {
			f.Shift(step[0], step[1], step[2])
		}
	}

	turn := cam.RotationSpeed * dt
	if c.YawLeft {
		cam.Turn(-turn, 0)
	}
	if c.PitchUp {
		cam.Turn(0, turn)
	}
	if c.PitchDown {
		cam.Turn(0, -turn)
	}
	if c.YawRight {
		cam.Turn(turn, 0)
	}

	return c.Moving() || c.Turning()
}

func (w *World) groundAt(x, z float32) float32 {
	if w.Ground == nil {
		return 0
	}
	return w.Ground.HeightAt(x, z)
}

// Prop is an object standing on the ground at (X, Z), lifted by YOffset.
type Prop struct {
	X, Y, Z float32
	YOffset float32
}

// PlaceOnGround sets each prop's Y to the ground height under it plus its
// offset.
func (w *World) PlaceOnGround(props []Prop) {
	for i := range props {
		p := &props[i]
		p.Y = w.groundAt(p.X, p.Z) + p.YOffset
	}
}
