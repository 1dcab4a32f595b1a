package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heightwalk/internal/engine/input"
	"github.com/Faultbox/heightwalk/internal/game/world"
)

// Key bindings.
const (
	keyForward    = sdl.SCANCODE_W
	keyBack       = sdl.SCANCODE_S
	keyLeft       = sdl.SCANCODE_A
	keyRight      = sdl.SCANCODE_D
	keyYawLeft    = sdl.SCANCODE_H
	keyYawRight   = sdl.SCANCODE_L
	keyPitchUp    = sdl.SCANCODE_J
	keyPitchDown  = sdl.SCANCODE_K
	keyQuit       = sdl.SCANCODE_Q
	keyEscape     = sdl.SCANCODE_ESCAPE
	keyScreenshot = sdl.SCANCODE_F12
)

func controls(in *input.Input) world.Controls {
	return world.Controls{
		Forward:   in.Held(keyForward),
		Back:      in.Held(keyBack),
		Left:      in.Held(keyLeft),
		Right:     in.Held(keyRight),
		YawLeft:   in.Held(keyYawLeft),
		YawRight:  in.Held(keyYawRight),
		PitchUp:   in.Held(keyPitchUp),
		PitchDown: in.Held(keyPitchDown),
	}
}
