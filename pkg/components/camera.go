package components

import (
	"math"

	"github.com/stratobyte/flightcore/pkg/ecs/core"
	"github.com/stratobyte/flightcore/pkg/math3"
)

// CameraBehavior selects how the Camera system derives this entity's pose
// each tick (spec.md §4.8).
type CameraBehavior int

const (
	CameraThirdPerson CameraBehavior = iota
	CameraFirstPerson
	CameraStatic
)

// Camera holds view parameters and, for the follow behaviors, a weak
// reference to the followed entity (spec.md §3: "EntityID references
// between components ... are weak: a lookup that fails yields a
// well-defined no-op, never a dangling access").
type Camera struct {
	Behavior CameraBehavior

	FOV       float64
	Near, Far float64

	FollowTarget    core.EntityID
	FollowOffset    math3.Vector3
	FollowSmoothing float64
}

// Validate enforces spec.md §3: "0 < near < far; fov ∈ (0, π)".
func (c Camera) Validate() error {
	if !(c.Near > 0 && c.Near < c.Far) {
		return errInvalid("camera: require 0 < near < far, got near=%.4f far=%.4f", c.Near, c.Far)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return errInvalid("camera: fov must be in (0, pi), got %.4f", c.FOV)
	}
	return nil
}
