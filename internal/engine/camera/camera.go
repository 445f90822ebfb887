// Package camera holds the per-frame camera and world translation state.
package camera

import (
	"time"

	"github.com/Faultbox/dddragon/pkg/math"
)

// WorldState is the camera pose, world translation and frame timestamp.
// It is read, never written, while a frame renders.
type WorldState struct {
	// Tait-Bryan angles of the camera, radians
	Pitch, Yaw, Roll float64

	// Translation added to every transformed point
	Translation math.Vec3

	// Milliseconds since epoch, drives time-animated rotations
	Timestamp int64
}

// Controller owns the WorldState between frames and applies input deltas.
type Controller struct {
	state WorldState

	// Step sizes applied per key press
	LookStep float64
	MoveStep float64

	// Pitch limits in radians; MinPitch == MaxPitch disables clamping
	MinPitch float64
	MaxPitch float64
}

// NewController creates a controller with the given step sizes and the
// camera at the origin looking down +Z.
func NewController(lookStep, moveStep float64) *Controller {
	return &Controller{
		LookStep: lookStep,
		MoveStep: moveStep,
	}
}

// Look rotates the camera by the given number of look steps.
func (c *Controller) Look(dPitch, dYaw float64) {
	c.state.Pitch += dPitch * c.LookStep
	c.state.Yaw += dYaw * c.LookStep

	if c.MinPitch != c.MaxPitch {
		if c.state.Pitch < c.MinPitch {
			c.state.Pitch = c.MinPitch
		}
		if c.state.Pitch > c.MaxPitch {
			c.state.Pitch = c.MaxPitch
		}
	}
}

// Move translates the world by the given number of move steps.
func (c *Controller) Move(dx, dy, dz float64) {
	c.state.Translation = c.state.Translation.Add(math.Vec3{X: dx, Y: dy, Z: dz}.Scale(c.MoveStep))
}

// Tick refreshes the timestamp. Call once at the start of each frame.
func (c *Controller) Tick(now time.Time) {
	c.state.Timestamp = now.UnixMilli()
}

// SetTimestamp injects a synthetic timestamp in milliseconds.
func (c *Controller) SetTimestamp(ms int64) {
	c.state.Timestamp = ms
}

// Reset restores the camera pose and translation, keeping the timestamp.
func (c *Controller) Reset() {
	c.state = WorldState{Timestamp: c.state.Timestamp}
}

// Snapshot returns a copy of the state for one frame.
func (c *Controller) Snapshot() WorldState {
	return c.state
}
