// Package actions implements the closed-loop drivetrain actions: the
// primitives (forward, rotation, turn-to-point), the nonlinear seeks
// (boomerang, pure pursuit) and the composites built from them.
package actions

import (
	"github.com/itohio/EasyDrive/pkg/core/math/control/settling"
	"github.com/itohio/EasyDrive/pkg/core/math/filter/pid"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

// Forward drives a straight distance with a PID on the Euclidean distance
// from the starting position.
//
// The measured distance is signed by the setpoint, so a negative distance
// drives backwards.
type Forward struct {
	controller *pid.Controller
	tolerances settling.Tolerances

	origin vec.Vector2D
	primed bool
}

var _ drivetrain.Action = (*Forward)(nil)

func NewForward(distance float32, config ActionConfig) *Forward {
	return &Forward{
		controller: config.LinearPID(distance),
		tolerances: config.LinearTolerances(),
	}
}

func (a *Forward) Update(ctx drivetrain.Context) *drivetrain.Pair {
	data := ctx.Data
	if !a.primed {
		a.origin = data.Offset
		a.primed = true
	}

	distance := data.Offset.Distance(a.origin)
	if a.controller.Setpoint < 0 {
		distance = -distance
	}
	if a.tolerances.Check(a.controller.Setpoint-distance, data.LinearVelocity()) {
		return nil
	}

	pair := drivetrain.FromVoltage(a.controller.NextControlOutput(distance).Output)
	return &pair
}
