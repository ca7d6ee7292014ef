package actions

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/control/settling"
	"github.com/itohio/EasyDrive/pkg/core/math/filter/pid"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

// Rotation turns the drivetrain in place to an absolute heading.
//
// The controller runs with setpoint zero on the negated shortest-arc error,
// so the output is CCW-positive whenever the target is CCW of the current
// heading.
type Rotation struct {
	target     math.Angle
	controller *pid.Controller
	tolerances settling.Tolerances
}

var _ drivetrain.Action = (*Rotation)(nil)

func NewRotation(target math.Angle, config ActionConfig) *Rotation {
	return &Rotation{
		target:     target,
		controller: config.TurnPID(0),
		tolerances: config.TurnTolerances(),
	}
}

func (a *Rotation) Update(ctx drivetrain.Context) *drivetrain.Pair {
	data := ctx.Data

	err := a.target.Sub(data.Heading)
	if a.tolerances.Check(err.Radians(), data.AngularVelocity) {
		return nil
	}

	output := a.controller.NextControlOutput(-err.Radians()).Output
	pair := drivetrain.NewRPM(-output, output)
	return &pair
}
