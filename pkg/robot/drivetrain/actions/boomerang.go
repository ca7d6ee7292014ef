package actions

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/control/settling"
	"github.com/itohio/EasyDrive/pkg/core/math/filter/pid"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

// Boomerang seeks a target point and approach heading at once.
//
// Each tick it aims at a carrot pulled back from the target along the
// approach heading by lead times the remaining distance; as the robot
// closes in, the carrot converges onto the target, curving the approach
// into the commanded heading.
type Boomerang struct {
	target  vec.Vector2D
	heading math.Angle
	// lead is the carrot pull-back fraction in (0, 1].
	lead float32
	// close is the distance under which angular correction shuts off; the
	// angle to the carrot changes erratically near the goal and would
	// oscillate the drivetrain.
	close   float32
	reverse bool

	tolerances settling.Tolerances
	linear     *pid.Controller
	angular    *pid.Controller
}

var _ drivetrain.Action = (*Boomerang)(nil)

func NewBoomerang(target vec.Vector2D, heading math.Angle, config ActionConfig) *Boomerang {
	return &Boomerang{
		target:     target,
		heading:    heading,
		lead:       config.BoomerangLead,
		close:      config.BoomerangClose,
		tolerances: config.LinearTolerances(),
		linear:     config.LinearPID(0),
		angular:    config.TurnPID(0),
	}
}

// Reversed makes the robot drive backwards to the target, facing the back
// of the robot along the approach heading.
func (a *Boomerang) Reversed() *Boomerang {
	a.reverse = true
	return a
}

func (a *Boomerang) Update(ctx drivetrain.Context) *drivetrain.Pair {
	data := ctx.Data

	distance := data.Offset.Distance(a.target)
	carrotOffset := vec.New(a.heading.Cos(), a.heading.Sin())
	carrotOffset.MulC(a.lead * distance)
	carrot := *a.target.Clone().Sub(carrotOffset)

	local := *carrot.Clone().Sub(data.Offset)
	effectiveHeading := data.Heading
	if a.reverse {
		effectiveHeading += math.HalfTurn
	}
	angleError := local.Angle().Sub(effectiveHeading)
	distanceError := local.Magnitude()

	if a.tolerances.Check(distanceError, data.LinearVelocity()) {
		return nil
	}

	var angularOutput float32
	if distanceError >= a.close {
		angularOutput = a.angular.NextControlOutput(-angleError.Radians()).Output
	}

	// Facing more than a quarter turn away from the carrot, driving would
	// only add lateral error, so the linear term is gated on cos >= 0.
	linearOutput := a.linear.NextControlOutput(-distanceError).Output *
		math32.Max(angleError.Cos(), 0)
	if a.reverse {
		linearOutput = -linearOutput
	}

	pair := drivetrain.NewVoltage(linearOutput-angularOutput, linearOutput+angularOutput)
	return &pair
}
