package actions

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

type driveToPointState int

const (
	driveToPointNotStarted driveToPointState = iota
	driveToPointTurning
	driveToPointDriving
	driveToPointDone
)

// DriveToPoint first turns in place to face the target, then boomerangs to
// it with the approach heading frozen at the moment driving starts.
//
// Children are created on state entry and a finished child advances the
// machine within the same tick, so the composite never emits a dead tick
// between phases.
type DriveToPoint struct {
	target  vec.Vector2D
	reverse bool
	config  ActionConfig

	state driveToPointState
	turn  *TurnToPoint
	drive *Boomerang
}

var _ drivetrain.Action = (*DriveToPoint)(nil)

func NewDriveToPoint(target vec.Vector2D, config ActionConfig) *DriveToPoint {
	return &DriveToPoint{
		target: target,
		config: config,
	}
}

// Reversed makes the robot approach the target backwards.
func (a *DriveToPoint) Reversed() *DriveToPoint {
	a.reverse = true
	return a
}

func (a *DriveToPoint) Update(ctx drivetrain.Context) *drivetrain.Pair {
	// Re-dispatch on state transitions with a loop; the depth is bounded by
	// the number of states.
	for {
		switch a.state {
		case driveToPointNotStarted:
			a.turn = NewTurnToPoint(a.target, a.config)
			if a.reverse {
				a.turn = a.turn.Reversed()
			}
			a.state = driveToPointTurning
		case driveToPointTurning:
			if pair := a.turn.Update(ctx); pair != nil {
				return pair
			}
			heading := ctx.Data.Heading
			if a.reverse {
				heading += math.HalfTurn
			}
			a.drive = NewBoomerang(a.target, heading, a.config)
			if a.reverse {
				a.drive = a.drive.Reversed()
			}
			a.state = driveToPointDriving
		case driveToPointDriving:
			if pair := a.drive.Update(ctx); pair != nil {
				return pair
			}
			a.state = driveToPointDone
		default:
			return nil
		}
	}
}
