package actions

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

// TurnToPoint turns the robot to face a field point. The target heading is
// computed from the pose at the first tick and delegated to a Rotation.
type TurnToPoint struct {
	target  vec.Vector2D
	reverse bool
	config  ActionConfig

	rotation *Rotation
}

var _ drivetrain.Action = (*TurnToPoint)(nil)

func NewTurnToPoint(target vec.Vector2D, config ActionConfig) *TurnToPoint {
	return &TurnToPoint{
		target: target,
		config: config,
	}
}

// Reversed makes the action face the back of the robot towards the point.
func (a *TurnToPoint) Reversed() *TurnToPoint {
	a.reverse = true
	return a
}

func (a *TurnToPoint) Update(ctx drivetrain.Context) *drivetrain.Pair {
	if a.rotation == nil {
		heading := a.target.Clone().Sub(ctx.Data.Offset).Angle()
		if a.reverse {
			heading += math.HalfTurn
		}
		a.rotation = NewRotation(heading, a.config)
	}
	return a.rotation.Update(ctx)
}
