package actions

import (
	"github.com/chewxy/math32"

	. "github.com/itohio/EasyDrive/pkg/core/logger"
	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/control/settling"
	"github.com/itohio/EasyDrive/pkg/core/math/filter/pid"
	"github.com/itohio/EasyDrive/pkg/core/math/path"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
)

// nearestOvershoot lets the nearest-point search run slightly past the
// path ends so the hint cannot get pinned at a boundary.
const nearestOvershoot = 0.1

// PurePursuit follows a path by steering at the intersection of the path
// with the lookahead circle around the robot.
//
// The lookahead intersection degenerates as the robot nears the path
// terminus, so inside the disable-seeking distance the action hands off to
// a Boomerang aimed at the path end with the terminal tangent as approach
// heading.
type PurePursuit struct {
	path      path.Path
	pathTotal float32
	endPoint  vec.Vector2D

	currentTarget          vec.Vector2D
	lookahead              float32
	disableSeekingDistance float32
	lastT                  float32
	settled                bool
	finalSeeking           *Boomerang
	reverse                bool

	linear     *pid.Controller
	angular    *pid.Controller
	tolerances settling.Tolerances
	config     ActionConfig
}

var _ drivetrain.Action = (*PurePursuit)(nil)

func NewPurePursuit(p path.Path, disableSeekingDistance float32, config ActionConfig) *PurePursuit {
	end := p.Evaluate(1)
	return &PurePursuit{
		path:      p,
		pathTotal: p.Length(),
		endPoint:  end,
		// The disable-seeking check watches the distance to the current
		// target; seeding it with the terminus keeps the first tick from
		// handing off when the robot starts on the path.
		currentTarget:          end,
		lookahead:              config.PursuitLookahead,
		disableSeekingDistance: disableSeekingDistance,
		linear:                 config.LinearPID(0),
		angular:                config.PursuitTurnPID(0),
		tolerances:             config.LinearTolerances(),
		config:                 config,
	}
}

// Reversed makes the robot drive the path backwards, facing the back of
// the robot along the direction of travel.
func (a *PurePursuit) Reversed() *PurePursuit {
	a.reverse = true
	return a
}

func (a *PurePursuit) Update(ctx drivetrain.Context) *drivetrain.Pair {
	if a.settled {
		return nil
	}
	if a.finalSeeking != nil {
		return a.finalSeeking.Update(ctx)
	}

	data := ctx.Data

	currentT := path.NearestPoint(a.path, data.Offset, a.lastT, nearestOvershoot)
	pathDistance := a.path.LengthUntil(currentT)
	linearError := a.pathTotal - pathDistance
	if a.tolerances.Check(linearError, data.LinearVelocity()) {
		a.settled = true
		return nil
	}
	a.lastT = currentT

	if a.currentTarget.Distance(data.Offset) < a.disableSeekingDistance {
		seeking := NewBoomerang(a.endPoint, path.EvaluateAngle(a.path, 1), a.config)
		if a.reverse {
			seeking = seeking.Reversed()
		}
		a.finalSeeking = seeking
		return seeking.Update(ctx)
	}

	if targetT, ok := path.PointOnRadius(a.path, data.Offset, a.lookahead, currentT); ok {
		a.currentTarget = a.path.Evaluate(targetT)
	} else {
		// Strayed outside the lookahead circle; keep steering at the last
		// good target.
		Log.Warn().
			Float32("x", data.Offset.X()).
			Float32("y", data.Offset.Y()).
			Msg("pure pursuit: no lookahead intersection")
	}

	effectiveHeading := data.Heading
	if a.reverse {
		effectiveHeading += math.HalfTurn
	}
	angleError := a.currentTarget.Clone().Sub(data.Offset).Angle().Sub(effectiveHeading)

	angularOutput := a.angular.NextControlOutput(-angleError.Radians()).Output
	linearOutput := a.linear.NextControlOutput(-linearError).Output *
		math32.Max(angleError.Cos(), 0)
	if a.reverse {
		linearOutput = -linearOutput
	}

	pair := drivetrain.NewRPM(linearOutput-angularOutput, linearOutput+angularOutput)
	return &pair
}
