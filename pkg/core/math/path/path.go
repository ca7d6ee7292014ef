// Package path provides parametric planar curves for trajectory planning.
//
// A path is a continuous function [0, 1] -> R^2. Queries that locate a
// parameter from a field position (NearestPoint, PointOnRadius) are sampled
// local searches; they are deterministic and prefer the smaller parameter on
// ties.
package path

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

// Path is a parametric planar curve.
type Path interface {
	// Evaluate returns the point at parameter t.
	Evaluate(t float32) vec.Vector2D
	// LengthUntil returns the arc length of [0, t]. It is nondecreasing in
	// t, zero at t=0 and equal to Length at t=1.
	LengthUntil(t float32) float32
	// Length returns the total arc length.
	Length() float32
}

// AngleEvaluator is implemented by paths that know their tangent in closed
// form. Paths that do not are differentiated numerically by EvaluateAngle.
type AngleEvaluator interface {
	EvaluateAngle(t float32) math.Angle
}

const (
	// nearestStep is the parameter step of the NearestPoint local search.
	nearestStep = 0.01
	// radiusStep is the parameter step of the PointOnRadius sweep.
	radiusStep = 0.001
	// radiusTolerance is the largest distance residual (mm) accepted by
	// PointOnRadius.
	radiusTolerance = 3.0
)

// EvaluateAngle returns the tangent angle of the path at t, using the path's
// own closed form when available and a central finite difference otherwise.
func EvaluateAngle(p Path, t float32) math.Angle {
	if a, ok := p.(AngleEvaluator); ok {
		return a.EvaluateAngle(t)
	}
	const h = 1e-3
	before := p.Evaluate(t - h)
	after := p.Evaluate(t + h)
	return after.Sub(before).Angle()
}

func distanceAt(p Path, t float32, query vec.Vector2D) float32 {
	point := p.Evaluate(t)
	return point.Distance(query)
}

// NearestPoint returns the parameter of a locally nearest point to query.
//
// The search is bidirectional from hint with a fixed step: each direction
// advances while the sampled distance decreases and stops at the first
// non-decreasing sample. The window is [-overshoot, 1+overshoot]. Ties keep
// the smaller parameter.
func NearestPoint(p Path, query vec.Vector2D, hint, overshoot float32) float32 {
	bestT := hint
	bestDistance := distanceAt(p, hint, query)

	last := bestDistance
	for t := hint + nearestStep; t <= 1+overshoot; t += nearestStep {
		d := distanceAt(p, t, query)
		if d < bestDistance {
			bestDistance, bestT = d, t
		}
		if d >= last {
			break
		}
		last = d
	}

	last = distanceAt(p, hint, query)
	for t := hint - nearestStep; t >= -overshoot; t -= nearestStep {
		d := distanceAt(p, t, query)
		if d < bestDistance || (d == bestDistance && t < bestT) {
			bestDistance, bestT = d, t
		}
		if d >= last {
			break
		}
		last = d
	}

	return bestT
}

// PointOnRadius returns the parameter in [hint, 1] whose distance from query
// is closest to radius. It reports false when no sampled point comes within
// the acceptance tolerance of the radius.
func PointOnRadius(p Path, query vec.Vector2D, radius, hint float32) (float32, bool) {
	bestT := hint
	bestResidual := float32(math32.MaxFloat32)
	for t := hint; t <= 1; t += radiusStep {
		d := distanceAt(p, t, query)
		residual := math32.Abs(d - radius)
		if residual < bestResidual {
			bestResidual, bestT = residual, t
		}
	}
	if bestResidual >= radiusTolerance {
		return 0, false
	}
	return bestT, true
}
