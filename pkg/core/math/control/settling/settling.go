// Package settling decides when a closed-loop motion is finished.
package settling

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/chewxy/math32"
)

// Tolerances is a settling predicate over an error signal and its velocity.
//
// Check reports true once the error and velocity magnitudes have both stayed
// inside their tolerance bands for the configured duration, or once the
// absolute timeout has elapsed. Tolerances that were never configured are
// treated as always satisfied.
type Tolerances struct {
	errorTolerance    float32
	hasErrorTolerance bool

	velocityTolerance    float32
	hasVelocityTolerance bool

	toleranceDuration time.Duration
	timeout           time.Duration

	clk clock.Clock

	started     bool
	start       time.Time
	within      bool
	withinSince time.Time
}

func New() Tolerances {
	return Tolerances{clk: clock.New()}
}

func (t Tolerances) ErrorTolerance(tolerance float32) Tolerances {
	t.errorTolerance = tolerance
	t.hasErrorTolerance = true
	return t
}

func (t Tolerances) VelocityTolerance(tolerance float32) Tolerances {
	t.velocityTolerance = tolerance
	t.hasVelocityTolerance = true
	return t
}

// ToleranceDuration sets how long both tolerances must hold simultaneously.
func (t Tolerances) ToleranceDuration(duration time.Duration) Tolerances {
	t.toleranceDuration = duration
	return t
}

// Timeout sets the absolute ceiling measured from the first Check call.
// Once it elapses, Check reports true regardless of the tolerances.
func (t Tolerances) Timeout(timeout time.Duration) Tolerances {
	t.timeout = timeout
	return t
}

// WithClock substitutes the time source. Tests use a mock clock.
func (t Tolerances) WithClock(clk clock.Clock) Tolerances {
	t.clk = clk
	return t
}

// Check advances the predicate with the current error and velocity.
func (t *Tolerances) Check(err, velocity float32) bool {
	if t.clk == nil {
		t.clk = clock.New()
	}
	now := t.clk.Now()
	if !t.started {
		t.started = true
		t.start = now
	}
	if t.timeout > 0 && now.Sub(t.start) >= t.timeout {
		return true
	}

	within := (!t.hasErrorTolerance || math32.Abs(err) < t.errorTolerance) &&
		(!t.hasVelocityTolerance || math32.Abs(velocity) < t.velocityTolerance)
	if !within {
		t.within = false
		return false
	}
	if t.toleranceDuration == 0 {
		return true
	}
	if !t.within {
		t.within = true
		t.withinSince = now
	}
	return now.Sub(t.withinSince) >= t.toleranceDuration
}
