package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

func TestAdvanceComputesDerivatives(t *testing.T) {
	t0 := time.Unix(100, 0)
	prev := advance(Data{}, vec.New(0, 0), 0, 0, 0, t0)
	assert.Zero(t, prev.Velocity.Magnitude(), "first sample has no derivative")
	assert.Zero(t, prev.AngularVelocity)

	next := advance(prev, vec.New(100, -50), 0.1, 0.1, 0, t0.Add(100*time.Millisecond))
	assert.Equal(t, 100*time.Millisecond, next.DT)
	assert.InDelta(t, 1000, next.Velocity.X(), 1e-2)
	assert.InDelta(t, -500, next.Velocity.Y(), 1e-2)
	assert.InDelta(t, 1, next.AngularVelocity, 1e-4)
}

func TestAdvanceWrapsHeading(t *testing.T) {
	d := advance(Data{}, vec.New(0, 0), math.FullTurn+1, 0, 0, time.Unix(0, 0))
	assert.InDelta(t, 1, float32(d.Heading), 1e-4)
}

func TestLinearVelocityAlongHeading(t *testing.T) {
	d := Data{
		Heading:  0,
		Velocity: vec.New(1000, 0),
	}
	assert.InDelta(t, 1000, d.LinearVelocity(), 1e-2)

	d.Heading = math.QuarterTurn
	assert.InDelta(t, 0, d.LinearVelocity(), 1e-2)

	d.Heading = math.HalfTurn
	assert.InDelta(t, -1000, d.LinearVelocity(), 1e-2)
}
