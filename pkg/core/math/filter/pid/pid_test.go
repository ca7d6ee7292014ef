package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProportional(t *testing.T) {
	c := New(10, 100).P(2, 100)
	out := c.NextControlOutput(7)
	assert.InDelta(t, 6, out.P, 1e-6)
	assert.InDelta(t, 6, out.Output, 1e-6)
}

func TestProportionalTermClamp(t *testing.T) {
	c := New(10, 100).P(2, 4)
	out := c.NextControlOutput(0)
	assert.InDelta(t, 4, out.P, 1e-6)
	assert.InDelta(t, 4, out.Output, 1e-6)
}

func TestOutputClamp(t *testing.T) {
	c := New(100, 10).P(5, 1000)
	out := c.NextControlOutput(0)
	assert.InDelta(t, 500, out.P, 1e-6)
	assert.InDelta(t, 10, out.Output, 1e-6)

	out = c.NextControlOutput(200)
	assert.InDelta(t, -10, out.Output, 1e-6)
}

func TestIntegralAccumulatesAndClamps(t *testing.T) {
	c := New(10, 100).I(1, 25)
	for i := 0; i < 2; i++ {
		c.NextControlOutput(0)
	}
	out := c.NextControlOutput(0)
	assert.InDelta(t, 25, out.I, 1e-6, "windup stops at the integral clamp")

	c.Reset()
	out = c.NextControlOutput(0)
	assert.InDelta(t, 10, out.I, 1e-6)
}

func TestDerivativeOnMeasurement(t *testing.T) {
	c := New(0, 100).D(2, 100)
	out := c.NextControlOutput(1)
	assert.InDelta(t, 0, out.D, 1e-6, "no derivative before two samples")

	out = c.NextControlOutput(4)
	assert.InDelta(t, -6, out.D, 1e-6)

	out = c.NextControlOutput(2)
	assert.InDelta(t, 4, out.D, 1e-6)
}

func TestCombinedTerms(t *testing.T) {
	c := New(10, 100).P(1, 100).I(0.5, 100)
	out := c.NextControlOutput(6)
	assert.InDelta(t, 4, out.P, 1e-6)
	assert.InDelta(t, 2, out.I, 1e-6)
	assert.InDelta(t, 6, out.Output, 1e-6)
}
