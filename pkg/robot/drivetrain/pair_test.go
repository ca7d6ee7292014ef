package drivetrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairMaxPreservesRatio(t *testing.T) {
	pair := NewVoltage(6, 3).Max(12)
	assert.Equal(t, NewVoltage(6, 3), pair, "already under the limit")

	pair = NewVoltage(24, 12).Max(12)
	assert.InDelta(t, 12, pair.Left, 1e-4)
	assert.InDelta(t, 6, pair.Right, 1e-4)

	pair = NewVoltage(-24, 12).Max(12)
	assert.InDelta(t, -12, pair.Left, 1e-4)
	assert.InDelta(t, 6, pair.Right, 1e-4)

	pair = NewVoltage(3, -30).Max(12)
	assert.InDelta(t, 1.2, pair.Left, 1e-4)
	assert.InDelta(t, -12, pair.Right, 1e-4)
}

func TestPairReverse(t *testing.T) {
	pair := NewRPM(1, 2).Reverse()
	assert.Equal(t, NewRPM(2, 1), pair)
}

func TestPairAverage(t *testing.T) {
	assert.InDelta(t, 4.5, NewVoltage(3, 6).Average(), 1e-5)
}

func TestFromVoltage(t *testing.T) {
	pair := FromVoltage(7)
	assert.Equal(t, Pair{Left: 7, Right: 7, Units: UnitsVoltage}, pair)
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "voltage", UnitsVoltage.String())
	assert.Equal(t, "rpm", UnitsRPM.String())
}
