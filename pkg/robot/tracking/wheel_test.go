package tracking

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/robot/device"
	"github.com/itohio/EasyDrive/pkg/robot/sensor"
)

type fakeRotation struct {
	value math.Angle
	err   error
}

func (f *fakeRotation) Position() (math.Angle, error) {
	return f.value, f.err
}

func TestWheelDelta(t *testing.T) {
	source := &fakeRotation{}
	w := NewParallel(100, 0, source)

	source.value = math.Angle(2 * math32.Pi)
	assert.InDelta(t, 100, w.Delta(), 1e-3, "one revolution rolls one circumference")
	assert.InDelta(t, 0, w.Delta(), 1e-3, "position is consumed")

	source.value = math.Angle(math32.Pi)
	assert.InDelta(t, -50, w.Delta(), 1e-3)
}

func TestWheelDeltaSensorError(t *testing.T) {
	source := &fakeRotation{}
	w := NewParallel(100, 0, source)

	source.value = math.Angle(2 * math32.Pi)
	source.err = device.Disconnected(4)
	assert.Zero(t, w.Delta(), "errors contribute zero")

	// The missed motion is recovered once the sensor returns.
	source.err = nil
	assert.InDelta(t, 100, w.Delta(), 1e-3)
}

func TestLocalDeltaStraight(t *testing.T) {
	parallelSource := &fakeRotation{}
	perpendicularSource := &fakeRotation{}
	parallel := NewParallel(100, 0, parallelSource)
	perpendicular := NewPerpendicular(100, 0, perpendicularSource)

	parallelSource.value = math.Angle(2 * math32.Pi)
	perpendicularSource.value = math.Angle(2 * math32.Pi)

	local := parallel.LocalDelta(0)
	assert.InDelta(t, 0, local.X(), 1e-4)
	assert.InDelta(t, 100, local.Y(), 1e-3)

	local = perpendicular.LocalDelta(0)
	assert.InDelta(t, 100, local.X(), 1e-3)
	assert.InDelta(t, 0, local.Y(), 1e-4)
}

func TestLocalDeltaArc(t *testing.T) {
	source := &fakeRotation{}
	w := NewParallel(100, 5, source)

	// 10 mm of roll with a 0.2 rad heading change.
	source.value = math.Angle(10.0 / 100.0 * 2 * math32.Pi)
	local := w.LocalDelta(0.2)
	want := 2 * math32.Sin(0.1) * (10/0.2 + 5)
	assert.InDelta(t, 0, local.X(), 1e-4)
	assert.InDelta(t, want, local.Y(), 1e-3)
}

func TestLocalDeltaZeroHeadingGuard(t *testing.T) {
	source := &fakeRotation{}
	w := NewPerpendicular(100, 25, source)

	source.value = math.Angle(2 * math32.Pi)
	local := w.LocalDelta(0)
	assert.InDelta(t, 100, local.X(), 1e-3, "the limit of the arc-chord at zero delta is the roll")
	assert.InDelta(t, 0, local.Y(), 1e-4)
}

var _ sensor.Rotation = (*fakeRotation)(nil)
