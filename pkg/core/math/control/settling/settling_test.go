package settling

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestImmediateWithoutDuration(t *testing.T) {
	tol := New().ErrorTolerance(1).VelocityTolerance(1)
	assert.True(t, tol.Check(0.5, 0.5))
	assert.False(t, tol.Check(2, 0.5))
	assert.False(t, tol.Check(0.5, 2))
}

func TestUnsetTolerancesAlwaysHold(t *testing.T) {
	tol := New()
	assert.True(t, tol.Check(1e9, 1e9))
}

func TestSustainedDuration(t *testing.T) {
	mock := clock.NewMock()
	tol := New().
		ErrorTolerance(1).
		VelocityTolerance(1).
		ToleranceDuration(100 * time.Millisecond).
		WithClock(mock)

	assert.False(t, tol.Check(0.5, 0.5), "band just entered")
	mock.Add(50 * time.Millisecond)
	assert.False(t, tol.Check(0.5, 0.5))
	mock.Add(60 * time.Millisecond)
	assert.True(t, tol.Check(0.5, 0.5))
	// Monotone while the input stays in the band.
	mock.Add(10 * time.Millisecond)
	assert.True(t, tol.Check(0.9, 0.9))
}

func TestLeavingBandResetsDuration(t *testing.T) {
	mock := clock.NewMock()
	tol := New().
		ErrorTolerance(1).
		ToleranceDuration(100 * time.Millisecond).
		WithClock(mock)

	assert.False(t, tol.Check(0.5, 0))
	mock.Add(90 * time.Millisecond)
	assert.False(t, tol.Check(5, 0), "left the band")
	mock.Add(20 * time.Millisecond)
	assert.False(t, tol.Check(0.5, 0), "duration restarts")
	mock.Add(110 * time.Millisecond)
	assert.True(t, tol.Check(0.5, 0))
}

func TestTimeoutForcesSettled(t *testing.T) {
	mock := clock.NewMock()
	tol := New().
		ErrorTolerance(0.001).
		Timeout(time.Second).
		WithClock(mock)

	assert.False(t, tol.Check(100, 100))
	mock.Add(999 * time.Millisecond)
	assert.False(t, tol.Check(100, 100))
	mock.Add(time.Millisecond)
	assert.True(t, tol.Check(100, 100), "timeout elapsed")
}
