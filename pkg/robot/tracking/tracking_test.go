package tracking

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

type fakeHeading struct {
	value math.Angle
	err   error
}

func (f *fakeHeading) Heading() (math.Angle, error) {
	return f.value, f.err
}

// rig is a hand-driven odometry setup: two parallel wheels at +-50 mm and a
// CW-positive gyro, all scripted directly.
type rig struct {
	tracking *Tracking
	left     *fakeRotation
	right    *fakeRotation
	gyro     *fakeHeading
	clock    *clock.Mock
}

func newRig() *rig {
	r := &rig{
		left:  &fakeRotation{},
		right: &fakeRotation{},
		gyro:  &fakeHeading{},
		clock: clock.NewMock(),
	}
	r.tracking = New(
		[]*Wheel{
			NewParallel(100, 50, r.left),
			NewParallel(100, -50, r.right),
		},
		nil,
		r.gyro,
		WithClock(r.clock),
	)
	return r
}

func (r *rig) tick() {
	r.clock.Add(DefaultInterval)
	r.tracking.Tick()
}

// roll advances both encoders by the given distances in mm.
func (r *rig) roll(left, right float32) {
	r.left.value += math.Angle(left / 100 * 2 * math32.Pi)
	r.right.value += math.Angle(right / 100 * 2 * math32.Pi)
}

func TestStraightDrive(t *testing.T) {
	r := newRig()
	r.tick() // prime

	r.roll(100, 100)
	r.tick()

	current := r.tracking.Current()
	assert.InDelta(t, 100, current.Offset.X(), 1e-2)
	assert.InDelta(t, 0, current.Offset.Y(), 1e-2)
	assert.InDelta(t, 0, float32(current.Heading), 1e-4)
	assert.InDelta(t, 10000, current.Velocity.X(), 1, "100 mm in 10 ms")
	assert.InDelta(t, 10000, current.LinearVelocity(), 1)
}

func TestStraightDriveAtHeading(t *testing.T) {
	r := newRig()
	r.tick()

	// Face +y, then drive forward.
	r.tracking.SetPose(vec.New(0, 0), math.QuarterTurn)
	r.roll(100, 100)
	r.tick()

	current := r.tracking.Current()
	assert.InDelta(t, 0, current.Offset.X(), 1e-2)
	assert.InDelta(t, 100, current.Offset.Y(), 1e-2)
}

func TestRotationInPlace(t *testing.T) {
	r := newRig()
	r.tick()

	// CCW by 0.2 rad: the CW-positive gyro reads negative, the left wheel
	// rolls backwards.
	r.gyro.value = -0.2
	r.roll(-0.2*50, 0.2*50)
	r.tick()

	current := r.tracking.Current()
	assert.InDelta(t, 0.2, float32(current.Heading), 1e-4)
	assert.InDelta(t, 0, current.Offset.X(), 1e-2)
	assert.InDelta(t, 0, current.Offset.Y(), 1e-2)
	assert.InDelta(t, 20, current.AngularVelocity, 0.1, "0.2 rad in 10 ms")
}

func TestSetPoseWithoutSensorSample(t *testing.T) {
	r := newRig()
	r.tick()

	r.tracking.SetPose(vec.New(100, 200), 1)
	current := r.tracking.Current()
	assert.InDelta(t, 100, current.Offset.X(), 1e-3)
	assert.InDelta(t, 200, current.Offset.Y(), 1e-3)
	assert.InDelta(t, 1, float32(current.Heading), 1e-4)
	assert.Zero(t, current.Velocity.Magnitude())
}

func TestSetPoseSurvivesTicks(t *testing.T) {
	r := newRig()
	r.tick()

	r.tracking.SetPose(vec.New(100, 200), 1)
	r.tick()
	r.tick()

	current := r.tracking.Current()
	assert.InDelta(t, 100, current.Offset.X(), 1e-2)
	assert.InDelta(t, 200, current.Offset.Y(), 1e-2)
	assert.InDelta(t, 1, float32(current.Heading), 1e-3, "re-anchoring does not jump")
}

func TestReverseMirrorsPose(t *testing.T) {
	r := newRig()
	r.tick()
	r.tracking.SetPose(vec.New(10, 20), 0.5)

	r.tracking.SetReverse(true)
	mirrored := r.tracking.Current()
	assert.InDelta(t, 10, mirrored.Offset.X(), 1e-3)
	assert.InDelta(t, -20, mirrored.Offset.Y(), 1e-3)
	assert.InDelta(t, 2*math32.Pi-0.5, float32(mirrored.Heading), 1e-4)

	// Reverse twice is the identity.
	r.tracking.SetReverse(false)
	original := r.tracking.Current()
	assert.InDelta(t, 10, original.Offset.X(), 1e-3)
	assert.InDelta(t, 20, original.Offset.Y(), 1e-3)
	assert.InDelta(t, 0.5, float32(original.Heading), 1e-4)
}

func TestSetPoseInReversedFrame(t *testing.T) {
	r := newRig()
	r.tick()

	r.tracking.SetReverse(true)
	r.tracking.SetPose(vec.New(10, 20), 0.5)

	current := r.tracking.Current()
	assert.InDelta(t, 10, current.Offset.X(), 1e-3)
	assert.InDelta(t, 20, current.Offset.Y(), 1e-3)
	assert.InDelta(t, 0.5, float32(current.Heading), 1e-4)
}

func TestHeadingSensorErrorSkipsTick(t *testing.T) {
	r := newRig()
	r.tick()
	r.roll(100, 100)
	r.tick()
	before := r.tracking.Current()

	r.gyro.err = assert.AnError
	r.roll(100, 100)
	r.tick()
	assert.Equal(t, before, r.tracking.Current(), "failed tick leaves the snapshot alone")

	// Recovery integrates the missed motion.
	r.gyro.err = nil
	r.tick()
	after := r.tracking.Current()
	assert.InDelta(t, 200, after.Offset.X(), 1e-2)
}
