// Package tracking fuses tracking-wheel encoders and a heading sensor into
// a continuously updated field pose.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/device"
	"github.com/itohio/EasyDrive/pkg/robot/sensor"
)

// DefaultInterval matches the update interval of the heading sensor.
const DefaultInterval = 10 * time.Millisecond

// Tracking integrates wheel deltas and heading into a global pose.
//
// The heading sensor reports CW-positive while the pose math is
// CCW-positive; the stored heading offset folds the sign flip and SetPose
// re-anchoring into one term, so heading = -(raw + offset) at all times.
type Tracking struct {
	mu            sync.Mutex
	current       Data
	headingOffset math.Angle
	lastRaw       math.Angle
	rawPrimed     bool
	reverse       bool

	parallel      []*Wheel
	perpendicular []*Wheel
	headingSensor sensor.Heading

	clk      clock.Clock
	interval time.Duration
}

type Option func(*Tracking)

// WithClock substitutes the time source. Tests use a mock clock.
func WithClock(clk clock.Clock) Option {
	return func(t *Tracking) { t.clk = clk }
}

// WithInterval overrides the update cadence.
func WithInterval(interval time.Duration) Option {
	return func(t *Tracking) { t.interval = interval }
}

// New creates a tracking subsystem from the given wheels and heading
// sensor. Wheels missing in a direction simply leave that axis untracked;
// drivetrain motors can be passed as parallel wheels if desired.
//
// The initial pose is (0, 0) with heading 0. Set the real starting pose with
// SetPose before autonomous.
func New(parallel, perpendicular []*Wheel, headingSensor sensor.Heading, opts ...Option) *Tracking {
	t := &Tracking{
		parallel:      parallel,
		perpendicular: perpendicular,
		headingSensor: headingSensor,
		clk:           clock.New(),
		interval:      DefaultInterval,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run executes the odometry loop until the context is cancelled. Sensor
// errors skip the tick; the loop itself never exits on its own.
func (t *Tracking) Run(ctx context.Context) {
	ticker := t.clk.Ticker(t.interval)
	defer ticker.Stop()
	for {
		t.Tick()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick performs a single odometry update.
func (t *Tracking) Tick() {
	raw, err := t.headingSensor.Heading()
	if device.Report(err, "tracking: heading read failed") {
		// No update this tick; wheel deltas carry over to the next one.
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.rawPrimed {
		t.lastRaw = raw
		t.rawPrimed = true
	}
	// The sensor counts CW as positive, the pose math CCW.
	headingDelta := t.lastRaw - raw
	t.lastRaw = raw
	heading := -(raw + t.headingOffset)

	// Parallel and perpendicular wheels are averaged separately, then the
	// two axes summed into one body-frame displacement.
	displacement := averageLocalDelta(t.perpendicular, headingDelta)
	displacement.Add(averageLocalDelta(t.parallel, headingDelta))

	// The wheel-local frame has +y forward; at the midpoint heading of the
	// tick, forward is a quarter turn CCW from the frame's +x.
	averageHeading := heading - headingDelta/2
	displacement.Rotate(averageHeading - math.QuarterTurn)

	offset := *t.current.Offset.Clone().Add(displacement)
	t.current = advance(t.current, offset, heading, float32(headingDelta), raw, t.clk.Now())
}

func averageLocalDelta(wheels []*Wheel, headingDelta math.Angle) vec.Vector2D {
	var sum vec.Vector2D
	if len(wheels) == 0 {
		return sum
	}
	for _, w := range wheels {
		sum.Add(w.LocalDelta(headingDelta))
	}
	sum.MulC(1 / float32(len(wheels)))
	return sum
}

// Current returns the latest snapshot, mirrored across the field center
// line when reverse mode is active.
func (t *Tracking) Current() Data {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reverse {
		return mirror(t.current)
	}
	return t.current
}

// mirror reflects a snapshot across the field's center line: y and heading
// are complemented along with their derivatives.
func mirror(d Data) Data {
	d.Offset[1] = -d.Offset[1]
	d.Heading = (math.FullTurn - d.Heading).WrappedFull()
	d.Velocity[1] = -d.Velocity[1]
	d.AngularVelocity = -d.AngularVelocity
	return d
}

// SetPose re-anchors the pose without an instantaneous jump: the heading
// offset is chosen so the current raw sensor reading maps onto the
// commanded heading.
//
// The pose is given in the transformed frame, i.e. with reverse mode active
// the commanded pose is the mirrored one, so routes read the same either
// way.
func (t *Tracking) SetPose(offset vec.Vector2D, heading math.Angle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.reverse {
		offset[1] = -offset[1]
		heading = (math.FullTurn - heading).WrappedFull()
	}

	raw := t.current.rawHeading
	t.headingOffset = -heading - raw
	t.current = Data{
		Offset:     offset,
		Heading:    heading.WrappedFull(),
		Timestamp:  t.clk.Now(),
		rawHeading: raw,
		primed:     true,
	}
}

// Reverse reports whether reverse mode is active.
func (t *Tracking) Reverse() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reverse
}

// SetReverse mirrors the reported pose across the field's center line.
// Routes written for one alliance side then drive the other side unchanged;
// the drivetrain swaps left and right commands to match.
//
// Turn it off for driver control, or the sticks will feel mirrored too.
func (t *Tracking) SetReverse(reverse bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reverse = reverse
}
