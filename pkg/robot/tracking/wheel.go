package tracking

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
	"github.com/itohio/EasyDrive/pkg/robot/device"
	"github.com/itohio/EasyDrive/pkg/robot/sensor"
)

// MountingDirection is the orientation of a tracking wheel relative to the
// robot's forward direction.
type MountingDirection int

const (
	// Parallel wheels roll along the forward axis.
	Parallel MountingDirection = iota
	// Perpendicular wheels roll along the lateral axis.
	Perpendicular
)

// Wheel is an encoder-backed tracking wheel.
//
// The mounting offset is the signed distance from the tracking center along
// the axis perpendicular to the wheel's rolling direction; it cancels the
// rotation-induced part of the encoder delta.
type Wheel struct {
	circumference  float32
	mountingOffset float32
	direction      MountingDirection
	source         sensor.Rotation
	lastPosition   math.Angle
	primed         bool
}

func NewWheel(circumference, mountingOffset float32, direction MountingDirection, source sensor.Rotation) *Wheel {
	w := &Wheel{
		circumference:  circumference,
		mountingOffset: mountingOffset,
		direction:      direction,
		source:         source,
	}
	if position, err := source.Position(); err == nil {
		w.lastPosition = position
		w.primed = true
	}
	return w
}

func NewParallel(circumference, mountingOffset float32, source sensor.Rotation) *Wheel {
	return NewWheel(circumference, mountingOffset, Parallel, source)
}

func NewPerpendicular(circumference, mountingOffset float32, source sensor.Rotation) *Wheel {
	return NewWheel(circumference, mountingOffset, Perpendicular, source)
}

func (w *Wheel) MountingOffset() float32 {
	return w.mountingOffset
}

func (w *Wheel) MountingDirection() MountingDirection {
	return w.direction
}

// Delta returns the rolled distance in mm since the last read and advances
// the recorded shaft position. A sensor error contributes zero this tick.
func (w *Wheel) Delta() float32 {
	position, err := w.source.Position()
	if device.Report(err, "tracking: wheel encoder read failed") {
		return 0
	}
	if !w.primed {
		w.lastPosition = position
		w.primed = true
		return 0
	}
	delta := position - w.lastPosition
	w.lastPosition = position
	return delta.Radians() / (2 * math32.Pi) * w.circumference
}

// LocalDelta converts the encoder delta into a displacement in the robot's
// body frame, with +y forward and +x to the right.
//
// For a wheel rotating about a center displaced by the mounting offset, the
// chord traveled is 2*sin(d0/2)*(ds/d0 + offset) where d0 is the heading
// delta and ds the rolled distance. The limit at d0 = 0 is ds, which must be
// taken explicitly.
func (w *Wheel) LocalDelta(headingDelta math.Angle) vec.Vector2D {
	delta := w.Delta()
	d0 := headingDelta.Radians()
	if d0 != 0 {
		delta = 2 * math32.Sin(d0/2) * (delta/d0 + w.mountingOffset)
	}
	if w.direction == Parallel {
		return vec.New(0, delta)
	}
	return vec.New(delta, 0)
}
