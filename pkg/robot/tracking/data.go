package tracking

import (
	"time"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

// Data is an instantaneous odometry snapshot: the field-relative pose and
// its first derivative.
//
// Heading is presented wrapped to [0, 2*pi); the integrator tracks a
// continuous value internally and resolves the wrap on output.
type Data struct {
	// Offset is the field-relative position in millimetres.
	Offset vec.Vector2D
	Heading math.Angle

	// Velocity is the linear velocity in mm/s, by finite difference.
	Velocity vec.Vector2D
	// AngularVelocity is in rad/s, by finite difference of the continuous
	// heading.
	AngularVelocity float32

	Timestamp time.Time
	DT        time.Duration

	// rawHeading is the last unmodified heading-sensor reading, retained so
	// SetPose can re-anchor without a jump.
	rawHeading math.Angle
	primed     bool
}

// advance derives the next snapshot from the previous one.
//
// heading is the continuous (unwrapped) heading and headingDelta its change
// since prev. On the first sample the velocities are zero.
func advance(prev Data, offset vec.Vector2D, heading math.Angle, headingDelta float32, raw math.Angle, now time.Time) Data {
	d := Data{
		Offset:     offset,
		Heading:    heading.WrappedFull(),
		Timestamp:  now,
		rawHeading: raw,
		primed:     true,
	}
	if !prev.primed {
		return d
	}
	d.DT = now.Sub(prev.Timestamp)
	if seconds := float32(d.DT.Seconds()); seconds > 0 {
		d.Velocity = *offset.Clone().Sub(prev.Offset).MulC(1 / seconds)
		d.AngularVelocity = headingDelta / seconds
	}
	return d
}

// LinearVelocity is the velocity component along the heading: the dot
// product of the velocity vector and the heading unit vector. It is signed,
// so being pushed backwards reads negative.
func (d Data) LinearVelocity() float32 {
	heading := vec.New(d.Heading.Cos(), d.Heading.Sin())
	return d.Velocity.Dot(heading)
}
