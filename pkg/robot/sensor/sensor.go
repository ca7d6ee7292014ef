// Package sensor defines the sensor interfaces consumed by odometry.
//
// Hardware drivers live outside this module; anything that can report a
// monotonic shaft angle or a heading plugs in here.
package sensor

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
)

// Rotation reports a monotonic (unwrapped) shaft angle. Encoders and motor
// group position proxies implement this.
type Rotation interface {
	Position() (math.Angle, error)
}

// Heading reports a monotonic heading. The value does not wrap around.
type Heading interface {
	Heading() (math.Angle, error)
}

// WrappingHeading reports a heading wrapped to [0, 2*pi), e.g. a gyroscope
// yaw. Adapt it with a WrappingHeadingCorrector before handing it to
// odometry.
type WrappingHeading interface {
	WrappingHeading() (math.Angle, error)
}

// RotationFunc adapts a plain function to the Rotation interface.
type RotationFunc func() (math.Angle, error)

func (f RotationFunc) Position() (math.Angle, error) {
	return f()
}

// HeadingFunc adapts a plain function to the Heading interface.
type HeadingFunc func() (math.Angle, error)

func (f HeadingFunc) Heading() (math.Angle, error) {
	return f()
}
