// Package actuator defines the drivetrain-facing motor interfaces.
//
// Hardware drivers implement MotorGroup; the control loops only ever talk to
// these interfaces, so a simulator can stand in for the real drivetrain.
package actuator

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/robot/sensor"
)

// MotorGroup is a set of motors driven together as one side of the
// drivetrain. Velocities are RPM at the wheel output, post-gearing.
type MotorGroup interface {
	// Position returns the accumulated shaft angle of the group.
	Position() (math.Angle, error)
	// Velocity returns the current wheel speed in RPM.
	Velocity() (float32, error)
	// SetVoltage drives the group open-loop, in volts.
	SetVoltage(volts float32) error
	// SetVelocity drives the group through the motor-side velocity PID.
	SetVelocity(rpm float32) error
	// SetVoltageLimit caps the voltage the group may output.
	SetVoltageLimit(volts float32) error
}

// Rotation exposes a motor group as a rotation sensor so drivetrain motors
// can double as parallel tracking wheels.
func Rotation(group MotorGroup) sensor.Rotation {
	return sensor.RotationFunc(group.Position)
}

// DigitalOut is a single digital output channel, e.g. a solenoid driver.
type DigitalOut interface {
	SetLevel(high bool) error
	Level() (bool, error)
}
