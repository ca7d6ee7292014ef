// Package sim provides a deterministic differential-drive simulator for
// exercising the tracking and drivetrain loops without hardware.
//
// Wheel speeds are held constant over each step and integrated with the
// exact arc solution, so odometry built on the chord formula reproduces the
// simulated pose to float rounding.
package sim

import (
	stdmath "math"
	"time"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/robot/actuator"
	"github.com/itohio/EasyDrive/pkg/robot/sensor"
)

// Robot is an ideal tank-drive robot: velocity setpoints are reached
// instantly and encoders are noiseless.
type Robot struct {
	trackWidth    float32
	circumference float32
	maxRPM        float32
	maxVoltage    float32

	x, y, heading float64

	leftRPM, rightRPM           float64
	leftDistance, rightDistance float64
}

func NewRobot(trackWidth, wheelCircumference, maxRPM float32) *Robot {
	return &Robot{
		trackWidth:    trackWidth,
		circumference: wheelCircumference,
		maxRPM:        maxRPM,
		maxVoltage:    12,
	}
}

// Step advances the simulation with the currently commanded wheel speeds.
func (r *Robot) Step(dt time.Duration) {
	seconds := dt.Seconds()
	circumference := float64(r.circumference)
	vl := r.leftRPM / 60 * circumference
	vr := r.rightRPM / 60 * circumference

	v := (vl + vr) / 2
	w := (vr - vl) / float64(r.trackWidth)
	dTheta := w * seconds

	var dx, dy float64
	if stdmath.Abs(w) < 1e-12 {
		dx = v * seconds * stdmath.Cos(r.heading)
		dy = v * seconds * stdmath.Sin(r.heading)
	} else {
		chord := 2 * v / w * stdmath.Sin(dTheta/2)
		mid := r.heading + dTheta/2
		dx = chord * stdmath.Cos(mid)
		dy = chord * stdmath.Sin(mid)
	}

	r.x += dx
	r.y += dy
	r.heading += dTheta
	r.leftDistance += vl * seconds
	r.rightDistance += vr * seconds
}

// Pose returns the true simulated pose.
func (r *Robot) Pose() (x, y, heading float32) {
	return float32(r.x), float32(r.y), float32(r.heading)
}

// Gyro returns a heading sensor with the hardware convention: CW positive.
func (r *Robot) Gyro() sensor.Heading {
	return sensor.HeadingFunc(func() (math.Angle, error) {
		return math.Angle(-r.heading), nil
	})
}

// Left returns the left motor group.
func (r *Robot) Left() actuator.MotorGroup {
	return &motor{robot: r, left: true}
}

// Right returns the right motor group.
func (r *Robot) Right() actuator.MotorGroup {
	return &motor{robot: r, left: false}
}

type motor struct {
	robot        *Robot
	left         bool
	voltageLimit float32
}

var _ actuator.MotorGroup = (*motor)(nil)

func (m *motor) Position() (math.Angle, error) {
	distance := m.robot.rightDistance
	if m.left {
		distance = m.robot.leftDistance
	}
	return math.Angle(distance / float64(m.robot.circumference) * 2 * stdmath.Pi), nil
}

func (m *motor) Velocity() (float32, error) {
	if m.left {
		return float32(m.robot.leftRPM), nil
	}
	return float32(m.robot.rightRPM), nil
}

func (m *motor) SetVoltage(volts float32) error {
	limit := m.robot.maxVoltage
	if m.voltageLimit > 0 && m.voltageLimit < limit {
		limit = m.voltageLimit
	}
	volts = math.Clamp(volts, -limit, limit)
	m.set(float64(volts / m.robot.maxVoltage * m.robot.maxRPM))
	return nil
}

func (m *motor) SetVelocity(rpm float32) error {
	m.set(float64(math.Clamp(rpm, -m.robot.maxRPM, m.robot.maxRPM)))
	return nil
}

func (m *motor) SetVoltageLimit(volts float32) error {
	m.voltageLimit = volts
	return nil
}

func (m *motor) set(rpm float64) {
	if m.left {
		m.robot.leftRPM = rpm
	} else {
		m.robot.rightRPM = rpm
	}
}
