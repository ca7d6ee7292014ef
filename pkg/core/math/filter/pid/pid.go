package pid

import (
	"github.com/itohio/EasyDrive/pkg/core/math"
)

// Controller is a positional PID controller with a symmetric clamp on every
// term and on the summed output. Gains are expressed per tick; the control
// loops run at a fixed cadence, so no sample-period scaling is applied.
type Controller struct {
	Setpoint float32

	kp, kpLimit float32
	ki, kiLimit float32
	kd, kdLimit float32
	limit       float32

	iTerm           float32
	lastMeasurement float32
	primed          bool
}

// ControlOutput is the breakdown of a single controller update.
type ControlOutput struct {
	P, I, D float32
	// Output is P+I+D clamped to the overall limit.
	Output float32
}

// New creates a controller with the given setpoint and overall output limit.
// Term gains default to zero; configure them with P, I and D.
func New(setpoint, limit float32) *Controller {
	return &Controller{
		Setpoint: setpoint,
		limit:    limit,
	}
}

// P sets the proportional gain and the clamp on the proportional term.
func (c *Controller) P(gain, limit float32) *Controller {
	c.kp, c.kpLimit = gain, limit
	return c
}

// I sets the integral gain and the integral windup clamp.
func (c *Controller) I(gain, limit float32) *Controller {
	c.ki, c.kiLimit = gain, limit
	return c
}

// D sets the derivative gain and the clamp on the derivative term.
func (c *Controller) D(gain, limit float32) *Controller {
	c.kd, c.kdLimit = gain, limit
	return c
}

// Reset clears the integral term and the derivative history.
func (c *Controller) Reset() *Controller {
	c.iTerm = 0
	c.primed = false
	return c
}

// NextControlOutput advances the controller with a new measurement.
//
// The derivative acts on the measurement, not the error, so setpoint steps
// do not kick the output.
func (c *Controller) NextControlOutput(measurement float32) ControlOutput {
	e := c.Setpoint - measurement

	p := math.Clamp(c.kp*e, -c.kpLimit, c.kpLimit)

	c.iTerm = math.Clamp(c.iTerm+c.ki*e, -c.kiLimit, c.kiLimit)

	var d float32
	if c.primed {
		d = math.Clamp(-c.kd*(measurement-c.lastMeasurement), -c.kdLimit, c.kdLimit)
	}
	c.lastMeasurement = measurement
	c.primed = true

	return ControlOutput{
		P:      p,
		I:      c.iTerm,
		D:      d,
		Output: math.Clamp(p+c.iTerm+d, -c.limit, c.limit),
	}
}
