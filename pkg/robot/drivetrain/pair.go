package drivetrain

import "github.com/chewxy/math32"

// Units selects how a Pair is interpreted by the runner.
type Units int

const (
	// UnitsVoltage drives the H-bridge directly, in volts.
	UnitsVoltage Units = iota
	// UnitsRPM goes through the motor-side velocity PID.
	UnitsRPM
)

func (u Units) String() string {
	switch u {
	case UnitsVoltage:
		return "voltage"
	case UnitsRPM:
		return "rpm"
	default:
		return "unknown"
	}
}

// Pair is a differential drivetrain command.
type Pair struct {
	Left  float32
	Right float32
	Units Units
}

// FromVoltage promotes a scalar voltage to a symmetric pair.
func FromVoltage(volts float32) Pair {
	return Pair{Left: volts, Right: volts, Units: UnitsVoltage}
}

// NewVoltage constructs a voltage pair.
func NewVoltage(left, right float32) Pair {
	return Pair{Left: left, Right: right, Units: UnitsVoltage}
}

// NewRPM constructs a velocity pair.
func NewRPM(left, right float32) Pair {
	return Pair{Left: left, Right: right, Units: UnitsRPM}
}

// Max scales the pair down, preserving the left/right ratio, so both
// magnitudes stay within limit.
func (p Pair) Max(limit float32) Pair {
	left, right := math32.Abs(p.Left), math32.Abs(p.Right)
	if left <= limit && right <= limit {
		return p
	}
	var ratio float32
	if left >= right {
		ratio = limit / left
	} else {
		ratio = limit / right
	}
	p.Left *= ratio
	p.Right *= ratio
	return p
}

// Reverse swaps left and right.
func (p Pair) Reverse() Pair {
	p.Left, p.Right = p.Right, p.Left
	return p
}

// Average returns the mean of the two sides.
func (p Pair) Average() float32 {
	return (p.Left + p.Right) / 2
}
