// Package pneumatic drives solenoid groups.
package pneumatic

import (
	"github.com/itohio/EasyDrive/pkg/robot/actuator"
	"github.com/itohio/EasyDrive/pkg/robot/device"
)

// Group is a set of solenoids actuated together. Some pistons are plumbed so
// that the low logic level extends them; LowIsExtended flips the polarity.
type Group struct {
	solenoids     []actuator.DigitalOut
	lowIsExtended bool
}

func New(lowIsExtended bool, solenoids ...actuator.DigitalOut) *Group {
	if len(solenoids) == 0 {
		panic("pneumatic: group requires at least one solenoid")
	}
	return &Group{
		solenoids:     solenoids,
		lowIsExtended: lowIsExtended,
	}
}

// Extend extends the piston(s).
func (g *Group) Extend() {
	g.set(!g.lowIsExtended)
}

// Retract retracts the piston(s).
func (g *Group) Retract() {
	g.set(g.lowIsExtended)
}

// Toggle flips the piston(s).
func (g *Group) Toggle() {
	if g.Extended() {
		g.Retract()
	} else {
		g.Extend()
	}
}

// Extended reports whether the piston(s) are extended. A read failure
// reports false.
func (g *Group) Extended() bool {
	level, err := g.solenoids[0].Level()
	if device.Report(err, "pneumatic: level read failed") {
		return false
	}
	return level == !g.lowIsExtended
}

func (g *Group) set(high bool) {
	for _, s := range g.solenoids {
		device.Report(s.SetLevel(high), "pneumatic: solenoid write failed")
	}
}
