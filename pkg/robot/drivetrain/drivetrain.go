// Package drivetrain runs closed-loop actions against a differential
// (tank) drivetrain.
//
// A single cooperative runner owns the active action slot: each tick it
// reads the latest tracking snapshot, asks the action for a command, applies
// unit handling and limits, and writes the motor setpoints. Only one action
// is active at a time; callers replace the slot and await completion.
package drivetrain

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/robot/actuator"
	"github.com/itohio/EasyDrive/pkg/robot/device"
	"github.com/itohio/EasyDrive/pkg/robot/tracking"
)

// LoopTime is the runner cadence.
const LoopTime = 10 * time.Millisecond

// Context is the read-only snapshot passed to the active action each tick.
type Context struct {
	Data tracking.Data
}

// Action is a per-tick drivetrain controller. Update consumes the current
// snapshot and produces a command, or nil once the action is finished.
type Action interface {
	Update(ctx Context) *Pair
}

// VoltageAction emits a fixed pair every tick and never finishes on its
// own. It is the operator-control primitive and doubles as a stop when the
// pair is zero.
type VoltageAction struct {
	Pair Pair
}

func (a *VoltageAction) Update(Context) *Pair {
	pair := a.Pair
	return &pair
}

type slot struct {
	action   Action
	done     chan struct{}
	finished bool
	progress func(tracking.Data)
}

// Drivetrain owns the motors of a differential drivetrain and the runner
// that drives them.
type Drivetrain struct {
	mu      sync.Mutex
	current slot

	maxVoltage      float32
	maxVoltageDirty bool
	maxAccel        float32
	lastLeftRPM     float32
	lastRightRPM    float32

	left     actuator.MotorGroup
	right    actuator.MotorGroup
	tracking *tracking.Tracking

	clk clock.Clock
}

type Option func(*Drivetrain)

// WithClock substitutes the time source. Tests use a mock clock.
func WithClock(clk clock.Clock) Option {
	return func(d *Drivetrain) { d.clk = clk }
}

// WithMaxAcceleration limits how fast RPM setpoints may change, in RPM per
// second. Zero disables limiting. The limit only applies to velocity
// commands; voltage commands go straight to the H-bridge.
func WithMaxAcceleration(rpmPerSecond float32) Option {
	return func(d *Drivetrain) { d.maxAccel = rpmPerSecond }
}

func New(left, right actuator.MotorGroup, trk *tracking.Tracking, maxVoltage float32, opts ...Option) *Drivetrain {
	d := &Drivetrain{
		left:            left,
		right:           right,
		tracking:        trk,
		maxVoltage:      maxVoltage,
		maxVoltageDirty: true,
		clk:             clock.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the runner loop until the context is cancelled.
func (d *Drivetrain) Run(ctx context.Context) {
	ticker := d.clk.Ticker(LoopTime)
	defer ticker.Stop()
	for {
		d.Tick()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick performs a single runner update.
func (d *Drivetrain) Tick() {
	d.mu.Lock()
	if d.maxVoltageDirty {
		d.maxVoltageDirty = false
		limit := d.maxVoltage
		d.mu.Unlock()
		device.Report(d.left.SetVoltageLimit(limit), "drivetrain: left voltage limit")
		device.Report(d.right.SetVoltageLimit(limit), "drivetrain: right voltage limit")
		d.mu.Lock()
	}
	action := d.current.action
	progress := d.current.progress
	d.mu.Unlock()

	if action == nil {
		return
	}

	snapshot := d.tracking.Current()
	if progress != nil {
		progress(snapshot)
	}

	command := action.Update(Context{Data: snapshot})
	if command == nil {
		device.Report(d.left.SetVoltage(0), "drivetrain: left stop")
		device.Report(d.right.SetVoltage(0), "drivetrain: right stop")
		d.mu.Lock()
		// The slot stays populated until the caller replaces it; only the
		// done flag fires, and only once.
		if d.current.action == action && !d.current.finished {
			d.current.finished = true
			if d.current.done != nil {
				close(d.current.done)
			}
		}
		d.mu.Unlock()
		return
	}

	pair := *command
	if d.tracking.Reverse() {
		pair = pair.Reverse()
	}

	d.mu.Lock()
	maxVoltage := d.maxVoltage
	maxAccel := d.maxAccel
	lastLeft, lastRight := d.lastLeftRPM, d.lastRightRPM
	d.mu.Unlock()

	switch pair.Units {
	case UnitsVoltage:
		pair = pair.Max(maxVoltage)
		device.Report(d.left.SetVoltage(pair.Left), "drivetrain: left voltage")
		device.Report(d.right.SetVoltage(pair.Right), "drivetrain: right voltage")
	case UnitsRPM:
		if maxAccel > 0 {
			step := maxAccel * float32(LoopTime.Seconds())
			pair.Left = math.Clamp(pair.Left, lastLeft-step, lastLeft+step)
			pair.Right = math.Clamp(pair.Right, lastRight-step, lastRight+step)
		}
		d.mu.Lock()
		d.lastLeftRPM, d.lastRightRPM = pair.Left, pair.Right
		d.mu.Unlock()
		device.Report(d.left.SetVelocity(pair.Left), "drivetrain: left velocity")
		device.Report(d.right.SetVelocity(pair.Right), "drivetrain: right velocity")
	}
}

// DoOption configures a single action submission.
type DoOption func(*slot)

// WithProgress registers a callback invoked with each tracking snapshot
// while the action runs.
func WithProgress(progress func(tracking.Data)) DoOption {
	return func(s *slot) { s.progress = progress }
}

// Start installs an action and returns a channel closed when it finishes.
// The previous action, if any, is replaced; its awaiters are never resolved.
func (d *Drivetrain) Start(action Action, opts ...DoOption) <-chan struct{} {
	s := slot{
		action: action,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(&s)
	}
	d.mu.Lock()
	d.current = s
	d.mu.Unlock()
	return s.done
}

// Do runs an action to completion. It returns the context error when
// cancelled, in which case the action is removed from the slot.
func (d *Drivetrain) Do(ctx context.Context, action Action, opts ...DoOption) error {
	done := d.Start(action, opts...)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		d.mu.Lock()
		if d.current.action == action {
			d.current = slot{}
		}
		d.mu.Unlock()
		return ctx.Err()
	}
}

// SetVoltage replaces the active action with a fixed voltage output.
func (d *Drivetrain) SetVoltage(pair Pair) {
	d.mu.Lock()
	d.current = slot{action: &VoltageAction{Pair: pair}}
	d.mu.Unlock()
}

// Cancel clears the active action slot. The cancelled action's done flag is
// left unset; use Do with a cancellable context to observe cancellation.
func (d *Drivetrain) Cancel() {
	d.mu.Lock()
	d.current = slot{}
	d.mu.Unlock()
}

// SetMaxVoltage changes the voltage ceiling. The new limit is pushed to the
// motors on the next tick.
func (d *Drivetrain) SetMaxVoltage(volts float32) {
	d.mu.Lock()
	if d.maxVoltage != volts {
		d.maxVoltage = volts
		d.maxVoltageDirty = true
	}
	d.mu.Unlock()
}

// MaxVoltage returns the current voltage ceiling.
func (d *Drivetrain) MaxVoltage() float32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.maxVoltage
}
