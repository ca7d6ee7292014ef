package actions

import (
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
	"github.com/itohio/EasyDrive/pkg/robot/tracking"
)

// Lazy defers building its inner action until the first tick, when the
// live pose is available. Use it when the action's parameters depend on
// where the robot actually is when execution starts, e.g. "turn 30 degrees
// from wherever I am now".
type Lazy struct {
	build func(tracking.Data) drivetrain.Action
	inner drivetrain.Action
}

var _ drivetrain.Action = (*Lazy)(nil)

func NewLazy(build func(tracking.Data) drivetrain.Action) *Lazy {
	return &Lazy{build: build}
}

func (a *Lazy) Update(ctx drivetrain.Context) *drivetrain.Pair {
	if a.inner == nil {
		if a.build == nil {
			return nil
		}
		a.inner = a.build(ctx.Data)
		a.build = nil
	}
	return a.inner.Update(ctx)
}
