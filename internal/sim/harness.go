package sim

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/itohio/EasyDrive/pkg/robot/actuator"
	"github.com/itohio/EasyDrive/pkg/robot/drivetrain"
	"github.com/itohio/EasyDrive/pkg/robot/tracking"
)

// Harness wires a simulated robot into real tracking and drivetrain
// subsystems and steps all three in lockstep on a mock clock.
//
// The drivetrain motors double as parallel tracking wheels, mirroring the
// usual no-tracking-wheel drivetrain setup.
type Harness struct {
	Robot      *Robot
	Tracking   *tracking.Tracking
	Drivetrain *drivetrain.Drivetrain
	Clock      *clock.Mock
}

func NewHarness(robot *Robot, opts ...drivetrain.Option) *Harness {
	mock := clock.NewMock()
	left, right := robot.Left(), robot.Right()
	trk := tracking.New(
		[]*tracking.Wheel{
			tracking.NewParallel(robot.circumference, robot.trackWidth/2, actuator.Rotation(left)),
			tracking.NewParallel(robot.circumference, -robot.trackWidth/2, actuator.Rotation(right)),
		},
		nil,
		robot.Gyro(),
		tracking.WithClock(mock),
	)
	opts = append([]drivetrain.Option{drivetrain.WithClock(mock)}, opts...)
	return &Harness{
		Robot:      robot,
		Tracking:   trk,
		Drivetrain: drivetrain.New(left, right, trk, 12, opts...),
		Clock:      mock,
	}
}

// StepTicks advances the world n ticks of the control cadence: physics
// first, then odometry, then the runner.
func (h *Harness) StepTicks(n int) {
	for i := 0; i < n; i++ {
		h.Clock.Add(drivetrain.LoopTime)
		h.Robot.Step(drivetrain.LoopTime)
		h.Tracking.Tick()
		h.Drivetrain.Tick()
	}
}

// RunUntil steps until done is closed or the deadline elapses, reporting
// whether the action finished in time.
func (h *Harness) RunUntil(done <-chan struct{}, deadline time.Duration) bool {
	ticks := int(deadline / drivetrain.LoopTime)
	for i := 0; i < ticks; i++ {
		select {
		case <-done:
			return true
		default:
		}
		h.StepTicks(1)
	}
	select {
	case <-done:
		return true
	default:
		return false
	}
}
