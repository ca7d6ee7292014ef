// Package device defines the error model shared by sensors and actuators.
//
// Transient I/O failures (a cable knocked loose mid-match) must never kill a
// control loop: they are logged once per port and the tick is skipped. A
// device-type mismatch is a wiring error and aborts immediately.
package device

import (
	"errors"
	"fmt"
	"sync"

	. "github.com/itohio/EasyDrive/pkg/core/logger"
)

var (
	// ErrDisconnected indicates a transient device I/O failure.
	ErrDisconnected = errors.New("device disconnected")
	// ErrIncorrectDevice indicates the wrong device type on a port.
	ErrIncorrectDevice = errors.New("incorrect device type")
)

// PortError attaches the smart-port number to a device error.
type PortError struct {
	Port int
	Err  error
}

func (e *PortError) Error() string {
	return fmt.Sprintf("port %d: %v", e.Port, e.Err)
}

func (e *PortError) Unwrap() error {
	return e.Err
}

// Disconnected wraps ErrDisconnected with a port number.
func Disconnected(port int) error {
	return &PortError{Port: port, Err: ErrDisconnected}
}

// IncorrectDevice wraps ErrIncorrectDevice with a port number.
func IncorrectDevice(port int) error {
	return &PortError{Port: port, Err: ErrIncorrectDevice}
}

// Reporter deduplicates disconnect reports per port so a dangling cable does
// not flood the logs at loop cadence.
type Reporter struct {
	mu   sync.Mutex
	seen map[int]struct{}
}

// Report applies the error policy and reports whether err was non-nil.
//
// Disconnects are logged at warn, once per port. A device-type mismatch is
// fatal. Anything else is logged at warn every time.
func (r *Reporter) Report(err error, msg string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrIncorrectDevice) {
		Log.Fatal().Err(err).Msg(msg)
		// Fatal does not exit in logless builds.
		panic(err)
	}
	var portErr *PortError
	if errors.As(err, &portErr) && errors.Is(err, ErrDisconnected) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.seen == nil {
			r.seen = make(map[int]struct{})
		}
		if _, ok := r.seen[portErr.Port]; ok {
			return true
		}
		r.seen[portErr.Port] = struct{}{}
		Log.Warn().Err(err).Int("port", portErr.Port).Msg(msg)
		return true
	}
	Log.Warn().Err(err).Msg(msg)
	return true
}

var defaultReporter Reporter

// Report applies the error policy using the shared reporter.
func Report(err error, msg string) bool {
	return defaultReporter.Report(err, msg)
}
