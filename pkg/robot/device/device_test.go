package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortErrorWrapping(t *testing.T) {
	err := Disconnected(7)
	assert.ErrorIs(t, err, ErrDisconnected)

	var portErr *PortError
	assert.ErrorAs(t, err, &portErr)
	assert.Equal(t, 7, portErr.Port)

	assert.ErrorIs(t, IncorrectDevice(3), ErrIncorrectDevice)
}

func TestReportNil(t *testing.T) {
	var r Reporter
	assert.False(t, r.Report(nil, "fine"))
}

func TestReportDisconnectDeduplicates(t *testing.T) {
	var r Reporter
	// Both report true; the second is only suppressed from the log.
	assert.True(t, r.Report(Disconnected(1), "encoder"))
	assert.True(t, r.Report(Disconnected(1), "encoder"))
	assert.True(t, r.Report(Disconnected(2), "other port"))
}

func TestReportOtherErrors(t *testing.T) {
	var r Reporter
	assert.True(t, r.Report(errors.New("transient"), "motor"))
}
