package pneumatic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itohio/EasyDrive/pkg/robot/device"
)

type fakeSolenoid struct {
	level bool
	err   error
	sets  int
}

func (f *fakeSolenoid) SetLevel(high bool) error {
	f.sets++
	if f.err != nil {
		return f.err
	}
	f.level = high
	return nil
}

func (f *fakeSolenoid) Level() (bool, error) {
	return f.level, f.err
}

func TestExtendRetract(t *testing.T) {
	a, b := &fakeSolenoid{}, &fakeSolenoid{}
	group := New(false, a, b)

	group.Extend()
	assert.True(t, a.level)
	assert.True(t, b.level)
	assert.True(t, group.Extended())

	group.Retract()
	assert.False(t, a.level)
	assert.False(t, b.level)
	assert.False(t, group.Extended())
}

func TestLowIsExtendedPolarity(t *testing.T) {
	s := &fakeSolenoid{level: true}
	group := New(true, s)

	group.Extend()
	assert.False(t, s.level, "extended drives the line low")
	assert.True(t, group.Extended())
}

func TestToggle(t *testing.T) {
	s := &fakeSolenoid{}
	group := New(false, s)

	group.Toggle()
	assert.True(t, group.Extended())
	group.Toggle()
	assert.False(t, group.Extended())
}

func TestWriteErrorsAreAbsorbed(t *testing.T) {
	s := &fakeSolenoid{err: device.Disconnected(8)}
	group := New(false, s)

	group.Extend()
	assert.False(t, group.Extended(), "read failure reports retracted")
}
