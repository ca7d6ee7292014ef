package sensor

import (
	"sync"

	"github.com/itohio/EasyDrive/pkg/core/math"
)

// WrappingHeadingCorrector turns a wrapping heading source into a monotonic
// one by accumulating shortest-arc deltas between consecutive reads.
//
// A sensor error leaves the accumulated heading untouched, so a dropped
// sample never injects a full-turn jump.
type WrappingHeadingCorrector struct {
	mu      sync.Mutex
	source  WrappingHeading
	last    math.Angle
	heading math.Angle
	primed  bool
}

var _ Heading = (*WrappingHeadingCorrector)(nil)

func NewWrappingHeadingCorrector(source WrappingHeading) *WrappingHeadingCorrector {
	return &WrappingHeadingCorrector{source: source}
}

func (c *WrappingHeadingCorrector) Heading() (math.Angle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.source.WrappingHeading()
	if err != nil {
		return c.heading, err
	}
	if !c.primed {
		c.primed = true
		c.last = current
		c.heading = current
		return c.heading, nil
	}
	c.heading += (current - c.last).WrappedHalf()
	c.last = current
	return c.heading, nil
}
