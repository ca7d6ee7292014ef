package path

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

var (
	// ErrEmpty indicates a compound path with no segments.
	ErrEmpty = errors.New("path: compound requires at least one segment")
	// ErrDiscontinuous indicates adjacent segments whose endpoints do not
	// meet.
	ErrDiscontinuous = errors.New("path: segment endpoints do not meet")
)

// joinTolerance is the largest endpoint gap (mm) accepted between segments.
const joinTolerance = 0.01

// Compound concatenates endpoint-continuous paths into one. The parameter
// is partitioned uniformly across segments by index, so t covers segment
// floor(n*t) at local parameter n*t - floor(n*t).
type Compound struct {
	paths   []Path
	lengths []float32 // cumulative
	total   float32
}

var _ Path = (*Compound)(nil)
var _ AngleEvaluator = (*Compound)(nil)

// NewCompound joins the given paths. It fails when no paths are given or
// when adjacent endpoints do not meet.
func NewCompound(paths ...Path) (*Compound, error) {
	if len(paths) == 0 {
		return nil, ErrEmpty
	}

	lengths := make([]float32, len(paths))
	var total float32
	for i, p := range paths {
		if i > 0 {
			last := paths[i-1].Evaluate(1)
			first := p.Evaluate(0)
			if last.Distance(first) > joinTolerance {
				return nil, fmt.Errorf("%w: segment %d ends at (%v, %v), segment %d starts at (%v, %v)",
					ErrDiscontinuous, i-1, last.X(), last.Y(), i, first.X(), first.Y())
			}
		}
		total += p.Length()
		lengths[i] = total
	}

	return &Compound{
		paths:   paths,
		lengths: lengths,
		total:   total,
	}, nil
}

// segment maps a global parameter onto a segment index and local parameter.
func (c *Compound) segment(t float32) (int, float32) {
	n := len(c.paths)
	index := int(math32.Floor(float32(n) * t))
	if index < 0 {
		index = 0
	} else if index >= n {
		index = n - 1
	}
	return index, float32(n)*t - float32(index)
}

func (c *Compound) Evaluate(t float32) vec.Vector2D {
	index, local := c.segment(t)
	return c.paths[index].Evaluate(local)
}

func (c *Compound) EvaluateAngle(t float32) math.Angle {
	index, local := c.segment(t)
	return EvaluateAngle(c.paths[index], local)
}

func (c *Compound) LengthUntil(t float32) float32 {
	if t >= 1 {
		return c.total
	}
	index, local := c.segment(t)
	length := c.paths[index].LengthUntil(local)
	if index > 0 {
		length += c.lengths[index-1]
	}
	return length
}

func (c *Compound) Length() float32 {
	return c.total
}
