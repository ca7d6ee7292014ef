package vec

import (
	"github.com/chewxy/math32"

	"github.com/itohio/EasyDrive/pkg/core/math"
)

// Vector2D is a planar vector. Field coordinates are millimetres.
//
// Mutating operations modify the receiver and return it for chaining;
// use Clone when the original value must survive.
type Vector2D [2]float32

func New(x, y float32) Vector2D {
	return Vector2D{x, y}
}

func (v *Vector2D) X() float32 {
	return v[0]
}

func (v *Vector2D) Y() float32 {
	return v[1]
}

func (v *Vector2D) XY() (float32, float32) {
	return v[0], v[1]
}

func (v *Vector2D) Clone() *Vector2D {
	clone := *v
	return &clone
}

func (v *Vector2D) FillC(c float32) *Vector2D {
	for i := range v {
		v[i] = c
	}
	return v
}

func (v *Vector2D) Neg() *Vector2D {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (v *Vector2D) Add(v1 Vector2D) *Vector2D {
	for i := range v {
		v[i] += v1[i]
	}
	return v
}

func (v *Vector2D) Sub(v1 Vector2D) *Vector2D {
	for i := range v {
		v[i] -= v1[i]
	}
	return v
}

func (v *Vector2D) MulC(c float32) *Vector2D {
	for i := range v {
		v[i] *= c
	}
	return v
}

func (v *Vector2D) Sum() float32 {
	var sum float32
	for _, val := range v {
		sum += val
	}
	return sum
}

func (v *Vector2D) SumSqr() float32 {
	var sum float32
	for _, val := range v {
		sum += val * val
	}
	return sum
}

func (v *Vector2D) Magnitude() float32 {
	return math32.Sqrt(v.SumSqr())
}

func (v *Vector2D) DistanceSqr(v1 Vector2D) float32 {
	return v.Clone().Sub(v1).SumSqr()
}

func (v *Vector2D) Distance(v1 Vector2D) float32 {
	return math32.Sqrt(v.DistanceSqr(v1))
}

func (v *Vector2D) Dot(v1 Vector2D) float32 {
	return v[0]*v1[0] + v[1]*v1[1]
}

// Rotate rotates the vector CCW by the given angle.
func (v *Vector2D) Rotate(a math.Angle) *Vector2D {
	sin, cos := a.Sin(), a.Cos()
	x, y := v[0], v[1]
	v[0] = x*cos - y*sin
	v[1] = x*sin + y*cos
	return v
}

// Angle returns the direction of the vector measured from +x.
func (v *Vector2D) Angle() math.Angle {
	return math.Atan2(v[1], v[0])
}
