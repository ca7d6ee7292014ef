package path

import (
	"gonum.org/v1/gonum/mat"

	"github.com/itohio/EasyDrive/pkg/core/math"
	"github.com/itohio/EasyDrive/pkg/core/math/vec"
)

// curveFitting maps Hermite endpoint constraints (p0, p1, m0, m1) onto cubic
// coefficients (a, b, c, d). It is the inverse of the constraint matrix
//
//	0 0 0 1
//	1 1 1 1
//	0 0 1 0
//	3 2 1 0
var curveFitting = mat.NewDense(4, 4, []float64{
	2, -2, 1, 1,
	-3, 3, -2, -1,
	0, 0, 1, 0,
	1, 0, 0, 0,
})

// cubic is a single-axis cubic polynomial a*t^3 + b*t^2 + c*t + d.
type cubic struct {
	a, b, c, d float32
}

func fitCubic(start, end, startDerivative, endDerivative float32) cubic {
	var coeffs mat.VecDense
	coeffs.MulVec(curveFitting, mat.NewVecDense(4, []float64{
		float64(start),
		float64(end),
		float64(startDerivative),
		float64(endDerivative),
	}))
	return cubic{
		a: float32(coeffs.AtVec(0)),
		b: float32(coeffs.AtVec(1)),
		c: float32(coeffs.AtVec(2)),
		d: float32(coeffs.AtVec(3)),
	}
}

func (c cubic) evaluate(t float32) float32 {
	return ((c.a*t+c.b)*t+c.c)*t + c.d
}

func (c cubic) derivative(t float32) float32 {
	return (3*c.a*t+2*c.b)*t + c.c
}

// Waypoint is a path endpoint: a field point, the tangent direction there,
// and an easing scalar that sets the tangent magnitude. Larger easing biases
// the curve to hold the heading longer around the endpoint.
type Waypoint struct {
	Point   vec.Vector2D
	Heading math.Angle
	Easing  float32
}

// Cubic is a parametric path whose x and y are independent cubic
// polynomials fit to Hermite endpoint and tangent constraints.
type Cubic struct {
	x, y cubic
}

var _ Path = (*Cubic)(nil)
var _ AngleEvaluator = (*Cubic)(nil)

// NewCubic fits a cubic segment between two waypoints. The endpoint tangents
// are easing*(cos heading, sin heading).
func NewCubic(start, end Waypoint) *Cubic {
	return &Cubic{
		x: fitCubic(
			start.Point.X(), end.Point.X(),
			start.Easing*start.Heading.Cos(), end.Easing*end.Heading.Cos(),
		),
		y: fitCubic(
			start.Point.Y(), end.Point.Y(),
			start.Easing*start.Heading.Sin(), end.Easing*end.Heading.Sin(),
		),
	}
}

func (p *Cubic) Evaluate(t float32) vec.Vector2D {
	return vec.New(p.x.evaluate(t), p.y.evaluate(t))
}

// EvaluateAngle returns the tangent angle from the analytic derivative.
func (p *Cubic) EvaluateAngle(t float32) math.Angle {
	return math.Atan2(p.y.derivative(t), p.x.derivative(t))
}

// Derivative returns the velocity vector at t.
func (p *Cubic) Derivative(t float32) vec.Vector2D {
	return vec.New(p.x.derivative(t), p.y.derivative(t))
}

func (p *Cubic) LengthUntil(t float32) float32 {
	var length float32
	last := p.Evaluate(0)
	for s := float32(lengthStep); s <= t; s += lengthStep {
		point := p.Evaluate(s)
		length += last.Distance(point)
		last = point
	}
	return length
}

func (p *Cubic) Length() float32 {
	return p.LengthUntil(1)
}

// lengthStep is the quadrature step of LengthUntil.
const lengthStep = 0.001
