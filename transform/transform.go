// Package transform holds the single logical 2-D transform applied to the
// video and projects it into the matrix conventions of both back ends.
package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ScaleStep = 0.1
	AngleStep = 5.0
	PanStep   = 0.1

	// MinScale is the floor applied to scale decrements. Scale never reaches zero.
	MinScale = 0.1
)

// Delta is one discrete change to a LogicalTransform.
type Delta int

const (
	ScaleUp Delta = iota
	ScaleDown
	RotateLeft
	RotateRight
	PanUp
	PanDown
)

func (d Delta) String() string {
	switch d {
	case ScaleUp:
		return "scale-up"
	case ScaleDown:
		return "scale-down"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case PanUp:
		return "pan-up"
	case PanDown:
		return "pan-down"
	}
	return fmt.Sprintf("delta(%d)", int(d))
}

// LogicalTransform is the source of truth both back-end matrices derive from.
type LogicalTransform struct {
	Scale               float64
	AngleDegrees        float64
	VerticalTranslation float64
}

// Identity returns the transform that leaves the frame untouched.
func Identity() LogicalTransform {
	return LogicalTransform{Scale: 1}
}

// Apply returns t with d applied.
func (t LogicalTransform) Apply(d Delta) LogicalTransform {
	switch d {
	case ScaleUp:
		t.Scale += ScaleStep
	case ScaleDown:
		t.Scale = math.Max(t.Scale-ScaleStep, MinScale)
	case RotateLeft:
		t.AngleDegrees -= AngleStep
	case RotateRight:
		t.AngleDegrees += AngleStep
	case PanUp:
		t.VerticalTranslation += PanStep
	case PanDown:
		t.VerticalTranslation -= PanStep
	}
	return t
}

// GPUMatrix projects t into the quad's model matrix:
// Translate(0, ty, 0) · RotateZ(angle) · Scale(s, s, 1), column-major, Y up.
// The quad is centred on the origin and one unit tall.
func GPUMatrix(t LogicalTransform) mgl32.Mat4 {
	translate := mgl32.Translate3D(0, float32(t.VerticalTranslation), 0)
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(float32(t.AngleDegrees)))
	scale := mgl32.Scale3D(float32(t.Scale), float32(t.Scale), 1)
	return translate.Mul4(rotate).Mul4(scale)
}

// Affine is a row-major 2x3 matrix mapping source pixels to destination
// pixels, Y down, origin at the top-left corner.
type Affine [2][3]float64

// Apply maps the pixel (x, y).
func (a Affine) Apply(x, y float64) (float64, float64) {
	return a[0][0]*x + a[0][1]*y + a[0][2],
		a[1][0]*x + a[1][1]*y + a[1][2]
}

// CPUMatrix projects t into pixel space for a width x height frame.
// Rotation and scale happen about the pixel centre. Because Y points down the
// rotation is R(-angle), which is visually the same turn as the GPU matrix.
// The pan is measured in frame heights.
func CPUMatrix(t LogicalTransform, width, height int) Affine {
	cx := float64(width) / 2
	cy := float64(height) / 2
	rad := t.AngleDegrees * math.Pi / 180
	alpha := t.Scale * math.Cos(rad)
	beta := t.Scale * math.Sin(rad)

	m := Affine{
		{alpha, beta, (1-alpha)*cx - beta*cy},
		{-beta, alpha, beta*cx + (1-alpha)*cy},
	}
	m[1][2] -= t.VerticalTranslation * float64(height)
	return m
}

// PixelToQuad converts a pixel of a width x height frame into the quad's
// normalized space (origin at the centre, Y up, one unit per frame height).
func PixelToQuad(x, y float64, width, height int) (float64, float64) {
	h := float64(height)
	return (x - float64(width)/2) / h, (h/2 - y) / h
}

// QuadToPixel is the inverse of PixelToQuad.
func QuadToPixel(u, v float64, width, height int) (float64, float64) {
	h := float64(height)
	return float64(width)/2 + u*h, h/2 - v*h
}
