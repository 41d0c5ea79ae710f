package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestModelStartsAtIdentity(t *testing.T) {
	m := NewModel()
	assert.Equal(t, mgl32.Ident4(), m.GPU())
	assert.Equal(t, Affine{{1, 0, 0}, {0, 1, 0}}, m.CPU(640, 360))
}

func TestModelAccessorsAreIdempotent(t *testing.T) {
	m := NewModel()
	m.Apply(ScaleUp)
	m.Apply(RotateRight)
	m.Apply(PanDown)

	assert.Equal(t, m.GPU(), m.GPU())
	assert.Equal(t, m.CPU(640, 360), m.CPU(640, 360))
}

func TestModelRecomputesAfterDelta(t *testing.T) {
	m := NewModel()
	before := m.GPU()
	beforeCPU := m.CPU(640, 360)

	m.Apply(RotateRight)

	assert.NotEqual(t, before, m.GPU())
	assert.NotEqual(t, beforeCPU, m.CPU(640, 360))
	assert.Equal(t, GPUMatrix(m.Snapshot()), m.GPU())
	assert.Equal(t, CPUMatrix(m.Snapshot(), 640, 360), m.CPU(640, 360))
}

func TestModelCPUFollowsFrameSize(t *testing.T) {
	m := NewModel()
	m.Apply(RotateRight)

	small := m.CPU(320, 180)
	large := m.CPU(640, 360)
	assert.NotEqual(t, small, large)
	assert.Equal(t, CPUMatrix(m.Snapshot(), 320, 180), m.CPU(320, 180))
}

func TestModelReset(t *testing.T) {
	m := NewModel()
	m.Apply(ScaleUp)
	m.Apply(PanUp)
	m.Reset()

	assert.Equal(t, Identity(), m.Snapshot())
	assert.Equal(t, mgl32.Ident4(), m.GPU())
}
