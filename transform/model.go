package transform

import "github.com/go-gl/mathgl/mgl32"

// Model owns a LogicalTransform and caches both projections of it. A cached
// projection is rebuilt only after a delta or, for the CPU matrix, a change of
// frame size.
type Model struct {
	t LogicalTransform

	gpu      mgl32.Mat4
	gpuDirty bool

	cpu        Affine
	cpuW, cpuH int
	cpuDirty   bool
}

// NewModel returns a model holding the identity transform.
func NewModel() *Model {
	return &Model{t: Identity(), gpuDirty: true, cpuDirty: true}
}

// Apply mutates the transform and marks both projections stale.
func (m *Model) Apply(d Delta) {
	m.t = m.t.Apply(d)
	m.invalidate()
}

// Reset returns to the identity transform.
func (m *Model) Reset() {
	m.t = Identity()
	m.invalidate()
}

func (m *Model) invalidate() {
	m.gpuDirty = true
	m.cpuDirty = true
}

// Snapshot returns the current logical transform.
func (m *Model) Snapshot() LogicalTransform {
	return m.t
}

// GPU returns the quad's model matrix for the current transform.
func (m *Model) GPU() mgl32.Mat4 {
	if m.gpuDirty {
		m.gpu = GPUMatrix(m.t)
		m.gpuDirty = false
	}
	return m.gpu
}

// CPU returns the pixel-space affine for a width x height frame.
func (m *Model) CPU(width, height int) Affine {
	if m.cpuDirty || width != m.cpuW || height != m.cpuH {
		m.cpu = CPUMatrix(m.t, width, height)
		m.cpuW, m.cpuH = width, height
		m.cpuDirty = false
	}
	return m.cpu
}
