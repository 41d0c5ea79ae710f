package viewer

import (
	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/transform"
)

// State names the active back end.
type State int

const (
	CPUActive State = iota
	GPUActive
)

func (s State) String() string {
	if s == GPUActive {
		return "gpu"
	}
	return "cpu"
}

// Device creates the resources of a GPU session. OpenContext must leave the
// new context current on the calling thread.
type Device interface {
	OpenContext(width, height int) (graphics.Context, error)
	NewCamera(aspect float32) (graphics.Camera, error)
	NewShader(vertexPath, fragmentPath string) (graphics.Shader, error)
	NewQuad(aspect float32) (graphics.Quad, error)
	TextureStore(ctx graphics.Context) inputs.Store
}

// Compositor is the CPU back end. Present opens its window if needed and
// Close destroys it.
type Compositor interface {
	Present(f inputs.Frame, flags FilterFlags, m transform.Affine) error
	PollKeys() []graphics.KeyEvent
	Close()
}

// Source supplies captured frames. Read returns ErrEmptyFrame when the
// source has nothing more to give.
type Source interface {
	Read() (inputs.Frame, error)
	Close() error
}
