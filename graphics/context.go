package graphics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/dualview/inputs"
)

// Context defines the interface for a window owning an OpenGL context.
type Context interface {
	MakeCurrent()
	// IsCurrent reports whether this context is current on the calling thread.
	IsCurrent() bool
	Shutdown()
	ShouldClose() bool
	// BeginFrame clears the framebuffer.
	BeginFrame()
	// EndFrame swaps buffers and polls window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// PollKeys drains the key events received since the last call.
	PollKeys() []KeyEvent
	Time() float64
}

// Camera provides the view-projection used to draw the quad.
type Camera interface {
	ViewProjection() mgl32.Mat4
	Release()
}

// Shader is a linked program sampling one texture.
type Shader interface {
	SetTexture(ch inputs.IChannel)
	Release()
}

// Quad is the single drawable the video is mapped onto.
type Quad interface {
	SetShader(s Shader)
	SetTransform(model mgl32.Mat4)
	Draw(cam Camera)
	Release()
}
