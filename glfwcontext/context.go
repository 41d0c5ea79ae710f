package glfwcontext

import (
	"fmt"
	"runtime"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"github.com/richinsley/dualview/graphics"
)

// keyCodes translates GLFW keys into the viewer's key codes.
var keyCodes = map[glfw.Key]graphics.Key{
	glfw.KeyEscape: graphics.KeyEscape,
	glfw.Key1:      graphics.Key1,
	glfw.Key2:      graphics.Key2,
	glfw.Key3:      graphics.Key3,
	glfw.Key4:      graphics.Key4,
	glfw.KeyG:      graphics.KeyG,
	glfw.KeyI:      graphics.KeyI,
	glfw.KeyO:      graphics.KeyO,
	glfw.KeyR:      graphics.KeyR,
	glfw.KeyLeft:   graphics.KeyLeft,
	glfw.KeyRight:  graphics.KeyRight,
	glfw.KeyUp:     graphics.KeyUp,
	glfw.KeyDown:   graphics.KeyDown,
}

// Context is a GLFW window with its OpenGL context. Key presses are queued by
// the key callback and drained once per frame by PollKeys.
type Context struct {
	window *glfw.Window
	keys   []graphics.KeyEvent
	log    logrus.FieldLogger
}

// New creates a window of the given size, makes its context current and
// sets the viewport to follow framebuffer resizes.
func New(width, height int, title string, log logrus.FieldLogger) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create glfw window: %w", err)
	}

	c := &Context{window: win, log: log}
	win.MakeContextCurrent()
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gl.Viewport(0, 0, int32(w), int32(h))
	})

	return c, nil
}

// glfwKeyCallback queues presses and OS repeats of mapped keys.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	k, ok := keyCodes[key]
	if !ok {
		return
	}
	c.keys = append(c.keys, graphics.KeyEvent{Key: k, Repeat: action == glfw.Repeat})
}

// PollKeys returns the key events received since the previous call.
func (c *Context) PollKeys() []graphics.KeyEvent {
	keys := c.keys
	c.keys = nil
	return keys
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// IsCurrent reports whether this window's context is current on the calling thread.
func (c *Context) IsCurrent() bool {
	return c.window != nil && glfw.GetCurrentContext() == c.window
}

// Shutdown destroys the window and its context. Safe to call twice.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	if c.IsCurrent() {
		glfw.DetachCurrentContext()
	}
	c.window.Destroy()
	c.window = nil
	c.log.Debug("GLFW window destroyed")
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// BeginFrame clears to the viewer's background colour.
func (c *Context) BeginFrame() {
	gl.ClearColor(0.1, 0.1, 0.4, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics(log logrus.FieldLogger) error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Debug("GLFW initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics(log logrus.FieldLogger) {
	glfw.Terminate()
	log.Debug("GLFW terminated")
}
