package renderer

import (
	"fmt"
	"io/fs"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/sirupsen/logrus"

	"github.com/richinsley/dualview/glfwcontext"
	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/shader"
)

// gl.Init resolves function pointers once a context exists; it only needs to
// run for the first one.
var (
	glInitOnce sync.Once
	glInitErr  error
)

// Device creates GPU resources on GLFW windows.
type Device struct {
	title   string
	shaders fs.FS
	log     logrus.FieldLogger
}

// NewDevice returns a device loading shader sources from shaders, or from
// the built-in set when shaders is nil.
func NewDevice(title string, shaders fs.FS, log logrus.FieldLogger) *Device {
	if shaders == nil {
		shaders = shader.Sources()
	}
	return &Device{title: title, shaders: shaders, log: log}
}

// OpenContext creates the GPU window and leaves its context current.
func (d *Device) OpenContext(width, height int) (graphics.Context, error) {
	ctx, err := glfwcontext.New(width, height, d.title, d.log)
	if err != nil {
		return nil, err
	}
	ctx.MakeCurrent()

	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		ctx.Shutdown()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}

	d.log.WithFields(logrus.Fields{
		"width":    width,
		"height":   height,
		"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
		"version":  gl.GoStr(gl.GetString(gl.VERSION)),
	}).Debug("GPU context created")
	return ctx, nil
}

func (d *Device) NewCamera(aspect float32) (graphics.Camera, error) {
	return NewCamera(aspect), nil
}

func (d *Device) NewShader(vertexPath, fragmentPath string) (graphics.Shader, error) {
	s, err := NewShader(d.shaders, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	d.log.WithField("fragment", fragmentPath).Debug("shader program linked")
	return s, nil
}

func (d *Device) NewQuad(aspect float32) (graphics.Quad, error) {
	return NewQuad(aspect)
}

func (d *Device) TextureStore(ctx graphics.Context) inputs.Store {
	return &textureStore{ctx: ctx}
}
