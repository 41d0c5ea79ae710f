package viewer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/shader"
)

// gpuSession bundles every resource GPU mode owns. A session is only ever
// handed out fully built, so a half-acquired GPU back end cannot be observed.
type gpuSession struct {
	ctx     graphics.Context
	camera  graphics.Camera
	shader  graphics.Shader
	quad    graphics.Quad
	texture *inputs.VideoChannel

	program shader.Program
	flipBuf []byte
}

// openSession acquires context, camera, shader, quad and texture in that
// order. On failure everything acquired so far is released in reverse.
func openSession(dev Device, f inputs.Frame, program shader.Program) (s *gpuSession, err error) {
	var acquired []func()
	defer func() {
		if err != nil {
			for i := len(acquired) - 1; i >= 0; i-- {
				acquired[i]()
			}
		}
	}()

	if err := f.Validate(); err != nil {
		return nil, &AcquisitionError{Step: "frame", Err: err}
	}
	aspect := float32(f.Width) / float32(f.Height)

	ctx, err := dev.OpenContext(f.Width, f.Height)
	if err != nil {
		return nil, &AcquisitionError{Step: "context", Err: err}
	}
	acquired = append(acquired, ctx.Shutdown)

	camera, err := dev.NewCamera(aspect)
	if err != nil {
		return nil, &AcquisitionError{Step: "camera", Err: err}
	}
	acquired = append(acquired, camera.Release)

	sh, err := dev.NewShader(program.Vertex, program.Fragment)
	if err != nil {
		return nil, &AcquisitionError{Step: "shader " + program.String(), Err: err}
	}
	acquired = append(acquired, sh.Release)

	quad, err := dev.NewQuad(aspect)
	if err != nil {
		return nil, &AcquisitionError{Step: "quad", Err: err}
	}
	acquired = append(acquired, quad.Release)

	flipped := f.FlipVerticalInto(nil)
	texture, err := inputs.NewVideoChannel(dev.TextureStore(ctx), flipped)
	if err != nil {
		return nil, &AcquisitionError{Step: "texture", Err: err}
	}
	acquired = append(acquired, texture.Destroy)

	quad.SetShader(sh)
	sh.SetTexture(texture)

	return &gpuSession{
		ctx:     ctx,
		camera:  camera,
		shader:  sh,
		quad:    quad,
		texture: texture,
		program: program,
		flipBuf: flipped.Pix,
	}, nil
}

// render uploads f, positions the quad with model and presents one frame.
func (s *gpuSession) render(f inputs.Frame, model mgl32.Mat4) error {
	flipped := f.FlipVerticalInto(s.flipBuf)
	s.flipBuf = flipped.Pix
	if err := s.texture.Update(flipped); err != nil {
		return fmt.Errorf("failed to update video texture: %w", err)
	}

	s.quad.SetTransform(model)
	s.ctx.BeginFrame()
	s.quad.Draw(s.camera)
	s.ctx.EndFrame()
	return nil
}

// close releases consumers before the providers they depend on.
func (s *gpuSession) close() {
	s.quad.Release()
	s.shader.Release()
	s.camera.Release()
	s.texture.Destroy()
	s.ctx.Shutdown()
}
