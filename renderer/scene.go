package renderer

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	gst "github.com/richinsley/goshadertranslator"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/shader"
	xlate "github.com/richinsley/dualview/translator"
)

// ────────────────────────────────── Camera ──────────────────────────────────────

// Camera is an orthographic camera that frames a quad one unit tall and
// aspect units wide.
type Camera struct {
	viewProjection mgl32.Mat4
}

func cameraMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Ortho(-aspect/2, aspect/2, -0.5, 0.5, -1, 1)
}

func NewCamera(aspect float32) *Camera {
	return &Camera{viewProjection: cameraMatrix(aspect)}
}

func (c *Camera) ViewProjection() mgl32.Mat4 { return c.viewProjection }

// Release is a no-op; the camera holds no GL objects.
func (c *Camera) Release() {}

// ────────────────────────────────── Shader ──────────────────────────────────────

// Shader is a linked texture program and the locations of its uniforms.
type Shader struct {
	program       uint32
	channel       inputs.IChannel
	modelLoc      int32
	viewProjLoc   int32
	textureLoc    int32
	resolutionLoc int32
}

// NewShader reads both stages from fsys, translates them for the desktop
// context and links them.
func NewShader(fsys fs.FS, vertexPath, fragmentPath string) (*Shader, error) {
	vsSource, err := shader.Load(fsys, vertexPath)
	if err != nil {
		return nil, err
	}
	fsSource, err := shader.Load(fsys, fragmentPath)
	if err != nil {
		return nil, err
	}

	vsCode, vsVars, err := xlate.Translate(vsSource, "vertex")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", vertexPath, err)
	}
	fsCode, fsVars, err := xlate.Translate(fsSource, "fragment")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fragmentPath, err)
	}

	program, err := newProgram(vsCode, fsCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	s := &Shader{program: program}
	s.lookupUniforms(vsVars, fsVars)
	return s, nil
}

func (s *Shader) lookupUniforms(vsVars, fsVars map[string]gst.ShaderVariable) {
	gl.UseProgram(s.program)
	s.modelLoc = uniformLocation(vsVars, s.program, "u_model")
	s.viewProjLoc = uniformLocation(vsVars, s.program, "u_viewProjection")
	s.textureLoc = uniformLocation(fsVars, s.program, "u_texture")
	s.resolutionLoc = uniformLocation(fsVars, s.program, "u_resolution")
	gl.UseProgram(0)
}

// SetTexture sets the channel sampled by the program.
func (s *Shader) SetTexture(ch inputs.IChannel) { s.channel = ch }

func (s *Shader) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// bind makes the program current and sets every uniform for one draw.
func (s *Shader) bind(model, viewProjection mgl32.Mat4) {
	gl.UseProgram(s.program)
	if s.modelLoc != -1 {
		gl.UniformMatrix4fv(s.modelLoc, 1, false, &model[0])
	}
	if s.viewProjLoc != -1 {
		gl.UniformMatrix4fv(s.viewProjLoc, 1, false, &viewProjection[0])
	}
	if s.channel == nil {
		return
	}
	if s.textureLoc != -1 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, s.channel.GetTextureID())
		gl.Uniform1i(s.textureLoc, 0)
	}
	if s.resolutionLoc != -1 {
		res := s.channel.ChannelRes()
		gl.Uniform3fv(s.resolutionLoc, 1, &res[0])
	}
}

func (s *Shader) unbind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// ─────────────────────────────────── Quad ───────────────────────────────────────

// quadVertices returns two triangles covering the aspect x 1 rectangle
// centred on the origin, interleaved as x, y, u, v.
func quadVertices(aspect float32) []float32 {
	x, y := aspect/2, float32(0.5)
	return []float32{
		-x, y, 0, 1,
		-x, -y, 0, 0,
		x, -y, 1, 0,
		-x, y, 0, 1,
		x, -y, 1, 0,
		x, y, 1, 1,
	}
}

// Quad is the textured rectangle the video is drawn on.
type Quad struct {
	vao       uint32
	vbo       uint32
	shader    *Shader
	transform mgl32.Mat4
}

func NewQuad(aspect float32) (*Quad, error) {
	q := &Quad{transform: mgl32.Ident4()}
	vertices := quadVertices(aspect)

	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		q.Release()
		return nil, fmt.Errorf("failed to create quad buffers: 0x%x", e)
	}
	return q, nil
}

// SetShader binds s to the quad. Shaders of another device are ignored.
func (q *Quad) SetShader(s graphics.Shader) {
	if sh, ok := s.(*Shader); ok {
		q.shader = sh
	}
}

func (q *Quad) SetTransform(model mgl32.Mat4) { q.transform = model }

func (q *Quad) Draw(cam graphics.Camera) {
	if q.shader == nil {
		return
	}
	q.shader.bind(q.transform, cam.ViewProjection())
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	q.shader.unbind()
}

func (q *Quad) Release() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	q.shader = nil
}
