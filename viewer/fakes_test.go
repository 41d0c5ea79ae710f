package viewer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/inputs/inputstest"
	"github.com/richinsley/dualview/transform"
)

var errInjected = errors.New("injected failure")

// fakeDevice records every resource it hands out and the order they are
// released in. failStep makes the named constructor fail.
type fakeDevice struct {
	failStep string
	store    *inputstest.Store
	live     map[string]int
	released []string
	shaders  []string
	ctx      *fakeContext
	quad     *fakeQuad
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{store: inputstest.NewStore(), live: make(map[string]int)}
}

func (d *fakeDevice) acquire(name string) error {
	if d.failStep == name {
		return errInjected
	}
	d.live[name]++
	return nil
}

func (d *fakeDevice) release(name string) {
	d.live[name]--
	d.released = append(d.released, name)
}

// liveResources counts context, camera, shader, quad and texture handles
// that have not been released.
func (d *fakeDevice) liveResources() int {
	n := d.store.Live()
	for _, v := range d.live {
		n += v
	}
	return n
}

func (d *fakeDevice) OpenContext(width, height int) (graphics.Context, error) {
	if err := d.acquire("context"); err != nil {
		return nil, err
	}
	d.store.Current = true
	d.ctx = &fakeContext{dev: d, width: width, height: height}
	return d.ctx, nil
}

func (d *fakeDevice) NewCamera(aspect float32) (graphics.Camera, error) {
	if err := d.acquire("camera"); err != nil {
		return nil, err
	}
	return &fakeCamera{dev: d, aspect: aspect}, nil
}

func (d *fakeDevice) NewShader(vertexPath, fragmentPath string) (graphics.Shader, error) {
	if err := d.acquire("shader"); err != nil {
		return nil, err
	}
	d.shaders = append(d.shaders, fragmentPath)
	return &fakeShader{dev: d}, nil
}

func (d *fakeDevice) NewQuad(aspect float32) (graphics.Quad, error) {
	if err := d.acquire("quad"); err != nil {
		return nil, err
	}
	d.quad = &fakeQuad{dev: d}
	return d.quad, nil
}

func (d *fakeDevice) TextureStore(ctx graphics.Context) inputs.Store {
	if d.failStep == "texture" {
		d.store.Current = false
	}
	return &trackingStore{Store: d.store, dev: d}
}

// trackingStore logs texture deletion into the device's release order.
type trackingStore struct {
	*inputstest.Store
	dev *fakeDevice
}

func (s *trackingStore) Delete(id uint32) {
	s.Store.Delete(id)
	s.dev.released = append(s.dev.released, "texture")
}

type fakeContext struct {
	dev         *fakeDevice
	width       int
	height      int
	keys        []graphics.KeyEvent
	shouldClose bool
	frames      int
	shutdown    bool
}

func (c *fakeContext) MakeCurrent() {}
func (c *fakeContext) IsCurrent() bool { return !c.shutdown }
func (c *fakeContext) ShouldClose() bool { return c.shouldClose }
func (c *fakeContext) BeginFrame() {}
func (c *fakeContext) EndFrame() { c.frames++ }
func (c *fakeContext) GetFramebufferSize() (int, int) { return c.width, c.height }
func (c *fakeContext) Time() float64 { return 0 }

func (c *fakeContext) PollKeys() []graphics.KeyEvent {
	keys := c.keys
	c.keys = nil
	return keys
}

func (c *fakeContext) Shutdown() {
	c.shutdown = true
	c.dev.store.Current = false
	c.dev.release("context")
}

type fakeCamera struct {
	dev    *fakeDevice
	aspect float32
}

func (c *fakeCamera) ViewProjection() mgl32.Mat4 { return mgl32.Ident4() }
func (c *fakeCamera) Release() { c.dev.release("camera") }

type fakeShader struct {
	dev     *fakeDevice
	texture inputs.IChannel
}

func (s *fakeShader) SetTexture(ch inputs.IChannel) { s.texture = ch }
func (s *fakeShader) Release() { s.dev.release("shader") }

type fakeQuad struct {
	dev       *fakeDevice
	shader    graphics.Shader
	transform mgl32.Mat4
	draws     int
}

func (q *fakeQuad) SetShader(s graphics.Shader) { q.shader = s }
func (q *fakeQuad) SetTransform(model mgl32.Mat4) { q.transform = model }
func (q *fakeQuad) Draw(cam graphics.Camera) { q.draws++ }
func (q *fakeQuad) Release() { q.dev.release("quad") }

type fakeCompositor struct {
	keys     []graphics.KeyEvent
	presents int
	open     bool
	closes   int
	flags    FilterFlags
	affine   transform.Affine
	err      error
}

func (c *fakeCompositor) Present(f inputs.Frame, flags FilterFlags, m transform.Affine) error {
	if c.err != nil {
		return c.err
	}
	c.open = true
	c.presents++
	c.flags = flags
	c.affine = m
	return nil
}

func (c *fakeCompositor) PollKeys() []graphics.KeyEvent {
	keys := c.keys
	c.keys = nil
	return keys
}

func (c *fakeCompositor) Close() {
	c.open = false
	c.closes++
}

// fakeSource yields frames and then reports an empty capture. Before each
// read it runs the hook for that frame index, if any.
type fakeSource struct {
	frames []inputs.Frame
	hooks  map[int]func()
	reads  int
	closed bool
}

func (s *fakeSource) Read() (inputs.Frame, error) {
	if hook, ok := s.hooks[s.reads]; ok {
		hook()
	}
	if s.reads >= len(s.frames) {
		return inputs.Frame{}, ErrEmptyFrame
	}
	f := s.frames[s.reads]
	s.reads++
	return f, nil
}

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

func press(keys ...graphics.Key) []graphics.KeyEvent {
	events := make([]graphics.KeyEvent, len(keys))
	for i, k := range keys {
		events[i] = graphics.KeyEvent{Key: k}
	}
	return events
}
