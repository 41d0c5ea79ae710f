// Package viewer switches a live video between the CPU compositor and the GPU
// renderer, owning the GPU resources and keeping one transform for both.
package viewer

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/shader"
	"github.com/richinsley/dualview/transform"
)

// Controller is the render-mode state machine. The back end is CPU while gpu
// is nil and GPU otherwise. It must be used from the thread owning the GL
// context.
type Controller struct {
	device     Device
	compositor Compositor
	keymap     Keymap
	model      *transform.Model
	flags      FilterFlags
	gpu        *gpuSession
	meter      *FrameMeter
	log        logrus.FieldLogger
	now        func() time.Time
	exit       bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// WithKeymap replaces DefaultKeymap.
func WithKeymap(k Keymap) Option {
	return func(c *Controller) { c.keymap = k }
}

// WithClock sets the time source of the frame meter.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController returns a controller in CPU mode with the identity transform
// and no filters.
func NewController(dev Device, comp Compositor, opts ...Option) *Controller {
	quiet := logrus.New()
	quiet.SetLevel(logrus.PanicLevel)

	c := &Controller{
		device:     dev,
		compositor: comp,
		keymap:     DefaultKeymap(),
		model:      transform.NewModel(),
		log:        quiet,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.meter = NewFrameMeter(c.log, c.now)
	return c
}

// State returns the active back end.
func (c *Controller) State() State {
	if c.gpu != nil {
		return GPUActive
	}
	return CPUActive
}

// Flags returns the stored filter flags.
func (c *Controller) Flags() FilterFlags {
	return c.flags
}

// Transform returns the transform model shared by both back ends.
func (c *Controller) Transform() *transform.Model {
	return c.model
}

// Meter returns the frame-rate meter.
func (c *Controller) Meter() *FrameMeter {
	return c.meter
}

// ExitRequested reports whether an exit event has been handled.
func (c *Controller) ExitRequested() bool {
	return c.exit
}

// Handle applies one event. f is the latest captured frame; GPU resources
// are sized from it when entering GPU mode.
func (c *Controller) Handle(ev Event, f inputs.Frame) {
	c.log.WithField("event", ev.String()).Debug("Handling event")

	switch ev.Kind {
	case EventExit:
		c.exit = true
	case EventToggleMode:
		// A failed switch is logged in Toggle; the viewer stays on the CPU.
		_ = c.Toggle(f)
	case EventTransform:
		c.model.Apply(ev.Delta)
	case EventResetTransform:
		c.model.Reset()
	case EventToggleFilter:
		c.flags = c.flags.Toggle(ev.Filter)
		c.meter.Reset()
		if c.gpu != nil {
			// The program is chosen when GPU mode is entered and stays bound.
			c.log.WithFields(logrus.Fields{
				"filter":  ev.Filter.String(),
				"program": c.gpu.program.String(),
			}).Info("Filter change takes effect on the next switch to GPU rendering")
		}
	}
}

// Toggle switches to the other back end. A failed switch to GPU mode returns
// an *AcquisitionError and leaves the controller in CPU mode with nothing
// allocated.
func (c *Controller) Toggle(f inputs.Frame) error {
	c.meter.Reset()
	if c.gpu != nil {
		c.log.Info("Switching to CPU rendering")
		c.leaveGPU()
		return nil
	}
	return c.enterGPU(f)
}

func (c *Controller) enterGPU(f inputs.Frame) error {
	eff := c.flags.Effective()
	program := shader.ForFilters(eff.Grayscale, eff.Pixelate)
	c.log.WithFields(logrus.Fields{
		"width":   f.Width,
		"height":  f.Height,
		"program": program.String(),
	}).Info("Switching to GPU rendering")

	c.compositor.Close()
	s, err := openSession(c.device, f, program)
	if err != nil {
		c.log.WithError(err).Warn("GPU rendering unavailable, staying on CPU rendering")
		return err
	}
	c.gpu = s
	c.log.Info("GPU rendering ready")
	return nil
}

func (c *Controller) leaveGPU() {
	if c.gpu == nil {
		return
	}
	c.gpu.close()
	c.gpu = nil
	c.meter.Reset()
}

// Render presents f on the active back end. A GPU frame that cannot be drawn
// ends the GPU session; the next frame goes to the CPU back end.
func (c *Controller) Render(f inputs.Frame) error {
	if c.gpu != nil {
		if err := c.gpu.render(f, c.model.GPU()); err != nil {
			c.log.WithError(err).Error("GPU frame failed, switching to CPU rendering")
			c.leaveGPU()
		}
		return nil
	}
	return c.compositor.Present(f, c.flags, c.model.CPU(f.Width, f.Height))
}

func (c *Controller) pollKeys() []graphics.KeyEvent {
	if c.gpu != nil {
		return c.gpu.ctx.PollKeys()
	}
	return c.compositor.PollKeys()
}

// Step runs one loop iteration for f: input, window-close handling, then
// rendering. It reports true once exit was requested.
func (c *Controller) Step(f inputs.Frame) (bool, error) {
	for _, ev := range c.keymap.Events(c.pollKeys()) {
		c.Handle(ev, f)
		if c.exit {
			return true, nil
		}
	}

	if c.gpu != nil && c.gpu.ctx.ShouldClose() {
		c.log.Info("GPU window closed, switching to CPU rendering")
		c.leaveGPU()
	}

	if err := c.Render(f); err != nil {
		return false, err
	}
	c.meter.Tick()
	return false, nil
}

// Close releases the GPU session, if any, and the CPU window.
func (c *Controller) Close() {
	c.leaveGPU()
	c.compositor.Close()
}
