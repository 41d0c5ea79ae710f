package viewer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// FrameMeter counts presented frames and reports the average frame rate since
// the last reset, once per second.
type FrameMeter struct {
	now    func() time.Time
	log    logrus.FieldLogger
	start  time.Time
	last   time.Time
	frames int
	fps    float64
}

// NewFrameMeter returns a meter reading time from now.
func NewFrameMeter(log logrus.FieldLogger, now func() time.Time) *FrameMeter {
	m := &FrameMeter{now: now, log: log}
	m.Reset()
	return m
}

// Reset starts a new measurement. The controller resets on every change
// that alters the per-frame cost.
func (m *FrameMeter) Reset() {
	m.start = m.now()
	m.last = m.start
	m.frames = 0
	m.fps = 0
}

// Tick records one presented frame.
func (m *FrameMeter) Tick() {
	m.frames++
	now := m.now()
	if now.Sub(m.last) < time.Second {
		return
	}
	total := now.Sub(m.start).Seconds()
	m.fps = float64(m.frames) / total
	m.last = now
	m.log.WithFields(logrus.Fields{
		"frames":  m.frames,
		"elapsed": total,
		"fps":     m.fps,
	}).Debug("Frame rate")
}

// FPS returns the last reported frame rate, zero until a second has passed.
func (m *FrameMeter) FPS() float64 {
	return m.fps
}
