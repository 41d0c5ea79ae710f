// Package compositor is the CPU back end: frames are filtered and warped
// with OpenCV and shown in a HighGUI window.
package compositor

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/transform"
	"github.com/richinsley/dualview/viewer"
)

// HighGUI key codes. Arrows are the values reported by the GTK back end.
var keyCodes = map[int]graphics.Key{
	27:  graphics.KeyEscape,
	'1': graphics.Key1,
	'2': graphics.Key2,
	'3': graphics.Key3,
	'4': graphics.Key4,
	'g': graphics.KeyG,
	'i': graphics.KeyI,
	'o': graphics.KeyO,
	'r': graphics.KeyR,
	81:  graphics.KeyLeft,
	82:  graphics.KeyUp,
	83:  graphics.KeyRight,
	84:  graphics.KeyDown,
}

// keyFromCode maps a WaitKey result. Negative codes mean no key.
func keyFromCode(code int) (graphics.Key, bool) {
	if code < 0 {
		return graphics.KeyUnknown, false
	}
	k, ok := keyCodes[code&0xff]
	return k, ok
}

// Window shows frames in an OpenCV window that is created on the first
// Present and destroyed by Close.
type Window struct {
	title  string
	window *gocv.Window
	log    logrus.FieldLogger
}

func NewWindow(title string, log logrus.FieldLogger) *Window {
	return &Window{title: title, log: log}
}

// Open reports whether the window currently exists.
func (w *Window) Open() bool {
	return w.window != nil
}

// Present filters f, warps it by m and shows the result.
func (w *Window) Present(f inputs.Frame, flags viewer.FilterFlags, m transform.Affine) error {
	src, err := toMat(f)
	if err != nil {
		return err
	}
	defer src.Close()

	filtered, err := ApplyFilters(src, flags)
	if err != nil {
		return err
	}
	defer filtered.Close()

	warped := Warp(filtered, m)
	defer warped.Close()

	if w.window == nil {
		w.window = gocv.NewWindow(w.title)
		w.log.WithField("title", w.title).Debug("CPU window opened")
	}
	w.window.IMShow(warped)
	return nil
}

// PollKeys pumps the HighGUI event loop and returns the key pressed, if any.
// HighGUI does not report repeats, so every event is a press.
func (w *Window) PollKeys() []graphics.KeyEvent {
	if w.window == nil {
		return nil
	}
	if k, ok := keyFromCode(w.window.WaitKey(1)); ok {
		return []graphics.KeyEvent{{Key: k}}
	}
	return nil
}

func (w *Window) Close() {
	if w.window == nil {
		return
	}
	if err := w.window.Close(); err != nil {
		w.log.WithError(err).Warn("failed to close CPU window")
	}
	w.window = nil
	w.log.Debug("CPU window closed")
}

// toMat wraps a frame's pixels in a Mat. RGB frames are converted to BGR.
func toMat(f inputs.Frame) (gocv.Mat, error) {
	if err := f.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	mat, err := gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, f.Pix[:f.Stride()*f.Height])
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to wrap frame: %w", err)
	}
	if f.Order == inputs.BGR {
		return mat, nil
	}

	defer mat.Close()
	bgr := gocv.NewMat()
	if err := gocv.CvtColor(mat, &bgr, gocv.ColorRGBToBGR); err != nil {
		bgr.Close()
		return gocv.NewMat(), err
	}
	return bgr, nil
}
