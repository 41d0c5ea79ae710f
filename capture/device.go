// Package capture provides the frame sources the viewer reads from: a camera
// through OpenCV and files or URLs decoded by an ffmpeg process.
package capture

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/viewer"
)

// ErrOpen is returned when a capture source cannot be opened.
var ErrOpen = errors.New("cannot open capture source")

// Device reads BGR frames from a camera.
type Device struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	log     logrus.FieldLogger
}

// OpenDevice opens camera index and requests the given frame size. The
// camera may deliver another size; frames report what was captured.
func OpenDevice(index, width, height int, log logrus.FieldLogger) (*Device, error) {
	vc, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("%w: camera %d: %v", ErrOpen, index, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: camera %d", ErrOpen, index)
	}
	vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(height))

	log.WithFields(logrus.Fields{
		"camera": index,
		"width":  vc.Get(gocv.VideoCaptureFrameWidth),
		"height": vc.Get(gocv.VideoCaptureFrameHeight),
	}).Info("camera opened")

	return &Device{capture: vc, mat: gocv.NewMat(), log: log}, nil
}

// Read grabs the next frame. A failed grab or an empty image is reported as
// viewer.ErrEmptyFrame.
func (d *Device) Read() (inputs.Frame, error) {
	if ok := d.capture.Read(&d.mat); !ok || d.mat.Empty() {
		return inputs.Frame{}, viewer.ErrEmptyFrame
	}
	if d.mat.Type() != gocv.MatTypeCV8UC3 {
		return inputs.Frame{}, fmt.Errorf("unexpected camera format %v", d.mat.Type())
	}
	return inputs.Frame{
		Pix:    d.mat.ToBytes(),
		Width:  d.mat.Cols(),
		Height: d.mat.Rows(),
		Order:  inputs.BGR,
	}, nil
}

func (d *Device) Close() error {
	d.mat.Close()
	return d.capture.Close()
}
