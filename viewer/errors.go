package viewer

import (
	"errors"
	"fmt"
)

var (
	// ErrAcquisition matches every AcquisitionError.
	ErrAcquisition = errors.New("gpu acquisition failed")

	// ErrEmptyFrame is returned by a Source that produced no image. It ends
	// the render loop.
	ErrEmptyFrame = errors.New("captured empty frame")
)

// AcquisitionError reports which GPU resource could not be created while
// entering GPU mode. Everything acquired before it has been released.
type AcquisitionError struct {
	Step string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to acquire %s: %v", e.Step, e.Err)
}

func (e *AcquisitionError) Unwrap() []error {
	return []error{ErrAcquisition, e.Err}
}
