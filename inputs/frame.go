package inputs

import "fmt"

// ChannelOrder is the byte order of the three channels of a pixel.
type ChannelOrder int

const (
	BGR ChannelOrder = iota // OpenCV's native order
	RGB
)

func (o ChannelOrder) String() string {
	if o == RGB {
		return "rgb"
	}
	return "bgr"
}

// Frame is one densely packed 3-channel image, rows stored top to bottom
// unless it was produced by FlipVerticalInto.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
	Order  ChannelOrder
}

const bytesPerPixel = 3

// Stride is the length in bytes of one row.
func (f Frame) Stride() int {
	return f.Width * bytesPerPixel
}

// Empty reports whether the frame carries no image.
func (f Frame) Empty() bool {
	return len(f.Pix) == 0 || f.Width <= 0 || f.Height <= 0
}

// Validate checks that Pix holds exactly Width x Height pixels.
func (f Frame) Validate() error {
	if f.Empty() {
		return fmt.Errorf("frame is empty (%dx%d, %d bytes)", f.Width, f.Height, len(f.Pix))
	}
	if want := f.Stride() * f.Height; len(f.Pix) != want {
		return fmt.Errorf("frame %dx%d has %d bytes, want %d", f.Width, f.Height, len(f.Pix), want)
	}
	return nil
}

// FlipVerticalInto copies f into dst with the row order reversed, growing dst
// if it is too small, and returns the flipped frame backed by dst. GL textures
// start at the bottom row, so frames are flipped before upload.
func (f Frame) FlipVerticalInto(dst []byte) Frame {
	size := f.Stride() * f.Height
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]

	rowSize := f.Stride()
	for y := 0; y < f.Height; y++ {
		srcRow := f.Pix[(f.Height-1-y)*rowSize:]
		copy(dst[y*rowSize:(y+1)*rowSize], srcRow[:rowSize])
	}
	return Frame{Pix: dst, Width: f.Width, Height: f.Height, Order: f.Order}
}
