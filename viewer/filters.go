package viewer

import "fmt"

// Filter names one of the image filters.
type Filter int

const (
	FilterGrayscale Filter = iota
	FilterBlur
	FilterEdge
	FilterPixelate
)

func (f Filter) String() string {
	switch f {
	case FilterGrayscale:
		return "grayscale"
	case FilterBlur:
		return "blur"
	case FilterEdge:
		return "edge"
	case FilterPixelate:
		return "pixelate"
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// FilterFlags holds the independent on/off state of each filter. Filters run
// in field order: grayscale, blur, edge, pixelate.
type FilterFlags struct {
	Grayscale bool
	Blur      bool
	Edge      bool
	Pixelate  bool
}

// Toggle returns the flags with f flipped.
func (ff FilterFlags) Toggle(f Filter) FilterFlags {
	switch f {
	case FilterGrayscale:
		ff.Grayscale = !ff.Grayscale
	case FilterBlur:
		ff.Blur = !ff.Blur
	case FilterEdge:
		ff.Edge = !ff.Edge
	case FilterPixelate:
		ff.Pixelate = !ff.Pixelate
	}
	return ff
}

// Effective returns the flags a frame is actually processed with. Edge
// detection runs on a single channel, so it forces grayscale on.
func (ff FilterFlags) Effective() FilterFlags {
	if ff.Edge {
		ff.Grayscale = true
	}
	return ff
}
