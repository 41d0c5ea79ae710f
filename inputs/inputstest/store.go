// Package inputstest provides an in-memory inputs.Store for tests.
package inputstest

import (
	"fmt"

	"github.com/richinsley/dualview/inputs"
)

// Store is an inputs.Store keeping textures in a map. Setting Current to
// false makes every call fail the way a GL store does without a context.
type Store struct {
	Current      bool
	FailAllocate error

	Textures   map[uint32][2]int
	Allocated  int
	Uploads    int
	Deleted    int
	LastUpload inputs.Frame
	nextID     uint32
}

// NewStore returns a store with a current context.
func NewStore() *Store {
	return &Store{Current: true, Textures: make(map[uint32][2]int)}
}

func (s *Store) Allocate(width, height int) (uint32, error) {
	if !s.Current {
		return 0, inputs.ErrContextNotCurrent
	}
	if s.FailAllocate != nil {
		return 0, s.FailAllocate
	}
	s.nextID++
	s.Textures[s.nextID] = [2]int{width, height}
	s.Allocated++
	return s.nextID, nil
}

func (s *Store) Upload(id uint32, f inputs.Frame) error {
	if !s.Current {
		return inputs.ErrContextNotCurrent
	}
	size, ok := s.Textures[id]
	if !ok {
		return fmt.Errorf("texture %d does not exist", id)
	}
	if size != [2]int{f.Width, f.Height} {
		return fmt.Errorf("texture %d is %dx%d, frame is %dx%d", id, size[0], size[1], f.Width, f.Height)
	}
	s.Uploads++
	s.LastUpload = f
	return nil
}

func (s *Store) Delete(id uint32) {
	if _, ok := s.Textures[id]; ok {
		delete(s.Textures, id)
		s.Deleted++
	}
}

// Live is the number of textures allocated and not yet deleted.
func (s *Store) Live() int {
	return len(s.Textures)
}

// NewFrame returns a BGR frame whose rows are filled with their row index.
func NewFrame(width, height int) inputs.Frame {
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		row := pix[y*width*3 : (y+1)*width*3]
		for i := range row {
			row[i] = byte(y)
		}
	}
	return inputs.Frame{Pix: pix, Width: width, Height: height, Order: inputs.BGR}
}
