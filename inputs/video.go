// inputs/video.go
package inputs

import (
	"errors"
	"fmt"
)

var (
	// ErrContextNotCurrent is returned by a Store used from a thread that does
	// not own the GL context.
	ErrContextNotCurrent = errors.New("gpu context is not current")

	// ErrReleased is returned when updating a destroyed VideoChannel.
	ErrReleased = errors.New("video channel already released")
)

// Store performs the GPU side of a VideoChannel: allocating a texture of a
// given size, uploading a frame into it, and deleting it.
type Store interface {
	Allocate(width, height int) (uint32, error)
	Upload(id uint32, f Frame) error
	Delete(id uint32)
}

// VideoChannel is a texture fed with live video frames. It owns exactly one
// texture whose size matches the last frame uploaded through it.
type VideoChannel struct {
	store       Store
	textureID   uint32
	width       int
	height      int
	allocations int
	released    bool
}

// NewVideoChannel allocates a texture sized to f and uploads it.
func NewVideoChannel(store Store, f Frame) (*VideoChannel, error) {
	c := &VideoChannel{store: store}
	if err := c.allocate(f); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *VideoChannel) allocate(f Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	id, err := c.store.Allocate(f.Width, f.Height)
	if err != nil {
		return fmt.Errorf("failed to allocate %dx%d texture: %w", f.Width, f.Height, err)
	}
	if err := c.store.Upload(id, f); err != nil {
		c.store.Delete(id)
		return fmt.Errorf("failed to upload frame: %w", err)
	}

	c.textureID = id
	c.width = f.Width
	c.height = f.Height
	c.allocations++
	c.released = false
	return nil
}

// Update uploads f into the existing texture. A frame of a different size
// gets a freshly allocated texture; the old one is deleted only once the new
// one holds the frame.
func (c *VideoChannel) Update(f Frame) error {
	if c.released {
		return ErrReleased
	}
	if f.Width != c.width || f.Height != c.height {
		old := c.textureID
		if err := c.allocate(f); err != nil {
			return err
		}
		c.store.Delete(old)
		return nil
	}
	if err := f.Validate(); err != nil {
		return err
	}
	return c.store.Upload(c.textureID, f)
}

// Size returns the dimensions of the current allocation.
func (c *VideoChannel) Size() (int, int) {
	return c.width, c.height
}

// Allocations counts texture allocations made over the channel's lifetime.
func (c *VideoChannel) Allocations() int {
	return c.allocations
}

// Released reports whether Destroy has been called.
func (c *VideoChannel) Released() bool {
	return c.released
}

// --- IChannel Interface Implementation ---

func (c *VideoChannel) GetTextureID() uint32 {
	return c.textureID
}

func (c *VideoChannel) ChannelRes() [3]float32 {
	return [3]float32{float32(c.width), float32(c.height), 1.0}
}

// Destroy deletes the texture. Calling it again is a no-op.
func (c *VideoChannel) Destroy() {
	if c.released {
		return
	}
	c.store.Delete(c.textureID)
	c.textureID = 0
	c.released = true
}
