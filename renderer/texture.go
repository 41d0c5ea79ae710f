package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/inputs"
)

// textureStore backs a VideoChannel with GL textures. Every call checks that
// the owning context is current on the calling thread.
type textureStore struct {
	ctx graphics.Context
}

// Helper to convert a wrap mode name to the OpenGL constant.
func getWrapMode(wrap string) int32 {
	switch wrap {
	case "repeat":
		return gl.REPEAT
	default:
		return gl.CLAMP_TO_EDGE
	}
}

// Helper to convert a filter name to OpenGL constants.
func getFilterMode(filter string) (minFilter, magFilter int32) {
	switch filter {
	case "nearest":
		return gl.NEAREST, gl.NEAREST
	default:
		return gl.LINEAR, gl.LINEAR
	}
}

// pixelFormat maps the channel order of a frame to the GL upload format.
func pixelFormat(order inputs.ChannelOrder) uint32 {
	if order == inputs.RGB {
		return gl.RGB
	}
	return gl.BGR
}

func (s *textureStore) Allocate(width, height int) (uint32, error) {
	if !s.ctx.IsCurrent() {
		return 0, inputs.ErrContextNotCurrent
	}

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, getWrapMode("clamp"))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, getWrapMode("clamp"))
	minFilter, magFilter := getFilterMode("linear")
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height), 0, gl.BGR, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &textureID)
		return 0, fmt.Errorf("glTexImage2D failed with 0x%x", e)
	}
	return textureID, nil
}

func (s *textureStore) Upload(id uint32, f inputs.Frame) error {
	if !s.ctx.IsCurrent() {
		return inputs.ErrContextNotCurrent
	}

	// Rows of 3-byte pixels are not 4-byte aligned for most widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(f.Width), int32(f.Height), pixelFormat(f.Order), gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("glTexSubImage2D failed with 0x%x", e)
	}
	return nil
}

func (s *textureStore) Delete(id uint32) {
	if !s.ctx.IsCurrent() {
		return
	}
	gl.DeleteTextures(1, &id)
}
