package inputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipVerticalInto(t *testing.T) {
	f := Frame{
		Pix: []byte{
			1, 1, 1, 2, 2, 2,
			3, 3, 3, 4, 4, 4,
			5, 5, 5, 6, 6, 6,
		},
		Width:  2,
		Height: 3,
		Order:  BGR,
	}

	flipped := f.FlipVerticalInto(nil)
	require.NoError(t, flipped.Validate())
	assert.Equal(t, []byte{
		5, 5, 5, 6, 6, 6,
		3, 3, 3, 4, 4, 4,
		1, 1, 1, 2, 2, 2,
	}, flipped.Pix)
	assert.Equal(t, BGR, flipped.Order)

	// The source is untouched and a large enough buffer is reused.
	assert.Equal(t, byte(1), f.Pix[0])
	buf := make([]byte, 0, 64)
	again := f.FlipVerticalInto(buf)
	assert.Equal(t, &buf[:1][0], &again.Pix[0])
}

func TestFrameValidate(t *testing.T) {
	assert.Error(t, Frame{}.Validate())
	assert.Error(t, Frame{Pix: make([]byte, 5), Width: 1, Height: 2}.Validate())
	assert.NoError(t, Frame{Pix: make([]byte, 6), Width: 1, Height: 2}.Validate())
	assert.True(t, Frame{Width: 4, Height: 4}.Empty())
}
