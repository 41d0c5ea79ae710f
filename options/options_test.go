package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	opts, _, err := Parse("dualview", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, *opts.Camera)
	assert.Empty(t, *opts.Input)
	assert.Equal(t, DefaultWidth, *opts.Width)
	assert.Equal(t, DefaultHeight, *opts.Height)
	assert.Empty(t, *opts.ShaderDir)
	assert.False(t, *opts.Debug)
}

func TestParseFlags(t *testing.T) {
	opts, _, err := Parse("dualview", []string{
		"-camera", "2", "-input", "clip.mp4", "-width", "1280", "-height", "720",
		"-ffmpeg", "/opt/ffmpeg", "-shaders", "./glsl", "-debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, *opts.Camera)
	assert.Equal(t, "clip.mp4", *opts.Input)
	assert.Equal(t, 1280, *opts.Width)
	assert.Equal(t, 720, *opts.Height)
	assert.Equal(t, "/opt/ffmpeg", *opts.FFMPEGPath)
	assert.Equal(t, "./glsl", *opts.ShaderDir)
	assert.True(t, *opts.Debug)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"negative camera", []string{"-camera", "-1"}, "camera index"},
		{"zero width", []string{"-width", "0"}, "frame size"},
		{"negative height", []string{"-height", "-5"}, "frame size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse("dualview", tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, _, err := Parse("dualview", []string{"-record"})
	assert.Error(t, err)
}
