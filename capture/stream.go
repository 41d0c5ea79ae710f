package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/viewer"
)

// Stream reads frames decoded by ffmpeg from a file or URL. ffmpeg scales
// every frame to the requested size and writes raw bgr24 into a pipe.
type Stream struct {
	r      io.ReadCloser
	cmd    *exec.Cmd
	width  int
	height int
	buf    []byte
	log    logrus.FieldLogger
}

// outputArgs are the ffmpeg output options for raw frames of the given size.
func outputArgs(width, height int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "bgr24",
		"s":       fmt.Sprintf("%dx%d", width, height),
	}
}

// OpenStream starts ffmpeg decoding input. ffmpegPath may be empty to use
// the ffmpeg found on PATH.
func OpenStream(input string, width, height int, ffmpegPath string, log logrus.FieldLogger) (*Stream, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid stream size %dx%d", ErrOpen, width, height)
	}

	pipeReader, pipeWriter := io.Pipe()
	ffmpegCmd := ffmpeg.Input(input, ffmpeg.KwArgs{"re": ""}).
		Output("pipe:", outputArgs(width, height)).
		WithOutput(pipeWriter)
	if ffmpegPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(ffmpegPath)
	}

	cmd := ffmpegCmd.Compile()
	if err := cmd.Start(); err != nil {
		pipeWriter.Close()
		return nil, fmt.Errorf("%w: ffmpeg: %v", ErrOpen, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			log.WithError(err).Debug("ffmpeg exited")
		}
		// Unblocks the reader once ffmpeg is gone.
		pipeWriter.Close()
	}()

	log.WithFields(logrus.Fields{
		"input":  input,
		"width":  width,
		"height": height,
	}).Info("stream opened")

	s := newStream(pipeReader, width, height, log)
	s.cmd = cmd
	return s, nil
}

func newStream(r io.ReadCloser, width, height int, log logrus.FieldLogger) *Stream {
	return &Stream{
		r:      r,
		width:  width,
		height: height,
		buf:    make([]byte, width*height*3),
		log:    log,
	}
}

// Read returns the next frame, whose pixels are overwritten by the following
// Read. The end of the stream, or a truncated last frame, is reported as
// viewer.ErrEmptyFrame.
func (s *Stream) Read() (inputs.Frame, error) {
	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrClosedPipe) {
			return inputs.Frame{}, viewer.ErrEmptyFrame
		}
		return inputs.Frame{}, fmt.Errorf("failed to read frame: %w", err)
	}
	return inputs.Frame{
		Pix:    s.buf,
		Width:  s.width,
		Height: s.height,
		Order:  inputs.BGR,
	}, nil
}

// Close stops ffmpeg and closes the pipe.
func (s *Stream) Close() error {
	if s.cmd != nil && s.cmd.Process != nil {
		if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			s.log.WithError(err).Warn("failed to stop ffmpeg")
		}
	}
	return s.r.Close()
}
