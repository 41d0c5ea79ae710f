package options

import (
	"errors"
	"flag"
	"fmt"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 360
)

// ViewerOptions holds the command line configuration. Every field is bound
// to a flag, so the zero configuration is the flag defaults.
type ViewerOptions struct {
	Camera     *int
	Input      *string // File or URL decoded with ffmpeg. Overrides Camera.
	Width      *int
	Height     *int
	FFMPEGPath *string
	ShaderDir  *string // Directory of shader sources replacing the built-in set.
	Debug      *bool
	Help       *bool
}

// Bind registers the viewer flags on fs.
func Bind(fs *flag.FlagSet) *ViewerOptions {
	return &ViewerOptions{
		Camera:     fs.Int("camera", 0, "Camera index"),
		Input:      fs.String("input", "", "Video file or URL to play instead of the camera"),
		Width:      fs.Int("width", DefaultWidth, "Requested frame width"),
		Height:     fs.Int("height", DefaultHeight, "Requested frame height"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		ShaderDir:  fs.String("shaders", "", "Directory containing shader sources"),
		Debug:      fs.Bool("debug", false, "Enable debug logging"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Parse binds the viewer flags to a new flag set and parses args.
func Parse(name string, args []string) (*ViewerOptions, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, opts.Validate()
}

func (o *ViewerOptions) Validate() error {
	var errs []error
	if *o.Camera < 0 {
		errs = append(errs, fmt.Errorf("camera index must not be negative, got %d", *o.Camera))
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %dx%d", *o.Width, *o.Height))
	}
	return errors.Join(errs...)
}
