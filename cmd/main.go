package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/richinsley/dualview/capture"
	"github.com/richinsley/dualview/compositor"
	"github.com/richinsley/dualview/glfwcontext"
	"github.com/richinsley/dualview/options"
	"github.com/richinsley/dualview/renderer"
	"github.com/richinsley/dualview/viewer"
)

const (
	cpuTitle = "dualview (CPU)"
	gpuTitle = "dualview (GPU)"
)

func init() {
	runtime.LockOSThread()
}

func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}

func openSource(opts *options.ViewerOptions, log logrus.FieldLogger) (viewer.Source, error) {
	if *opts.Input != "" {
		return capture.OpenStream(*opts.Input, *opts.Width, *opts.Height, *opts.FFMPEGPath, log)
	}
	return capture.OpenDevice(*opts.Camera, *opts.Width, *opts.Height, log)
}

func main() {
	opts, fset, err := options.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *opts.Help {
		fmt.Println("Dual-backend live video viewer")
		fset.PrintDefaults()
		return
	}

	log := initLogger(*opts.Debug)
	os.Exit(run(opts, log))
}

// run returns the process exit code.
func run(opts *options.ViewerOptions, log *logrus.Logger) int {
	src, err := openSource(opts, log)
	if err != nil {
		log.WithError(err).Error("Failed to open capture source")
		return -1
	}
	defer src.Close()

	if err := glfwcontext.InitGraphics(log); err != nil {
		log.WithError(err).Error("Failed to initialize GLFW")
		return 1
	}
	defer glfwcontext.TerminateGraphics(log)

	var shaders fs.FS
	if *opts.ShaderDir != "" {
		shaders = os.DirFS(*opts.ShaderDir)
	}
	device := renderer.NewDevice(gpuTitle, shaders, log.WithField("backend", "gpu"))
	window := compositor.NewWindow(cpuTitle, log.WithField("backend", "cpu"))
	controller := viewer.NewController(device, window, viewer.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Starting viewer in CPU mode; press g to switch back ends, Esc to quit")
	err = viewer.Run(ctx, src, controller)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, viewer.ErrEmptyFrame):
		log.WithError(err).Error("Blank frame grabbed, stopping")
		return 0
	default:
		log.WithError(err).Error("Viewer stopped")
		return 1
	}
}
