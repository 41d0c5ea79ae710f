package viewer

import (
	"context"
	"fmt"
)

// Run drives c with frames from src until exit is requested, ctx is done or
// the source fails. GPU resources are released before it returns.
func Run(ctx context.Context, src Source, c *Controller) error {
	defer c.Close()

	for {
		if err := ctx.Err(); err != nil {
			c.log.WithError(err).Info("Stopping render loop")
			return nil
		}

		f, err := src.Read()
		if err != nil {
			return fmt.Errorf("capture failed: %w", err)
		}
		if f.Empty() {
			return fmt.Errorf("capture failed: %w", ErrEmptyFrame)
		}

		exit, err := c.Step(f)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if exit {
			c.log.Info("Exit requested")
			return nil
		}
	}
}
