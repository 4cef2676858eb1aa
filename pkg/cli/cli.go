package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Version may be overridden at build-time with -ldflags "-X github.com/jlrickert/glue/pkg/cli.Version=..."
var Version = "dev"

// Run executes the glue command tree against rt. It returns the process exit
// code: 0 on success, 130 when cancelled, 1 otherwise.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	if rt == nil {
		return 1, fmt.Errorf("runtime is required")
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &Deps{Runtime: rt}
	defer func() {
		if deps.Shutdown != nil {
			deps.Shutdown()
		}
	}()

	stream := rt.Stream()
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetIn(stream.In)
	cmd.SetOut(stream.Out)
	cmd.SetErr(stream.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, &userError{msg: renderUserError(err, deps), err: err}
	}
	return 0, nil
}
