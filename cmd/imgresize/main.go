package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/leeforge/imgresize/errors"
	"github.com/leeforge/imgresize/logging"
)

// version is set with -ldflags "-X main.version=..." at release time.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
// Fatal errors are reported on stderr as "error: <message>".
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer errors.ErrorRecoverWithHandler(func(e *errors.AppError) {
		logging.Error("panic recovered", zap.String("panic", e.Message), zap.Strings("stack", e.Stack))
		fmt.Fprintln(stderr, "error: "+errors.NewErrorFormatter(true, true).Format(e))
		code = errors.ExitGeneric
	})

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}

	verbose, _ := cmd.PersistentFlags().GetBool("verbose")
	fmt.Fprintln(stderr, "error: "+errors.NewErrorFormatter(false, verbose).Format(err))
	return errors.ExitCode(err)
}
