package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/unity-markup/internal/fs"
)

// Run executes the unity command line described by args, where args[0] is the
// program name. Errors are printed to stderr as well as returned so the caller
// only has to pick an exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, envProvider fs.EnvProvider) error {
	if envProvider == nil {
		envProvider = fs.NewEnvProvider()
	}

	var level slog.LevelVar
	level.Set(slog.LevelInfo)

	// One manager per invocation so concurrent Runs in tests share nothing.
	lazy := &LazyManager{}
	defer func() {
		if cErr := lazy.Close(); cErr != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", cErr)
		}
	}()

	root := NewRootCmd(lazy, &level, stderr, envProvider)
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}
