// Package main is the entry point for the rpg-roller CLI
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

func main() {
	if err := execute(context.Background(), buildService, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}

// execute runs one invocation and releases the service even when the
// command fails
func execute(ctx context.Context, factory serviceFactory, args []string, stdout, stderr io.Writer) error {
	cmd, release := newRootCmd(factory)
	defer release()

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}
