package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
	Err() error
}

var exit = os.Exit

// run starts app, blocks until ctx is cancelled or fx asks to shut down, then stops it.
func run(ctx context.Context, app lifecycle) {
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build application: %v\n", err)
		exit(1)
		return
	}
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start application: %v\n", err)
		exit(1)
		return
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop application: %v\n", err)
		exit(1)
	}
}

var _ lifecycle = (*fx.App)(nil)
