package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/roster/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("roster exited with error", "error", err)
		os.Exit(1)
	}
}
