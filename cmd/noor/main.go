package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/glabrego/noor-cli/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "noor: %v\n", err)
		os.Exit(1)
	}
}
