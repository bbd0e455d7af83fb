// Package main provides the yaget command-line tool: it scans a project
// tree for TODO annotations and generates implementation suggestions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cyclone1070/yaget/internal/cmd"
)

func main() {
	// Interrupts cancel the run: no new generation requests are launched,
	// in-flight ones are abandoned with the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
