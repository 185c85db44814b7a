// Package main provides the CLI entrypoint for cmdlet-generator.
//
// cmdlet-generator runs the generation stages over a command model:
//   - Applies remove-command / hide-command directives from configuration
//   - Emits C# members for dictionary-shaped schemas
//   - Writes the transformed model and the generated fragments
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse flags: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cmdlet-generator: %v\n", err)
		stop()
		os.Exit(1)
	}
}
