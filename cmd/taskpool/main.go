// ============================================================================
// Taskpool CLI - Main Entry Point
// ============================================================================
//
// File: cmd/taskpool/main.go
// Purpose: Application entry point and CLI initialization
//
// Responsibilities:
//   1. Version Management - Inject build info via ldflags
//   2. Panic Recovery - Catch unexpected panics gracefully
//   3. CLI Setup - Build and configure Cobra command interface
//
// Usage:
//   ./taskpool run              # Start an interactive add/cancel session
//   ./taskpool run -c pool.yaml # Start with a config file
//   ./taskpool status           # Show configuration that run would use
//
// ============================================================================

package main

import (
	"fmt"
	"os"

	"github.com/wrenhollow/taskpool/internal/cli"
)

var (
	version = "1.0.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	rootCmd := cli.BuildCLI()
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
