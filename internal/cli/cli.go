// ============================================================================
// Taskpool CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// File: cli.go
// Purpose: The interactive command-line driver for the task pool.
//
// This package is the external collaborator the core library treats as
// out of scope: it parses lines of shape "add <int_seconds>" and
// "cancel <task_id>" and calls the already-parsed values into the Pool
// Facade. The pool itself never sees raw input; it only receives Submit
// and Cancel calls.
//
// Command Structure:
//   taskpool
//   ├── run                  # Start an interactive add/cancel session
//   │   └── --config, -c     # Specify config file
//   └── status               # Print the configuration run would use
//
// ============================================================================

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/wrenhollow/taskpool"
	"github.com/wrenhollow/taskpool/internal/demoworkload"
	"github.com/wrenhollow/taskpool/internal/metrics"
)

var configFile string

// BuildCLI assembles the root Cobra command.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "taskpool",
		Short:   "taskpool: an interactive driver for the task-executing worker pool",
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (optional)")

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildStatusCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start an interactive session reading add/cancel lines from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runSession(in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var observer taskpool.Observer
	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector()
		observer = collector
		go func() {
			if err := metrics.StartServer(cfg.Metrics.Port); err != nil {
				log.Printf("metrics server stopped: %v\n", err)
			}
		}()
	}

	pool := taskpool.New(taskpool.Config{
		HotWorkers:  cfg.Pool.HotWorkers,
		IdleTimeout: cfg.Pool.IdleTimeout,
		Observer:    observer,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Fprint(out, cfg.CLI.Prompt)
	for {
		select {
		case <-sigChan:
			fmt.Fprintln(out, "\nshutting down...")
			pool.Shutdown()
			return nil
		case line, ok := <-lines:
			if !ok {
				pool.Shutdown()
				return nil
			}
			handleLine(pool, out, line)
			fmt.Fprint(out, cfg.CLI.Prompt)
		}
	}
}

func handleLine(pool *taskpool.Pool, out io.Writer, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "add":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: add <int_seconds>")
			return
		}
		seconds, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintf(out, "invalid seconds: %v\n", err)
			return
		}
		id, err := pool.Submit(demoworkload.Sleep(fields[1], time.Duration(seconds)*time.Second))
		if err != nil {
			fmt.Fprintf(out, "submit failed: %v\n", err)
			return
		}
		fmt.Fprintf(out, "added task %d\n", id)

	case "cancel":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: cancel <task_id>")
			return
		}
		raw, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			fmt.Fprintf(out, "invalid task id: %v\n", err)
			return
		}
		outcome := pool.Cancel(taskpool.TaskID(raw))
		fmt.Fprintf(out, "cancel %d -> %s\n", raw, outcome)

	case "status":
		printStatus(pool, out)

	case "quit", "exit":
		pool.Shutdown()
		fmt.Fprintln(out, "goodbye")

	default:
		fmt.Fprintf(out, "unknown command: %s\n", fields[0])
	}
}

func buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print pool configuration that would be used by run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration:")
			fmt.Fprintf(out, "  hot_workers:  %d\n", cfg.Pool.HotWorkers)
			fmt.Fprintf(out, "  idle_timeout: %s\n", cfg.Pool.IdleTimeout)
			fmt.Fprintf(out, "  metrics:      enabled=%v port=%d\n", cfg.Metrics.Enabled, cfg.Metrics.Port)
			return nil
		},
	}
}

func printStatus(pool *taskpool.Pool, out io.Writer) {
	s := pool.Stats()
	fmt.Fprintf(out, "queue_depth=%d idle_workers=%d hot=%d elastic=%d\n",
		s.QueueDepth, s.IdleWorkers, s.HotWorkers, s.ElasticWorkers)
}
