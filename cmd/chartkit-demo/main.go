// Package main provides the chartkit demo dashboard. It renders the
// charts described by a Lua configuration file in an Ebiten window,
// fed by live system and synthetic data sources.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/chartkit/internal/profiling"
	"github.com/opd-ai/chartkit/pkg/chartkit"
)

// Version is the current version of the demo binary.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("c", "", "Path to Lua configuration file")
	version := flag.Bool("v", false, "Print version and exit")
	watch := flag.Bool("watch", true, "Reload the dashboard when the config file changes")
	cpuProfile := flag.String("cpuprofile", "", "Write CPU profile to file")
	memProfile := flag.String("memprofile", "", "Write memory profile to file")
	flag.Parse()

	if *version {
		fmt.Printf("chartkit-demo version %s\n", Version)
		return 0
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "No configuration file specified. Use -c to specify a config file.")
		fmt.Fprintln(os.Stderr, "Usage: chartkit-demo -c <config.lua>")
		return 1
	}
	if _, err := os.Stat(*configPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Configuration file not found: %s\n", *configPath)
		} else {
			fmt.Fprintf(os.Stderr, "Error accessing configuration file %s: %v\n", *configPath, err)
		}
		return 1
	}

	profConfig := profiling.Config{
		CPUProfilePath: *cpuProfile,
		MemProfilePath: *memProfile,
	}
	profiler := profiling.New(profConfig)
	if profConfig.Enabled() {
		if err := profiler.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start profiling: %v\n", err)
			return 1
		}
		defer func() {
			if err := profiler.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to stop profiling: %v\n", err)
			}
		}()
	}

	opts := chartkit.DefaultOptions()
	opts.WatchConfig = *watch

	app, err := chartkit.New(*configPath, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building dashboard: %v\n", err)
		return 1
	}
	app.SetErrorHandler(func(err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	})

	// The signal goroutine cancels the context to close the window;
	// ebiten owns the main goroutine once Run is called.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGHUP:
				fmt.Println("Received SIGHUP, reloading configuration...")
				if err := app.ReloadConfig(); err != nil {
					fmt.Fprintf(os.Stderr, "Reload failed: %v\n", err)
				}
			default:
				fmt.Println("Shutting down...")
				cancel()
				return
			}
		}
	}()

	fmt.Printf("chartkit-demo %s starting with config: %s\n", Version, *configPath)
	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Dashboard error: %v\n", err)
		return 1
	}
	return 0
}
