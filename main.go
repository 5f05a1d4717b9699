// linkzip - A terminal front end for the LinkZip URL shortener.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/linkzip/internal/cli"
	"github.com/jeranaias/linkzip/internal/ui/app"
	"github.com/jeranaias/linkzip/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const debugLogFile = "linkzip-debug.log"

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args := cli.Parse()

	// Route to appropriate handler
	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdShorten:
		runCommand("shorten", args, func(ctx context.Context, rt *cli.Runtime) error {
			return cli.HandleShorten(ctx, rt, args)
		})
	case cli.CmdInfo:
		runCommand("info", args, func(ctx context.Context, rt *cli.Runtime) error {
			return cli.HandleInfo(ctx, rt, args)
		})
	case cli.CmdResolve:
		runCommand("resolve", args, func(ctx context.Context, rt *cli.Runtime) error {
			return cli.HandleResolve(ctx, rt, args)
		})
	case cli.CmdPrompt:
		runCommand("prompt", args, func(ctx context.Context, rt *cli.Runtime) error {
			return cli.HandlePrompt(ctx, rt, args)
		})
	case cli.CmdConfig:
		runCommand("config", args, func(_ context.Context, rt *cli.Runtime) error {
			return cli.HandleConfig(rt, args)
		})
	case cli.CmdVersion:
		runCommand("version", args, func(_ context.Context, rt *cli.Runtime) error {
			return cli.HandleVersion(rt, args)
		})
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
	default:
		err := cli.NewUsageError(fmt.Sprintf("unknown command %q", args.Subcommand), "linkzip help")
		cli.DisplayError(os.Stderr, args.Subcommand, err, false)
		os.Exit(cli.GetExitCode(err))
	}
}

// runCommand builds the runtime, runs fn with an interrupt-aware context and
// exits with the code matching its error.
func runCommand(name string, args cli.Args, fn func(context.Context, *cli.Runtime) error) {
	rt, err := cli.NewRuntime(args)
	if err != nil {
		fail(name, args, err)
	}
	cli.ConfigureLogging(rt.Config.Debug, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fn(ctx, rt); err != nil {
		stop()
		fail(name, args, err)
	}
}

func fail(name string, args cli.Args, err error) {
	// JSON errors go to stdout so scripts can parse them.
	w := io.Writer(os.Stderr)
	if args.JSON {
		w = os.Stdout
	}
	cli.DisplayError(w, name, err, args.JSON)
	os.Exit(cli.GetExitCode(err))
}

// runTUI starts the TUI interface.
func runTUI(args cli.Args) {
	if err := cli.RequiresTTY("start the TUI"); err != nil {
		fail("tui", args, err)
	}

	rt, err := cli.NewRuntime(args)
	if err != nil {
		fail("tui", args, err)
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	if rt.Config.Debug {
		f, err := tea.LogToFile(debugLogFile, "linkzip")
		if err != nil {
			fail("tui", args, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := app.New(app.Options{
		Theme:     styles.NewTheme(),
		Client:    rt.Client,
		Clipboard: rt.Clipboard,
		Widgets:   rt.Config.Widgets,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running linkzip: %v\n", err)
		os.Exit(1)
	}
}
