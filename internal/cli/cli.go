// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for linkzip.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdShorten
	CmdInfo
	CmdResolve
	CmdPrompt
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config: explicit config file
	BaseURL    string // --base-url: overrides api.base_url
	Debug      bool   // --debug: diagnostics to stderr or the debug log

	// Command-specific
	JSON       bool   // Output in JSON format
	Copy       bool   // shorten: also copy the result
	Target     string // URL or short key the command acts on
	Subcommand string
}

const usageText = `linkzip - The one-stop solution for your URL shortening needs.

Usage:
  linkzip                        Start the TUI (default)
  linkzip tui                    Start the TUI
  linkzip shorten <url>          Shorten a URL and print the short link
    --json                       Output in JSON format
    --copy                       Also copy the short link to the clipboard
  linkzip info <key>             Show what a short key points to
    --json                       Output in JSON format
  linkzip resolve <key>          Print the redirect target of a short key
  linkzip prompt                 Shorten URLs line by line (interactive)
  linkzip config [show|path]     Show effective configuration or its path
  linkzip version [--json]       Show version information
  linkzip help                   Show this help

Global Flags:
  --config PATH     Read configuration from PATH
  --base-url URL    Override the API base URL
  --debug           Write diagnostics (stderr, or linkzip-debug.log in the TUI)

TUI Keys:
  Tab / S-Tab       Move between widgets
  Enter             Shorten the focused widget's URL
  C-y               Copy the focused widget's short URL
  F1                Toggle full help
  Esc / C-c         Quit

Environment:
  LINKZIP_BASE_URL, LINKZIP_PUBLIC_URL, LINKZIP_TIMEOUT,
  LINKZIP_RATE_LIMIT, LINKZIP_DEBUG

Examples:
  linkzip shorten https://example.com/a/very/long/path
  linkzip shorten https://example.com --json
  linkzip info Xy12ab
  linkzip --base-url http://127.0.0.1:9000 resolve Xy12ab

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "linkzip version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses command-line arguments (without the program name).
func ParseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "shorten", "s":
		p := NewArgParser(remaining, "json", "copy")
		parsedArgs.Target = p.Positional(0)
		parsedArgs.JSON = p.BoolFlag("json")
		parsedArgs.Copy = p.BoolFlag("copy")
		return CmdShorten, parsedArgs

	case "info", "i":
		p := NewArgParser(remaining, "json")
		parsedArgs.Target = p.Positional(0)
		parsedArgs.JSON = p.BoolFlag("json")
		return CmdInfo, parsedArgs

	case "resolve", "r":
		p := NewArgParser(remaining, "json")
		parsedArgs.Target = p.Positional(0)
		parsedArgs.JSON = p.BoolFlag("json")
		return CmdResolve, parsedArgs

	case "prompt", "repl":
		return CmdPrompt, parsedArgs

	case "config":
		p := NewArgParser(remaining)
		parsedArgs.Subcommand = p.Subcommand()
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		parsedArgs.JSON = NewArgParser(remaining, "json").BoolFlag("json")
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Subcommand = cmd
		return CmdUnknown, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "--debug":
			parsedArgs.Debug = true
		case "--config", "--base-url":
			if i+1 < len(args) {
				i++
				if arg == "--config" {
					parsedArgs.ConfigPath = args[i]
				} else {
					parsedArgs.BaseURL = args[i]
				}
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--base-url="):
				parsedArgs.BaseURL = strings.TrimPrefix(arg, "--base-url=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}

	return remaining, parsedArgs
}
