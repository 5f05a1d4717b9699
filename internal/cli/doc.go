// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands.
//
// # Commands
//
//   - shorten: one-shot shortening, same rules as a TUI widget
//   - info: look up the original URL behind a short key
//   - resolve: print a short key's redirect target
//   - prompt: shorten URLs line by line
//   - config, version, help
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdShorten:
//	    err = cli.HandleShorten(ctx, rt, args)
//	}
//
// Handlers return errors; GetExitCode maps them to process exit codes and
// DisplayError prints them.
package cli
