// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/jeranaias/linkzip/internal/config"
)

// HandleConfig handles "config [show|path]".
func HandleConfig(rt *Runtime, args Args) error {
	switch args.Subcommand {
	case "", "show":
		fmt.Fprint(rt.Stdout, rt.Config.String())
		return nil

	case "path":
		path := args.ConfigPath
		if path == "" {
			p, err := config.ConfigPathTOML()
			if err != nil {
				return &ConfigError{Err: err}
			}
			path = p
		}
		fmt.Fprintln(rt.Stdout, path)
		return nil

	default:
		return NewUsageError(fmt.Sprintf("unknown config subcommand %q", args.Subcommand), "linkzip config show")
	}
}

// HandleVersion handles the "version" command.
func HandleVersion(rt *Runtime, args Args) error {
	if args.JSON {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Print(rt.Stdout)
	}
	PrintVersion(rt.Stdout)
	return nil
}
