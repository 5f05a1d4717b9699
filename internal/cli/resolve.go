// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"strings"
)

// HandleResolve prints where a short key redirects to, without following it.
func HandleResolve(ctx context.Context, rt *Runtime, args Args) error {
	key := strings.TrimSpace(args.Target)
	if key == "" {
		return NewUsageError("resolve needs a short key", "linkzip resolve Xy12ab")
	}

	target, err := rt.Client.Resolve(ctx, key)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("resolve", ResolveData{ShortKey: key, Target: target}).Print(rt.Stdout)
	}
	fmt.Fprintln(rt.Stdout, target)
	return nil
}
