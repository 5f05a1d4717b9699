// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shortener provides the HTTP client for the LinkZip shortening API.
//
// The shortening service is an external collaborator. This package only
// speaks its HTTP contract:
//
//	POST /api/urls          {"original_url": "..."} -> {"short_key": "..."}
//	GET  /api/info/{key}    -> {"original_url": "...", "short_key": "..."}
//	GET  /{key}             -> 307 redirect to the original URL
//
// # Key Types
//
//   - Client: HTTP client with a client-side request throttle
//   - URLInfo: the service's view of a shortened URL
//   - ClientError: classified failure carrying the user-facing message
//
// # Usage
//
//	client := shortener.NewClient()
//	info, err := client.Shorten(ctx, "https://example.com/a/long/path")
//	if err != nil {
//	    fmt.Println(shortener.Message(err))
//	    return
//	}
//	fmt.Println(client.ShortURL(info.ShortKey))
//
// # Errors
//
// Every failure returned by Shorten is a *ClientError whose Message is safe to
// show to the user verbatim. Shorten never retries: one call is one request.
package shortener
