// Package server implements the MCP (Model Context Protocol) server for the
// two-tone image transforms.
//
// This package provides a JSON-RPC 2.0 server that exposes halftone, ordered
// dither and posterize rendering through the MCP protocol, so MCP-compatible
// clients can stylize images without shelling out to the command-line tool.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_halftone: Dot grid whose radii follow cell darkness
//   - image_dither: 8x8 Bayer ordered dither
//   - image_posterize: Single global threshold
//
// The transform tools share path, output_path, ink, paper, weighting and
// workers arguments. Without output_path the result is returned inline as
// base64 PNG.
//
// # Image Caching
//
// Decoded source images are cached by path and reused across tool calls, so
// trying several transforms on one image decodes it once. The cache persists
// for the lifetime of the server process.
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 when an argument is out of range, -32000 for any other
//     tool failure (unreadable file, unsupported output format)
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
