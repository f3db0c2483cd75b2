// Package server implements the MCP (Model Context Protocol) server for the
// edge ruler.
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
// # Activations
//
// A ruler session starts with ruler_activate, which loads a capture from disk,
// maps it onto screen coordinates and keeps it, keyed by path, until
// ruler_deactivate. Each activation carries a boundary.Session holding per-side
// skip counts for the last measured point. Re-activating a capture whose
// perceptual fingerprint matches the previous one keeps that session, so a
// host that re-captures an unchanged screen does not lose the user's skips.
//
// # Available Tools
//
//   - ruler_activate, ruler_deactivate: Activation lifecycle
//   - ruler_dimensions: Pixel size of a capture file
//   - ruler_measure_point: Distances to the nearest edge on all four sides
//   - ruler_skip: Step past or back over one boundary on one side
//   - ruler_snap_rect: Snap a drag rectangle onto the enclosed object
//   - ruler_sample_color: Colour under a screen point
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(config.Load())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
