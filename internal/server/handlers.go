package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/edge-ruler-mcp/internal/boundary"
	"github.com/ironsheep/edge-ruler-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ruler_activate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Activation lifecycle
	case "ruler_activate":
		return s.handleRulerActivate(args)
	case "ruler_deactivate":
		return s.handleRulerDeactivate(args)
	case "ruler_dimensions":
		return s.handleRulerDimensions(args)

	// Measurement
	case "ruler_measure_point":
		return s.handleRulerMeasurePoint(args)
	case "ruler_skip":
		return s.handleRulerSkip(args)
	case "ruler_snap_rect":
		return s.handleRulerSnapRect(args)

	// Inspection
	case "ruler_sample_color":
		return s.handleRulerSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// tolerance applies the configured default and range-checks the result.
func (s *Server) tolerance(v *int) (uint8, error) {
	t := s.cfg.Tolerance
	if v != nil {
		t = *v
	}
	if t < 0 || t > 255 {
		return 0, fmt.Errorf("tolerance %d outside 0-255", t)
	}
	return uint8(t), nil
}

func (s *Server) pointOptions(tol *int, mode string, gridUnit float64) (boundary.PointOptions, error) {
	t, err := s.tolerance(tol)
	if err != nil {
		return boundary.PointOptions{}, err
	}
	m := s.cfg.Mode
	if mode != "" {
		if m, err = boundary.ParseCorrectionMode(mode); err != nil {
			return boundary.PointOptions{}, err
		}
	}
	if gridUnit < 0 {
		return boundary.PointOptions{}, fmt.Errorf("grid unit must be positive, got %v", gridUnit)
	}
	if gridUnit == 0 {
		gridUnit = s.cfg.GridUnit
	}
	return boundary.PointOptions{Tolerance: t, Mode: m, GridUnit: gridUnit}, nil
}

// === Activation Handlers ===

type rulerActivateArgs struct {
	Path         string          `json:"path"`
	OriginX      float64         `json:"origin_x"`
	OriginY      float64         `json:"origin_y"`
	OriginWidth  float64         `json:"origin_width"`
	OriginHeight float64         `json:"origin_height"`
	Region       *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleRulerActivate(args json.RawMessage) (interface{}, error) {
	var a rulerActivateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	origin := boundary.Rect{X: a.OriginX, Y: a.OriginY, Width: a.OriginWidth, Height: a.OriginHeight}
	return s.activate(a.Path, origin, a.Region)
}

type pathArgs struct {
	Path string `json:"path"`
}

// DeactivateResult reports whether an activation existed.
type DeactivateResult struct {
	Path        string `json:"path"`
	Deactivated bool   `json:"deactivated"`
}

func (s *Server) handleRulerDeactivate(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &DeactivateResult{Path: a.Path, Deactivated: s.deactivate(a.Path)}, nil
}

func (s *Server) handleRulerDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Measurement Handlers ===

// MeasureResult is the outcome of a point query.
type MeasureResult struct {
	Edges boundary.DirectionalEdges `json:"edges"`

	// Width and Height are left+right and top+bottom when both sides exist.
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	Mode  string         `json:"mode"`
	Skips map[string]int `json:"skips"`

	// SessionReset is true when the query moved to a new point and cleared
	// the skip counts.
	SessionReset bool `json:"session_reset"`
}

func newMeasureResult(edges boundary.DirectionalEdges, opts boundary.PointOptions, session *boundary.Session, reset bool) *MeasureResult {
	r := &MeasureResult{
		Edges:        edges,
		Mode:         opts.Mode.String(),
		Skips:        make(map[string]int, len(boundary.Directions)),
		SessionReset: reset,
	}
	if w, ok := edges.Width(); ok {
		r.Width = &w
	}
	if h, ok := edges.Height(); ok {
		r.Height = &h
	}
	for _, d := range boundary.Directions {
		r.Skips[d.String()] = session.Skip(d)
	}
	return r
}

type rulerMeasurePointArgs struct {
	Path      string  `json:"path"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Tolerance *int    `json:"tolerance,omitempty"`
	Mode      string  `json:"mode,omitempty"`
	GridUnit  float64 `json:"grid_unit,omitempty"`
}

func (s *Server) handleRulerMeasurePoint(args json.RawMessage) (interface{}, error) {
	var a rulerMeasurePointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.pointOptions(a.Tolerance, a.Mode, a.GridUnit)
	if err != nil {
		return nil, err
	}

	return s.withActivation(a.Path, func(act *activation) (interface{}, error) {
		p := boundary.Point{X: a.X, Y: a.Y}
		reset := act.session.MoveTo(p)
		edges := act.capture.Buffer.QueryPoint(p, opts, act.session)
		return newMeasureResult(edges, opts, act.session, reset), nil
	})
}

type rulerSkipArgs struct {
	Path      string  `json:"path"`
	Direction string  `json:"direction"`
	Increase  bool    `json:"increase"`
	Tolerance *int    `json:"tolerance,omitempty"`
	Mode      string  `json:"mode,omitempty"`
	GridUnit  float64 `json:"grid_unit,omitempty"`
}

func (s *Server) handleRulerSkip(args json.RawMessage) (interface{}, error) {
	var a rulerSkipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	dir, err := boundary.ParseDirection(a.Direction)
	if err != nil {
		return nil, err
	}
	opts, err := s.pointOptions(a.Tolerance, a.Mode, a.GridUnit)
	if err != nil {
		return nil, err
	}

	return s.withActivation(a.Path, func(act *activation) (interface{}, error) {
		p, ok := act.session.LastPoint()
		if !ok {
			return nil, errors.New("no point measured yet; call ruler_measure_point first")
		}
		act.session.Bump(dir, a.Increase)
		edges := act.capture.Buffer.QueryPoint(p, opts, act.session)
		return newMeasureResult(edges, opts, act.session, false), nil
	})
}

type rulerSnapRectArgs struct {
	Path      string  `json:"path"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Samples   int     `json:"samples,omitempty"`
	Tolerance *int    `json:"tolerance,omitempty"`
}

// SnapResult is the outcome of a rectangle snap. Rect is nil when the drag
// did not bracket a reliable object edge on every side.
type SnapResult struct {
	Snapped bool           `json:"snapped"`
	Rect    *boundary.Rect `json:"rect,omitempty"`
}

func (s *Server) handleRulerSnapRect(args json.RawMessage) (interface{}, error) {
	var a rulerSnapRectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tol, err := s.tolerance(a.Tolerance)
	if err != nil {
		return nil, err
	}
	if a.Samples == 0 {
		a.Samples = s.cfg.SnapSamples
	}
	if a.Samples < 2 {
		return nil, fmt.Errorf("samples must be at least 2, got %d", a.Samples)
	}

	return s.withActivation(a.Path, func(act *activation) (interface{}, error) {
		drag := boundary.Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
		r, ok := act.capture.Buffer.SnapRect(drag, boundary.SnapOptions{Samples: a.Samples, Tolerance: tol})
		if !ok {
			return &SnapResult{}, nil
		}
		return &SnapResult{Snapped: true, Rect: &r}, nil
	})
}

// === Inspection Handlers ===

type rulerSampleColorArgs struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

func (s *Server) handleRulerSampleColor(args json.RawMessage) (interface{}, error) {
	var a rulerSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.withActivation(a.Path, func(act *activation) (interface{}, error) {
		c := imaging.SampleColor(act.capture.Buffer, boundary.Point{X: a.X, Y: a.Y})
		return &c, nil
	})
}
