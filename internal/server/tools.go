package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func prop(typ, description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        typ,
		"description": description,
	}
}

func enumProp(description string, values ...string) map[string]interface{} {
	p := prop("string", description)
	p["enum"] = values
	return p
}

func pathProp() map[string]interface{} {
	return prop("string", "Absolute path to the captured screen image")
}

func toleranceProp() map[string]interface{} {
	return prop("integer", "Per-channel difference (0-255) that counts as a boundary. Defaults to the server setting")
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Activation
		{
			Name: "ruler_activate",
			Description: "Activate the ruler over a screen capture. The origin maps the image onto screen coordinates; " +
				"a retina capture of a 100pt wide screen is 200px wide with origin_width 100. " +
				"Re-activating a visually identical capture keeps the current skip counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProp(),
					"origin_x":      prop("number", "Screen X of the capture's top-left corner"),
					"origin_y":      prop("number", "Screen Y of the capture's top-left corner"),
					"origin_width":  prop("number", "Screen width covered by the capture. Omit to use pixel units"),
					"origin_height": prop("number", "Screen height covered by the capture. Omit to use pixel units"),
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional pixel region {x1,y1,x2,y2} to restrict the capture to (end exclusive)",
						"properties": map[string]interface{}{
							"x1": prop("integer", "Left edge"),
							"y1": prop("integer", "Top edge"),
							"x2": prop("integer", "Right edge (exclusive)"),
							"y2": prop("integer", "Bottom edge (exclusive)"),
						},
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ruler_deactivate",
			Description: "Dismiss the ruler for a capture and release its image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ruler_dimensions",
			Description: "Get the pixel width and height of a capture file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
				},
				"required": []string{"path"},
			},
		},

		// Measurement
		{
			Name: "ruler_measure_point",
			Description: "Measure from a screen point to the nearest colour boundary in each of the four directions. " +
				"Returns per-side distances, the combined width and height, and current skip counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProp(),
					"x":         prop("number", "Screen X of the query point"),
					"y":         prop("number", "Screen Y of the query point"),
					"tolerance": toleranceProp(),
					"mode": enumProp("Border handling: smart picks the grid-aligned result, include absorbs thin borders, none reports raw edges",
						"smart", "include", "none"),
					"grid_unit": prop("number", "Grid size in screen units used by smart mode"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name: "ruler_skip",
			Description: "Step past (or back over) one boundary on a single side of the last measured point, " +
				"then re-measure. Use to reach an outer container edge.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProp(),
					"direction": enumProp("Side to adjust", "left", "right", "up", "down"),
					"increase":  prop("boolean", "true to skip one more boundary, false to step back one"),
					"tolerance": toleranceProp(),
					"mode":      enumProp("Border handling mode", "smart", "include", "none"),
					"grid_unit": prop("number", "Grid size in screen units used by smart mode"),
				},
				"required": []string{"path", "direction", "increase"},
			},
		},
		{
			Name: "ruler_snap_rect",
			Description: "Shrink a loosely dragged screen rectangle onto the object it encloses. " +
				"Reports snapped=false when any side does not find a consistent edge.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProp(),
					"x":         prop("number", "Screen X of the drag rectangle"),
					"y":         prop("number", "Screen Y of the drag rectangle"),
					"width":     prop("number", "Drag rectangle width in screen units"),
					"height":    prop("number", "Drag rectangle height in screen units"),
					"samples":   prop("integer", "Rays cast per side. Defaults to the server setting"),
					"tolerance": toleranceProp(),
				},
				"required": []string{"path", "x", "y", "width", "height"},
			},
		},

		// Inspection
		{
			Name:        "ruler_sample_color",
			Description: "Get the colour under a screen point as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp(),
					"x":    prop("number", "Screen X"),
					"y":    prop("number", "Screen Y"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
