package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// transformProperties returns the schema properties shared by every
// transform tool.
func transformProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the source image file",
		},
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional path to write the result to. The format follows the extension (.png, .jpg, .gif, .bmp, .tiff). When omitted the result is returned as base64 PNG.",
		},
		"ink": map[string]interface{}{
			"type":        "string",
			"description": "Ink colour as #RRGGBB, #RGB or a colour name. Default black",
		},
		"paper": map[string]interface{}{
			"type":        "string",
			"description": "Paper colour as #RRGGBB, #RGB or a colour name. Default white",
		},
		"weighting": map[string]interface{}{
			"type":        "string",
			"description": "Colour to luminance conversion",
			"enum":        []string{"perceptual", "average"},
			"default":     "perceptual",
		},
		"workers": map[string]interface{}{
			"type":        "integer",
			"description": "Number of row bands processed concurrently. 0 uses all CPUs",
			"default":     0,
		},
	}
}

// withProperties merges extra into the shared transform properties.
func withProperties(extra map[string]interface{}) map[string]interface{} {
	props := transformProperties()
	for k, v := range extra {
		props[k] = v
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size. The decoded image is cached for subsequent transforms.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Transforms
		{
			Name:        "image_halftone",
			Description: "Render the image as a grid of dots whose radius grows with darkness. Each dot_size x dot_size cell becomes one dot; the output is scale times the source size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"dot_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge length in source pixels (>= 1). Default 8",
						"default":     8,
					},
					"scale": map[string]interface{}{
						"type":        "integer",
						"description": "Output magnification (>= 1). Default 1",
						"default":     1,
					},
					"fill": map[string]interface{}{
						"type":        "number",
						"description": "Dot radius multiplier (> 0). Radii never exceed half a cell. Default 1.0",
						"default":     1.0,
					},
					"antialias": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw dot edges with partial coverage. Default false",
						"default":     false,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dither",
			Description: "Reduce the image to two tones with 8x8 ordered (Bayer) dithering. Output has the source dimensions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": transformProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_posterize",
			Description: "Reduce the image to two tones with a single global threshold. Pixels at or above the threshold become paper.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(map[string]interface{}{
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Luminance cut-off in [0, 255]. Default 128",
						"default":     128,
						"minimum":     0,
						"maximum":     255,
					},
				}),
				"required": []string{"path"},
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
