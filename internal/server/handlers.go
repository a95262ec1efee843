package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/image-transform/internal/imageio"
	"github.com/ironsheep/image-transform/internal/luminance"
	"github.com/ironsheep/image-transform/internal/stylize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_halftone").
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
// Arguments rejected by a transform (for example a dot_size of 0) return
// code -32602. Any other tool failure returns code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
		if errors.Is(err, stylize.ErrInvalidParameter) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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
//
// Each transform handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for omitted parameters
//  3. Loads the luminance buffer through the cache
//  4. Runs the transform
//  5. Saves to output_path, or returns the result as base64 PNG
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_halftone":
		return s.handleImageHalftone(args)
	case "image_dither":
		return s.handleImageDither(args)
	case "image_posterize":
		return s.handleImagePosterize(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// TransformResult is returned by the transform tools. Exactly one of
// OutputPath and ImageBase64 is set.
type TransformResult struct {
	Mode        string `json:"mode"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	OutputPath  string `json:"output_path,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
}

// === Image Information ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, missingPath()
	}
	return imageio.LoadImageInfo(s.cache, a.Path)
}

// === Transform Handlers ===

// transformArgs holds the arguments shared by every transform tool.
type transformArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
	Ink        string `json:"ink"`
	Paper      string `json:"paper"`
	Weighting  string `json:"weighting"`
	Workers    int    `json:"workers"`
}

// prepare validates the shared arguments and loads the source luminance.
func (s *Server) prepare(a transformArgs) (*luminance.Buffer, stylize.Duotone, error) {
	if a.Path == "" {
		return nil, stylize.Duotone{}, missingPath()
	}

	duo, err := stylize.ParseDuotone(a.Ink, a.Paper)
	if err != nil {
		return nil, duo, err
	}

	w, err := luminance.ParseWeighting(a.Weighting)
	if err != nil {
		return nil, duo, &stylize.ParamError{Name: "weighting", Value: a.Weighting, Reason: "must be perceptual or average"}
	}

	buf, err := s.cache.LoadLuminance(a.Path, w)
	if err != nil {
		return nil, duo, err
	}
	return buf, duo, nil
}

// finish saves img to a.OutputPath, or encodes it inline when no output path
// was given.
func finish(mode string, img image.Image, a transformArgs) (*TransformResult, error) {
	b := img.Bounds()
	res := &TransformResult{
		Mode:   mode,
		Width:  b.Dx(),
		Height: b.Dy(),
	}

	if a.OutputPath != "" {
		if err := imageio.Save(img, a.OutputPath); err != nil {
			return nil, err
		}
		res.OutputPath = a.OutputPath
		return res, nil
	}

	enc, err := imageio.EncodePNGBase64(img)
	if err != nil {
		return nil, err
	}
	res.ImageBase64 = enc.ImageBase64
	res.MimeType = enc.MimeType
	return res, nil
}

type imageHalftoneArgs struct {
	transformArgs
	DotSize   *int     `json:"dot_size"`
	Scale     *int     `json:"scale"`
	Fill      *float64 `json:"fill"`
	Antialias bool     `json:"antialias"`
}

func (s *Server) handleImageHalftone(args json.RawMessage) (interface{}, error) {
	var a imageHalftoneArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := stylize.DefaultHalftoneOptions()
	if a.DotSize != nil {
		opts.DotSize = *a.DotSize
	}
	if a.Scale != nil {
		opts.Scale = *a.Scale
	}
	if a.Fill != nil {
		opts.FillFactor = *a.Fill
	}
	opts.Antialias = a.Antialias
	opts.Workers = a.Workers
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	buf, duo, err := s.prepare(a.transformArgs)
	if err != nil {
		return nil, err
	}
	opts.Duotone = duo

	img, err := stylize.Halftone(buf, opts)
	if err != nil {
		return nil, err
	}
	return finish("halftone", img, a.transformArgs)
}

func (s *Server) handleImageDither(args json.RawMessage) (interface{}, error) {
	var a transformArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	buf, duo, err := s.prepare(a)
	if err != nil {
		return nil, err
	}

	img, err := stylize.Dither(buf, stylize.DitherOptions{Duotone: duo, Workers: a.Workers})
	if err != nil {
		return nil, err
	}
	return finish("dither", img, a)
}

type imagePosterizeArgs struct {
	transformArgs
	Threshold *int `json:"threshold"`
}

func (s *Server) handleImagePosterize(args json.RawMessage) (interface{}, error) {
	var a imagePosterizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := stylize.DefaultPosterizeOptions()
	if a.Threshold != nil {
		opts.Threshold = *a.Threshold
	}
	opts.Workers = a.Workers
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	buf, duo, err := s.prepare(a.transformArgs)
	if err != nil {
		return nil, err
	}
	opts.Duotone = duo

	img, err := stylize.Posterize(buf, opts)
	if err != nil {
		return nil, err
	}
	return finish("posterize", img, a.transformArgs)
}

func missingPath() error {
	return &stylize.ParamError{Name: "path", Value: `""`, Reason: "is required"}
}
