package imageio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// jpegQuality is used when the output path has a JPEG extension.
const jpegQuality = 95

// Save encodes img to path in the format implied by its extension (.png,
// .jpg/.jpeg, .gif, .bmp, .tif/.tiff). Missing parent directories are
// created.
//
// Two-colour paletted images are written as 1-bit PNGs.
func Save(img image.Image, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := imaging.Save(img, path,
		imaging.JPEGQuality(jpegQuality),
		imaging.PNGCompressionLevel(png.BestCompression),
	); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodedImage is an image encoded as base64 PNG for transport in JSON.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNGBase64 encodes img as PNG and wraps it in base64.
func EncodePNGBase64(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
