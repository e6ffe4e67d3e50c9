package pdfrenderer

import (
	"fmt"

	"github.com/cshum/vipsgen/vips"
)

// VipsRenderer implements preview generation using vipsgen (requires CGo and
// libvips built with PDF support)
type VipsRenderer struct {
}

// NewVipsRenderer creates a new libvips-based preview renderer
func NewVipsRenderer() (*VipsRenderer, error) {
	return &VipsRenderer{}, nil
}

// Name returns the renderer name used in benchmark output
func (r *VipsRenderer) Name() string {
	return "VipsRenderer"
}

// CreatePreview renders the first page of the PDF using the libvips PDF loader
func (r *VipsRenderer) CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error {
	img, err := vips.NewImageFromFile(inputPath, &vips.LoadOptions{
		Dpi:    float64(dpi),
		Page:   0,
		Access: vips.AccessSequential,
	})
	if err != nil {
		return fmt.Errorf("unable to load PDF document: %w", err)
	}
	defer img.Close()

	// The PDF loader keeps an alpha band, previews are opaque on white
	if img.HasAlpha() {
		if err := img.Flatten(&vips.FlattenOptions{Background: []float64{255, 255, 255}}); err != nil {
			return fmt.Errorf("unable to flatten alpha channel: %w", err)
		}
	}

	switch imageType {
	case ImageTypeJPEG:
		if err := img.Jpegsave(outputPath, &vips.JpegsaveOptions{Q: quality}); err != nil {
			return fmt.Errorf("unable to save JPEG image: %w", err)
		}
	case ImageTypePNG:
		if err := img.Pngsave(outputPath, &vips.PngsaveOptions{Compression: pngCompression(quality)}); err != nil {
			return fmt.Errorf("unable to save PNG image: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image type: %s", imageType)
	}
	return nil
}

// Close cleans up resources (libvips shutdown is left to process exit)
func (r *VipsRenderer) Close() error {
	return nil
}
