package pdfrenderer

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// FitzRenderer implements preview generation using go-fitz (requires CGo and MuPDF)
type FitzRenderer struct {
}

// NewFitzRenderer creates a new Fitz-based preview renderer
func NewFitzRenderer() (*FitzRenderer, error) {
	return &FitzRenderer{}, nil
}

// Name returns the renderer name used in benchmark output
func (r *FitzRenderer) Name() string {
	return "FitzRenderer"
}

// CreatePreview renders the first page of the PDF using go-fitz
func (r *FitzRenderer) CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error {
	// Open PDF document using go-fitz
	doc, err := fitz.New(inputPath)
	if err != nil {
		return fmt.Errorf("unable to open PDF document: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, float64(dpi))
	if err != nil {
		return fmt.Errorf("unable to render page 0: %w", err)
	}

	return writeImage(img, outputPath, quality, imageType)
}

// Close cleans up resources (no-op for Fitz renderer as doc is closed per-render)
func (r *FitzRenderer) Close() error {
	return nil
}
