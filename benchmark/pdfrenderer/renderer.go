package pdfrenderer

import (
	"fmt"
	"strings"
)

// GeneratorType identifies one of the supported rendering engines
type GeneratorType string

const (
	GeneratorFitz    GeneratorType = "fitz"
	GeneratorPDFium  GeneratorType = "pdfium"
	GeneratorPoppler GeneratorType = "poppler"
	GeneratorVips    GeneratorType = "vips"
	GeneratorImagick GeneratorType = "imagick"
)

// AllGeneratorTypes returns the supported engines in registration order
func AllGeneratorTypes() []GeneratorType {
	return []GeneratorType{
		GeneratorFitz,
		GeneratorPDFium,
		GeneratorPoppler,
		GeneratorVips,
		GeneratorImagick,
	}
}

// ParseGeneratorType validates a generator name from the command line
func ParseGeneratorType(value string) (GeneratorType, error) {
	for _, generatorType := range AllGeneratorTypes() {
		if string(generatorType) == value {
			return generatorType, nil
		}
	}
	return "", fmt.Errorf("unknown generator type %q (valid: %s)", value, joinGeneratorTypes())
}

func joinGeneratorTypes() string {
	names := make([]string, 0, len(AllGeneratorTypes()))
	for _, generatorType := range AllGeneratorTypes() {
		names = append(names, string(generatorType))
	}
	return strings.Join(names, ", ")
}

// ImageType selects the output encoding for generated previews
type ImageType string

const (
	ImageTypeJPEG ImageType = "jpeg"
	ImageTypePNG  ImageType = "png"
)

// ParseImageType validates an image type name from the command line
func ParseImageType(value string) (ImageType, error) {
	switch ImageType(value) {
	case ImageTypeJPEG:
		return ImageTypeJPEG, nil
	case ImageTypePNG:
		return ImageTypePNG, nil
	}
	return "", fmt.Errorf("unknown image type %q (valid: jpeg, png)", value)
}

// PreviewRenderer defines the interface for first-page PDF preview generation
type PreviewRenderer interface {
	// Name returns the renderer name used in benchmark output
	Name() string

	// CreatePreview renders the first page of the PDF at inputPath at the
	// requested DPI and writes it to outputPath encoded as imageType.
	// The caller guarantees the parent directory of outputPath exists.
	CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error

	// Close cleans up any resources used by the renderer
	Close() error
}
