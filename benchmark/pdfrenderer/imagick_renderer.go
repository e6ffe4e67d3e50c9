package pdfrenderer

import (
	"fmt"

	"gopkg.in/gographics/imagick.v3/imagick"
)

// ImagickRenderer implements preview generation using ImageMagick's MagickWand
// API (requires CGo, ImageMagick and a Ghostscript PDF delegate)
type ImagickRenderer struct {
}

// NewImagickRenderer creates an ImageMagick-based preview renderer and starts
// the MagickWand environment
func NewImagickRenderer() (*ImagickRenderer, error) {
	imagick.Initialize()
	return &ImagickRenderer{}, nil
}

// Name returns the renderer name used in benchmark output
func (r *ImagickRenderer) Name() string {
	return "ImagickRenderer"
}

// CreatePreview renders the first page of the PDF using ImageMagick
func (r *ImagickRenderer) CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error {
	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	// Resolution must be set before the document is read
	if err := mw.SetResolution(float64(dpi), float64(dpi)); err != nil {
		return fmt.Errorf("unable to set render resolution: %w", err)
	}
	// The [0] suffix restricts ImageMagick to the first page
	if err := mw.ReadImage(fmt.Sprintf("%s[0]", inputPath)); err != nil {
		return fmt.Errorf("unable to open PDF document: %w", err)
	}

	background := imagick.NewPixelWand()
	defer background.Destroy()
	if ok := background.SetColor("white"); !ok {
		return fmt.Errorf("unable to set background color")
	}
	if err := mw.SetImageBackgroundColor(background); err != nil {
		return fmt.Errorf("unable to set background color: %w", err)
	}
	if err := mw.SetImageAlphaChannel(imagick.ALPHA_CHANNEL_REMOVE); err != nil {
		return fmt.Errorf("unable to remove alpha channel: %w", err)
	}
	if err := mw.TransformImageColorspace(imagick.COLORSPACE_SRGB); err != nil {
		return fmt.Errorf("unable to transform colorspace: %w", err)
	}

	if err := mw.SetImageFormat(string(imageType)); err != nil {
		return fmt.Errorf("unable to set image format: %w", err)
	}
	if err := mw.SetImageCompressionQuality(uint(quality)); err != nil {
		return fmt.Errorf("unable to set compression quality: %w", err)
	}

	if err := mw.WriteImage(outputPath); err != nil {
		return fmt.Errorf("unable to write image file: %w", err)
	}
	return nil
}

// Close shuts down the MagickWand environment
func (r *ImagickRenderer) Close() error {
	imagick.Terminate()
	return nil
}
