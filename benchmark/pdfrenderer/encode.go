package pdfrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// pngCompression rescales a 0-100 quality value onto the 0-9 zlib
// compression scale PNG encoders use (0 -> 0, 100 -> 9).
func pngCompression(quality int) int {
	return quality * 9 / 100
}

// pngEncoderLevel buckets the 0-9 compression scale onto the levels the Go
// PNG encoder supports
func pngEncoderLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// flattenWhite composites img over an opaque white background, dropping any
// transparency the render produced
func flattenWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// writeImage flattens img and writes it to outputPath encoded as imageType.
// Quality steers the JPEG quality or PNG compression level.
func writeImage(img image.Image, outputPath string, quality int, imageType ImageType) error {
	flattened := flattenWhite(img)

	var buf bytes.Buffer
	switch imageType {
	case ImageTypeJPEG:
		if err := imaging.Encode(&buf, flattened, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return fmt.Errorf("unable to encode JPEG image: %w", err)
		}
	case ImageTypePNG:
		level := pngEncoderLevel(pngCompression(quality))
		if err := imaging.Encode(&buf, flattened, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
			return fmt.Errorf("unable to encode PNG image: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image type: %s", imageType)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write image file: %w", err)
	}
	return nil
}
