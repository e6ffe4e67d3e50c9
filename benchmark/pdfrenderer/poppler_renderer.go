package pdfrenderer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// PopplerRenderer implements preview generation by shelling out to the
// pdftoppm utility from poppler-utils
type PopplerRenderer struct {
	pdftoppmPath string
	timeout      time.Duration
}

// NewPopplerRenderer creates a pdftoppm-backed preview renderer. A zero
// timeout leaves the external call unbounded.
func NewPopplerRenderer(pdftoppmPath string, timeout time.Duration) (*PopplerRenderer, error) {
	if pdftoppmPath == "" {
		pdftoppmPath = "pdftoppm"
	}
	return &PopplerRenderer{
		pdftoppmPath: pdftoppmPath,
		timeout:      timeout,
	}, nil
}

// Name returns the renderer name used in benchmark output
func (r *PopplerRenderer) Name() string {
	return "PopplerRenderer"
}

// CreatePreview renders the first page of the PDF by piping it through
// pdftoppm and re-encoding the result at the requested quality
func (r *PopplerRenderer) CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error {
	// Restrict pdftoppm to the first page, writing to stdout
	args := []string{"-r", strconv.Itoa(dpi), "-f", "1", "-l", "1"}
	switch imageType {
	case ImageTypeJPEG:
		args = append(args, "-jpeg")
	case ImageTypePNG:
		args = append(args, "-png")
	default:
		return fmt.Errorf("unsupported image type: %s", imageType)
	}
	args = append(args, inputPath)

	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	pdftoppmCMD := exec.CommandContext(ctx, r.pdftoppmPath, args...)
	var stdout, stderr bytes.Buffer
	pdftoppmCMD.Stdout = &stdout
	pdftoppmCMD.Stderr = &stderr

	if err := pdftoppmCMD.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("pdftoppm failed: %w: %s", err, detail)
		}
		return fmt.Errorf("pdftoppm failed: %w", err)
	}

	img, err := imaging.Decode(&stdout)
	if err != nil {
		return fmt.Errorf("unable to decode pdftoppm output: %w", err)
	}

	return writeImage(img, outputPath, quality, imageType)
}

// Close cleans up resources (no-op, pdftoppm runs per call)
func (r *PopplerRenderer) Close() error {
	return nil
}
