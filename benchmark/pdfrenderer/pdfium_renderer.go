package pdfrenderer

import (
	"fmt"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/klippa-app/go-pdfium/webassembly"
)

// PDFiumRenderer implements preview generation using go-pdfium with WebAssembly (pure Go, no CGo)
type PDFiumRenderer struct {
	pool     pdfium.Pool
	instance pdfium.Pdfium
}

// NewPDFiumRenderer creates a new PDFium-based preview renderer using WebAssembly
func NewPDFiumRenderer() (*PDFiumRenderer, error) {
	// Initialize WebAssembly pool with minimal configuration
	// For single-threaded usage, we keep it simple
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1, // Minimum idle workers
		MaxIdle:  1, // Maximum idle workers
		MaxTotal: 1, // Total worker limit
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PDFium WebAssembly: %w", err)
	}

	// Get a PDFium instance from the pool
	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to get PDFium instance: %w", err)
	}

	return &PDFiumRenderer{
		pool:     pool,
		instance: instance,
	}, nil
}

// Name returns the renderer name used in benchmark output
func (r *PDFiumRenderer) Name() string {
	return "PDFiumRenderer"
}

// CreatePreview renders the first page of the PDF using go-pdfium WebAssembly
func (r *PDFiumRenderer) CreatePreview(inputPath, outputPath string, dpi, quality int, imageType ImageType) error {
	// Read the PDF file
	pdfBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("unable to read PDF file: %w", err)
	}

	// Open the PDF document
	doc, err := r.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return fmt.Errorf("unable to open PDF document: %w", err)
	}
	defer r.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageRender, err := r.instance.RenderPageInDPI(&requests.RenderPageInDPI{
		DPI: dpi,
		Page: requests.Page{
			ByIndex: &requests.PageByIndex{
				Document: doc.Document,
				Index:    0,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("unable to render page 0: %w", err)
	}
	// Clean up WebAssembly resources for this page
	defer pageRender.Cleanup()

	return writeImage(pageRender.Result.Image, outputPath, quality, imageType)
}

// Close cleans up resources used by the PDFium renderer
func (r *PDFiumRenderer) Close() error {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
	r.instance = nil
	return nil
}
