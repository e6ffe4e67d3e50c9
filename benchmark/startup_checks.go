package benchmark

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/strelass/image-preview-benchmark/benchmark/pdfrenderer"
)

// StartupChecks performs all the checks to make sure a benchmark run can work
func (evaluator *Evaluator) StartupChecks() error {
	if err := inputDirectoryChecks(evaluator.BenchConfig.InputPath); err != nil {
		return err
	}
	if err := outputDirectoryChecks(evaluator.outputPath); err != nil {
		return err
	}
	evaluator.pdftoppmChecks()
	evaluator.inspectInputFiles()
	return nil
}

// inputDirectoryChecks ensures the input directory exists
func inputDirectoryChecks(inputPath string) error {
	if inputPath == "" {
		Logger.Error("Input path not configured")
		return fmt.Errorf("input path not configured")
	}

	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		Logger.Error("Error checking input directory", "path", inputPath, "error", err)
		return fmt.Errorf("input directory unavailable: %w", err)
	}
	if !inputInfo.IsDir() {
		Logger.Error("Input path exists but is not a directory", "path", inputPath)
		return fmt.Errorf("input path is not a directory: %s", inputPath)
	}

	Logger.Info("Input directory exists", "path", inputPath)
	return nil
}

// outputDirectoryChecks ensures the output root exists, creating it if needed
func outputDirectoryChecks(outputPath string) error {
	if outputPath == "" {
		Logger.Error("Output path not configured")
		return fmt.Errorf("output path not configured")
	}

	outputInfo, err := os.Stat(outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			Logger.Info("Creating output directory", "path", outputPath)
			err = os.MkdirAll(outputPath, 0755)
			if err != nil {
				Logger.Error("Failed to create output directory", "path", outputPath, "error", err)
				return err
			}
			Logger.Info("Output directory created successfully", "path", outputPath)
			return nil
		}
		Logger.Error("Error checking output directory", "path", outputPath, "error", err)
		return err
	}

	if !outputInfo.IsDir() {
		Logger.Error("Output path exists but is not a directory", "path", outputPath)
		return fmt.Errorf("output path is not a directory: %s", outputPath)
	}

	Logger.Info("Output directory exists", "path", outputPath)
	return nil
}

// pdftoppmChecks warns when the poppler engine is selected without a usable
// pdftoppm executable. The run continues and each render fails in isolation.
func (evaluator *Evaluator) pdftoppmChecks() {
	if pdfrenderer.GeneratorType(evaluator.BenchConfig.GeneratorType) != pdfrenderer.GeneratorPoppler {
		return
	}

	path, err := exec.LookPath(evaluator.BenchConfig.PdftoppmPath)
	if err != nil {
		Logger.Warn("pdftoppm executable not found, poppler renders will fail",
			"path", evaluator.BenchConfig.PdftoppmPath, "error", err)
		return
	}
	Logger.Info("pdftoppm executable found", "path", path)
}

// inspectInputFiles logs what was discovered. Unreadable documents stay in
// the working set so their failures surface per task during the benchmark.
func (evaluator *Evaluator) inspectInputFiles() {
	if len(evaluator.inputFiles) == 0 {
		Logger.Warn("No PDF files found in input directory", "path", evaluator.BenchConfig.InputPath)
		return
	}

	for _, inputFile := range evaluator.inputFiles {
		fileName := filepath.Base(inputFile)
		fileInfo, err := os.Stat(inputFile)
		if err != nil {
			Logger.Warn("Unable to stat input file", "file", fileName, "error", err)
			continue
		}
		pageCount, err := countPages(inputFile)
		if err != nil {
			Logger.Warn("Unable to inspect PDF, benchmarking it anyway", "file", fileName, "error", err)
			continue
		}
		Logger.Info("Discovered input file", "file", fileName, "sizeBytes", fileInfo.Size(), "pages", pageCount)
	}
}

// countPages opens the document read-only to report its page count. The
// parser panics on some malformed files, so a panic is reported as an error.
func countPages(inputFile string) (pageCount int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while inspecting PDF: %v", r)
		}
	}()

	pdfFile, pdfReader, err := pdf.Open(inputFile)
	if err != nil {
		return 0, err
	}
	defer pdfFile.Close()

	return pdfReader.NumPage(), nil
}
