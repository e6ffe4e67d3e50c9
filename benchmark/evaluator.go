package benchmark

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/strelass/image-preview-benchmark/benchmark/pdfrenderer"
	"github.com/strelass/image-preview-benchmark/config"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// Evaluator owns the discovered input files, the output root and the registry
// of preview renderers for one benchmark run
type Evaluator struct {
	BenchConfig config.BenchConfig
	inputFiles  []string // absolute paths, sorted by file name
	outputPath  string
	generators  map[pdfrenderer.GeneratorType]pdfrenderer.PreviewRenderer
}

// NewEvaluator discovers the input PDFs and builds the renderer registry
func NewEvaluator(benchConfig config.BenchConfig) (*Evaluator, error) {
	inputFiles, err := discoverInputFiles(benchConfig.InputPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read input directory: %w", err)
	}

	evaluator := &Evaluator{
		BenchConfig: benchConfig,
		inputFiles:  inputFiles,
		outputPath:  benchConfig.OutputPath,
		generators:  make(map[pdfrenderer.GeneratorType]pdfrenderer.PreviewRenderer),
	}

	if err := evaluator.registerGenerators(); err != nil {
		evaluator.Close()
		return nil, err
	}
	return evaluator, nil
}

// registerGenerators instantiates one renderer per generator type. The
// registry is complete after construction and read-only afterwards.
func (evaluator *Evaluator) registerGenerators() error {
	fitzRenderer, err := pdfrenderer.NewFitzRenderer()
	if err != nil {
		return fmt.Errorf("unable to create fitz renderer: %w", err)
	}
	evaluator.generators[pdfrenderer.GeneratorFitz] = fitzRenderer

	pdfiumRenderer, err := pdfrenderer.NewPDFiumRenderer()
	if err != nil {
		return fmt.Errorf("unable to create pdfium renderer: %w", err)
	}
	evaluator.generators[pdfrenderer.GeneratorPDFium] = pdfiumRenderer

	popplerRenderer, err := pdfrenderer.NewPopplerRenderer(
		evaluator.BenchConfig.PdftoppmPath,
		time.Duration(evaluator.BenchConfig.RenderTimeout)*time.Second)
	if err != nil {
		return fmt.Errorf("unable to create poppler renderer: %w", err)
	}
	evaluator.generators[pdfrenderer.GeneratorPoppler] = popplerRenderer

	vipsRenderer, err := pdfrenderer.NewVipsRenderer()
	if err != nil {
		return fmt.Errorf("unable to create vips renderer: %w", err)
	}
	evaluator.generators[pdfrenderer.GeneratorVips] = vipsRenderer

	imagickRenderer, err := pdfrenderer.NewImagickRenderer()
	if err != nil {
		return fmt.Errorf("unable to create imagick renderer: %w", err)
	}
	evaluator.generators[pdfrenderer.GeneratorImagick] = imagickRenderer

	return nil
}

// discoverInputFiles lists the PDF files directly inside inputPath, sorted by
// file name for a reproducible run order. Matching is case-sensitive and
// non-recursive; only regular files qualify.
func discoverInputFiles(inputPath string) ([]string, error) {
	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, err
	}

	var inputFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}
		fullPath := filepath.Join(inputPath, entry.Name())
		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			Logger.Warn("Unable to stat input file, skipping", "filePath", fullPath, "error", err)
			continue
		}
		if !fileInfo.Mode().IsRegular() {
			continue
		}
		inputFiles = append(inputFiles, fullPath)
	}

	sort.Slice(inputFiles, func(i, j int) bool {
		return filepath.Base(inputFiles[i]) < filepath.Base(inputFiles[j])
	})
	return inputFiles, nil
}

// InputFiles returns the discovered input files in benchmark order
func (evaluator *Evaluator) InputFiles() []string {
	inputFiles := make([]string, len(evaluator.inputFiles))
	copy(inputFiles, evaluator.inputFiles)
	return inputFiles
}

// RunPreviewBenchmark sweeps the DPI x quality x input-file cross product for
// one generator. DPI is the outermost dimension and the input file the
// innermost, so every file is rendered at one parameter pair before the next
// pair starts. Each combination is attempted exactly once and a failing task
// never stops the sweep.
func (evaluator *Evaluator) RunPreviewBenchmark(generatorType pdfrenderer.GeneratorType, dpiSet, qualitySet []int, imageType pdfrenderer.ImageType) (*RunReport, error) {
	generator, registered := evaluator.generators[generatorType]
	if !registered {
		return nil, fmt.Errorf("unknown generator type: %s", generatorType)
	}
	if len(dpiSet) == 0 {
		return nil, fmt.Errorf("dpi set must not be empty")
	}
	if len(qualitySet) == 0 {
		return nil, fmt.Errorf("quality set must not be empty")
	}

	startTime := time.Now()
	runID, err := newRunID(startTime)
	if err != nil {
		return nil, fmt.Errorf("cannot generate run ID: %w", err)
	}

	report := &RunReport{
		ID:            runID,
		GeneratorType: generatorType,
		ImageType:     imageType,
		StartedAt:     startTime,
	}

	Logger.Info("Starting preview benchmark",
		"runID", runID.String(),
		"generator", generatorType,
		"imageType", imageType,
		"dpiSet", dpiSet,
		"qualitySet", qualitySet,
		"inputFiles", len(evaluator.inputFiles))

	for _, dpi := range dpiSet {
		for _, quality := range qualitySet {
			for _, inputFile := range evaluator.inputFiles {
				result := evaluator.runTask(generator, generatorType, inputFile, dpi, quality, imageType)
				report.Attempted++
				if result.Failed() {
					report.Failed++
				} else {
					report.Succeeded++
				}
			}
		}
	}

	report.Elapsed = time.Since(startTime)
	Logger.Info("Preview benchmark complete",
		"runID", runID.String(),
		"generator", generatorType,
		"attempted", report.Attempted,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"elapsed", report.Elapsed.Round(time.Millisecond))
	return report, nil
}

// runTask derives the output location for one combination and hands it to the
// timing wrapper. A directory creation failure counts as a task failure so a
// single bad destination cannot abort the rest of the sweep.
func (evaluator *Evaluator) runTask(generator pdfrenderer.PreviewRenderer, generatorType pdfrenderer.GeneratorType, inputFile string, dpi, quality int, imageType pdfrenderer.ImageType) TaskResult {
	fileName := filepath.Base(inputFile)
	pureName := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	outputDir := filepath.Join(evaluator.outputPath,
		string(imageType), pureName, strconv.Itoa(dpi), strconv.Itoa(quality))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		result := TaskResult{
			Generator: generator.Name(),
			File:      fileName,
			DPI:       dpi,
			Quality:   quality,
			ImageType: imageType,
			Err:       fmt.Errorf("unable to create output directory: %w", err),
		}
		Logger.Error("Preview generation failed",
			"generator", result.Generator,
			"file", fileName,
			"dpi", dpi,
			"quality", quality,
			"imageType", imageType,
			"error", result.Err)
		return result
	}

	outputFile := filepath.Join(outputDir, fmt.Sprintf("%s.%s", generatorType, imageType))
	return evaluator.timePreview(generator, inputFile, outputFile, dpi, quality, imageType)
}

// timePreview wraps a single renderer invocation with wall-clock timing and
// failure isolation. It is the only place durations are measured and the only
// place render errors or panics are caught. On failure any partial output
// file is removed so a broken render cannot leave a corrupt artifact behind.
func (evaluator *Evaluator) timePreview(generator pdfrenderer.PreviewRenderer, inputFile, outputFile string, dpi, quality int, imageType pdfrenderer.ImageType) (result TaskResult) {
	fileName := filepath.Base(inputFile)
	result = TaskResult{
		Generator: generator.Name(),
		File:      fileName,
		DPI:       dpi,
		Quality:   quality,
		ImageType: imageType,
	}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic during preview generation: %v", r)
		}
		if result.Err != nil {
			if removeErr := os.Remove(outputFile); removeErr != nil && !os.IsNotExist(removeErr) {
				Logger.Warn("Unable to remove partial output file", "outputFile", outputFile, "error", removeErr)
			}
			Logger.Error("Preview generation failed",
				"generator", result.Generator,
				"file", fileName,
				"dpi", dpi,
				"quality", quality,
				"imageType", imageType,
				"error", result.Err)
			return
		}
		Logger.Info("Preview generated",
			"generator", result.Generator,
			"file", fileName,
			"dpi", dpi,
			"quality", quality,
			"imageType", imageType,
			"duration", fmt.Sprintf("%.4f", result.Duration.Seconds()))
	}()

	startTime := time.Now()
	result.Err = generator.CreatePreview(inputFile, outputFile, dpi, quality, imageType)
	result.Duration = time.Since(startTime)
	return result
}

// Close releases every registered renderer
func (evaluator *Evaluator) Close() {
	for generatorType, generator := range evaluator.generators {
		if err := generator.Close(); err != nil {
			Logger.Error("Error closing renderer", "generator", generatorType, "error", err)
		}
	}
}
