package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/strelass/image-preview-benchmark/benchmark"
	"github.com/strelass/image-preview-benchmark/benchmark/pdfrenderer"
	"github.com/strelass/image-preview-benchmark/config"
	"github.com/strelass/image-preview-benchmark/internal/build"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	benchmark.Logger = Logger
}

// intSetFlag collects positive integers from a repeatable flag. Each use may
// carry one value or a space/comma separated list; the first explicit use
// replaces the configured default.
type intSetFlag struct {
	values   []int
	explicit bool
}

func (f *intSetFlag) String() string {
	parts := make([]string, 0, len(f.values))
	for _, value := range f.values {
		parts = append(parts, strconv.Itoa(value))
	}
	return strings.Join(parts, " ")
}

func (f *intSetFlag) Set(value string) error {
	parsed, err := config.ParseIntSet(value)
	if err != nil {
		return err
	}
	if !f.explicit {
		f.values = nil
		f.explicit = true
	}
	f.values = append(f.values, parsed...)
	return nil
}

func main() {
	benchConfig, logger := config.SetupBench()
	injectGlobals(logger) //inject the logger into all of the packages

	// Parse command-line flags, defaults come from the environment
	var imageTypeArg string
	flag.StringVar(&imageTypeArg, "image-type", benchConfig.ImageType, "Output image encoding (jpeg or png)")

	var generatorTypeArg string
	flag.StringVar(&generatorTypeArg, "generator-type", benchConfig.GeneratorType, "Renderer to benchmark (fitz, pdfium, poppler, vips, imagick)")
	flag.StringVar(&generatorTypeArg, "g", benchConfig.GeneratorType, "Renderer to benchmark (shorthand)")

	dpiSet := intSetFlag{values: benchConfig.DPISet}
	flag.Var(&dpiSet, "dpi-set", "DPI values to sweep, space or comma separated")
	flag.Var(&dpiSet, "d", "DPI values to sweep (shorthand)")

	qualitySet := intSetFlag{values: benchConfig.QualitySet}
	flag.Var(&qualitySet, "quality-set", "Quality values to sweep, space or comma separated")
	flag.Var(&qualitySet, "q", "Quality values to sweep (shorthand)")

	var inputPathArg string
	flag.StringVar(&inputPathArg, "input-path", benchConfig.InputPath, "Directory holding the source PDF files")
	flag.StringVar(&inputPathArg, "i", benchConfig.InputPath, "Directory holding the source PDF files (shorthand)")

	var outputPathArg string
	flag.StringVar(&outputPathArg, "output-path", benchConfig.OutputPath, "Root directory for generated previews")
	flag.StringVar(&outputPathArg, "o", benchConfig.OutputPath, "Root directory for generated previews (shorthand)")

	flag.Parse()

	if generatorTypeArg == "" {
		fmt.Fprintln(os.Stderr, "Error: --generator-type is required")
		flag.Usage()
		os.Exit(2)
	}
	generatorType, err := pdfrenderer.ParseGeneratorType(generatorTypeArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	imageType, err := pdfrenderer.ParseImageType(imageTypeArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	benchConfig.GeneratorType = string(generatorType)
	benchConfig.ImageType = string(imageType)
	benchConfig.DPISet = dpiSet.values
	benchConfig.QualitySet = qualitySet.values
	benchConfig.InputPath = absPath(inputPathArg)
	benchConfig.OutputPath = absPath(outputPathArg)

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("   previewbench - PDF preview benchmark")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Version:     %s\n", build.Version)
	fmt.Printf("Generator:   %s\n", generatorType)
	fmt.Printf("Image type:  %s\n", imageType)
	fmt.Printf("DPI set:     %v\n", benchConfig.DPISet)
	fmt.Printf("Quality set: %v\n", benchConfig.QualitySet)
	fmt.Printf("Input path:  %s\n", benchConfig.InputPath)
	fmt.Printf("Output path: %s\n", benchConfig.OutputPath)
	fmt.Println(strings.Repeat("=", 50) + "\n")

	Logger.Info("Setting up renderers", "generator", generatorType)
	evaluator, err := benchmark.NewEvaluator(benchConfig)
	if err != nil {
		Logger.Error("Failed to set up benchmark", "error", err)
		os.Exit(1)
	}

	if err := evaluator.StartupChecks(); err != nil {
		Logger.Error("Startup checks failed", "error", err)
		evaluator.Close()
		os.Exit(1)
	}

	report, err := evaluator.RunPreviewBenchmark(generatorType, benchConfig.DPISet, benchConfig.QualitySet, imageType)
	if err != nil {
		Logger.Error("Benchmark failed to run", "error", err)
		evaluator.Close()
		os.Exit(1)
	}
	evaluator.Close()

	fmt.Printf("\nRun %s finished: %d attempted, %d succeeded, %d failed in %s\n",
		report.ID, report.Attempted, report.Succeeded, report.Failed, report.Elapsed.Round(time.Millisecond))
}

// absPath normalizes a user supplied path the same way the environment
// configuration does
func absPath(path string) string {
	abs, err := filepath.Abs(filepath.ToSlash(path))
	if err != nil {
		Logger.Error("Failed creating absolute path", "path", path, "error", err)
		return path
	}
	return abs
}
