package benchmark

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/strelass/image-preview-benchmark/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func benchConfigFor(inputPath, outputPath string) config.BenchConfig {
	return config.BenchConfig{
		GeneratorType: "fitz",
		InputPath:     inputPath,
		OutputPath:    outputPath,
	}
}

func TestStartupChecks_CreatesOutputRoot(t *testing.T) {
	inputDir := t.TempDir()
	writeTestPDF(t, inputDir, "alpha.pdf")

	// Ancestors of the output root do not exist yet
	outputDir := filepath.Join(t.TempDir(), "data", "output")
	evaluator := testEvaluator(t, &fakeRenderer{}, inputDir, outputDir)

	if err := evaluator.StartupChecks(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	outputInfo, err := os.Stat(outputDir)
	if err != nil {
		t.Fatalf("Expected output directory to be created: %v", err)
	}
	if !outputInfo.IsDir() {
		t.Error("Expected output path to be a directory")
	}
}

func TestStartupChecks_MissingInputDirectory(t *testing.T) {
	Logger = testLogger()
	benchConfig := benchConfigFor(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	evaluator := &Evaluator{
		BenchConfig: benchConfig,
		outputPath:  benchConfig.OutputPath,
	}

	if err := evaluator.StartupChecks(); err == nil {
		t.Error("Expected error for missing input directory, got nil")
	}
}

func TestStartupChecks_InputPathIsFile(t *testing.T) {
	Logger = testLogger()
	tempDir := t.TempDir()
	inputFile := writeTestPDF(t, tempDir, "not-a-directory.pdf")

	benchConfig := benchConfigFor(inputFile, t.TempDir())
	evaluator := &Evaluator{
		BenchConfig: benchConfig,
		outputPath:  benchConfig.OutputPath,
	}

	if err := evaluator.StartupChecks(); err == nil {
		t.Error("Expected error for input path that is a file, got nil")
	}
}

func TestOutputDirectoryChecks_PathIsFile(t *testing.T) {
	Logger = testLogger()
	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "output")
	if err := os.WriteFile(outputFile, []byte("occupied"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := outputDirectoryChecks(outputFile); err == nil {
		t.Error("Expected error for output path that is a file, got nil")
	}
}

func TestOutputDirectoryChecks_ExistingDirectory(t *testing.T) {
	Logger = testLogger()
	if err := outputDirectoryChecks(t.TempDir()); err != nil {
		t.Errorf("Expected no error for existing directory, got: %v", err)
	}
}

func TestCountPages_InvalidPDF(t *testing.T) {
	tempDir := t.TempDir()
	brokenFile := filepath.Join(tempDir, "broken.pdf")
	if err := os.WriteFile(brokenFile, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := countPages(brokenFile); err == nil {
		t.Error("Expected error for invalid PDF, got nil")
	}
}

func TestCountPages_MissingFile(t *testing.T) {
	if _, err := countPages(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
