package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// BenchConfig contains all of the benchmark settings
type BenchConfig struct {
	ImageType     string
	GeneratorType string
	DPISet        []int
	QualitySet    []int
	InputPath     string // absolute path to the directory of source PDFs
	OutputPath    string // absolute path to the preview output root
	PdftoppmPath  string
	RenderTimeout int // seconds, zero disables the watchdog on external renders
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// getEnvIntSet gets an integer set environment variable with a default value
func getEnvIntSet(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	set, err := ParseIntSet(value)
	if err != nil {
		if Logger != nil {
			Logger.Warn("Invalid integer set in environment, using default", "key", key, "value", value, "error", err)
		}
		return defaultValue
	}
	return set
}

// ParseIntSet parses a space or comma separated list of positive integers,
// e.g. "150 200 250" or "75,85,95".
func ParseIntSet(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty integer set")
	}
	set := make([]int, 0, len(fields))
	for _, field := range fields {
		intVal, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		if intVal <= 0 {
			return nil, fmt.Errorf("integer set values must be positive, got %d", intVal)
		}
		set = append(set, intVal)
	}
	return set, nil
}

// SetupBench loads configuration and returns BenchConfig and Logger
func SetupBench() (BenchConfig, *slog.Logger) {
	benchConfigLive := BenchConfig{}

	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	// Load configuration from environment variables with defaults

	// Matrix configuration
	benchConfigLive.ImageType = getEnv("IMAGE_TYPE", "png")
	benchConfigLive.GeneratorType = getEnv("GENERATOR_TYPE", "")
	benchConfigLive.DPISet = getEnvIntSet("DPI_SET", []int{150, 200, 250})
	benchConfigLive.QualitySet = getEnvIntSet("QUALITY_SET", []int{75, 85, 95})

	// Input and output locations
	inputDir := filepath.ToSlash(getEnv("INPUT_PATH", filepath.Join("data", "input")))
	inputDirAbs, err := filepath.Abs(inputDir)
	if err != nil {
		logger.Error("Failed creating absolute path for input directory", "error", err)
	}
	benchConfigLive.InputPath = inputDirAbs

	outputDir := filepath.ToSlash(getEnv("OUTPUT_PATH", filepath.Join("data", "output")))
	outputDirAbs, err := filepath.Abs(outputDir)
	if err != nil {
		logger.Error("Failed creating absolute path for output directory", "error", err)
	}
	benchConfigLive.OutputPath = outputDirAbs

	// External renderer configuration
	benchConfigLive.PdftoppmPath = getEnv("PDFTOPPM_PATH", "pdftoppm")
	benchConfigLive.RenderTimeout = getEnvInt("RENDER_TIMEOUT_SECONDS", 0)

	logger.Info("Benchmark configuration loaded",
		"imageType", benchConfigLive.ImageType,
		"dpiSet", benchConfigLive.DPISet,
		"qualitySet", benchConfigLive.QualitySet,
		"inputPath", benchConfigLive.InputPath,
		"outputPath", benchConfigLive.OutputPath)

	return benchConfigLive, logger
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "info")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer

	if logOutput == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "previewbench.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stdout
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stdout
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	} else {
		logWriter = os.Stdout
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}
