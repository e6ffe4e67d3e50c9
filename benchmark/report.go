package benchmark

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/strelass/image-preview-benchmark/benchmark/pdfrenderer"
)

// TaskResult captures the outcome of a single timed preview render
type TaskResult struct {
	Generator string // renderer name, e.g. "FitzRenderer"
	File      string // input file base name
	DPI       int
	Quality   int
	ImageType pdfrenderer.ImageType
	Duration  time.Duration
	Err       error
}

// Failed reports whether the task ended in an error
func (result TaskResult) Failed() bool {
	return result.Err != nil
}

// RunReport summarizes one benchmark sweep
type RunReport struct {
	ID            ulid.ULID
	GeneratorType pdfrenderer.GeneratorType
	ImageType     pdfrenderer.ImageType
	Attempted     int
	Succeeded     int
	Failed        int
	StartedAt     time.Time
	Elapsed       time.Duration
}

// newRunID stamps a benchmark run with a sortable unique id
func newRunID(now time.Time) (ulid.ULID, error) {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	newULID, err := ulid.New(ulid.Timestamp(now), entropy)
	if err != nil {
		return newULID, err
	}
	return newULID, nil
}
