// Package build holds build metadata stamped in at link time.
package build

// Version is the release version of the benchmark tool. Overridden via
// -ldflags "-X github.com/strelass/image-preview-benchmark/internal/build.Version=v1.2.3".
var Version = "dev"
