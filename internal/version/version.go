// Package version exposes build metadata for the wordlex binary.
//
// The variables are overwritten at build time:
//
//	go build -ldflags "-X github.com/pellucid-labs/wordlex/internal/version.Version=v1.2.3"
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
