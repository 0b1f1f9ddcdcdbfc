// Package version provides build-time version information for uxm.
package version

import "fmt"

// These variables are set at build time via ldflags, for example
// -X github.com/ericarider/fluent-ui-uxpin-merge/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the one-line version banner.
func Info() string {
	return fmt.Sprintf("uxm version %s (commit: %s, built: %s)", Version, Commit, Date)
}
