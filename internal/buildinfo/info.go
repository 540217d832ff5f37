// Package buildinfo carries version metadata stamped at build time.
package buildinfo

// Set via ldflags, e.g.
// -X github.com/finview-dev/finview/internal/buildinfo.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
