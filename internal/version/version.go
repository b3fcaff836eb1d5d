// Package version reports the partsearch build. Values are overridden at link
// time, e.g. -ldflags "-X github.com/kailas-cloud/partsearch/internal/version.Version=v1.2.0".
package version

import "fmt"

//nolint:gochecknoglobals // set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns "<version> (<commit>, built <date>)".
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, Date)
}
