// Package version carries the catalogd build metadata stamped at link time
// with -ldflags "-X github.com/nearmart/catalogd/internal/version.Version=...".
package version

//nolint:revive // Stamped via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
