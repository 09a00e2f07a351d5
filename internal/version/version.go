// Package version reports the build of the ngfc binary.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/example/ngfc/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns "ngfc <version> (commit: <short hash>, built: <time>)".
func String() string {
	return fmt.Sprintf("ngfc %s (commit: %s, built: %s)", Version, ShortCommit(), BuildTime)
}

// ShortCommit returns the first seven characters of the commit hash.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
