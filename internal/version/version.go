// Package version provides build information for parallax.
package version

import "fmt"

// Build metadata. Overridden at build time with -ldflags "-X ...".
var (
	Version = "development"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version, with the commit hash when one is known.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// Banner returns the one-line version banner for program name.
func Banner(name string) string {
	if Date != "unknown" {
		return fmt.Sprintf("%s v%s (built %s)", name, String(), Date)
	}
	return fmt.Sprintf("%s v%s", name, String())
}
