package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/makky/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/makky/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/makky/internal/version.Date={{.Date}}
)

// String renders the version block printed by "makky version"
func String() string {
	return "makky version " + Version + "\n" +
		"  commit: " + Commit + "\n" +
		"  built:  " + Date + "\n"
}
