package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/snowland-wm/snowland/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/snowland-wm/snowland/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/snowland-wm/snowland/internal/version.Date={{.Date}}
)
