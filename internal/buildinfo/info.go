package buildinfo

// Set with -ldflags "-X github.com/pocketbook-dev/pocketbook/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
