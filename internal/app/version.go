package app

// Build metadata, stamped at link time:
//
//	go build -ldflags "-X github.com/tarsojabbes/science/internal/app.Version=v1.4.0 -X github.com/tarsojabbes/science/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the version reported by /health and the startup log,
// e.g. "v1.4.0+3f2a9c1". Unstamped builds report just the version.
func BuildVersion() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	if len(Commit) > 7 {
		return Version + "+" + Commit[:7]
	}
	return Version + "+" + Commit
}
