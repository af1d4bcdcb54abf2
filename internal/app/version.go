package app

import "fmt"

// Version, Commit, and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/mockapi-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported in startup logs and by /health.
func BuildVersion() string {
	return fmt.Sprintf("mockapi %s (commit %s, built %s)", Version, Commit, BuildTime)
}
