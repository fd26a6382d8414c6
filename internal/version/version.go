// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/bnema/wttrbot/internal/version.Version=...".
package version

var Version = "dev"
