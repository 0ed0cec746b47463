// Package version holds the build-time version stamp of the bipart binary.
package version

// Version is this binary's version. Set with linker flags:
//
//	go build -ldflags "-X github.com/katalvlaran/bipart/internal/version.Version=v1.0.0"
var Version string
