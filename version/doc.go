// Package version reports the build a dispatcher binary came from.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/mediator/version.Version=1.2.0"
//
// Commit and dirty state are read from the module build info when present.
package version
