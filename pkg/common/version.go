package common

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version returns the release version of the build.
func Version() string {
	return strings.TrimSpace(version)
}

// ServerName returns the name sent in the Server header of HTTP responses.
func ServerName() string {
	return "SmartNeighborhood/" + Version()
}
