package main

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// semverRE matches SemVer 2.0.0 without a leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// versionLine is what -version prints. A VERSION file that is not SemVer
// reports a dev build.
func versionLine() string {
	v := strings.TrimSpace(embeddedVersion)
	if !semverRE.MatchString(v) {
		return "clozify (dev)"
	}
	return "clozify v" + v
}
