package main

import (
	"strings"
	"testing"
)

func TestVersionLine_EmbeddedRelease(t *testing.T) {
	got := versionLine()
	if !strings.HasPrefix(got, "clozify v") {
		t.Fatalf("version line: got %q, want a release", got)
	}
	if v := strings.TrimPrefix(got, "clozify v"); !semverRE.MatchString(v) {
		t.Fatalf("embedded version %q is not semver", v)
	}
}

func TestVersionLine_NonSemverIsDev(t *testing.T) {
	saved := embeddedVersion
	t.Cleanup(func() { embeddedVersion = saved })

	for _, v := range []string{"", "v1.2.3", "1.2", "01.2.3"} {
		embeddedVersion = v
		if got, want := versionLine(), "clozify (dev)"; got != want {
			t.Fatalf("versionLine(%q): got %q, want %q", v, got, want)
		}
	}
	embeddedVersion = "1.2.3-rc.1+build.7\n"
	if got, want := versionLine(), "clozify v1.2.3-rc.1+build.7"; got != want {
		t.Fatalf("versionLine: got %q, want %q", got, want)
	}
}
