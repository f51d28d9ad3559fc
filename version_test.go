package quill

import (
	"strings"
	"testing"
)

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestBuildString_StartsWithTag(t *testing.T) {
	if got := BuildString(); !strings.HasPrefix(got, VersionTag()) {
		t.Fatalf("build string %q does not start with %q", got, VersionTag())
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: " 3.1.4\n", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "1", want: false},
		{version: "01.2.3", want: false},
		{version: "", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
