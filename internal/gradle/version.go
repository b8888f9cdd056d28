package gradle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// TargetVersion is the Gradle release migrations aim for when the project
// config doesn't pin one.
const TargetVersion = "8.5"

// VersionUnknown marks a Gradle version that could not be detected. It
// compares older than every well-formed version, so remediation planning
// errs on the side of assuming upgrade steps are required.
const VersionUnknown = "unknown"

var versionRe = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// VersionParseError reports a malformed Gradle version string.
type VersionParseError struct {
	Raw string
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("malformed Gradle version %q", e.Raw)
}

// ParseVersion validates a major.minor[.patch] version string and returns
// it in canonical form.
func ParseVersion(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if !versionRe.MatchString(v) {
		return "", &VersionParseError{Raw: raw}
	}
	return v, nil
}

// Compare returns -1, 0, or +1 ordering two Gradle versions. The ordering
// is total for well-formed major.minor[.patch] strings; VersionUnknown
// (or any unparsable string) sorts before every well-formed version.
func Compare(a, b string) int {
	ca, aOK := canonical(a)
	cb, bOK := canonical(b)
	switch {
	case !aOK && !bOK:
		return 0
	case !aOK:
		return -1
	case !bOK:
		return 1
	}
	return semver.Compare(ca, cb)
}

// Major returns the major component of a version, or 0 for an unknown or
// malformed version.
func Major(v string) int {
	c, ok := canonical(v)
	if !ok {
		return 0
	}
	m, err := strconv.Atoi(strings.TrimPrefix(semver.Major(c), "v"))
	if err != nil {
		return 0
	}
	return m
}

// MajorGap returns how many major releases separate detected from target.
// An unknown detected version yields the full distance from zero, keeping
// the conservative bias of treating it as older than everything.
func MajorGap(detected, target string) int {
	gap := Major(target) - Major(detected)
	if gap < 0 {
		return 0
	}
	return gap
}

// canonical converts a Gradle version to a semver string the x/mod
// comparator accepts. Gradle publishes "8.5" style versions, which semver
// canonicalizes internally.
func canonical(v string) (string, bool) {
	if v == "" || v == VersionUnknown {
		return "", false
	}
	c := "v" + strings.TrimSpace(v)
	if !semver.IsValid(c) {
		return "", false
	}
	return c, true
}
