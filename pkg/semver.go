package bumpversion

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// BumpKind selects which version component is incremented.
type BumpKind string

const (
	Major BumpKind = "major"
	Minor BumpKind = "minor"
	Patch BumpKind = "patch"
)

// BumpKinds lists the accepted bump kinds in usage order.
var BumpKinds = []BumpKind{Major, Minor, Patch}

// ParseBumpKind converts a command-line argument into a BumpKind.
func ParseBumpKind(s string) (BumpKind, error) {
	k := BumpKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBumpKind, s)
	}
	return k, nil
}

// Valid reports whether k is one of major, minor or patch.
func (k BumpKind) Valid() bool {
	switch k {
	case Major, Minor, Patch:
		return true
	}
	return false
}

// Version is a release version without pre-release or build metadata.
type Version struct {
	Major int
	Minor int
	Patch int
}

// stripSuffix drops a "-prerelease" or "+build" suffix.
func stripSuffix(s string) string {
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseVersion parses "X.Y.Z", discarding any pre-release or build suffix.
// The core must be three dot-separated non-negative integers; leading zeros
// are accepted and dropped ("01.2.3" parses as 1.2.3).
func ParseVersion(s string) (Version, error) {
	core := stripSuffix(strings.TrimSpace(s))
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidVersion, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
	if !semver.IsValid(v.Canonical()) {
		return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidVersion, s)
	}
	return v, nil
}

// String renders the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Canonical returns the "v"-prefixed form understood by golang.org/x/mod/semver.
func (v Version) Canonical() string {
	return "v" + v.String()
}

// Bump returns the next version for the given kind. Lower components reset
// to zero.
func (v Version) Bump(kind BumpKind) (Version, error) {
	next := v
	switch kind {
	case Major:
		next = Version{Major: v.Major + 1}
	case Minor:
		next = Version{Major: v.Major, Minor: v.Minor + 1}
	case Patch:
		next.Patch++
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownBumpKind, string(kind))
	}

	// Overflow is the only way this can fail.
	if semver.Compare(next.Canonical(), v.Canonical()) <= 0 {
		return Version{}, fmt.Errorf("%w: %s does not sort after %s", ErrInvalidVersion, next, v)
	}
	return next, nil
}
