package bumpversion

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// TestParseVersion validates suffix stripping and the three-component grammar.
func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
	}{
		{"1.2.3", Version{1, 2, 3}},
		{"0.0.0", Version{0, 0, 0}},
		{"10.20.30", Version{10, 20, 30}},
		{"1.2.3-rc1", Version{1, 2, 3}},
		{"1.2.3+build.5", Version{1, 2, 3}},
		{"1.2.3-beta.2+exp.sha.5114f85", Version{1, 2, 3}},
		{" 4.5.6 ", Version{4, 5, 6}},
		{"01.2.3", Version{1, 2, 3}},
		{"007.010.00", Version{7, 10, 0}},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.input)
		if err != nil {
			t.Errorf("ParseVersion(%q) returned error: %v", tc.input, err)
			continue
		}
		if v != tc.expected {
			t.Errorf("ParseVersion(%q) = %+v, expected %+v", tc.input, v, tc.expected)
		}
	}
}

func TestParseVersionInvalid(t *testing.T) {
	inputs := []string{
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"a.b.c",
		"1.x.3",
		"v1.2.3",
		"1..3",
		"1. 2.3",
		"-1.2.3",
		"99999999999999999999.0.0",
	}
	for _, in := range inputs {
		_, err := ParseVersion(in)
		if !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("ParseVersion(%q) error = %v, expected ErrInvalidVersion", in, err)
		}
	}
}

// TestBump checks the bump laws for each kind.
func TestBump(t *testing.T) {
	tests := []struct {
		version  string
		kind     BumpKind
		expected string
	}{
		{"1.2.3", Major, "2.0.0"},
		{"1.2.3", Minor, "1.3.0"},
		{"1.2.3", Patch, "1.2.4"},
		{"2.9.9", Minor, "2.10.0"},
		{"0.0.0", Patch, "0.0.1"},
		{"0.9.9", Major, "1.0.0"},
		{"1.2.3-rc1", Patch, "1.2.4"},
		{"1.2.3+build", Major, "2.0.0"},
		{"01.2.3", Patch, "1.2.4"},
	}
	for _, tc := range tests {
		v, err := ParseVersion(tc.version)
		if err != nil {
			t.Fatalf("ParseVersion(%q) returned error: %v", tc.version, err)
		}
		next, err := v.Bump(tc.kind)
		if err != nil {
			t.Errorf("Bump(%q, %s) returned error: %v", tc.version, tc.kind, err)
			continue
		}
		if next.String() != tc.expected {
			t.Errorf("Bump(%q, %s) = %q, expected %q", tc.version, tc.kind, next, tc.expected)
		}
	}
}

func TestBumpLaws(t *testing.T) {
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				v := Version{x, y, z}
				cases := map[BumpKind]string{
					Major: fmt.Sprintf("%d.0.0", x+1),
					Minor: fmt.Sprintf("%d.%d.0", x, y+1),
					Patch: fmt.Sprintf("%d.%d.%d", x, y, z+1),
				}
				for kind, want := range cases {
					got, err := v.Bump(kind)
					if err != nil || got.String() != want {
						t.Errorf("%s.Bump(%s) = %q, %v; expected %q", v, kind, got, err, want)
					}
				}
			}
		}
	}
}

func TestBumpUnknownKind(t *testing.T) {
	if _, err := (Version{1, 2, 3}).Bump("foo"); !errors.Is(err, ErrUnknownBumpKind) {
		t.Errorf("Bump(foo) error = %v, expected ErrUnknownBumpKind", err)
	}
}

func TestBumpOverflow(t *testing.T) {
	if _, err := (Version{Patch: math.MaxInt}).Bump(Patch); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("Bump on MaxInt patch error = %v, expected ErrInvalidVersion", err)
	}
}

func TestParseBumpKind(t *testing.T) {
	for _, k := range BumpKinds {
		got, err := ParseBumpKind(string(k))
		if err != nil || got != k {
			t.Errorf("ParseBumpKind(%q) = %q, %v", k, got, err)
		}
	}
	for _, bad := range []string{"", "foo", "MAJOR", "premajor", "1.2.3"} {
		if _, err := ParseBumpKind(bad); !errors.Is(err, ErrUnknownBumpKind) {
			t.Errorf("ParseBumpKind(%q) error = %v, expected ErrUnknownBumpKind", bad, err)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, ExitOK},
		{ErrUsage, ExitUsage},
		{fmt.Errorf("wrapped: %w", ErrUnknownBumpKind), ExitUsage},
		{fmt.Errorf("x: %w", ErrSectionNotFound), ExitNotFound},
		{fmt.Errorf("x: %w", ErrFieldNotFound), ExitNotFound},
		{fmt.Errorf("x: %w", ErrInvalidVersion), ExitInvalid},
		{fmt.Errorf("x: %w", ErrUnparsableVersion), ExitUnparsable},
		{fmt.Errorf("x: %w", ErrManifestIO), ExitManifestIO},
		{errors.New("something else"), ExitManifestIO},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.code {
			t.Errorf("ExitCode(%v) = %d, expected %d", tc.err, got, tc.code)
		}
	}
}
