// Package gfx identifies AMD graphics IP generations.
//
// A generation is a (major, minor) version pair that selects the instruction
// encoding and the known-defect profile of a target chip family. The
// gcnpatch pass reads the version to decide which image-operation rewrites
// apply; it never mutates it.
package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a target hardware generation.
type Version struct {
	Major uint32
	Minor uint32
}

// Common generations.
var (
	GFX6  = Version{Major: 6}
	GFX7  = Version{Major: 7}
	GFX8  = Version{Major: 8}
	GFX9  = Version{Major: 9}
	GFX10 = Version{Major: 10}
)

// String returns the conventional "gfxM.N" spelling.
func (v Version) String() string {
	return fmt.Sprintf("gfx%d.%d", v.Major, v.Minor)
}

// Parse reads a version of the form "9" or "10.3".
func Parse(s string) (Version, error) {
	majorStr, minorStr, hasMinor := strings.Cut(s, ".")

	major, err := strconv.ParseUint(majorStr, 10, 32)
	if err != nil {
		return Version{}, fmt.Errorf("invalid graphics IP version %q", s)
	}

	var minor uint64
	if hasMinor {
		minor, err = strconv.ParseUint(minorStr, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("invalid graphics IP version %q", s)
		}
	}

	return Version{Major: uint32(major), Minor: uint32(minor)}, nil
}
