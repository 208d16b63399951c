// Package version parses, formats and compares Debian package versions.
//
// A Debian version number has the form [epoch:]upstream_version[-debian_revision],
// as defined by Debian Policy 5.6.12. The epoch disambiguates changes in
// version numbering schemes and defaults to 0; the Debian revision marks
// packaging-only changes and may be absent.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#s-f-version
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the decomposed form of a Debian package version.
type Version struct {
	// Epoch is the version epoch, 0 when the version string has none.
	Epoch uint `json:"epoch" yaml:"epoch"`
	// Upstream is the upstream version, the only mandatory component.
	Upstream string `json:"upstream" yaml:"upstream"`
	// Revision is the Debian revision, empty when absent.
	Revision string `json:"revision,omitempty" yaml:"revision,omitempty"`
}

// Parse splits a version string into its components.
//
// The text before the first ':' is the epoch and must be one or more
// digits. The text after the last '-' is the Debian revision: the last
// hyphen wins, because upstream versions may contain hyphens themselves
// while the revision never does. A string with no hyphen has no revision.
func Parse(s string) (*Version, error) {
	v := new(Version)
	if err := v.Set(s); err != nil {
		return nil, err
	}
	return v, nil
}

// Set parses s into v, replacing any components from a previous parse. It
// is safe to reuse one Version across multiple parses; a failed Set leaves
// v zeroed.
func (v *Version) Set(s string) error {
	v.Epoch = 0
	v.Upstream = ""
	v.Revision = ""

	if s == "" {
		return fmt.Errorf("empty version string")
	}

	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		epoch := s[:colon]
		if epoch == "" {
			return fmt.Errorf("empty epoch in %q", s)
		}
		for i := 0; i < len(epoch); i++ {
			if epoch[i] < '0' || epoch[i] > '9' {
				return fmt.Errorf("epoch %q is not a number", epoch)
			}
		}
		n, err := strconv.ParseUint(epoch, 10, 0)
		if err != nil {
			return fmt.Errorf("parsing epoch %q: %w", epoch, err)
		}
		v.Epoch = uint(n)
		s = s[colon+1:]
	}

	if s == "" {
		return fmt.Errorf("missing upstream version")
	}

	if hyphen := strings.LastIndexByte(s, '-'); hyphen >= 0 {
		v.Upstream = s[:hyphen]
		v.Revision = s[hyphen+1:]
	} else {
		v.Upstream = s
	}
	return nil
}

// String reassembles the version in [epoch:]upstream[-revision] form. A
// zero epoch and an absent revision are omitted.
func (v *Version) String() string {
	var b strings.Builder
	if v.Epoch > 0 {
		fmt.Fprintf(&b, "%d:", v.Epoch)
	}
	b.WriteString(v.Upstream)
	if v.Revision != "" {
		b.WriteByte('-')
		b.WriteString(v.Revision)
	}
	return b.String()
}
