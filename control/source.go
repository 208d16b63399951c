package control

import (
	"fmt"
	"strings"
)

// SourceControl is the semantic content of a debian/control source package
// file: the fields of the source paragraph, plus one BinaryControl per
// binary package paragraph that follows it.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html#source-package-control-files-debian-control
type SourceControl struct {
	// Source is the source package name.
	Source string `json:"source" yaml:"source"`
	// Maintainer is the package maintainer's name and email address.
	Maintainer string `json:"maintainer,omitempty" yaml:"maintainer,omitempty"`
	// Uploaders lists the package co-maintainers.
	Uploaders string `json:"uploaders,omitempty" yaml:"uploaders,omitempty"`
	// Section classifies the package into an archive area and section.
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	// Priority represents the importance of this package.
	Priority string `json:"priority,omitempty" yaml:"priority,omitempty"`
	// StandardsVersion is the Debian Policy version the package complies with.
	StandardsVersion string `json:"standards_version,omitempty" yaml:"standards_version,omitempty"`
	// BuildDepends lists the build dependencies, verbatim.
	BuildDepends string `json:"build_depends,omitempty" yaml:"build_depends,omitempty"`
	// Homepage is the URL of the upstream project's home page.
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	// Binaries describes the binary packages built from this source.
	Binaries []*BinaryControl `json:"binaries,omitempty" yaml:"binaries,omitempty"`
}

// BinaryControl is the semantic content of one binary package paragraph.
type BinaryControl struct {
	// Package is the binary package name.
	Package string `json:"package" yaml:"package"`
	// Architecture lists the architectures the package builds for.
	Architecture string `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	// Description holds the synopsis and extended description.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// sourceFields dispatches known fields of the source paragraph.
var sourceFields = map[FieldName]func(sc *SourceControl, f *Field, h Handler){
	FieldSource: func(sc *SourceControl, f *Field, h Handler) {
		sc.Source = checkName(f, h)
	},
	FieldMaintainer: func(sc *SourceControl, f *Field, h Handler) {
		sc.Maintainer = f.First().Text
	},
	FieldUploaders: func(sc *SourceControl, f *Field, h Handler) {
		sc.Uploaders = f.Value()
	},
	FieldSection: func(sc *SourceControl, f *Field, h Handler) {
		sc.Section = f.First().Text
	},
	FieldPriority: func(sc *SourceControl, f *Field, h Handler) {
		sc.Priority = f.First().Text
	},
	FieldStandardsVersion: func(sc *SourceControl, f *Field, h Handler) {
		sc.StandardsVersion = f.First().Text
	},
	FieldBuildDepends: func(sc *SourceControl, f *Field, h Handler) {
		sc.BuildDepends = f.Value()
	},
	FieldHomepage: func(sc *SourceControl, f *Field, h Handler) {
		sc.Homepage = f.First().Text
	},
}

// binaryFields dispatches known fields of a binary package paragraph.
var binaryFields = map[FieldName]func(bin *BinaryControl, f *Field, h Handler){
	FieldPackage: func(bin *BinaryControl, f *Field, h Handler) {
		bin.Package = checkName(f, h)
	},
	FieldArchitecture: func(bin *BinaryControl, f *Field, h Handler) {
		bin.Architecture = f.First().Text
	},
	FieldDescription: func(bin *BinaryControl, f *Field, h Handler) {
		bin.Description = f.Value()
	},
}

// checkName validates a field's value as a package name, warning through h
// on a violation. The value is returned either way: extraction reports
// problems, it does not discard data.
func checkName(f *Field, h Handler) string {
	name := f.First().Text
	if err := ValidatePackageName(name); err != nil {
		h.Warn(&f.First().Origin, fmt.Sprintf("invalid package name %q: %v", name, err))
	}
	return name
}

// ExtractSource walks a parsed document and populates a SourceControl
// record. The first section is read as the source paragraph and every
// following section as a binary package paragraph; binary package names
// are validated with the same rules as the source name and attached to
// the returned record.
//
// Problems — unknown fields, invalid package names, a binary paragraph
// with no Package field — are reported as warnings through h and never
// abort the extraction. If h is nil, DefaultHandler is used.
func ExtractSource(doc *Document, h Handler) *SourceControl {
	if h == nil {
		h = DefaultHandler
	}

	sc := &SourceControl{}
	sections := doc.Sections()

	for _, f := range sections[0].Fields() {
		handle, ok := sourceFields[canonical(f.Name)]
		if !ok {
			h.Warn(&f.First().Origin, fmt.Sprintf("unknown field %q in source paragraph", f.Name))
			continue
		}
		handle(sc, f, h)
	}

	for _, s := range sections[1:] {
		if len(s.Fields()) == 0 {
			continue
		}
		bin := &BinaryControl{}
		for _, f := range s.Fields() {
			handle, ok := binaryFields[canonical(f.Name)]
			if !ok {
				h.Warn(&f.First().Origin, fmt.Sprintf("unknown field %q in binary paragraph", f.Name))
				continue
			}
			handle(bin, f, h)
		}
		if bin.Package == "" {
			origin := s.Fields()[0].First().Origin
			h.Warn(&origin, "binary paragraph has no Package field")
		}
		sc.Binaries = append(sc.Binaries, bin)
	}

	return sc
}

var standardFields = []FieldName{
	FieldSource, FieldMaintainer, FieldUploaders, FieldSection,
	FieldPriority, FieldStandardsVersion, FieldBuildDepends, FieldHomepage,
	FieldPackage, FieldArchitecture, FieldVersion, FieldDescription,
}

// canonical maps a field name as written to its standard spelling, so the
// dispatch tables can be keyed on the constants while lookups stay
// case-insensitive.
func canonical(name string) FieldName {
	for _, std := range standardFields {
		if strings.EqualFold(name, string(std)) {
			return std
		}
	}
	return FieldName(name)
}
