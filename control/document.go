package control

import (
	"fmt"
	"io"
	"strings"
)

// LineType classifies a single value line of a field.
//
// A continuation line with one leading space or tab is mergeable: it
// logically continues the previous line as one paragraph. Two leading
// whitespace characters mark the line as fixed-format, to be reproduced
// exactly as-is (changelog-style blocks). A lone " ." stands for an
// intentional blank line within a value, so that it is not mistaken for a
// paragraph separator.
type LineType int

const (
	// LineEmpty is a value line with no data, rendered as " .".
	LineEmpty LineType = iota
	// LineMerge is a continuation that may be merged with the previous line.
	LineMerge
	// LineFixed is a fixed-format line that must not be merged.
	LineFixed
)

// String returns the short tag used in debug dumps.
func (t LineType) String() string {
	switch t {
	case LineEmpty:
		return "empty"
	case LineMerge:
		return "merge"
	case LineFixed:
		return "fixed"
	}
	return fmt.Sprintf("LineType(%d)", int(t))
}

// Context identifies where a piece of parsed data came from. It is stamped
// onto every ValueLine so diagnostics can point at the offending line.
type Context struct {
	// Path is the name of the input file or stream.
	Path string
	// Line is the 1-based physical line number.
	Line int
}

func (c Context) String() string {
	return fmt.Sprintf("%s line %d", c.Path, c.Line)
}

// ValueLine is one physical line of a field's value.
//
// Value lines are owned by their Field and linked to their neighbours, so
// inserting or deleting a line is O(1).
type ValueLine struct {
	// Text is the line's data. It is empty when Type is LineEmpty.
	Text string
	// Type records the merge/format classification of this line.
	Type LineType
	// Origin is the source position this line was parsed from.
	Origin Context

	next, prev *ValueLine
}

// Next returns the following value line in the field, or nil.
func (l *ValueLine) Next() *ValueLine { return l.next }

// Prev returns the preceding value line in the field, or nil.
func (l *ValueLine) Prev() *ValueLine { return l.prev }

// Field is a named metadata entry (e.g. "Description") holding an ordered
// sequence of value lines. The first value line is the text that appeared
// inline after the colon; subsequent lines are continuations.
//
// Field names are case-preserved but compared case-insensitively, per
// Debian Policy 5.1.
type Field struct {
	// Name is the field name as written in the input.
	Name string

	head, tail *ValueLine
}

// NewField creates a field with its mandatory first value line. A field
// never exists without at least one line: the inline value, which may be
// empty.
func NewField(name string, first *ValueLine) *Field {
	f := &Field{Name: name}
	f.Append(first)
	return f
}

// First returns the field's first value line.
func (f *Field) First() *ValueLine { return f.head }

// Lines returns the field's value lines in order. The returned slice is a
// snapshot; mutating the field afterwards does not affect it.
func (f *Field) Lines() []*ValueLine {
	var lines []*ValueLine
	for l := f.head; l != nil; l = l.next {
		lines = append(lines, l)
	}
	return lines
}

// Append adds a value line at the end of the field.
func (f *Field) Append(l *ValueLine) {
	if f.head == nil {
		f.head = l
		f.tail = l
		return
	}
	l.prev = f.tail
	f.tail.next = l
	f.tail = l
}

// Prepend adds a value line at the start of the field.
func (f *Field) Prepend(l *ValueLine) {
	if f.head == nil {
		f.head = l
		f.tail = l
		return
	}
	l.next = f.head
	f.head.prev = l
	f.head = l
}

// Delete unlinks a value line from the field. The line must belong to this
// field.
func (f *Field) Delete(l *ValueLine) {
	if l.prev == nil {
		f.head = l.next
	} else {
		l.prev.next = l.next
	}
	if l.next == nil {
		f.tail = l.prev
	} else {
		l.next.prev = l.prev
	}
	l.next = nil
	l.prev = nil
}

// Value returns the field's value as plain text: the inline value first,
// then one line per continuation, with empty lines standing in for " ."
// markers. The leading whitespace that classified each line is not
// included.
func (f *Field) Value() string {
	var b strings.Builder
	for l := f.head; l != nil; l = l.next {
		if l != f.head {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text)
	}
	return b.String()
}

// String renders the field in control file syntax: the first value line is
// printed as "Name: text", each following line on its own line with one
// leading space (two if fixed-format), and empty lines as " .".
func (f *Field) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(": ")
	b.WriteString(f.head.Text)
	b.WriteByte('\n')

	for l := f.head.next; l != nil; l = l.next {
		if l.Type == LineEmpty {
			b.WriteString(" .\n")
			continue
		}
		b.WriteByte(' ')
		if l.Type == LineFixed {
			b.WriteByte(' ')
		}
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Section is one paragraph of a control file: an ordered list of fields,
// delimited from its neighbours by blank lines.
type Section struct {
	fields []*Field
}

// NewSection creates an empty section.
func NewSection() *Section { return &Section{} }

// Fields returns the section's fields in declaration order.
func (s *Section) Fields() []*Field { return s.fields }

// Last returns the most recently appended field, or nil for an empty
// section.
func (s *Section) Last() *Field {
	if len(s.fields) == 0 {
		return nil
	}
	return s.fields[len(s.fields)-1]
}

// Append adds a field at the end of the section.
func (s *Section) Append(f *Field) {
	s.fields = append(s.fields, f)
}

// Find returns the first field whose name matches, comparing
// case-insensitively per Debian Policy 5.1, or nil if the section has no
// such field.
func (s *Section) Find(name string) *Field {
	for _, f := range s.fields {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// String renders the section in control file syntax.
func (s *Section) String() string {
	var b strings.Builder
	for _, f := range s.fields {
		b.WriteString(f.String())
	}
	return b.String()
}

// Document is an ordered list of sections, the result of parsing one
// control file. A freshly created document always contains a single empty
// section, so that the first paragraph has somewhere to go before any
// blank line is seen.
type Document struct {
	sections []*Section
}

// NewDocument creates a document holding one empty section.
func NewDocument() *Document {
	return &Document{sections: []*Section{NewSection()}}
}

// Sections returns the document's sections in order.
func (d *Document) Sections() []*Section { return d.sections }

// Last returns the most recently appended section. A document always has
// at least one.
func (d *Document) Last() *Section {
	return d.sections[len(d.sections)-1]
}

// Append adds a section at the end of the document.
func (d *Document) Append(s *Section) {
	d.sections = append(d.sections, s)
}

// String renders the whole document in control file syntax, with a blank
// line between sections.
func (d *Document) String() string {
	var b strings.Builder
	for i, s := range d.sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Dump writes a human-readable listing of the document structure to w,
// one section at a time, with each value line tagged by its
// classification. It is meant for debugging, not round-tripping.
func (d *Document) Dump(w io.Writer) {
	for i, s := range d.sections {
		fmt.Fprintf(w, "------ Section %d ------\n", i+1)
		for _, f := range s.fields {
			fmt.Fprintf(w, "  %s\n", f.Name)
			for l := f.First(); l != nil; l = l.Next() {
				if l.Type == LineEmpty {
					fmt.Fprintf(w, "[%s]\n", l.Type)
				} else {
					fmt.Fprintf(w, "[%s] %s\n", l.Type, l.Text)
				}
			}
		}
	}
}
