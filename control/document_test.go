package control

import (
	"strings"
	"testing"
)

func line(text string, typ LineType) *ValueLine {
	return &ValueLine{Text: text, Type: typ}
}

func TestFieldAppendPrepend(t *testing.T) {
	f := NewField("Description", line("short", LineFixed))
	f.Append(line("middle", LineMerge))
	f.Prepend(line("first", LineMerge))

	var texts []string
	for l := f.First(); l != nil; l = l.Next() {
		texts = append(texts, l.Text)
	}
	if got := strings.Join(texts, ","); got != "first,short,middle" {
		t.Errorf("unexpected order: %s", got)
	}

	// Walk backwards too, to check the back links.
	last := f.First()
	for last.Next() != nil {
		last = last.Next()
	}
	texts = nil
	for l := last; l != nil; l = l.Prev() {
		texts = append(texts, l.Text)
	}
	if got := strings.Join(texts, ","); got != "middle,short,first" {
		t.Errorf("unexpected reverse order: %s", got)
	}
}

func TestFieldDelete(t *testing.T) {
	a, b, c := line("a", LineMerge), line("b", LineMerge), line("c", LineMerge)
	f := NewField("X", a)
	f.Append(b)
	f.Append(c)

	f.Delete(b)
	if got := f.Value(); got != "a\nc" {
		t.Errorf("after deleting middle: %q", got)
	}

	f.Delete(a)
	if got := f.Value(); got != "c" {
		t.Errorf("after deleting head: %q", got)
	}
	if f.First() != c {
		t.Error("head not updated")
	}

	f.Delete(c)
	if f.First() != nil {
		t.Error("expected empty field after deleting all lines")
	}

	// The field accepts lines again after being emptied.
	f.Append(line("d", LineMerge))
	if got := f.Value(); got != "d" {
		t.Errorf("after re-append: %q", got)
	}
}

func TestSectionFindCaseInsensitive(t *testing.T) {
	s := NewSection()
	s.Append(NewField("Source", line("hello", LineFixed)))
	s.Append(NewField("Maintainer", line("m", LineFixed)))

	if f := s.Find("source"); f == nil || f.Name != "Source" {
		t.Error("lowercase lookup failed")
	}
	if f := s.Find("SOURCE"); f == nil || f.Name != "Source" {
		t.Error("uppercase lookup failed")
	}
	if s.Find("Version") != nil {
		t.Error("expected no match for absent field")
	}
}

func TestFieldString(t *testing.T) {
	f := NewField("Description", line("synopsis", LineFixed))
	f.Append(line("merged part", LineMerge))
	f.Append(line("", LineEmpty))
	f.Append(line("preformatted", LineFixed))

	want := "Description: synopsis\n merged part\n .\n  preformatted\n"
	if got := f.String(); got != want {
		t.Errorf("render mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestNewDocumentHasOneSection(t *testing.T) {
	doc := NewDocument()
	if got := len(doc.Sections()); got != 1 {
		t.Fatalf("expected 1 section, got %d", got)
	}
	if doc.Last() != doc.Sections()[0] {
		t.Error("Last should return the only section")
	}
}

func TestDocumentDump(t *testing.T) {
	doc := mustParse(t, "Package: foo\nDescription: short\n  fixed\n .\n")

	var b strings.Builder
	doc.Dump(&b)
	out := b.String()

	for _, want := range []string{
		"------ Section 1 ------",
		"  Package",
		"[fixed] foo",
		"[fixed] fixed",
		"[empty]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDocumentString(t *testing.T) {
	input := "Source: foo\n\nPackage: foo-bin\nDescription: short\n extended\n"
	doc := mustParse(t, input)

	if got := doc.String(); got != input {
		t.Errorf("document render mismatch:\nwant %q\ngot  %q", input, got)
	}
}
