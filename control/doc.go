// Package control parses Debian "control" metadata files (the RFC822-like
// format described in the Debian Policy Manual, "Control files and their
// fields") into a mutable in-memory document.
//
// # Design Philosophy
//
// Processing control files happens in two steps:
//
//  1. Text is parsed into a data structure representation (syntax).
//  2. Specific data is extracted from that structure (semantics).
//
// The Parser implements the first step. It is deliberately "dumb": it turns
// lines of text into Sections (paragraphs), Fields (name/value entries) and
// ValueLines (the physical lines making up a value) without understanding
// what any field means. The document it builds preserves declaration order
// and continuation-line formatting, so it can be modified and rendered back
// out unchanged.
//
// The semantic step is implemented on top of the document model:
// ExtractSource walks a parsed document and populates a SourceControl
// record, validating package names along the way.
//
// # Input Format
//
// Comment lines ('#' in column 0) are dropped. Blank lines delimit
// paragraphs. A field declaration is "Name: value". Continuation lines are
// classified by their leading whitespace: one space or tab marks a
// mergeable paragraph continuation, two mark a fixed-format line that must
// be reproduced verbatim, and a lone " ." encodes an intentional blank
// line within a value.
//
// # Diagnostics
//
// Non-fatal problems (duplicate fields, collapsed blank lines, unknown
// data) are reported through a caller-replaceable Handler and never stop a
// parse. Malformed input stops the parse at the first syntax error; the
// partially built document remains available for inspection.
//
// Reference: https://www.debian.org/doc/debian-policy/ch-controlfields.html
package control
