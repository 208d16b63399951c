package control

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser turns control file text into a Document.
//
// A Parser reads its input one line at a time and is single-use: each
// instance accumulates exactly one document. The file reading loop is
// replaceable — Parse accepts any io.Reader, and ReadLine feeds one
// physical line at a time for callers with their own line source.
type Parser struct {
	// Handler receives warnings and critical errors raised while parsing.
	// If nil, DefaultHandler is used.
	Handler Handler

	ctx Context
	doc *Document
}

// NewParser creates a parser with an empty document ready to receive
// lines.
func NewParser() *Parser {
	return &Parser{doc: NewDocument()}
}

// Document returns the document built so far. After a failed parse it
// holds everything read before the offending line.
func (p *Parser) Document() *Document { return p.doc }

func (p *Parser) handler() Handler {
	if p.Handler != nil {
		return p.Handler
	}
	return DefaultHandler
}

// ParseFile opens and parses the control file at path. On a syntax error
// the returned document holds all sections parsed before the failure.
func (p *Parser) ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		p.handler().Crit(nil, fmt.Sprintf("can't open file '%s': %v", path, err))
		return p.doc, fmt.Errorf("opening control file: %w", err)
	}
	defer f.Close()

	return p.Parse(f, path)
}

// Parse reads control file text from r. The name is used as the file path
// in diagnostics and line origins.
func (p *Parser) Parse(r io.Reader, name string) (*Document, error) {
	p.ctx.Path = name

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := p.ReadLine(scanner.Text()); err != nil {
			return p.doc, err
		}
	}
	if err := scanner.Err(); err != nil {
		return p.doc, fmt.Errorf("reading %s: %w", name, err)
	}
	return p.doc, nil
}

// ReadLine processes one physical line. The line counter advances before
// classification, so diagnostics for this line carry its real position.
// There is no finalization step: the document is valid after every call.
func (p *Parser) ReadLine(raw string) error {
	p.ctx.Line++

	// Comments are dropped before any other processing.
	if strings.HasPrefix(raw, "#") {
		return nil
	}

	line := strings.TrimRight(raw, " \t\r\n")

	// A blank line starts a new section, unless the current one is still
	// empty: repeated blank lines collapse into a single boundary.
	if line == "" {
		if p.doc.Last().Last() == nil {
			p.handler().Warn(&p.ctx, "multiple blank lines will be transformed into a single blank line")
		} else {
			p.doc.Append(NewSection())
		}
		return nil
	}

	if line[0] == ' ' || line[0] == '\t' {
		return p.readContinuation(line)
	}
	return p.readField(line)
}

// readContinuation classifies a continuation line and appends the
// resulting value line to the most recently opened field.
func (p *Parser) readContinuation(line string) error {
	field := p.doc.Last().Last()
	if field == nil {
		p.handler().Crit(&p.ctx, "attempted to continue previous statement, however, none have been opened yet")
		return &SyntaxError{Context: p.ctx, Msg: "continuation line before any field"}
	}

	l := &ValueLine{Origin: p.ctx}
	switch {
	case line[1] == '.':
		// The full stop must be alone on the line.
		if len(line) != 2 {
			p.handler().Crit(&p.ctx, "lines beginning with '.' are reserved for future use (Sec. 5.6.13)")
			return &SyntaxError{Context: p.ctx, Msg: "line beginning with '.' is reserved"}
		}
		l.Type = LineEmpty
	case len(line) > 2 && (line[1] == ' ' || line[1] == '\t'):
		l.Type = LineFixed
		l.Text = line[2:]
	default:
		l.Type = LineMerge
		l.Text = line[1:]
	}

	field.Append(l)
	return nil
}

// readField parses a "Name: value" declaration, creating a new field or
// merging into an existing one of the same name.
func (p *Parser) readField(line string) error {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		p.handler().Crit(&p.ctx, "expected pseudoheader/data pair (Sec. 5.1); if continuing a previous line, add a space")
		return &SyntaxError{Context: p.ctx, Msg: "field declaration without ':'"}
	}

	name := line[:colon]
	value := strings.TrimLeft(line[colon+1:], " \t")

	l := &ValueLine{Origin: p.ctx}
	if value == "" {
		l.Type = LineEmpty
	} else {
		// An inline value has nothing before it to merge with.
		l.Type = LineFixed
		l.Text = value
	}

	section := p.doc.Last()
	if field := section.Find(name); field != nil {
		p.handler().Warn(&p.ctx, "duplicate field names are not permitted (Sec. 5.1), contents will be merged together")
		field.Append(l)
		return nil
	}

	section.Append(NewField(name, l))
	return nil
}
