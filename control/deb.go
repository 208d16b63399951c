package control

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/blakesmith/ar"
)

// ParseDeb reads a .deb binary package and parses the 'control' member of
// its control archive into a Document.
//
// A .deb file is an ar archive whose second member, control.tar or
// control.tar.gz, is a tarball holding the package metadata. ParseDeb
// walks the archive structure, decompresses the control tarball if needed,
// and feeds the control file to a fresh Parser. The handler h receives any
// diagnostics raised while parsing; nil means DefaultHandler.
//
// Reference: https://manpages.debian.org/unstable/dpkg-dev/deb.5.en.html
func ParseDeb(r io.Reader, h Handler) (*Document, error) {
	arR := ar.NewReader(r)

	for {
		header, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ar header: %w", err)
		}

		if !strings.HasPrefix(header.Name, "control.tar") {
			continue
		}

		var tr *tar.Reader
		if strings.HasSuffix(header.Name, ".gz") {
			gzr, err := gzip.NewReader(arR)
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", header.Name, err)
			}
			defer gzr.Close()
			tr = tar.NewReader(gzr)
		} else {
			tr = tar.NewReader(arR)
		}

		for {
			th, err := tr.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("reading control tar header: %w", err)
			}
			if filepath.Base(th.Name) != "control" {
				continue
			}

			p := NewParser()
			p.Handler = h
			doc, err := p.Parse(tr, "control")
			if err != nil {
				return doc, fmt.Errorf("parsing control member: %w", err)
			}
			return doc, nil
		}
	}
	return nil, fmt.Errorf("control file not found")
}
