package control

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"testing"
	"time"

	"github.com/blakesmith/ar"
)

// buildDeb assembles a minimal .deb archive holding the given control
// file content.
func buildDeb(t *testing.T, controlContent string, compress bool) []byte {
	t.Helper()

	var cBuf bytes.Buffer
	var tw *tar.Writer
	var gw *gzip.Writer
	if compress {
		gw = gzip.NewWriter(&cBuf)
		tw = tar.NewWriter(gw)
	} else {
		tw = tar.NewWriter(&cBuf)
	}
	hdr := &tar.Header{
		Name: "./control",
		Mode: 0644,
		Size: int64(len(controlContent)),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		t.Fatalf("writing tar header: %v", err)
	}
	if _, err := tw.Write([]byte(controlContent)); err != nil {
		t.Fatalf("writing control: %v", err)
	}
	tw.Close()
	if gw != nil {
		gw.Close()
	}

	name := "control.tar"
	if compress {
		name = "control.tar.gz"
	}

	var buf bytes.Buffer
	arW := ar.NewWriter(&buf)
	arW.WriteGlobalHeader()
	for _, member := range []struct {
		name string
		body []byte
	}{
		{"debian-binary", []byte("2.0\n")},
		{name, cBuf.Bytes()},
	} {
		header := &ar.Header{
			Name:    member.name,
			Size:    int64(len(member.body)),
			Mode:    0644,
			ModTime: time.Now(),
		}
		if err := arW.WriteHeader(header); err != nil {
			t.Fatalf("writing ar header: %v", err)
		}
		if _, err := arW.Write(member.body); err != nil {
			t.Fatalf("writing ar member: %v", err)
		}
	}
	return buf.Bytes()
}

func TestParseDeb(t *testing.T) {
	content := "Package: test\nVersion: 1.0-1\nArchitecture: amd64\nDescription: a test\n extended text\n"
	debBytes := buildDeb(t, content, true)

	doc, err := ParseDeb(bytes.NewReader(debBytes), &recordingHandler{})
	if err != nil {
		t.Fatalf("ParseDeb failed: %v", err)
	}

	section := doc.Sections()[0]
	if f := section.Find("Package"); f == nil || f.First().Text != "test" {
		t.Error("Package field not parsed")
	}
	if f := section.Find("Version"); f == nil || f.First().Text != "1.0-1" {
		t.Error("Version field not parsed")
	}
	if f := section.Find("Description"); f == nil || len(f.Lines()) != 2 {
		t.Error("Description continuation not parsed")
	}
}

func TestParseDebUncompressed(t *testing.T) {
	debBytes := buildDeb(t, "Package: plain\n", false)

	doc, err := ParseDeb(bytes.NewReader(debBytes), &recordingHandler{})
	if err != nil {
		t.Fatalf("ParseDeb failed: %v", err)
	}
	if f := doc.Sections()[0].Find("Package"); f == nil || f.First().Text != "plain" {
		t.Error("Package field not parsed from uncompressed control.tar")
	}
}

func TestParseDebNoControl(t *testing.T) {
	var buf bytes.Buffer
	arW := ar.NewWriter(&buf)
	arW.WriteGlobalHeader()
	body := []byte("2.0\n")
	arW.WriteHeader(&ar.Header{Name: "debian-binary", Size: int64(len(body)), Mode: 0644})
	arW.Write(body)

	if _, err := ParseDeb(bytes.NewReader(buf.Bytes()), &recordingHandler{}); err == nil {
		t.Fatal("expected error for archive without control member")
	}
}
