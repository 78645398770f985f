package loader

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/withoutsultang/Interview-agent-aivle/models"
)

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := Extract("resume.hwp")
	if !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractUnsupportedBeforeExistence(t *testing.T) {
	// Format rejection wins even when the file does not exist either.
	_, err := Extract(filepath.Join(t.TempDir(), "missing.xyz"))
	if !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, models.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestExtractPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("five years of Go experience"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Extract(path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if got != "five years of Go experience" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.md")
	if err := os.WriteFile(path, []byte("# Resume\n\nbuilt a payments platform"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Extract(path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(got, "payments platform") {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	writeDOCX(t, path, []string{"Senior backend engineer.", "Led the migration to Kubernetes."})

	got, err := Extract(path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(got, "Senior backend engineer.") {
		t.Fatalf("missing first paragraph: %q", got)
	}
	if !strings.Contains(got, "Led the migration to Kubernetes.") {
		t.Fatalf("missing second paragraph: %q", got)
	}
}

func TestExtractHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	html := `<html><head><title>Resume</title></head><body><article>
<h1>Resume</h1>
<p>Spent six years building distributed storage systems in Go, including a
consensus layer used in production by several large deployments. Led a team
of five engineers and owned the on-call rotation for the storage tier.</p>
<p>Before that, worked on network tooling and observability pipelines,
shipping a packet capture service that processed millions of flows per
second across three data centers.</p>
</article></body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Extract(path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(got, "distributed storage systems") {
		t.Fatalf("missing article text: %q", got)
	}
	if strings.Contains(got, "<p>") {
		t.Fatalf("markup leaked into extracted text: %q", got)
	}
}

// writeDOCX builds a minimal docx archive with one w:t run per paragraph.
func writeDOCX(t *testing.T, path string, paragraphs []string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		sb.WriteString(`<w:p><w:r><w:t>`)
		sb.WriteString(p)
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	sb.WriteString(`</w:body></w:document>`)

	if _, err := w.Write([]byte(sb.String())); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}
