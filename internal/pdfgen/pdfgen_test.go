package pdfgen

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestBuildStructure(t *testing.T) {
	data := Build(Page{Lines: []TextLine{{Text: "MAC-MA Relay", X: 72, Y: 700}}})

	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Error("expected %PDF-1.4 header")
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Errorf("expected %%EOF trailer")
	}
	if !bytes.Contains(data, []byte("(MAC-MA Relay) Tj")) {
		t.Error("expected text to appear in content stream")
	}
}

func TestBuildXrefOffsets(t *testing.T) {
	data := Build(Page{Lines: []TextLine{{Text: "line", X: 72, Y: 700}}})
	s := string(data)

	// startxref must point at the xref keyword.
	idx := strings.LastIndex(s, "startxref\n")
	if idx < 0 {
		t.Fatal("missing startxref")
	}
	rest := s[idx+len("startxref\n"):]
	offsetStr := strings.SplitN(rest, "\n", 2)[0]
	offset, err := strconv.Atoi(offsetStr)
	if err != nil {
		t.Fatalf("bad startxref value %q: %v", offsetStr, err)
	}
	if !strings.HasPrefix(s[offset:], "xref\n") {
		t.Errorf("startxref %d does not point at xref table", offset)
	}

	// Every in-use xref entry must point at the matching object header.
	xref := s[offset:]
	lines := strings.Split(xref, "\n")
	// lines[0] = "xref", lines[1] = "0 N", lines[2] = free entry.
	for i, entry := range lines[3:] {
		if !strings.HasSuffix(entry, " n ") {
			break
		}
		objOffset, err := strconv.Atoi(strings.Fields(entry)[0])
		if err != nil {
			t.Fatalf("bad xref entry %q: %v", entry, err)
		}
		wantHeader := strconv.Itoa(i+1) + " 0 obj"
		if !strings.HasPrefix(s[objOffset:], wantHeader) {
			t.Errorf("xref entry %d points at %q, want %q", i+1,
				s[objOffset:objOffset+10], wantHeader)
		}
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`plain`, `plain`},
		{`with (parens)`, `with \(parens\)`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeString(tt.input); got != tt.expected {
			t.Errorf("escapeString(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSinglePageLayout(t *testing.T) {
	data := SinglePage("first", "second", "third")
	s := string(data)

	for _, want := range []string{
		"1 0 0 1 72 700 Tm\n(first) Tj",
		"1 0 0 1 72 680 Tm\n(second) Tj",
		"1 0 0 1 72 660 Tm\n(third) Tj",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected content stream to contain %q", want)
		}
	}
}

func TestMultiPage(t *testing.T) {
	data := Build(
		Page{Lines: []TextLine{{Text: "page one", X: 72, Y: 700}}},
		Page{Lines: []TextLine{{Text: "page two", X: 72, Y: 700}}},
	)
	s := string(data)

	if !strings.Contains(s, "/Count 2") {
		t.Error("expected page tree count of 2")
	}
	if !strings.Contains(s, "/Kids [4 0 R 6 0 R]") {
		t.Error("expected two page kids")
	}
}
