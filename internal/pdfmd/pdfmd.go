// Package pdfmd extracts a markdown-ish text blob from a PDF resume,
// adapted from the teacher's internal/parser/pdf.go. Where the teacher
// parsed PDF text into a structured ParsedResume, this package stops at a
// single flattened text blob: structured field extraction is superseded
// by the provider-neutral CandidateProfile schema. The blob is the kind of
// text internal/ingest's freetext adapter reads from its envelope's "text"
// field and keeps as provider_raw.text; nothing in this repository calls
// ExtractMarkdown itself.
package pdfmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dslipak/pdf"
)

// ErrEmptyFile is returned when the input has no bytes.
var ErrEmptyFile = fmt.Errorf("pdfmd: empty file")

// ErrNotPDF is returned when the input lacks a PDF header.
var ErrNotPDF = fmt.Errorf("pdfmd: not a PDF file")

// ErrNoText is returned when no page yielded extractable text.
var ErrNoText = fmt.Errorf("pdfmd: no extractable text")

// ExtractMarkdown reads a whole PDF from r and returns its page text
// joined with blank-line page breaks, normalized the same way the
// teacher's parser.cleanText does.
func ExtractMarkdown(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", ErrNotPDF
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString("## page ")
		sb.WriteString(fmt.Sprintf("%d\n\n", i))
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	result := cleanText(sb.String())
	if result == "" {
		return "", ErrNoText
	}
	return result, nil
}

// cleanText normalizes extracted text by stripping control characters and
// collapsing blank-line runs, matching the teacher's parser.cleanText.
func cleanText(text string) string {
	var sb strings.Builder
	prevNewline := false

	for _, r := range text {
		if r == '\n' || r == '\r' {
			if !prevNewline {
				sb.WriteRune('\n')
				prevNewline = true
			}
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		prevNewline = false
		sb.WriteRune(r)
	}

	result := sb.String()
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(result)
}
