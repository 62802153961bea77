// Package local implements domain.TextExtractor with in-process parsers for
// PDF, DOCX, and plain-text uploads. No external service is involved; parsing
// failures surface as domain.ErrExtractionFailed.
package local

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/gabriel-vasile/mimetype"
	"github.com/nguyenthenguyen/docx"

	"github.com/mgentry11/candidate-verification-app/internal/domain"
	"github.com/mgentry11/candidate-verification-app/pkg/textx"
)

// Extractor converts uploaded documents into plain text. Line structure is
// preserved; the analysis heuristics depend on bullet and title lines.
type Extractor struct{}

// New constructs an Extractor.
func New() *Extractor { return &Extractor{} }

var (
	docxParaRe = regexp.MustCompile(`</w:p>`)
	docxTagRe  = regexp.MustCompile(`<[^>]+>`)
)

// Extract implements domain.TextExtractor. The format is chosen by file
// extension, falling back to content sniffing when the name has none.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file %q", domain.ErrExtractionFailed, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = extFromContent(data)
	}

	switch ext {
	case ".pdf":
		return extractPDF(filename, data)
	case ".docx":
		return extractDocx(filename, data)
	case ".txt", ".md", ".text":
		return textx.SanitizeText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
}

func extFromContent(data []byte) string {
	switch mt := mimetype.Detect(data); {
	case mt.Is("application/pdf"):
		return ".pdf"
	case mt.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return ".docx"
	case strings.HasPrefix(mt.String(), "text/"):
		return ".txt"
	default:
		return mt.Extension()
	}
}

func extractPDF(filename string, data []byte) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, err)
	}
	raw, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, err)
	}
	return textx.SanitizeText(string(raw)), nil
}

func extractDocx(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrExtractionFailed, filename, err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParaRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return textx.SanitizeText(content), nil
}
