package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

var pdfMagic = []byte("%PDF-")

// PDFTextExtractor extracts text from a staged PDF by running pdftotext
// (poppler). The source file is only ever read.
type PDFTextExtractor struct {
	log    *slog.Logger
	runner Runner
	binary string
}

func NewPDFTextExtractor(log *slog.Logger, runner Runner, binary string) *PDFTextExtractor {
	return &PDFTextExtractor{
		log:    log,
		runner: runner,
		binary: binary,
	}
}

func (e *PDFTextExtractor) ExtractText(ctx context.Context, doc *domain.Document) (string, error) {
	if err := checkPDFHeader(doc.Path); err != nil {
		return "", err
	}

	e.log.DebugContext(ctx, "running pdftotext",
		slog.String("file_name", doc.Name),
		slog.String("path", doc.Path),
	)

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.binary, "-layout", "-enc", "UTF-8", "-eol", "unix", doc.Path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w: %s", err, bytes.TrimSpace(errb))
	}

	text := string(out)

	e.log.DebugContext(ctx, "extracted text",
		slog.String("file_name", doc.Name),
		slog.Int("bytes", len(text)),
		slog.Int("pages", 1+strings.Count(text, "\f")),
	)

	return text, nil
}

func checkPDFHeader(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("document is not a valid PDF: %w", err)
	}

	if !bytes.Equal(header, pdfMagic) {
		return fmt.Errorf("document is not a valid PDF: missing %q header", pdfMagic)
	}

	return nil
}
