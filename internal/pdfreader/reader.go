package pdfreader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// Reader extracts plain text from uploaded PDF documents
type Reader struct {
	logger types.Logger
}

// New creates a PDF reader
func New() *Reader {
	return &Reader{
		logger: logging.GetGlobalLogger(),
	}
}

// ExtractText reads the whole document and returns its concatenated text.
// Encrypted or malformed documents return an error; the caller maps it to a
// bad-input response.
func (r *Reader) ExtractText(src io.ReaderAt, size int64) (string, error) {
	doc, err := pdf.NewReader(src, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var buf bytes.Buffer
	plain, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("PDF contains no extractable text")
	}

	r.logger.Debug("PDF text extracted", map[string]interface{}{
		"pages":       doc.NumPage(),
		"text_length": len(text),
	})

	return text, nil
}
