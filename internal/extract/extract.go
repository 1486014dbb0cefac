package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// minTextLength is the floor, in characters, below which a decoded
// document is treated as empty; it also catches image-only scans that
// decode without error.
const minTextLength = 50

var (
	ErrUnsupportedType     = errors.New("Unsupported file type.")
	ErrInsufficientContent = errors.New("Resume appears to be empty or contains insufficient text. Please ensure your resume has readable content.")
)

// ExtractionError wraps a decoder failure with a human-readable reason.
// Raw decoder errors never leave this package.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string { return e.Reason }

func (e *ExtractionError) Unwrap() error { return e.Err }

// FromBytes extracts plain text from an in-memory document, dispatching
// on the declared MIME type. Libraries used: github.com/ledongthuc/pdf
// (PDF) and github.com/nguyenthenguyen/docx (DOCX).
func FromBytes(ctx context.Context, data []byte, mimeType string) (text string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	// Third-party decoders have been seen to panic on malformed input.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &ExtractionError{
				Reason: "Failed to extract text from the file. The file may be corrupted.",
				Err:    fmt.Errorf("decoder panic: %v", rec),
			}
		}
	}()

	switch strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0])) {
	case mimePDF:
		text, err = extractPDF(data)
		if err != nil {
			return "", &ExtractionError{
				Reason: "Failed to extract text from PDF file. The file may be corrupted or password-protected.",
				Err:    err,
			}
		}
	case mimeDOCX:
		text, err = extractDOCX(data)
		if err != nil {
			return "", &ExtractionError{
				Reason: "Failed to extract text from DOCX file. The file may be corrupted.",
				Err:    err,
			}
		}
	default:
		return "", ErrUnsupportedType
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minTextLength {
		return "", ErrInsufficientContent
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; the length floor catches documents
			// where nothing decoded.
			continue
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens word/document.xml markup to plain text,
// inserting newlines at paragraph and line-break boundaries.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
