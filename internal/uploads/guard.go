package uploads

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// FileField and RoleField are the multipart form field names the API accepts.
const (
	FileField = "resume"
	RoleField = "jobRole"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrMissingFile     = errors.New("No resume file provided. Please upload a PDF or DOCX file.")
	ErrInvalidFileType = errors.New("Invalid file type. Only PDF and DOCX files are allowed.")
	ErrMissingJobRole  = errors.New("Job role is required.")
)

var allowedContentTypes = map[string]struct{}{
	mimePDF:  {},
	mimeDOCX: {},
}

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
}

// TooLargeError reports an upload above the configured byte cap.
type TooLargeError struct {
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("File size too large. Maximum size is %dMB.", e.Limit>>20)
}

// Request is the validated input to the analysis pipeline. The file
// contents live only in memory for the duration of one request.
type Request struct {
	Data     []byte
	MIMEType string
	FileName string
	Size     int64
	JobRole  string
}

// Validate enforces the upload contract on a multipart request: exactly
// one resume file of an accepted type under the byte cap, plus a
// non-blank job role. The trimmed role replaces the raw value downstream.
func Validate(c *gin.Context, maxUploadBytes int64) (Request, error) {
	header, err := c.FormFile(FileField)
	if err != nil {
		// A body past the transport cap aborts multipart parsing before
		// the file part is seen; report that as a size rejection, not a
		// missing file.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return Request{}, &TooLargeError{Limit: maxUploadBytes}
		}
		return Request{}, ErrMissingFile
	}

	mimeType := strings.ToLower(strings.TrimSpace(strings.Split(header.Header.Get("Content-Type"), ";")[0]))
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedContentTypes[mimeType]; !ok {
		return Request{}, ErrInvalidFileType
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return Request{}, ErrInvalidFileType
	}

	if header.Size > maxUploadBytes {
		return Request{}, &TooLargeError{Limit: maxUploadBytes}
	}

	jobRole := strings.TrimSpace(c.PostForm(RoleField))
	if jobRole == "" {
		return Request{}, ErrMissingJobRole
	}

	file, err := header.Open()
	if err != nil {
		return Request{}, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return Request{}, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxUploadBytes {
		return Request{}, &TooLargeError{Limit: maxUploadBytes}
	}

	return Request{
		Data:     data,
		MIMEType: mimeType,
		FileName: header.Filename,
		Size:     int64(len(data)),
		JobRole:  jobRole,
	}, nil
}
