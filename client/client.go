// Package client is a Go caller for the resume checker API. It posts an
// upload as multipart form data and surfaces either the parsed analysis
// result or a typed error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidResponse reports a 2xx body that does not carry the success
// envelope the server contract promises.
var ErrInvalidResponse = errors.New("Invalid response format from server")

// APIError carries the server-reported error for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// AnalysisResult mirrors the canonical result schema returned by the API.
type AnalysisResult struct {
	Score           int      `json:"score"`
	ATS             int      `json:"ats"`
	KeywordMatch    int      `json:"keywordMatch"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MissingKeywords []string `json:"missingKeywords"`
	Tips            []string `json:"tips"`
}

// HealthStatus mirrors the health endpoint payload.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Client calls the resume checker API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a client for the given base URL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Analyze uploads a resume with a target job role and returns the
// analysis result. The file is sent under the `resume` form field with a
// content type inferred from the file name.
func (c *Client) Analyze(ctx context.Context, fileName string, file io.Reader, jobRole string) (*AnalysisResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreatePart(fileHeader(fileName))
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("jobRole", jobRole); err != nil {
		return nil, fmt.Errorf("write jobRole field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := "request failed"
		if err := json.Unmarshal(raw, &env); err == nil && env.Error != "" {
			message = env.Error
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ErrInvalidResponse
	}
	if !env.Success || len(env.Data) == 0 {
		return nil, ErrInvalidResponse
	}

	var result AnalysisResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, ErrInvalidResponse
	}
	return &result, nil
}

// Health fetches the health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "health check failed"}
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, ErrInvalidResponse
	}
	return &status, nil
}

func fileHeader(fileName string) textproto.MIMEHeader {
	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		contentType = "application/pdf"
	case ".docx":
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, filepath.Base(fileName)))
	h.Set("Content-Type", contentType)
	return h
}
