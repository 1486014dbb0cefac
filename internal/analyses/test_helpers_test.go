package analyses

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Htttpkaran/ai-resume-checker/internal/shared/config"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/middleware"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/respond"
)

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Analyze(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(t *testing.T, llmStub *stubLLM) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Recovery())

	handler := NewHandler(&Service{LLM: llmStub}, config.DefaultMaxUploadBytes)
	api := r.Group("/api")
	handler.RegisterRoutes(api)
	r.NoRoute(func(c *gin.Context) {
		respond.JSON(c, 404, respond.ErrorResponse{Success: false, Error: "Endpoint not found"})
	})
	return r
}

// buildDocx assembles a minimal in-memory DOCX: a zip archive holding a
// word/document.xml with the given paragraph text.
func buildDocx(t *testing.T, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>%s</w:t></w:r></w:p></w:body></w:document>`, text)
	if _, err := w.Write([]byte(document)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	rels, err := zw.Create("word/_rels/document.xml.rels")
	if err != nil {
		t.Fatalf("create rels: %v", err)
	}
	if _, err := rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`)); err != nil {
		t.Fatalf("write rels: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// postResume builds the multipart request the API expects: a `resume`
// file part with an explicit content type, plus the `jobRole` field.
func postResume(t *testing.T, router *gin.Engine, fileName, contentType string, data []byte, jobRole string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.WriteField("jobRole", jobRole); err != nil {
		t.Fatalf("write jobRole: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

const resumeText = "Experienced backend engineer with eight years building Go services, PostgreSQL schemas, and event-driven pipelines on AWS."

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
