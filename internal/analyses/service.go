package analyses

import (
	"context"

	"github.com/Htttpkaran/ai-resume-checker/internal/extract"
	"github.com/Htttpkaran/ai-resume-checker/internal/llm"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/telemetry"
	"github.com/Htttpkaran/ai-resume-checker/internal/uploads"
)

// Service runs the analysis pipeline for one validated upload:
// extract text, build the prompt, call the model, sanitize the reply.
// It holds no per-request state; the LLM client is the only shared
// dependency and is read-only.
type Service struct {
	LLM llm.Client
}

// ExtractionError and GatewayError partition pipeline failures for the
// handler: the former maps to 400, the latter to 500.
type ExtractionError struct{ Err error }

func (e *ExtractionError) Error() string { return e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }

type GatewayError struct{ Err error }

func (e *GatewayError) Error() string { return e.Err.Error() }
func (e *GatewayError) Unwrap() error { return e.Err }

// Analyze runs a single sequential pass over the pipeline. A reply that
// fails sanitization degrades to the fallback result rather than an
// error; every other failure terminates the request.
func (s *Service) Analyze(ctx context.Context, req uploads.Request, requestID string) (Result, error) {
	text, err := extract.FromBytes(ctx, req.Data, req.MIMEType)
	if err != nil {
		return Result{}, &ExtractionError{Err: err}
	}
	telemetry.Info("analysis.extracted", map[string]any{
		"request_id": requestID,
		"file_name":  req.FileName,
		"mime_type":  req.MIMEType,
		"size_bytes": req.Size,
		"text_chars": len(text),
	})

	prompt := llm.BuildAnalysisPrompt(text, req.JobRole)
	raw, err := s.LLM.Analyze(ctx, prompt)
	if err != nil {
		return Result{}, &GatewayError{Err: err}
	}
	telemetry.Info("analysis.model_reply", map[string]any{
		"request_id":  requestID,
		"reply_chars": len(raw),
	})

	result, err := ParseResponse(raw)
	if err != nil {
		// Absorbed by design: a malformed reply degrades to the
		// fallback result instead of erroring the whole request.
		telemetry.Error("analysis.parse_failed", map[string]any{
			"request_id": requestID,
		})
		return Fallback("AI response parsing failed"), nil
	}
	return result, nil
}
