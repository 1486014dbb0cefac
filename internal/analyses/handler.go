package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/middleware"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/respond"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/telemetry"
	"github.com/Htttpkaran/ai-resume-checker/internal/uploads"
)

// Handler exposes the analysis endpoint.
type Handler struct {
	Service        *Service
	MaxUploadBytes int64
}

// NewHandler constructs the analysis handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Service: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes mounts the handler on the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

// analyze sequences the pipeline for one request: validate the upload,
// then hand off to the service. Validation and extraction failures are
// client errors; gateway failures are server errors; parse failures
// never surface (the service already degraded them to the fallback).
func (h *Handler) analyze(c *gin.Context) {
	requestID := middleware.RequestIDFromContext(c)

	req, err := uploads.Validate(c, h.MaxUploadBytes)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Set("jobRole", req.JobRole)

	telemetry.Info("analysis.received", map[string]any{
		"request_id": requestID,
		"file_name":  req.FileName,
		"mime_type":  req.MIMEType,
		"size_bytes": req.Size,
		"job_role":   req.JobRole,
	})

	result, err := h.Service.Analyze(c.Request.Context(), req, requestID)
	if err != nil {
		var extractionErr *ExtractionError
		if errors.As(err, &extractionErr) {
			respond.Error(c, http.StatusBadRequest, extractionErr.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	respond.Data(c, result)
}
