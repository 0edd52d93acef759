package analysis

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/extract"
	"ats-backend/internal/shared/server/respond"
)

const maxUploadBytes = 5 << 20

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.POST("/analyses/report", h.createReport)
}

func (h *Handler) createAnalysis(c *gin.Context) {
	outcome, ok := h.analyze(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{
		"result": outcome.Result,
		"report": RenderReport(outcome.Result),
		"resume": gin.H{
			"characters": len(outcome.Extraction.Text),
			"format":     outcome.Extraction.SourceFormat,
		},
	})
}

func (h *Handler) createReport(c *gin.Context) {
	outcome, ok := h.analyze(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, RenderReport(outcome.Result))
}

// analyze reads the multipart inputs and runs the service. It writes the
// error response itself and reports success through the second return.
func (h *Handler) analyze(c *gin.Context) (Outcome, bool) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "resume file is required", nil)
		return Outcome{}, false
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "resume file exceeds the 5 MiB limit", nil)
		return Outcome{}, false
	}

	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "job_description is required", nil)
		return Outcome{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to read resume file", nil)
		return Outcome{}, false
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to read resume file", nil)
		return Outcome{}, false
	}

	outcome, err := h.Svc.Analyze(c.Request.Context(), fileBytes, fileHeader.Filename, jobDescription)
	if err != nil {
		respondExtractionError(c, err)
		return Outcome{}, false
	}

	c.Set("sourceFormat", string(outcome.Extraction.SourceFormat))
	c.Set("llmFallback", outcome.LLMFallback)
	return outcome, true
}

// respondExtractionError maps extraction failures to the error envelope.
// These are user-actionable, so the extractor's message goes out verbatim.
func respondExtractionError(c *gin.Context, err error) {
	var (
		unsupported *extract.UnsupportedFormatError
		empty       *extract.EmptyContentError
		missing     *extract.MissingDecoderError
	)
	switch {
	case errors.As(err, &unsupported):
		respond.Error(c, http.StatusBadRequest, respond.CodeUnsupportedFormat, err.Error(), nil)
	case errors.As(err, &empty):
		respond.Error(c, http.StatusBadRequest, respond.CodeEmptyContent, err.Error(), nil)
	case errors.As(err, &missing):
		respond.Error(c, http.StatusInternalServerError, respond.CodeDecoderUnavailable, err.Error(), nil)
	default:
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
	}
}
