package analysis

import (
	"context"

	"ats-backend/internal/extract"
	"ats-backend/internal/llm"
	"ats-backend/internal/shared/telemetry"
)

// Service orchestrates one analysis: extract text, call the LLM once,
// normalize the response. No state survives the request.
type Service struct {
	Extractor *extract.Extractor
	LLM       llm.Client
}

// Outcome bundles the verdict with extraction metadata for rendering.
type Outcome struct {
	Result      Result
	Extraction  extract.Result
	LLMFallback bool
}

// Analyze runs the full pipeline. Extraction failures are returned to the
// caller; LLM failures are absorbed by substituting the canned sample
// result so the interaction still completes.
func (s *Service) Analyze(ctx context.Context, fileBytes []byte, fileName, jobDescription string) (Outcome, error) {
	extracted, err := s.Extractor.Extract(fileBytes, fileName)
	if err != nil {
		return Outcome{}, err
	}

	raw, err := s.LLM.Analyze(ctx, llm.AnalyzeInput{
		ResumeText:     extracted.Text,
		JobDescription: jobDescription,
	})
	if err != nil {
		telemetry.Error("llm.call.failed", map[string]any{
			"err":           err.Error(),
			"source_format": string(extracted.SourceFormat),
		})
		return Outcome{
			Result:      SampleResult(),
			Extraction:  extracted,
			LLMFallback: true,
		}, nil
	}

	return Outcome{
		Result:     Normalize(raw),
		Extraction: extracted,
	}, nil
}
