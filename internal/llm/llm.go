package llm

import "context"

// Client abstracts the hosted LLM provider. Implementations return the raw
// text of the model response; normalization happens downstream.
type Client interface {
	Analyze(ctx context.Context, input AnalyzeInput) (string, error)
}

// AnalyzeInput captures the inputs needed for an ATS analysis.
type AnalyzeInput struct {
	ResumeText     string
	JobDescription string
}
