package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/ats_v1.txt
var promptATSv1 string

// SystemPrompt is the fixed instruction forcing JSON-only output.
const SystemPrompt = "You are an expert ATS resume evaluator. You MUST respond with ONLY valid JSON. Do not include any thinking, explanations, or other text. Start your response with { and end with }."

const (
	maxResumeChars         = 2000
	maxJobDescriptionChars = 1000
)

// BuildUserPrompt renders the analysis prompt, truncating the resume and
// job description so oversized uploads cannot blow the context window.
func BuildUserPrompt(resumeText, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{RESUME}}", truncate(resumeText, maxResumeChars),
		"{{JOB_DESCRIPTION}}", truncate(jobDescription, maxJobDescriptionChars),
	)
	return replacer.Replace(promptATSv1)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
