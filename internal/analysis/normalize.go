package analysis

import (
	"encoding/json"
	"strings"
)

// rawResult tolerates the loose types models actually emit: scores may be
// floats, breakdowns may mix ints and fractions.
type rawResult struct {
	ATSScore            *float64             `json:"ats_score"`
	ScoreSummary        string               `json:"score_summary"`
	MatchedKeywords     []string             `json:"matched_keywords"`
	MissingKeywords     []string             `json:"missing_keywords"`
	TextReplacements    []TextReplacement    `json:"text_replacements"`
	DetailedSuggestions []DetailedSuggestion `json:"detailed_suggestions"`
	ScoreBreakdown      map[string]float64   `json:"score_breakdown"`
	ScoreExplanation    string               `json:"score_explanation"`
	NextSteps           string               `json:"next_steps"`
}

// Normalize converts a raw model response into a Result. It never fails:
// responses that are not valid JSON go through the heuristic fallback
// scanner, and anything unrecognizable still yields a structurally valid
// Result with defaults.
func Normalize(raw string) Result {
	cleaned := cleanResponse(raw)

	var parsed rawResult
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return parseFallback(cleaned)
	}
	return buildResult(parsed)
}

// cleanResponse strips reasoning blocks, code fences, and surrounding
// prose so the slice handed to the JSON parser is as tight as possible.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)

	// Reasoning models prefix their answer with a <think> block.
	if strings.Contains(s, "<think>") {
		if end := strings.Index(s, "</think>"); end != -1 {
			s = strings.TrimSpace(s[end+len("</think>"):])
		}
	}

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end != -1 && end > start {
		s = s[start : end+1]
	}
	return s
}

func buildResult(parsed rawResult) Result {
	score := 0
	if parsed.ATSScore != nil {
		score = int(*parsed.ATSScore)
	}

	breakdown := parsed.ScoreBreakdown
	if breakdown == nil {
		breakdown = map[string]float64{}
	}

	explanation := strings.TrimSpace(parsed.ScoreExplanation)
	feedback := explanation
	if feedback == "" {
		feedback = "Analysis completed successfully."
	}
	if explanation == "" {
		explanation = "Score analysis not available."
	}

	return Result{
		ATSScore:            clampScore(score),
		ScoreSummary:        fallbackString(parsed.ScoreSummary, "Analysis completed"),
		MatchedKeywords:     truncateStrings(parsed.MatchedKeywords, maxKeywords),
		MissingKeywords:     truncateStrings(parsed.MissingKeywords, maxKeywords),
		TextReplacements:    truncateReplacements(parsed.TextReplacements, maxReplacements),
		DetailedSuggestions: truncateSuggestions(parsed.DetailedSuggestions, maxSuggestions),
		ScoreBreakdown:      breakdown,
		ScoreExplanation:    explanation,
		NextSteps:           fallbackString(parsed.NextSteps, "Next steps not available."),
		Suggestions:         flattenSuggestions(parsed.DetailedSuggestions),
		Feedback:            feedback,
	}
}

// flattenSuggestions renders the prioritized suggestions as flat
// "{category}: {solution}" strings for backward-compatible consumers.
func flattenSuggestions(suggestions []DetailedSuggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		category := fallbackString(s.Category, "General")
		solution := s.Solution
		if strings.TrimSpace(solution) == "" {
			solution = s.Issue
		}
		out = append(out, category+": "+solution)
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func fallbackString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func truncateStrings(values []string, limit int) []string {
	if values == nil {
		return []string{}
	}
	if len(values) > limit {
		values = values[:limit]
	}
	return values
}

func truncateReplacements(values []TextReplacement, limit int) []TextReplacement {
	if values == nil {
		return []TextReplacement{}
	}
	if len(values) > limit {
		values = values[:limit]
	}
	return values
}

func truncateSuggestions(values []DetailedSuggestion, limit int) []DetailedSuggestion {
	if values == nil {
		return []DetailedSuggestion{}
	}
	if len(values) > limit {
		values = values[:limit]
	}
	return values
}
