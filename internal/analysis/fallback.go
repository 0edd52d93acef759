package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// scorePattern finds the first integer following a "score" mention. The
// (?s) flag lets the scan cross line breaks so a report-style
// "Overall ATS Score\n72/100" still yields its score.
var scorePattern = regexp.MustCompile(`(?is)(?:ats_score|score).*?(\d+)`)

const (
	fallbackListCap        = 10
	fallbackSuggestionsCap = 8
)

var bulletMarkers = []string{"•", "-", "*"}

// parseFallback is the best-effort line scanner for responses that failed
// strict JSON parsing. It always returns a structurally valid Result.
func parseFallback(text string) Result {
	score := 50
	if m := scorePattern.FindStringSubmatch(text); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			score = parsed
		}
	}

	var (
		matched     []string
		missing     []string
		suggestions []string
		section     string
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "matched") && strings.Contains(lower, "keyword"):
			section = "matched"
		case strings.Contains(lower, "missing") && strings.Contains(lower, "keyword"):
			section = "missing"
		case strings.Contains(lower, "suggestion") || strings.Contains(lower, "recommend"):
			section = "suggestions"
		default:
			item, ok := bulletItem(line)
			if !ok {
				continue
			}
			switch {
			case section == "matched" && len(matched) < fallbackListCap:
				matched = append(matched, item)
			case section == "missing" && len(missing) < fallbackListCap:
				missing = append(missing, item)
			case section == "suggestions" && len(suggestions) < fallbackSuggestionsCap:
				suggestions = append(suggestions, item)
			}
		}
	}

	if len(suggestions) == 0 {
		suggestions = []string{"Consider adding more relevant keywords from the job description"}
	}

	return Result{
		ATSScore:            clampScore(score),
		MatchedKeywords:     ensureStrings(matched),
		MissingKeywords:     ensureStrings(missing),
		TextReplacements:    []TextReplacement{},
		DetailedSuggestions: []DetailedSuggestion{},
		ScoreBreakdown:      map[string]float64{},
		Suggestions:         suggestions,
		Feedback:            "Analysis completed with fallback parsing. Results may be limited.",
	}
}

func bulletItem(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

func ensureStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
