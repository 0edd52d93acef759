package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var numberedStep = regexp.MustCompile(`\d+\.`)

// RenderReport serializes a Result as a plain-text report with a fixed
// section order: score header, matched keywords, missing keywords, text
// replacements, detailed suggestions grouped by priority, score
// explanation, next steps.
func RenderReport(r Result) string {
	var report []string

	report = append(report,
		"\U0001F4CA Overall ATS Score",
		fmt.Sprintf("%d/100", r.ATSScore),
		fallbackString(r.ScoreSummary, "Analysis completed"),
		"",
	)

	report = append(report, "✅ Matched Keywords")
	report = append(report, keywordLines(r.MatchedKeywords, "No specific matched keywords identified")...)
	report = append(report, "")

	report = append(report, "❌ Missing Critical Keywords")
	report = append(report, keywordLines(r.MissingKeywords, "No missing keywords identified")...)
	report = append(report, "")

	if len(r.TextReplacements) > 0 {
		report = append(report, "✏️ Text Replacements (Resume Improvements)")
		for i, replacement := range r.TextReplacements {
			report = append(report,
				fmt.Sprintf("%d. Section: %s", i+1, fallbackString(replacement.Section, "Section")),
				"   Current Text: "+fallbackString(replacement.OriginalText, "Original text not provided"),
				"   Improved Text: "+fallbackString(replacement.ImprovedText, "Improved text not provided"),
				"   Why this helps: "+fallbackString(replacement.Reason, "Improvement reason not provided"),
				"",
			)
		}
	}

	if len(r.DetailedSuggestions) > 0 {
		report = append(report, "\U0001F3AF Detailed Suggestions")
		for _, priority := range []string{"High", "Medium", "Low"} {
			group := suggestionsByPriority(r.DetailedSuggestions, priority)
			if len(group) == 0 {
				continue
			}
			report = append(report, priority+" Priority:")
			for _, s := range group {
				report = append(report,
					"• Category: "+fallbackString(s.Category, "General"),
					"  Issue: "+fallbackString(s.Issue, "Issue not specified"),
					"  Suggested Fix: "+fallbackString(s.Solution, "Solution not provided"),
					"  Expected Impact: "+fallbackString(s.ExpectedImpact, "Impact not specified"),
					"",
				)
			}
		}
	}

	if strings.TrimSpace(r.ScoreExplanation) != "" {
		report = append(report, "\U0001F4C8 Score Breakdown Explanation", r.ScoreExplanation, "")
	}

	if strings.TrimSpace(r.NextSteps) != "" {
		report = append(report, "\U0001F680 Next Steps")
		report = append(report, nextStepLines(r.NextSteps)...)
		report = append(report, "")
	}

	return strings.Join(report, "\n")
}

func keywordLines(keywords []string, placeholder string) []string {
	if len(keywords) == 0 {
		return []string{"• " + placeholder}
	}
	lines := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		lines = append(lines, "• "+keyword)
	}
	return lines
}

func suggestionsByPriority(suggestions []DetailedSuggestion, priority string) []DetailedSuggestion {
	var out []DetailedSuggestion
	for _, s := range suggestions {
		if s.Priority == priority {
			out = append(out, s)
		}
	}
	return out
}

// nextStepLines re-splits a numbered next-steps sentence into bullets when
// it carries "1." and "2." markers, otherwise emits it verbatim.
func nextStepLines(nextSteps string) []string {
	if !strings.Contains(nextSteps, "1.") || !strings.Contains(nextSteps, "2.") {
		return []string{nextSteps}
	}
	var lines []string
	for _, step := range numberedStep.Split(nextSteps, -1) {
		step = strings.TrimSpace(step)
		// Skip empty or tiny fragments left over from the split.
		if len(step) > 3 {
			lines = append(lines, "• "+step)
		}
	}
	return lines
}
