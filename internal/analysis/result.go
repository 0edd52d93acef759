package analysis

// List caps applied when normalizing model output.
const (
	maxKeywords     = 15
	maxReplacements = 10
	maxSuggestions  = 10
)

// Result is the fixed-shape ATS verdict rendered to clients. Field names
// mirror the JSON contract the model is prompted to produce.
type Result struct {
	ATSScore            int                  `json:"ats_score"`
	ScoreSummary        string               `json:"score_summary"`
	MatchedKeywords     []string             `json:"matched_keywords"`
	MissingKeywords     []string             `json:"missing_keywords"`
	TextReplacements    []TextReplacement    `json:"text_replacements"`
	DetailedSuggestions []DetailedSuggestion `json:"detailed_suggestions"`
	ScoreBreakdown      map[string]float64   `json:"score_breakdown"`
	ScoreExplanation    string               `json:"score_explanation"`
	NextSteps           string               `json:"next_steps"`
	// Suggestions is a flat legacy view of DetailedSuggestions kept for
	// consumers of the pre-structured response shape.
	Suggestions []string `json:"suggestions"`
	Feedback    string   `json:"feedback"`
}

// TextReplacement is a concrete before/after rewrite for one section.
type TextReplacement struct {
	Section      string `json:"section"`
	OriginalText string `json:"original_text"`
	ImprovedText string `json:"improved_text"`
	Reason       string `json:"reason"`
}

// DetailedSuggestion is one prioritized improvement.
type DetailedSuggestion struct {
	Priority       string `json:"priority"`
	Category       string `json:"category"`
	Issue          string `json:"issue"`
	Solution       string `json:"solution"`
	ExpectedImpact string `json:"expected_impact"`
}
