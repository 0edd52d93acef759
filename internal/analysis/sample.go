package analysis

// SampleResult is the canned verdict substituted when the LLM call fails.
// The interaction always completes with something renderable; the values
// are obviously generic so a user can tell the analysis was degraded.
func SampleResult() Result {
	return Result{
		ATSScore:        65,
		ScoreSummary:    "Analysis completed with fallback data due to API issues",
		MatchedKeywords: []string{"Python", "Machine Learning", "Data Analysis"},
		MissingKeywords: []string{"AWS", "Docker", "Kubernetes"},
		TextReplacements: []TextReplacement{
			{
				Section:      "Experience",
				OriginalText: "Worked on projects",
				ImprovedText: "Developed and deployed 3+ projects using Python and machine learning frameworks",
				Reason:       "Added specific technologies and quantified achievements",
			},
		},
		DetailedSuggestions: []DetailedSuggestion{
			{
				Priority:       "High",
				Category:       "Keywords",
				Issue:          "Missing key technologies from job description",
				Solution:       "Add cloud technologies and DevOps tools to skills section",
				ExpectedImpact: "Improve ATS matching by 15-20 points",
			},
		},
		ScoreBreakdown: map[string]float64{
			"keywords":   15,
			"experience": 18,
			"skills":     14,
			"education":  10,
			"formatting": 8,
		},
		ScoreExplanation: "Fallback analysis due to API issues. Keywords (15/25): Basic coverage. Experience (18/25): Relevant but needs metrics. Skills (14/20): Good foundation. Education (10/15): Adequate. Formatting (8/15): Could be improved.",
		NextSteps:        "1. Add missing keywords from job description. 2. Quantify achievements with specific numbers. 3. Improve resume formatting and structure.",
		Suggestions:      []string{"Add more relevant keywords", "Quantify your achievements", "Improve formatting"},
		Feedback:         "Analysis completed with fallback data due to technical issues.",
	}
}
