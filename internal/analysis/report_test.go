package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderReportSectionOrder(t *testing.T) {
	result := Result{
		ATSScore:        72,
		ScoreSummary:    "Competitive for mid-level roles",
		MatchedKeywords: []string{"Go", "PostgreSQL"},
		MissingKeywords: []string{"Kubernetes"},
		TextReplacements: []TextReplacement{
			{Section: "Experience", OriginalText: "Worked on services", ImprovedText: "Built 4 Go services handling 2k rps", Reason: "Quantified impact"},
		},
		DetailedSuggestions: []DetailedSuggestion{
			{Priority: "Low", Category: "Formatting", Issue: "Dense layout", Solution: "Add whitespace", ExpectedImpact: "Easier scanning"},
			{Priority: "High", Category: "Keywords", Issue: "Missing Kubernetes", Solution: "Add container experience", ExpectedImpact: "Better matching"},
		},
		ScoreExplanation: "Keywords and experience carried the score.",
		NextSteps:        "1. Add Kubernetes. 2. Quantify achievements.",
	}

	report := RenderReport(result)

	sections := []string{
		"Overall ATS Score",
		"72/100",
		"Matched Keywords",
		"Missing Critical Keywords",
		"Text Replacements",
		"Detailed Suggestions",
		"High Priority:",
		"Low Priority:",
		"Score Breakdown Explanation",
		"Next Steps",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		if idx == -1 {
			t.Fatalf("report missing section %q:\n%s", section, report)
		}
		if idx < last {
			t.Fatalf("section %q out of order:\n%s", section, report)
		}
		last = idx
	}
}

func TestRenderReportNextStepsSplit(t *testing.T) {
	result := Result{ATSScore: 50, NextSteps: "1. Add keywords. 2. Fix formatting. 3. Quantify work."}
	report := RenderReport(result)

	for _, want := range []string{"\u2022 Add keywords.", "\u2022 Fix formatting.", "\u2022 Quantify work."} {
		if !strings.Contains(report, want) {
			t.Fatalf("expected %q in report:\n%s", want, report)
		}
	}
}

func TestRenderReportNextStepsVerbatim(t *testing.T) {
	result := Result{ATSScore: 50, NextSteps: "Tailor the resume to each application."}
	report := RenderReport(result)
	if !strings.Contains(report, "Tailor the resume to each application.") {
		t.Fatalf("expected verbatim next steps:\n%s", report)
	}
	if strings.Contains(report, "\u2022 Tailor") {
		t.Fatalf("next steps without markers should not be bulleted:\n%s", report)
	}
}

func TestRenderReportEmptyKeywordPlaceholders(t *testing.T) {
	report := RenderReport(Result{ATSScore: 40})
	if !strings.Contains(report, "\u2022 No specific matched keywords identified") {
		t.Fatalf("expected matched placeholder:\n%s", report)
	}
	if !strings.Contains(report, "\u2022 No missing keywords identified") {
		t.Fatalf("expected missing placeholder:\n%s", report)
	}
}

func TestReportRoundTrip(t *testing.T) {
	result := Result{
		ATSScore:        68,
		ScoreSummary:    "Good baseline",
		MatchedKeywords: []string{"Go", "gRPC", "PostgreSQL"},
		MissingKeywords: []string{"Kubernetes", "Terraform"},
	}

	rescanned := Normalize(RenderReport(result))

	if rescanned.ATSScore != result.ATSScore {
		t.Fatalf("expected score %d after round trip, got %d", result.ATSScore, rescanned.ATSScore)
	}
	if !reflect.DeepEqual(rescanned.MatchedKeywords, result.MatchedKeywords) {
		t.Fatalf("matched keywords changed: %v != %v", rescanned.MatchedKeywords, result.MatchedKeywords)
	}
	if !reflect.DeepEqual(rescanned.MissingKeywords, result.MissingKeywords) {
		t.Fatalf("missing keywords changed: %v != %v", rescanned.MissingKeywords, result.MissingKeywords)
	}
}
