package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestFallbackCollectsMissingKeywords(t *testing.T) {
	var lines []string
	lines = append(lines, "The resume could be stronger.", "", "Missing Keywords:")
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("• skill%d", i))
	}
	result := Normalize(strings.Join(lines, "\n"))

	if len(result.MissingKeywords) != 10 {
		t.Fatalf("expected missing keywords capped at 10, got %d", len(result.MissingKeywords))
	}
	if result.MissingKeywords[0] != "skill0" || result.MissingKeywords[9] != "skill9" {
		t.Fatalf("unexpected keywords: %v", result.MissingKeywords)
	}
	if result.Feedback != "Analysis completed with fallback parsing. Results may be limited." {
		t.Fatalf("unexpected feedback: %q", result.Feedback)
	}
}

func TestFallbackSectionSwitching(t *testing.T) {
	raw := strings.Join([]string{
		"Overall score: 82 out of 100",
		"Matched keywords:",
		"- Go",
		"* Kubernetes",
		"Missing keywords:",
		"- Terraform",
		"Suggestions:",
		"- Add a skills section",
	}, "\n")

	result := Normalize(raw)
	if result.ATSScore != 82 {
		t.Fatalf("expected score 82, got %d", result.ATSScore)
	}
	if len(result.MatchedKeywords) != 2 || result.MatchedKeywords[0] != "Go" || result.MatchedKeywords[1] != "Kubernetes" {
		t.Fatalf("unexpected matched keywords: %v", result.MatchedKeywords)
	}
	if len(result.MissingKeywords) != 1 || result.MissingKeywords[0] != "Terraform" {
		t.Fatalf("unexpected missing keywords: %v", result.MissingKeywords)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "Add a skills section" {
		t.Fatalf("unexpected suggestions: %v", result.Suggestions)
	}
}

func TestFallbackScoreDefaults(t *testing.T) {
	result := Normalize("The model refused to answer.")
	if result.ATSScore != 50 {
		t.Fatalf("expected default score 50, got %d", result.ATSScore)
	}
	if len(result.Suggestions) != 1 || !strings.Contains(result.Suggestions[0], "relevant keywords") {
		t.Fatalf("expected default suggestion, got %v", result.Suggestions)
	}
}

func TestFallbackScoreClamped(t *testing.T) {
	result := Normalize("ats_score: 400")
	if result.ATSScore != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.ATSScore)
	}
}

func TestFallbackBulletsWithoutSectionIgnored(t *testing.T) {
	result := Normalize("- orphan bullet\n- another one")
	if len(result.MatchedKeywords) != 0 || len(result.MissingKeywords) != 0 {
		t.Fatalf("expected orphan bullets ignored, got %v / %v", result.MatchedKeywords, result.MissingKeywords)
	}
}
