package llm

import (
	"strings"
	"testing"
)

func TestBuildUserPromptTruncates(t *testing.T) {
	resume := strings.Repeat("r", 3000)
	job := strings.Repeat("j", 1500)

	prompt := BuildUserPrompt(resume, job)

	if strings.Contains(prompt, strings.Repeat("r", 2001)) {
		t.Fatal("resume text not truncated to 2000 characters")
	}
	if !strings.Contains(prompt, strings.Repeat("r", 2000)) {
		t.Fatal("expected 2000 characters of resume text")
	}
	if strings.Contains(prompt, strings.Repeat("j", 1001)) {
		t.Fatal("job description not truncated to 1000 characters")
	}
	if !strings.Contains(prompt, strings.Repeat("j", 1000)) {
		t.Fatal("expected 1000 characters of job description")
	}
}

func TestBuildUserPromptKeepsTemplateShape(t *testing.T) {
	prompt := BuildUserPrompt("resume body", "job body")

	if strings.Contains(prompt, "{{RESUME}}") || strings.Contains(prompt, "{{JOB_DESCRIPTION}}") {
		t.Fatalf("placeholders left unreplaced:\n%s", prompt)
	}
	for _, want := range []string{"RESUME: resume body", "JOB DESCRIPTION: job body", `"ats_score"`, `"detailed_suggestions"`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected %q in prompt", want)
		}
	}
}

func TestBuildUserPromptRuneSafeTruncation(t *testing.T) {
	resume := strings.Repeat("é", 2500)
	prompt := BuildUserPrompt(resume, "job")
	if !strings.Contains(prompt, strings.Repeat("é", 2000)) {
		t.Fatal("expected rune-safe truncation at 2000 runes")
	}
	if strings.Contains(prompt, "�") {
		t.Fatal("truncation split a rune")
	}
}
