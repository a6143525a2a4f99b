package service

import (
	"strings"
	"testing"
)

// The prompt and the parser are a coupled protocol: every label the parser
// extracts must be mandated by the system prompt.
func TestEvaluationSystemPrompt_ContainsParserLabels(t *testing.T) {
	labels := []string{
		"SURVIVAL_ODDS:",
		"FAILURE_PROBABILITY:",
		"COMPETITION_DENSITY:",
		"ESTIMATED_RUNWAY:",
		"SCALABILITY_SCORE:",
		"REALITY_BREAKDOWN:",
		"MOST_LIKELY_FAILURE_CAUSE:",
		"HOW_TO_IMPROVE_SURVIVAL_ODDS:",
	}

	for _, label := range labels {
		if !strings.Contains(EvaluationSystemPrompt, label) {
			t.Errorf("system prompt is missing label %q", label)
		}
	}
}

func TestBuildEvaluationPrompt_RawFields(t *testing.T) {
	input := testInput()
	prompt := BuildEvaluationPrompt(input)

	// Fields go out raw, not normalized.
	if !strings.Contains(prompt, "Small restaurants lose revenue to no-shows") {
		t.Errorf("expected problem statement in prompt")
	}
	if !strings.Contains(prompt, "10000") || !strings.Contains(prompt, "1000") {
		t.Errorf("expected budget and expenses in prompt")
	}
	if !strings.Contains(prompt, "FIRST STARTUP?:\nYes") {
		t.Errorf("expected first startup flag rendered as Yes")
	}
	if !strings.Contains(prompt, "OpenTable") {
		t.Errorf("expected competitors in prompt")
	}
}

func TestBuildEvaluationPrompt_NoCompetitors(t *testing.T) {
	input := testInput()
	input.Competitors = ""

	prompt := BuildEvaluationPrompt(input)

	if !strings.Contains(prompt, "None mentioned") {
		t.Errorf("expected empty competitors rendered as None mentioned")
	}
}

func TestBuildEvaluationPrompt_NotFirstStartup(t *testing.T) {
	input := testInput()
	input.FirstStartup = false

	prompt := BuildEvaluationPrompt(input)

	if !strings.Contains(prompt, "FIRST STARTUP?:\nNo") {
		t.Errorf("expected first startup flag rendered as No")
	}
}
