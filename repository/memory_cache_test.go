package repository

import (
	"reflect"
	"testing"

	"startup-reality-engine/domain"
)

func sampleResult(odds int) domain.EvaluationResult {
	return domain.EvaluationResult{
		SurvivalOdds: odds,
		FailureProb:  100 - odds,
		RiskLevel:    domain.RiskElevated,
		Metrics: domain.Metrics{
			CompetitionDensity: "Medium",
			EstimatedRunway:    "10.0",
			Scalability:        50,
		},
		Breakdown: []domain.BreakdownItem{
			{Icon: domain.IconZap, Text: "a"},
			{Icon: domain.IconUsers, Text: "b"},
			{Icon: domain.IconAlert, Text: "c"},
		},
		Improvements: []string{"w", "x", "y", "z"},
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache()

	stored := sampleResult(50)
	if err := cache.Set("fp-1", stored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := cache.Get("fp-1")
	if !ok {
		t.Fatalf("expected hit for stored key")
	}
	if !reflect.DeepEqual(got, stored) {
		t.Errorf("expected stored result back, got %+v", got)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get("absent"); ok {
		t.Errorf("expected miss for absent key")
	}
}

func TestMemoryCache_LastWriteWins(t *testing.T) {
	cache := NewMemoryCache()

	_ = cache.Set("fp-1", sampleResult(40))
	_ = cache.Set("fp-1", sampleResult(60))

	got, ok := cache.Get("fp-1")
	if !ok {
		t.Fatalf("expected hit")
	}
	if got.SurvivalOdds != 60 {
		t.Errorf("expected last written value, got odds %d", got.SurvivalOdds)
	}
}
