package service

import (
	"testing"

	"startup-reality-engine/domain"
)

// testInput is the shared baseline request: runway 10 months, average
// skill 5, full-time solo first-time founder.
func testInput() domain.StartupInput {
	return domain.StartupInput{
		ProblemStatement:      "Small restaurants lose revenue to no-shows",
		TargetAudience:        "Independent restaurant owners",
		UniqueDifferentiation: "Deposit-backed reservations with dynamic pricing",
		BusinessModelType:     domain.BusinessModelB2C,
		RevenueModel:          "Monthly subscription",
		StartingBudget:        10000,
		MonthlyExpenses:       1000,
		TeamSize:              1,
		TechSkill:             5,
		MarketingSkill:        5,
		BusinessSkill:         5,
		WeeklyHours:           40,
		FirstStartup:          true,
		Country:               "Germany",
		Industry:              "Hospitality",
		Competitors:           "OpenTable",
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	input := testInput()

	if Fingerprint(input) != Fingerprint(input) {
		t.Errorf("expected identical fingerprints for identical input")
	}
}

func TestFingerprint_CaseAndWhitespaceInvariance(t *testing.T) {
	a := testInput()

	b := testInput()
	b.ProblemStatement = "  SMALL Restaurants lose revenue to NO-SHOWS  "
	b.TargetAudience = "INDEPENDENT RESTAURANT OWNERS"
	b.RevenueModel = "monthly subscription\n"
	b.Country = " germany "
	b.Industry = "hospitality"
	b.Competitors = "  opentable"

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("expected case/whitespace variants to fingerprint identically")
	}
}

func TestFingerprint_NumericFieldChanges(t *testing.T) {
	a := testInput()

	b := testInput()
	b.StartingBudget = 10001

	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("expected different budgets to fingerprint differently")
	}

	c := testInput()
	c.TeamSize = 2

	if Fingerprint(a) == Fingerprint(c) {
		t.Errorf("expected different team sizes to fingerprint differently")
	}
}

func TestFingerprint_BooleanFieldChanges(t *testing.T) {
	a := testInput()

	b := testInput()
	b.FirstStartup = false

	if Fingerprint(a) == Fingerprint(b) {
		t.Errorf("expected different first_startup flags to fingerprint differently")
	}
}

func TestFingerprint_EmptyCompetitors(t *testing.T) {
	a := testInput()
	a.Competitors = ""

	b := testInput()
	b.Competitors = "   "

	if Fingerprint(a) != Fingerprint(b) {
		t.Errorf("expected absent and blank competitors to fingerprint identically")
	}
}
