package service

import (
	"encoding/json"
	"strings"

	"startup-reality-engine/domain"
)

// normalizedInput fixes the encoding of the cache key. Field order follows
// the input schema, not alphabetical order, so the key is stable across
// releases as long as the schema is.
type normalizedInput struct {
	ProblemStatement      string  `json:"problem_statement"`
	TargetAudience        string  `json:"target_audience"`
	UniqueDifferentiation string  `json:"unique_differentiation"`
	BusinessModelType     string  `json:"business_model_type"`
	RevenueModel          string  `json:"revenue_model"`
	StartingBudget        float64 `json:"starting_budget"`
	MonthlyExpenses       float64 `json:"monthly_expenses"`
	TeamSize              int     `json:"team_size"`
	TechSkill             int     `json:"tech_skill"`
	MarketingSkill        int     `json:"marketing_skill"`
	BusinessSkill         int     `json:"business_skill"`
	WeeklyHours           int     `json:"weekly_hours"`
	FirstStartup          bool    `json:"first_startup"`
	Country               string  `json:"country"`
	Industry              string  `json:"industry"`
	Competitors           string  `json:"competitors"`
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Fingerprint derives the cache key for an input. Free-text fields are
// trimmed and lower-cased so cosmetic differences map to the same key;
// numeric and boolean fields and the business model enum pass through
// unchanged.
func Fingerprint(input domain.StartupInput) string {
	norm := normalizedInput{
		ProblemStatement:      normalizeText(input.ProblemStatement),
		TargetAudience:        normalizeText(input.TargetAudience),
		UniqueDifferentiation: normalizeText(input.UniqueDifferentiation),
		BusinessModelType:     input.BusinessModelType,
		RevenueModel:          normalizeText(input.RevenueModel),
		StartingBudget:        input.StartingBudget,
		MonthlyExpenses:       input.MonthlyExpenses,
		TeamSize:              input.TeamSize,
		TechSkill:             input.TechSkill,
		MarketingSkill:        input.MarketingSkill,
		BusinessSkill:         input.BusinessSkill,
		WeeklyHours:           input.WeeklyHours,
		FirstStartup:          input.FirstStartup,
		Country:               normalizeText(input.Country),
		Industry:              normalizeText(input.Industry),
		Competitors:           normalizeText(input.Competitors),
	}

	// A flat struct of strings, numbers and booleans cannot fail to marshal.
	key, _ := json.Marshal(norm)
	return string(key)
}
