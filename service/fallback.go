package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"startup-reality-engine/domain"
)

var fallbackDefaultBreakdown = []domain.BreakdownItem{
	{Icon: domain.IconZap, Text: "Market differentiation requires clearer positioning."},
	{Icon: domain.IconUsers, Text: "Customer acquisition strategy needs refinement."},
	{Icon: domain.IconAlert, Text: "Resource allocation should be optimized for growth."},
}

// FallbackScore produces a deterministic evaluation from the input alone.
// It is the degradation path when the model is unreachable and must never
// fail: identical inputs always yield identical results.
func FallbackScore(input domain.StartupInput) domain.EvaluationResult {
	expenses := input.MonthlyExpenses
	if expenses < 1 {
		expenses = 1
	}
	runway := input.StartingBudget / expenses

	score := 50.0

	avgSkill := float64(input.TechSkill+input.MarketingSkill+input.BusinessSkill) / 3.0
	score += (avgSkill - 5) * 3

	switch {
	case input.WeeklyHours >= 40:
		score += 10
	case input.WeeklyHours >= 20:
		score += 5
	}

	switch {
	case runway < 3:
		score -= 20
	case runway < 6:
		score -= 10
	case runway > 12:
		score += 10
	}

	if input.TeamSize > 1 {
		score += 5
	}
	if input.TeamSize >= 3 {
		score += 5
	}

	if input.FirstStartup {
		score -= 10
	}

	survivalOdds := clamp(int(math.Round(score)), MinSurvivalOdds, MaxSurvivalOdds)

	competition := competitionDensityFor(input.Industry)

	return domain.EvaluationResult{
		SurvivalOdds: survivalOdds,
		FailureProb:  100 - survivalOdds,
		RiskLevel:    RiskLevelFor(survivalOdds),
		Metrics: domain.Metrics{
			CompetitionDensity: competition,
			EstimatedRunway:    strconv.FormatFloat(runway, 'f', 1, 64),
			Scalability:        scalabilityFor(input, avgSkill),
		},
		Breakdown:    fallbackBreakdown(input, runway, competition),
		Improvements: fallbackImprovements(input),
	}
}

// competitionDensityFor applies the industry keyword rules in order; the
// first matching rule wins.
func competitionDensityFor(industry string) string {
	industry = strings.ToLower(industry)
	switch {
	case strings.Contains(industry, "saas"),
		strings.Contains(industry, "fintech"),
		strings.Contains(industry, "e-commerce"):
		return "High"
	case strings.Contains(industry, "healthcare"),
		strings.Contains(industry, "biotech"):
		return "Low"
	default:
		return "Medium"
	}
}

func scalabilityFor(input domain.StartupInput, avgSkill float64) int {
	scalability := 50
	if input.BusinessModelType == domain.BusinessModelB2B ||
		input.BusinessModelType == domain.BusinessModelMarketplace {
		scalability += 10
	}
	if avgSkill > 7 {
		scalability += 15
	}
	if input.TeamSize > 2 {
		scalability += 10
	}
	if scalability > MaxScalability {
		scalability = MaxScalability
	}
	return scalability
}

// fallbackBreakdown appends at most one item per risk condition, in fixed
// order, then right-pads with the generic defaults until length 3.
func fallbackBreakdown(input domain.StartupInput, runway float64, competition string) []domain.BreakdownItem {
	var breakdown []domain.BreakdownItem

	if input.MarketingSkill < 5 {
		breakdown = append(breakdown, domain.BreakdownItem{
			Icon: domain.IconZap,
			Text: fmt.Sprintf("Low marketing skill (%d/10) may hinder customer acquisition.", input.MarketingSkill),
		})
	}

	if runway < 6 {
		breakdown = append(breakdown, domain.BreakdownItem{
			Icon: domain.IconAlert,
			Text: fmt.Sprintf("Limited runway of %.1f months creates execution pressure.", runway),
		})
	}

	if competition == "High" {
		breakdown = append(breakdown, domain.BreakdownItem{
			Icon: domain.IconUsers,
			Text: "Entering a highly saturated market with established competitors.",
		})
	}

	for len(breakdown) < len(fallbackDefaultBreakdown) {
		breakdown = append(breakdown, fallbackDefaultBreakdown[len(breakdown)])
	}
	return breakdown
}

func fallbackImprovements(input domain.StartupInput) []string {
	marketingAdvice := "Develop a systematic growth experimentation process."
	if input.MarketingSkill < 6 {
		marketingAdvice = "Consider hiring a growth/marketing co-founder or consultant."
	}

	return []string{
		"Validate product-market fit through customer discovery interviews.",
		"Extend runway to 12+ months by reducing burn rate or securing additional funding.",
		marketingAdvice,
		"Build strategic partnerships to reduce customer acquisition costs.",
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
