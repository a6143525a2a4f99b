package service

import (
	"regexp"
	"strconv"
	"strings"

	"startup-reality-engine/domain"
)

// Per-field defaults applied when a label is missing or its value cannot
// be read.
const (
	defaultSurvivalOdds       = 30
	defaultScalability        = 40
	defaultCompetitionDensity = "Medium"
	defaultEstimatedRunway    = "0"
)

var (
	survivalOddsPattern = regexp.MustCompile(`(?i)SURVIVAL_ODDS:\s*(\d+)%?`)
	failureProbPattern  = regexp.MustCompile(`(?i)FAILURE_PROBABILITY:\s*(\d+)%?`)
	competitionPattern  = regexp.MustCompile(`(?i)COMPETITION_DENSITY:\s*(\w+)`)
	runwayPattern       = regexp.MustCompile(`(?i)ESTIMATED_RUNWAY:\s*([\d.]+)`)
	scalabilityPattern  = regexp.MustCompile(`(?i)SCALABILITY_SCORE:\s*(\d+)`)
	breakdownPattern    = regexp.MustCompile(`(?is)REALITY_BREAKDOWN:(.*?)(?:MOST_LIKELY_FAILURE_CAUSE:|$)`)
	improvementsPattern = regexp.MustCompile(`(?is)HOW_TO_IMPROVE_SURVIVAL_ODDS:(.*)$`)
	bulletPattern       = regexp.MustCompile(`[-•]\s*(.+)`)
	nonNumericPattern   = regexp.MustCompile(`[^\d.]`)
)

var defaultBreakdown = []domain.BreakdownItem{
	{Icon: domain.IconZap, Text: "Limited market differentiation may impact growth potential."},
	{Icon: domain.IconUsers, Text: "Competitive market landscape requires strategic positioning."},
	{Icon: domain.IconAlert, Text: "Resource constraints may affect execution velocity."},
}

var defaultImprovements = []string{
	"Validate product-market fit with early customer interviews.",
	"Build a minimum viable product (MVP) to test core assumptions.",
	"Develop a clear go-to-market strategy with measurable milestones.",
	"Consider strategic partnerships to accelerate market entry.",
}

var breakdownIcons = []string{domain.IconZap, domain.IconUsers, domain.IconAlert}

// ParseEvaluation turns the model's free-text reply into a fully populated
// result. It is total: any string, including the empty string, yields a
// valid result with per-field defaults. FailureProb is extracted
// independently of SurvivalOdds, so parsed results may be internally
// inconsistent; only the default derives one from the other.
func ParseEvaluation(text string) domain.EvaluationResult {
	survivalOdds := extractInt(survivalOddsPattern, text, defaultSurvivalOdds)
	failureProb := extractInt(failureProbPattern, text, 100-survivalOdds)

	return domain.EvaluationResult{
		SurvivalOdds: survivalOdds,
		FailureProb:  failureProb,
		RiskLevel:    RiskLevelFor(survivalOdds),
		Metrics: domain.Metrics{
			CompetitionDensity: extractValue(competitionPattern, text, defaultCompetitionDensity),
			EstimatedRunway:    extractValue(runwayPattern, text, defaultEstimatedRunway),
			Scalability:        extractInt(scalabilityPattern, text, defaultScalability),
		},
		Breakdown:    parseBreakdown(text),
		Improvements: parseImprovements(text),
	}
}

// RiskLevelFor maps survival odds to the user-facing risk label. The risk
// level is always derived here, never read from the reply text.
func RiskLevelFor(survivalOdds int) string {
	switch {
	case survivalOdds >= ModerateRiskThreshold:
		return domain.RiskModerate
	case survivalOdds >= ElevatedRiskThreshold:
		return domain.RiskElevated
	default:
		return domain.RiskHighCollapse
	}
}

func extractValue(pattern *regexp.Regexp, text, fallback string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return fallback
	}
	return strings.TrimSpace(match[1])
}

// extractInt reads the first number captured by pattern, stripping every
// character that is not a digit or a dot before parsing.
func extractInt(pattern *regexp.Regexp, text string, fallback int) int {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return fallback
	}
	cleaned := nonNumericPattern.ReplaceAllString(match[1], "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return fallback
	}
	return int(value)
}

// parseBreakdown collects bullet lines between REALITY_BREAKDOWN: and the
// next section, keeps the first 3 with icons assigned by position, and
// right-pads with the fixed defaults until length 3.
func parseBreakdown(text string) []domain.BreakdownItem {
	var breakdown []domain.BreakdownItem

	if section := breakdownPattern.FindStringSubmatch(text); section != nil {
		points := bulletPattern.FindAllStringSubmatch(section[1], -1)
		for i, point := range points {
			if i >= len(breakdownIcons) {
				break
			}
			breakdown = append(breakdown, domain.BreakdownItem{
				Icon: breakdownIcons[i],
				Text: strings.TrimSpace(point[1]),
			})
		}
	}

	for len(breakdown) < len(defaultBreakdown) {
		breakdown = append(breakdown, defaultBreakdown[len(breakdown)])
	}
	return breakdown
}

// parseImprovements collects every bullet line after
// HOW_TO_IMPROVE_SURVIVAL_ODDS: and right-pads with the fixed defaults
// until length 4. There is no upper limit.
func parseImprovements(text string) []string {
	var improvements []string

	if section := improvementsPattern.FindStringSubmatch(text); section != nil {
		for _, point := range bulletPattern.FindAllStringSubmatch(section[1], -1) {
			improvements = append(improvements, strings.TrimSpace(point[1]))
		}
	}

	for len(improvements) < len(defaultImprovements) {
		improvements = append(improvements, defaultImprovements[len(improvements)])
	}
	return improvements
}
