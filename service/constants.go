package service

const (
	MinSkill       = 1
	MaxSkill       = 10
	MinWeeklyHours = 5
	MaxWeeklyHours = 100

	// Bounds on the heuristic survival score
	MinSurvivalOdds = 15
	MaxSurvivalOdds = 85
	MaxScalability  = 100

	// Risk level thresholds on survival odds
	ModerateRiskThreshold = 60
	ElevatedRiskThreshold = 40
)
