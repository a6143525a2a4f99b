package domain

// Business model types accepted by the engine.
const (
	BusinessModelB2B         = "B2B"
	BusinessModelB2C         = "B2C"
	BusinessModelD2C         = "D2C"
	BusinessModelMarketplace = "Marketplace"
)

// Risk levels derived from survival odds.
const (
	RiskModerate     = "Moderate Risk"
	RiskElevated     = "Elevated Risk"
	RiskHighCollapse = "High Collapse Risk"
)

// Breakdown icons, assigned by position.
const (
	IconZap   = "zap"
	IconUsers = "users"
	IconAlert = "alert"
)

// StartupInput is one evaluation request as submitted by the form.
type StartupInput struct {
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
	Competitors           string  `json:"competitors,omitempty"`
}

// BreakdownItem is one risk-explanation entry shown in the report.
type BreakdownItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Metrics groups the secondary scores of an evaluation. EstimatedRunway is
// kept as the string the model produced and is not validated further.
type Metrics struct {
	CompetitionDensity string `json:"competitionDensity"`
	EstimatedRunway    string `json:"estimatedRunway"`
	Scalability        int    `json:"scalability"`
}

// EvaluationResult is the scored report rendered to the user. Breakdown
// always has exactly 3 items; Improvements has at least 4.
type EvaluationResult struct {
	SurvivalOdds int             `json:"survivalOdds"`
	FailureProb  int             `json:"failureProb"`
	RiskLevel    string          `json:"riskLevel"`
	Metrics      Metrics         `json:"metrics"`
	Breakdown    []BreakdownItem `json:"breakdown"`
	Improvements []string        `json:"improvements"`
}
