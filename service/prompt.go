package service

import (
	"fmt"
	"strconv"

	"startup-reality-engine/domain"
)

// EvaluationSystemPrompt instructs the model to emit the labeled sections
// the parser extracts. The labels here and the patterns in parser.go are a
// coupled protocol: changing one side requires changing the other.
const EvaluationSystemPrompt = `
You are a Startup Evaluation Engine called "Startup Reality Engine".

Your task is to simulate the survival probability of a startup idea using structured reasoning.

Be analytical, data-driven, and brutally honest but professional.

Do NOT give generic motivational advice.
Do NOT sugarcoat.
Do NOT exaggerate randomly.
Base your evaluation on business logic and startup fundamentals.

---------------------------------------------------
EVALUATION INSTRUCTIONS
---------------------------------------------------

Step 1: Evaluate IDEA CLARITY
- Is the problem real and specific?
- Is the audience defined clearly?
- Is differentiation meaningful?

Step 2: Evaluate MARKET RISK
- Is the industry saturated?
- Is it a red ocean or emerging space?
- Is competition likely high?

Step 3: Evaluate FOUNDER RISK
- Skill imbalance?
- Low marketing ability?
- Low time commitment?
- First-time founder disadvantage?

Step 4: Evaluate FINANCIAL RISK
- Is starting budget realistic?
- Burn runway estimation (months = budget / monthly_expenses)
- Is runway below 6 months? High risk.

Step 5: Evaluate SCALABILITY
- Is business model scalable?
- High operational complexity?
- Dependency on paid ads?

---------------------------------------------------
SCORING SYSTEM
---------------------------------------------------

Calculate:

1. FAILURE_PROBABILITY (0-100%)
2. COMPETITION_DENSITY (Low / Medium / High)
3. ESTIMATED_RUNWAY (in months)
4. SCALABILITY_SCORE (0-100)
5. 2_YEAR_SURVIVAL_ODDS (0-100%)

Be realistic.
If risk is high, say so clearly.

---------------------------------------------------
OUTPUT FORMAT (STRICTLY FOLLOW THIS FORMAT)
---------------------------------------------------

SURVIVAL_ODDS: XX%
FAILURE_PROBABILITY: XX%
COMPETITION_DENSITY: Low / Medium / High
ESTIMATED_RUNWAY: X.X months
SCALABILITY_SCORE: XX/100

REALITY_BREAKDOWN:
- Bullet point explanation of the biggest weaknesses.
- Bullet point explanation of market threats.
- Bullet point explanation of founder-related risks.

MOST_LIKELY_FAILURE_CAUSE:
One clear paragraph explaining the primary reason this startup would fail.

HOW_TO_IMPROVE_SURVIVAL_ODDS:
Provide 4-6 actionable, specific improvements.
No generic advice.
Be strategic.

TONE:
Professional. Analytical. Honest.
End evaluation cleanly.
`

// BuildEvaluationPrompt renders the user input block sent alongside the
// system prompt. Fields go out raw; normalization only applies to cache
// fingerprinting.
func BuildEvaluationPrompt(input domain.StartupInput) string {
	firstStartup := "No"
	if input.FirstStartup {
		firstStartup = "Yes"
	}

	competitors := input.Competitors
	if competitors == "" {
		competitors = "None mentioned"
	}

	return fmt.Sprintf(`---------------------------------------------------
USER INPUT DATA
---------------------------------------------------

STARTUP IDEA:
%s

TARGET AUDIENCE:
%s

UNIQUE DIFFERENTIATION:
%s

BUSINESS MODEL:
%s

REVENUE MODEL:
%s

STARTING BUDGET:
%s

MONTHLY EXPENSES:
%s

TEAM SIZE:
%d

FOUNDER TECH SKILL (1-10):
%d

FOUNDER MARKETING SKILL (1-10):
%d

FOUNDER BUSINESS KNOWLEDGE (1-10):
%d

WEEKLY TIME COMMITMENT (hours):
%d

FIRST STARTUP?:
%s

COUNTRY:
%s

INDUSTRY:
%s

KNOWN COMPETITORS:
%s
`,
		input.ProblemStatement,
		input.TargetAudience,
		input.UniqueDifferentiation,
		input.BusinessModelType,
		input.RevenueModel,
		strconv.FormatFloat(input.StartingBudget, 'f', -1, 64),
		strconv.FormatFloat(input.MonthlyExpenses, 'f', -1, 64),
		input.TeamSize,
		input.TechSkill,
		input.MarketingSkill,
		input.BusinessSkill,
		input.WeeklyHours,
		firstStartup,
		input.Country,
		input.Industry,
		competitors,
	)
}
