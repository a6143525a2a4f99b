package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"startup-reality-engine/domain"
	"startup-reality-engine/metrics"
	"startup-reality-engine/repository"
)

// Evaluator is the remote evaluation collaborator. It either returns the
// model's free-text reply or fails; the service treats every failure the
// same way.
type Evaluator interface {
	EvaluateStartup(ctx context.Context, input domain.StartupInput) (string, error)
}

type EvaluationService struct {
	evaluator Evaluator
	cache     repository.CacheRepository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewEvaluationService creates a new EvaluationService with the given
// collaborators.
func NewEvaluationService(
	evaluator Evaluator,
	cache repository.CacheRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *EvaluationService {
	return &EvaluationService{
		evaluator: evaluator,
		cache:     cache,
		metrics:   m,
		logger:    logger,
	}
}

// Evaluate runs the full pipeline: validate, fingerprint, cache lookup,
// remote evaluation, parse, fallback. A fingerprint already present in the
// cache is returned as stored, with no remote call and no recomputation.
// For a valid input the method always produces a result: remote failures
// degrade invisibly to the heuristic scorer, and the fallback result is
// cached under the same fingerprint.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	input domain.StartupInput,
) (domain.EvaluationResult, error) {

	if err := validateInput(input); err != nil {
		return domain.EvaluationResult{}, err
	}

	start := time.Now()
	defer func() {
		s.metrics.ObserveEvaluation(time.Since(start))
	}()

	key := Fingerprint(input)

	if result, ok := s.cache.Get(key); ok {
		s.metrics.RecordCacheHit()
		s.logger.Debug("returning cached evaluation")
		return result, nil
	}
	s.metrics.RecordCacheMiss()

	text, err := s.evaluator.EvaluateStartup(ctx, input)
	if err != nil {
		s.metrics.RecordRemoteFailure()
		s.metrics.RecordFallback()
		s.logger.Warn("remote evaluation unavailable, using fallback scorer", zap.Error(err))

		result := FallbackScore(input)
		s.store(key, result)
		return result, nil
	}

	result := ParseEvaluation(text)
	s.store(key, result)
	return result, nil
}

// store caches a result. A cache write failure is not critical: the next
// identical request simply recomputes.
func (s *EvaluationService) store(key string, result domain.EvaluationResult) {
	if err := s.cache.Set(key, result); err != nil {
		s.logger.Warn("failed to cache evaluation result", zap.Error(err))
	}
}

func validateInput(input domain.StartupInput) error {
	required := []struct {
		value string
		name  string
	}{
		{input.ProblemStatement, "problem_statement"},
		{input.TargetAudience, "target_audience"},
		{input.UniqueDifferentiation, "unique_differentiation"},
		{input.RevenueModel, "revenue_model"},
		{input.Country, "country"},
		{input.Industry, "industry"},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s is required", field.name)
		}
	}

	switch input.BusinessModelType {
	case domain.BusinessModelB2B, domain.BusinessModelB2C,
		domain.BusinessModelD2C, domain.BusinessModelMarketplace:
	default:
		return fmt.Errorf("unknown business model type %q", input.BusinessModelType)
	}

	if input.StartingBudget < 0 {
		return errors.New("starting budget cannot be negative")
	}
	if input.MonthlyExpenses < 0 {
		return errors.New("monthly expenses cannot be negative")
	}
	if input.TeamSize < 1 {
		return errors.New("team size must be at least 1")
	}

	skills := []struct {
		value int
		name  string
	}{
		{input.TechSkill, "tech_skill"},
		{input.MarketingSkill, "marketing_skill"},
		{input.BusinessSkill, "business_skill"},
	}
	for _, skill := range skills {
		if skill.value < MinSkill || skill.value > MaxSkill {
			return fmt.Errorf("%s must be between %d and %d", skill.name, MinSkill, MaxSkill)
		}
	}

	if input.WeeklyHours < MinWeeklyHours || input.WeeklyHours > MaxWeeklyHours {
		return fmt.Errorf("weekly hours must be between %d and %d", MinWeeklyHours, MaxWeeklyHours)
	}

	return nil
}
