package repository

import "startup-reality-engine/domain"

// CacheRepository stores evaluation results keyed by input fingerprint.
// Entries are written once and never mutated afterwards.
type CacheRepository interface {
	Get(key string) (domain.EvaluationResult, bool)
	Set(key string, result domain.EvaluationResult) error
}
