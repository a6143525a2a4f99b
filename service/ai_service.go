package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"startup-reality-engine/domain"
)

const (
	DefaultGeminiModel    = "gemini-2.0-flash"
	evaluationTemperature = 0.4
)

// AIService issues the remote evaluation call against the Gemini API. When
// no API key is configured the service stays disabled and every call fails,
// which pushes the orchestrator onto the fallback scorer.
type AIService struct {
	client  *genai.Client
	model   string
	enabled bool
	logger  *zap.Logger
}

func NewAIService(ctx context.Context, apiKey, model string, logger *zap.Logger) (*AIService, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	if apiKey == "" {
		logger.Warn("no Gemini API key configured, remote evaluation disabled")
		return &AIService{model: model, logger: logger}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &AIService{
		client:  client,
		model:   model,
		enabled: true,
		logger:  logger,
	}, nil
}

// EvaluateStartup sends the raw input to the model and returns its free-text
// evaluation. Transport errors, bad statuses and empty replies all collapse
// into a single opaque failure; the caller does not distinguish them.
func (s *AIService) EvaluateStartup(ctx context.Context, input domain.StartupInput) (string, error) {
	if !s.enabled {
		return "", fmt.Errorf("remote evaluation is disabled")
	}

	contents := []*genai.Content{
		genai.NewContentFromText(BuildEvaluationPrompt(input), genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(EvaluationSystemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr[float32](evaluationTemperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini evaluation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no response from model")
	}

	return text, nil
}
