// Package advisor adapts hosted language models to domain.TextGenerator.
package advisor

import (
	"context"
	"fmt"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/config"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

const systemInstruction = `You are a concise personal finance advisor. Answer in plain markdown with short paragraphs or bullet points. Do not invent figures that are not in the user's data.`

// New builds the generator selected by cfg.Provider. It returns nil for the "none" provider.
func New(ctx context.Context, cfg config.AdviceConfig) (domain.TextGenerator, error) {
	switch cfg.Provider {
	case config.AdviceGemini:
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		log.Info().Str("provider", cfg.Provider).Str("model", cfg.GeminiModel).Msg("Advice provider configured")
		return g, nil
	case config.AdviceOpenAI:
		log.Info().Str("provider", cfg.Provider).Str("model", cfg.OpenAIModel).Msg("Advice provider configured")
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case config.AdviceNone, "":
		log.Warn().Msg("No advice provider configured, advice requests will return the fallback text")
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown advice provider %q", cfg.Provider)
	}
}
