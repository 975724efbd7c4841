package domain

import (
	"context"
	"time"
)

// AdviceFallback is returned to the user whenever advice cannot be generated
const AdviceFallback = "I'm having trouble analyzing your finances right now. Please try again later."

// RecentTransactionsInPrompt is how many of the latest transactions the
// advice prompt embeds
const RecentTransactionsInPrompt = 5

// TextGenerator produces text from a natural-language prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advice is the outcome of an advice request
type Advice struct {
	Text        string    `json:"text"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generatedAt"`
}
