package ai

import "context"

// AIService answers free-text customer questions. It is stateless and knows
// nothing about the calendar or the catalog.
type AIService interface {
	Ask(ctx context.Context, message string) (string, error)
}
