package ai

import "context"

// Generator produces free-form text from a prompt. The metadata and KGR
// requesters depend on this interface rather than on a concrete client so
// tests can substitute a stub implementation.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
