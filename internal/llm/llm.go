// Package llm is the boundary to the hosted completion API. It exposes one
// synchronous call with no retry or backoff; callers bound the request with
// the context.
package llm

import "context"

// Completer turns a composed prompt into free-form response text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
