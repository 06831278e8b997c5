package embedding

import "context"

// Dimensions every provider must produce; the content tables store
// vector(1536) columns and pgvector rejects anything else.
const Dimensions = 1536

// Provider generates a fixed-length embedding for a piece of text.
// Implementations return an error on any transport or provider failure;
// callers are expected to degrade to lexical search, never to fail the
// request.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
