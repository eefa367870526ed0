package domain

import (
	"context"
)

// CompletionClient defines the interface (port) to the external text
// completion service. Complete returns the raw model reply, or an error for
// transport failures, timeouts, and malformed reply envelopes alike.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
