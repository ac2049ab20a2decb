package llm

import (
	"context"
	"time"
)

// FallbackReply is returned when the model answers with no text.
const FallbackReply = "I'm sorry, I couldn't generate a response at this time."

type Provider interface {
	// Reply sends a single-turn message and waits for the full answer.
	// Failures are returned as *UpstreamError.
	Reply(ctx context.Context, message string) (string, error)
	Close() error
}

// Options are bound once at startup.
type Options struct {
	ProjectID string
	Location  string
	APIKey    string

	Model             string
	Temperature       float32
	TopP              float32
	TopK              int32
	MaxOutputTokens   int32
	ResponseMIMEType  string
	SystemInstruction string

	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = "gemini-1.5-pro"
	}
	if o.ResponseMIMEType == "" {
		o.ResponseMIMEType = "text/plain"
	}
	if o.SystemInstruction == "" {
		o.SystemInstruction = SystemInstruction
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}
