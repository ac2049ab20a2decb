package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
	opts   Options
	sendFn func(ctx context.Context, message string) (*vertexgenai.GenerateContentResponse, error)
}

func NewVertexGemini(ctx context.Context, opts Options) (*VertexGemini, error) {
	if opts.APIKey == "" {
		return nil, errors.New("vertex gemini: API key is required")
	}
	if opts.ProjectID == "" {
		return nil, errors.New("vertex gemini: project ID is required")
	}
	opts = opts.withDefaults()

	c, err := vertexgenai.NewClient(ctx, opts.ProjectID, opts.Location,
		option.WithAPIKey(opts.APIKey),
		vertexgenai.WithREST(),
	)
	if err != nil {
		return nil, err
	}

	v := &VertexGemini{client: c, model: newModel(c, opts), opts: opts}
	v.sendFn = v.send
	return v, nil
}

func newModel(c *vertexgenai.Client, opts Options) *vertexgenai.GenerativeModel {
	m := c.GenerativeModel(opts.Model)
	m.SetTemperature(opts.Temperature)
	m.SetTopP(opts.TopP)
	m.SetTopK(opts.TopK)
	m.SetMaxOutputTokens(opts.MaxOutputTokens)
	m.ResponseMIMEType = opts.ResponseMIMEType
	m.SystemInstruction = &vertexgenai.Content{
		Parts: []vertexgenai.Part{vertexgenai.Text(opts.SystemInstruction)},
	}
	return m
}

func (v *VertexGemini) Close() error { return v.client.Close() }

// Reply opens a fresh chat for every message; earlier turns are never sent.
func (v *VertexGemini) Reply(ctx context.Context, message string) (string, error) {
	return runTask(ctx, v.opts.Timeout, func(ctx context.Context) (string, error) {
		resp, err := v.sendFn(ctx, message)
		if err != nil {
			return "", err
		}
		return replyText(resp), nil
	})
}

func (v *VertexGemini) send(ctx context.Context, message string) (*vertexgenai.GenerateContentResponse, error) {
	cs := v.model.StartChat()
	return cs.SendMessage(ctx, vertexgenai.Text(message))
}

// replyText joins the text parts of the first candidate, or FallbackReply.
func replyText(resp *vertexgenai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return FallbackReply
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return FallbackReply
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(vertexgenai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return FallbackReply
	}
	return b.String()
}
