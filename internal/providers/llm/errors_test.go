package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	var syntaxErr error = &json.SyntaxError{Offset: 3}

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", context.DeadlineExceeded, KindTimeout},
		{"wrapped deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), KindTimeout},
		{"canceled", context.Canceled, KindCanceled},
		{"quota", &googleapi.Error{Code: 429, Message: "RESOURCE_EXHAUSTED"}, KindQuota},
		{"server error", &googleapi.Error{Code: 503}, KindNetwork},
		{"bad request", &googleapi.Error{Code: 400}, KindMalformed},
		{"blocked", &vertexgenai.BlockedError{}, KindMalformed},
		{"bad json", syntaxErr, KindMalformed},
		{"dial", &url.Error{Op: "Post", URL: "https://x", Err: &net.OpError{Op: "dial", Err: errors.New("refused")}}, KindNetwork},
		{"other", errors.New("boom"), KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(context.Background(), tc.err)
			assert.Equal(t, tc.want, got.Kind)
			assert.ErrorIs(t, got, tc.err)
		})
	}
}

func TestClassify_ExpiredContextWins(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	got := classify(ctx, &googleapi.Error{Code: 503})
	assert.Equal(t, KindTimeout, got.Kind)
}

func TestClassify_KeepsUpstreamError(t *testing.T) {
	orig := &UpstreamError{Kind: KindQuota, Err: errors.New("x")}
	assert.Same(t, orig, classify(context.Background(), fmt.Errorf("wrap: %w", orig)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNetwork, KindOf(fmt.Errorf("a: %w", &UpstreamError{Kind: KindNetwork})))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
