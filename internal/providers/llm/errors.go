package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/googleapi"
)

type Kind string

const (
	KindTimeout   Kind = "timeout"
	KindCanceled  Kind = "canceled"
	KindQuota     Kind = "quota"
	KindNetwork   Kind = "network"
	KindMalformed Kind = "malformed"
	KindUnknown   Kind = "unknown"
)

// UpstreamError is any failure of a model call.
type UpstreamError struct {
	Kind Kind
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Kind, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// KindOf returns "" when err is not an UpstreamError.
func KindOf(err error) Kind {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}

func classify(ctx context.Context, err error) *UpstreamError {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue
	}

	// the call's own deadline beats whatever the transport reported
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &UpstreamError{Kind: KindTimeout, Err: err}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &UpstreamError{Kind: KindTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return &UpstreamError{Kind: KindCanceled, Err: err}
	}

	var blocked *vertexgenai.BlockedError
	if errors.As(err, &blocked) {
		return &UpstreamError{Kind: KindMalformed, Err: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusTooManyRequests:
			return &UpstreamError{Kind: KindQuota, Err: err}
		case gerr.Code >= 500:
			return &UpstreamError{Kind: KindNetwork, Err: err}
		default:
			return &UpstreamError{Kind: KindMalformed, Err: err}
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &UpstreamError{Kind: KindMalformed, Err: err}
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		if nerr.Timeout() {
			return &UpstreamError{Kind: KindTimeout, Err: err}
		}
		return &UpstreamError{Kind: KindNetwork, Err: err}
	}

	return &UpstreamError{Kind: KindUnknown, Err: err}
}
