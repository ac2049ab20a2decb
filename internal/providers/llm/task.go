package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/yoockh/medassist/internal/metrics"
)

type taskResult struct {
	text string
	err  error
}

// runTask runs fn in its own goroutine under timeout. If the deadline passes
// first the caller gets KindTimeout right away; fn sees a canceled context and
// its late result is dropped.
func runTask(ctx context.Context, timeout time.Duration, fn func(context.Context) (string, error)) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	done := make(chan taskResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- taskResult{err: fmt.Errorf("model call panicked: %v", r)}
			}
		}()
		text, err := fn(ctx)
		done <- taskResult{text: text, err: err}
	}()

	var res taskResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = taskResult{err: ctx.Err()}
	}

	if res.err != nil {
		ue := classify(ctx, res.err)
		metrics.RecordModelCall(string(ue.Kind), time.Since(start))
		return "", ue
	}

	metrics.RecordModelCall("ok", time.Since(start))
	return res.text, nil
}
