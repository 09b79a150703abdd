package llm

import (
	"context"
	"log"
	"time"
)

// LoggingProvider is a decorator that logs every completion call with
// latency, token usage and estimated cost.
type LoggingProvider struct {
	inner Provider
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Complete(ctx, req)

	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		log.Printf("llm: purpose=%s model=%s latency=%v error=%v",
			purpose, l.inner.ModelID(), latency, err)
		return nil, err
	}

	if cost := LookupCost(resp.Model); cost != nil {
		log.Printf("llm: purpose=%s model=%s latency=%v tokens=%d/%d cost=$%.4f",
			purpose, resp.Model, latency,
			resp.Usage.InputTokens, resp.Usage.OutputTokens,
			cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	} else {
		log.Printf("llm: purpose=%s model=%s latency=%v tokens=%d/%d",
			purpose, resp.Model, latency,
			resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
