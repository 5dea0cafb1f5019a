package summary

import (
	"context"
	"log"
	"time"

	"kex/internal/domain/analysis"
	"kex/internal/service/nlp"
)

// Fallback wraps a remote Provider with a per-call timeout and falls back
// to the local heuristic on any failure: timeout, auth error, malformed or
// empty response. Callers never see the failure; the degraded result is
// flagged instead. The remote call is attempted once, without retries.
type Fallback struct {
	provider Provider
	source   string
	local    *Local
	timeout  time.Duration
}

// NewFallback wraps provider with the local strategy as its fallback path.
// source names the provider in the assembled result.
func NewFallback(provider Provider, source string, local *Local, timeout time.Duration) *Fallback {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Fallback{
		provider: provider,
		source:   source,
		local:    local,
		timeout:  timeout,
	}
}

// Summarize delegates to the remote provider, degrading to the local
// strategy on failure
func (f *Fallback) Summarize(ctx context.Context, text string) analysis.Summary {
	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	remote, err := f.provider.Summarize(callCtx, text)
	if err != nil {
		log.Printf("Remote summarization failed, falling back to local: %v", err)
		degraded := f.local.Summarize(ctx, text)
		degraded.Degraded = true
		return degraded
	}

	return analysis.Summary{
		Text:   nlp.Normalize(remote),
		Source: f.source,
	}
}
