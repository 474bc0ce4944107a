package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadspring/attribution-go/internal/models"
	"github.com/leadspring/attribution-go/internal/obs"
)

// fetch is the resilient core shared by every upstream query: each
// attempt runs under its own timeout, failed attempts are retried after
// a fixed delay, and exhaustion degrades to an empty slice instead of
// an error. A decode into a fresh slice per attempt means a partial
// decode from a failed attempt can never leak into the result.
func fetch[T any](ctx context.Context, c *Client, cmd string, f models.Filters) []T {
	var lastErr error
	for attempt := 0; attempt <= c.opts.Retries; attempt++ {
		if attempt > 0 {
			obs.CountFetchRetry(c.name, cmd)
			select {
			case <-ctx.Done():
			case <-time.After(c.opts.RetryDelay):
			}
			if ctx.Err() != nil {
				lastErr = ctx.Err()
				break
			}
		}
		callCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
		var out []T
		err := c.call(callCtx, cmd, f, &out)
		cancel()
		if err == nil {
			if out == nil {
				out = []T{}
			}
			return out
		}
		lastErr = err
	}
	c.log.Warn("upstream fetch failed, degrading to empty result",
		slog.String("upstream", c.name),
		slog.String("cmd", cmd),
		slog.String("err", lastErr.Error()))
	obs.CountFetchFailure(c.name, cmd)
	return []T{}
}

func (c *Client) FindLeads(ctx context.Context, f models.Filters) []models.Lead {
	return fetch[models.Lead](ctx, c, CmdFindLeads, f)
}

func (c *Client) FindDeals(ctx context.Context, f models.Filters) []models.Deal {
	return fetch[models.Deal](ctx, c, CmdFindDeals, f)
}

func (c *Client) FindCosts(ctx context.Context, f models.Filters) []models.Cost {
	return fetch[models.Cost](ctx, c, CmdFindCosts, f)
}
