package matching

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// batchConcurrency caps how many jobs are scored at once. Scoring is pure
// CPU work over compiled matchers, so a small fixed fan-out is enough.
const batchConcurrency = 8

// ScoreAll scores one resume against every job, preserving input order.
// Individual jobs degrade per-dimension as usual; the only errors are a
// nil job in the slice or context cancellation.
func (e *Engine) ScoreAll(ctx context.Context, jobs []types.JobPosting, resumeText string) ([]types.MatchResult, error) {
	results := make([]types.MatchResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.CalculateMatchScore(&jobs[i], resumeText)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
