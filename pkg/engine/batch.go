package engine

import (
	"context"
	"time"

	"github.com/lintang-b-s/congestion-router/pkg/concurrent"
	"github.com/lintang-b-s/congestion-router/pkg/util"
)

// Query is one route request of a batch.
type Query struct {
	Start     string
	End       string
	Departure time.Time
}

type indexedQuery struct {
	idx int
	q   Query
}

type indexedResult struct {
	idx int
	res RouteResult
}

// ComputeRoutes answers queries on `workers` goroutines and returns results in query order. queries not
// started before ctx is done fail with the context error.
func (e *Engine) ComputeRoutes(ctx context.Context, queries []Query, workers int) []RouteResult {
	results := make([]RouteResult, len(queries))
	if len(queries) == 0 {
		return results
	}

	if workers < 1 {
		workers = 1
	}
	workers = util.MinInt(workers, len(queries))
	wp := concurrent.NewWorkerPool[indexedQuery, indexedResult](workers, len(queries))
	wp.Start(func(job indexedQuery) indexedResult {
		if util.StopConcurrentOperation(ctx) {
			err := ctx.Err()
			return indexedResult{idx: job.idx, res: failed(util.WrapErrorf(err, util.ErrInternalServerError,
				"route %q -> %q was not computed: %v", job.q.Start, job.q.End, err))}
		}
		return indexedResult{idx: job.idx, res: e.ComputeRouteAt(job.q.Start, job.q.End, job.q.Departure)}
	})

	queued := make([]bool, len(queries))
	for i, q := range queries {
		if !wp.AddJobContext(ctx, indexedQuery{idx: i, q: q}) {
			break
		}
		queued[i] = true
	}
	wp.Close()
	wp.Wait()

	for r := range wp.CollectResults() {
		results[r.idx] = r.res
	}
	for i, ok := range queued {
		if ok {
			continue
		}
		err := ctx.Err()
		results[i] = failed(util.WrapErrorf(err, util.ErrInternalServerError,
			"route %q -> %q was not computed: %v", queries[i].Start, queries[i].End, err))
	}
	return results
}
