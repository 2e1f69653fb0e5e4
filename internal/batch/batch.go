// Package batch fans report generation out across a cohort. The engine is
// a pure function of its inputs, so students can be processed in parallel
// with no synchronization beyond collecting results.
package batch

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/abelsk/learnpulse/internal/analytics"
)

// DefaultConcurrency bounds the fan-out when the caller does not.
const DefaultConcurrency = 8

// Outcome collects the cohort run. Reports and NotFound are sorted by
// student id, so a batch run over the same data is reproducible.
type Outcome struct {
	Reports  []*analytics.StudentReport
	NotFound []string
}

// Run generates a report for every id in userIDs, at most concurrency at a
// time. Students without performance or curve rows land in NotFound rather
// than failing the run. The only error source is context cancellation.
func Run(ctx context.Context, userIDs []string, in analytics.Inputs, concurrency int) (*Outcome, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var (
		mu  sync.Mutex
		out Outcome
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, userID := range userIDs {
		userID := userID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep := analytics.GenerateStudentReport(userID, in)

			mu.Lock()
			defer mu.Unlock()
			if rep == nil {
				out.NotFound = append(out.NotFound, userID)
			} else {
				out.Reports = append(out.Reports, rep)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out.Reports, func(i, j int) bool {
		return out.Reports[i].UserID < out.Reports[j].UserID
	})
	sort.Strings(out.NotFound)
	return &out, nil
}

// UserIDs lists every student that has a performance row, the population a
// cohort run covers.
func UserIDs(rows []analytics.PerformanceRow) []string {
	seen := make(map[string]bool, len(rows))
	var ids []string
	for _, r := range rows {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ids = append(ids, r.UserID)
		}
	}
	sort.Strings(ids)
	return ids
}
