// Package antpool bounds the concurrency of a single cycle's ant
// construction: Colony.SolveParallel calls ConstructAll once per cycle
// to run every ant's construction walk with at most maxWorkers running
// at once, collecting their finished assignments back in ant-index
// order once the whole cycle has drained.
package antpool

import (
	"context"
	"runtime"
	"sync"

	"github.com/gitrdm/antco/pkg/csp"
)

// ConstructAll runs n independent ant-construction tasks, at most
// maxWorkers of them concurrently, and returns their finished
// assignments in task-index order once every one has completed. A
// non-positive maxWorkers defaults to runtime.GOMAXPROCS(0). If ctx is
// cancelled before every task has been started, ConstructAll stops
// launching new ones, waits for the in-flight ones to finish, and
// returns ctx.Err(). If any task returns an error, ConstructAll returns
// that error once every task has finished; ant construction is bounded
// and touches no shared mutable state, so letting the others run to
// completion costs nothing and keeps the accounting simple.
func ConstructAll(ctx context.Context, maxWorkers, n int, task func(antIndex int) (*csp.Assignment, error)) ([]*csp.Assignment, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	results := make([]*csp.Assignment, n)
	errs := make([]error, n)
	sem := make(chan struct{}, maxWorkers)

	var wg sync.WaitGroup
	var cancelled error
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
		default:
		}
		if cancelled != nil {
			break
		}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			cancelled = ctx.Err()
		}
		if cancelled != nil {
			break
		}

		wg.Add(1)
		go func(antIndex int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[antIndex], errs[antIndex] = task(antIndex)
		}(i)
	}
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
