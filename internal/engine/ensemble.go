package engine

import (
	"context"
	"sync"
)

// Ensemble fans out several Engines concurrently, one per Z-level,
// sharing the same atmos.Bag they were each constructed with. Run
// mirrors Simulator's Ensemble.Run: one goroutine per member, errors
// collected and the first non-nil one returned.
type Ensemble struct {
	members []*Engine
}

// NewEnsemble wraps a set of already-constructed Engines. Callers
// typically build one Engine per Z-level against a shared *atmos.Bag.
func NewEnsemble(members ...*Engine) *Ensemble {
	return &Ensemble{members: members}
}

// Run advances every member n ticks in parallel and returns one Result
// per member, in member order.
func (e *Ensemble) Run(ctx context.Context, n int) ([]*Result, error) {
	results := make([]*Result, len(e.members))
	errs := make([]error, len(e.members))

	var wg sync.WaitGroup
	for i, member := range e.members {
		wg.Add(1)
		go func(idx int, m *Engine) {
			defer wg.Done()
			results[idx], errs[idx] = m.Run(ctx, n)
		}(i, member)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
