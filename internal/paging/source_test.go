package paging_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/hedisam/txpager/internal/txrecord"
)

// fakeSource serves fixed histories the way the node search does: strictly before or after a
// block, newest first, and never splitting a block.
type fakeSource struct {
	mu      sync.Mutex
	history map[string][]txrecord.Group
	err     error
	offline bool

	beforeCalls int
	afterCalls  int
}

func newFakeSource(history map[string][]txrecord.Group) *fakeSource {
	return &fakeSource{history: history}
}

func (f *fakeSource) FetchBefore(_ context.Context, address string, block uint64, count int) ([]txrecord.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.beforeCalls++
	if f.err != nil {
		return nil, f.err
	}

	var candidates []txrecord.Group
	for _, g := range f.history[address] {
		if block == 0 || g.Block() < block {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) <= count {
		return candidates, nil
	}

	end := count
	for end < len(candidates) && candidates[end].Block() == candidates[count-1].Block() {
		end++
	}
	return candidates[:end], nil
}

func (f *fakeSource) FetchAfter(_ context.Context, address string, block uint64, count int) ([]txrecord.Group, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.afterCalls++
	if f.err != nil {
		return nil, f.err
	}

	var candidates []txrecord.Group
	for _, g := range f.history[address] {
		if g.Block() > block {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) <= count {
		return candidates, nil
	}

	start := len(candidates) - count
	for start > 0 && candidates[start-1].Block() == candidates[start].Block() {
		start--
	}
	return candidates[start:], nil
}

func (f *fakeSource) Online() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.offline
}

func (f *fakeSource) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.beforeCalls + f.afterCalls
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// history builds one group per block, newest first, for the given blocks in descending order.
func history(prefix string, blocks ...uint64) []txrecord.Group {
	out := make([]txrecord.Group, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, txrecord.Group{{
			Hash:        fmt.Sprintf("%s-%d", prefix, b),
			BlockNumber: fmt.Sprint(b),
			Timestamp:   txrecord.Known(int64(b) * 1000),
		}})
	}
	return out
}

// descending returns n, n-1, ..., 1.
func descending(n uint64) []uint64 {
	out := make([]uint64, 0, n)
	for b := n; b > 0; b-- {
		out = append(out, b)
	}
	return out
}

func hashes(groups []txrecord.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Hash())
	}
	return out
}
