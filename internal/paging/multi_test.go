package paging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/paging"
	"github.com/hedisam/txpager/internal/paging/mocks"
	"github.com/hedisam/txpager/internal/txrecord"
)

//go:generate moq -out mocks/internal_tx_cache.go -pkg mocks -skip-ensure . InternalTxCache

const (
	addrA = "0xa"
	addrB = "0xb"
)

// merged returns the hashes of the interleaved even/odd block histories.
func merged(blocks ...uint64) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		prefix := addrA
		if b%2 == 1 {
			prefix = addrB
		}
		out = append(out, hashes(history(prefix, b))...)
	}
	return out
}

func interleaved() map[string][]txrecord.Group {
	return map[string][]txrecord.Group{
		addrA: history(addrA, 10, 8, 6, 4, 2),
		addrB: history(addrB, 9, 7, 5, 3, 1),
	}
}

func TestMultiPaginatorNavigation(t *testing.T) {
	tests := map[string]struct {
		history  map[string][]txrecord.Group
		pageSize int
		steps    []step
	}{
		"forward to the end and back": {
			history:  interleaved(),
			pageSize: 3,
			steps: []step{
				{first, merged(10, 9, 8), paging.Status{Page: 1, FirstPage: true}},
				{next, merged(7, 6, 5), paging.Status{Page: 2}},
				{next, merged(4, 3, 2), paging.Status{Page: 3}},
				{next, merged(1), paging.Status{Page: 4, LastPage: true}},
				{prev, merged(4, 3, 2), paging.Status{Page: 3}},
				{prev, merged(7, 6, 5), paging.Status{Page: 2}},
				{prev, merged(10, 9, 8), paging.Status{Page: 1, FirstPage: true}},
			},
		},
		"last page": {
			history:  interleaved(),
			pageSize: 3,
			steps: []step{
				{last, merged(3, 2, 1), paging.Status{Page: -1, LastPage: true}},
				{prev, merged(6, 5, 4), paging.Status{Page: -2}},
				{next, merged(3, 2, 1), paging.Status{Page: -1, LastPage: true}},
			},
		},
		"one address exhausted early": {
			history: map[string][]txrecord.Group{
				addrA: history(addrA, 10),
				addrB: history(addrB, 9, 7, 5, 3),
			},
			pageSize: 2,
			steps: []step{
				{first, merged(10, 9), paging.Status{Page: 1, FirstPage: true}},
				{next, merged(7, 5), paging.Status{Page: 2}},
				{next, merged(3), paging.Status{Page: 3, LastPage: true}},
			},
		},
		"everything fits one page": {
			history: map[string][]txrecord.Group{
				addrA: history(addrA, 4),
				addrB: history(addrB, 3),
			},
			pageSize: 2,
			steps: []step{
				{first, merged(4, 3), paging.Status{Page: 1, FirstPage: true, LastPage: true}},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource(test.history)
			p, err := paging.NewMulti(logrus.New(), src, []string{addrB, addrA}, test.pageSize)
			require.NoError(t, err)
			assert.Equal(t, []string{addrA, addrB}, p.Addresses())

			for i, s := range test.steps {
				page, err := run(context.Background(), p, s.action)
				require.NoError(t, err, "step %d", i)
				assert.Equal(t, s.expected, hashes(page), "step %d (%s)", i, s.action)
				assert.Equal(t, s.status, p.Status(), "step %d (%s)", i, s.action)
			}
		})
	}
}

func TestMultiPaginatorDedupesSharedTransactions(t *testing.T) {
	shared := history("shared", 5)
	src := newFakeSource(map[string][]txrecord.Group{
		addrA: append(history(addrA, 6), shared...),
		addrB: append(shared, history(addrB, 4)...),
	})
	p, err := paging.NewMulti(logrus.New(), src, []string{addrA, addrB}, 5)
	require.NoError(t, err)

	page, err := p.ShowFirstPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xa-6", "shared-5", "0xb-4"}, hashes(page))
	assert.Equal(t, paging.Status{Page: 1, FirstPage: true, LastPage: true}, p.Status())
}

func TestMultiPaginatorFailureKeepsState(t *testing.T) {
	src := newFakeSource(interleaved())
	p, err := paging.NewMulti(logrus.New(), src, []string{addrA, addrB}, 3)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.ShowFirstPage(ctx)
	require.NoError(t, err)
	_, err = p.ShowNextPage(ctx)
	require.NoError(t, err)

	src.setErr(errors.New("rate limited"))
	_, err = p.ShowNextPage(ctx)
	require.ErrorContains(t, err, "rate limited")
	_, err = p.ShowPrevPage(ctx)
	require.ErrorContains(t, err, "rate limited")
	assert.Equal(t, merged(7, 6, 5), hashes(p.Current()))
	assert.Equal(t, paging.Status{Page: 2}, p.Status())

	src.setErr(nil)
	page, err := p.ShowNextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged(4, 3, 2), hashes(page))
}

func TestMultiPaginatorWritesFirstPagesThrough(t *testing.T) {
	tests := map[string]struct {
		cacheErr error
	}{
		"cached": {},
		"cache failure does not fail the page": {
			cacheErr: errors.New("disk full"),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cacheMock := &mocks.InternalTxCacheMock{
				AddInternalTransactionsFunc: func(address string, groups []txrecord.Group) error {
					return test.cacheErr
				},
			}
			src := newFakeSource(interleaved())
			p, err := paging.NewMulti(logrus.New(), src, []string{addrA, addrB}, 3, paging.WithInternalTxCache(cacheMock))
			require.NoError(t, err)

			_, err = p.ShowFirstPage(context.Background())
			require.NoError(t, err)

			calls := cacheMock.AddInternalTransactionsCalls()
			require.Len(t, calls, 2)
			byAddr := make(map[string][]string, len(calls))
			for _, c := range calls {
				byAddr[c.Address] = hashes(c.Groups)
			}
			assert.Equal(t, map[string][]string{
				addrA: hashes(history(addrA, 10, 8, 6)),
				addrB: hashes(history(addrB, 9, 7, 5)),
			}, byAddr)

			// later navigation does not write again
			_, err = p.ShowNextPage(context.Background())
			require.NoError(t, err)
			assert.Len(t, cacheMock.AddInternalTransactionsCalls(), 2)
		})
	}
}

func TestMultiPaginatorFirstPageFromCache(t *testing.T) {
	src := newFakeSource(interleaved())
	p, err := paging.NewMulti(logrus.New(), src, []string{addrA, addrB}, 3)
	require.NoError(t, err)

	cached := txrecord.Merge(history(addrA, 10, 8, 6), history(addrB, 9, 7, 5))
	page, err := p.ShowFirstPageWith(context.Background(), cached)
	require.NoError(t, err)
	assert.Equal(t, merged(10, 9, 8), hashes(page))
	// page 1 is always the first page, so only the last page check may reach the source
	assert.Equal(t, 0, src.afterCalls)
}
