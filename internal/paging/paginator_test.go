package paging_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/paging"
	"github.com/hedisam/txpager/internal/txrecord"
)

const addr = "0xaaaa"

type action string

const (
	first action = "first"
	last  action = "last"
	next  action = "next"
	prev  action = "prev"
)

type navigator interface {
	ShowFirstPage(ctx context.Context) ([]txrecord.Group, error)
	ShowLastPage(ctx context.Context) ([]txrecord.Group, error)
	ShowNextPage(ctx context.Context) ([]txrecord.Group, error)
	ShowPrevPage(ctx context.Context) ([]txrecord.Group, error)
	Status() paging.Status
}

func run(ctx context.Context, n navigator, a action) ([]txrecord.Group, error) {
	switch a {
	case first:
		return n.ShowFirstPage(ctx)
	case last:
		return n.ShowLastPage(ctx)
	case next:
		return n.ShowNextPage(ctx)
	case prev:
		return n.ShowPrevPage(ctx)
	}
	return nil, fmt.Errorf("unknown action %q", a)
}

type step struct {
	action   action
	expected []string
	status   paging.Status
}

func TestPaginatorNavigation(t *testing.T) {
	tests := map[string]struct {
		history  []txrecord.Group
		pageSize int
		steps    []step
	}{
		"forward and back to the first page": {
			history:  history("tx", descending(12)...),
			pageSize: 5,
			steps: []step{
				{first, hashes(history("tx", 12, 11, 10, 9, 8)), paging.Status{Page: 1, FirstPage: true}},
				{next, hashes(history("tx", 7, 6, 5, 4, 3)), paging.Status{Page: 2}},
				{next, hashes(history("tx", 2, 1)), paging.Status{Page: 3, LastPage: true}},
				{prev, hashes(history("tx", 7, 6, 5, 4, 3)), paging.Status{Page: 2}},
				{prev, hashes(history("tx", 12, 11, 10, 9, 8)), paging.Status{Page: 1, FirstPage: true}},
			},
		},
		"exactly one page": {
			history:  history("tx", descending(5)...),
			pageSize: 5,
			steps: []step{
				{first, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: 1, FirstPage: true, LastPage: true}},
				{next, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: 1, FirstPage: true, LastPage: true}},
				{prev, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: 1, FirstPage: true, LastPage: true}},
			},
		},
		"empty history": {
			pageSize: 5,
			steps: []step{
				{first, []string{}, paging.Status{Page: 1, FirstPage: true, LastPage: true}},
				{last, []string{}, paging.Status{Page: -1, FirstPage: true, LastPage: true}},
			},
		},
		"from the last page backwards": {
			history:  history("tx", descending(12)...),
			pageSize: 5,
			steps: []step{
				{last, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: -1, LastPage: true}},
				{next, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: -1, LastPage: true}},
				{prev, hashes(history("tx", 10, 9, 8, 7, 6)), paging.Status{Page: -2}},
				{prev, hashes(history("tx", 12, 11)), paging.Status{Page: -3, FirstPage: true}},
				{next, hashes(history("tx", 10, 9, 8, 7, 6)), paging.Status{Page: -2}},
				{next, hashes(history("tx", 5, 4, 3, 2, 1)), paging.Status{Page: -1, LastPage: true}},
			},
		},
		"last page shorter than page size": {
			history:  history("tx", descending(3)...),
			pageSize: 5,
			steps: []step{
				{last, hashes(history("tx", 3, 2, 1)), paging.Status{Page: -1, FirstPage: true, LastPage: true}},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource(map[string][]txrecord.Group{addr: test.history})
			p, err := paging.New(logrus.New(), src, addr, test.pageSize)
			require.NoError(t, err)

			for i, s := range test.steps {
				page, err := run(context.Background(), p, s.action)
				require.NoError(t, err, "step %d", i)
				assert.Equal(t, s.expected, hashes(page), "step %d (%s)", i, s.action)
				assert.Equal(t, s.status, p.Status(), "step %d (%s)", i, s.action)
			}
		})
	}
}

func TestPaginatorSharedBlocks(t *testing.T) {
	// six blocks holding two groups each
	var hist []txrecord.Group
	for b := uint64(6); b > 0; b-- {
		for j := range 2 {
			hist = append(hist, txrecord.Group{{
				Hash:        fmt.Sprintf("tx-%d-%d", b, j),
				BlockNumber: fmt.Sprint(b),
				Timestamp:   txrecord.Known(int64(b)*10 - int64(j)),
			}})
		}
	}

	src := newFakeSource(map[string][]txrecord.Group{addr: hist})
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)
	ctx := context.Background()

	firstPage, err := p.ShowFirstPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx-6-0", "tx-6-1", "tx-5-0", "tx-5-1", "tx-4-0"}, hashes(firstPage))

	seen := hashes(firstPage)
	for !p.Status().LastPage {
		page, err := p.ShowNextPage(ctx)
		require.NoError(t, err)
		seen = append(seen, hashes(page)...)
	}
	assert.Equal(t, hashes(hist), seen)

	for !p.Status().FirstPage {
		_, err := p.ShowPrevPage(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, hashes(firstPage), hashes(p.Current()))
	assert.Equal(t, 1, p.Status().Page)
}

func TestPaginatorReminderAvoidsFetch(t *testing.T) {
	src := newFakeSource(nil)
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.ShowFirstPageWith(ctx, history("tx", descending(12)...))
	require.NoError(t, err)
	assert.False(t, p.Status().LastPage)

	page, err := p.ShowNextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, hashes(history("tx", 7, 6, 5, 4, 3)), hashes(page))
	assert.Equal(t, paging.Status{Page: 2}, p.Status())
	assert.Zero(t, src.calls())
}

func TestPaginatorFullReminderServesWithoutFetch(t *testing.T) {
	src := newFakeSource(nil)
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.ShowFirstPageWith(ctx, history("tx", descending(10)...))
	require.NoError(t, err)

	// the reminder holds exactly one page
	page, err := p.ShowNextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, hashes(history("tx", 5, 4, 3, 2, 1)), hashes(page))
	assert.Equal(t, paging.Status{Page: 2}, p.Status())
	assert.Zero(t, src.calls())

	// the next action finds nothing older and keeps the page
	page, err = p.ShowNextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, hashes(history("tx", 5, 4, 3, 2, 1)), hashes(page))
	assert.Equal(t, paging.Status{Page: 2, LastPage: true}, p.Status())
	assert.Equal(t, 1, src.beforeCalls)
}

func TestPaginatorFailureKeepsState(t *testing.T) {
	src := newFakeSource(map[string][]txrecord.Group{addr: history("tx", descending(12)...)})
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)
	ctx := context.Background()

	firstPage, err := p.ShowFirstPage(ctx)
	require.NoError(t, err)

	src.setErr(errors.New("node unreachable"))
	for _, a := range []action{next, first, last} {
		_, err = run(ctx, p, a)
		require.ErrorContains(t, err, "node unreachable", "action %s", a)
		assert.Equal(t, hashes(firstPage), hashes(p.Current()))
		assert.Equal(t, paging.Status{Page: 1, FirstPage: true}, p.Status())
	}

	src.setErr(nil)
	page, err := p.ShowNextPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, hashes(history("tx", 7, 6, 5, 4, 3)), hashes(page))
	assert.Equal(t, paging.Status{Page: 2}, p.Status())
}

func TestPaginatorOfflineIsBoundary(t *testing.T) {
	src := newFakeSource(map[string][]txrecord.Group{addr: history("tx", descending(12)...)})
	src.offline = true
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)

	_, err = p.ShowFirstPage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, paging.Status{Page: 1, FirstPage: true, LastPage: true}, p.Status())
	// only the page fetch, no boundary check
	assert.Equal(t, 1, src.calls())
}

func TestPaginatorBoundaryCheckOnlyWhenBuffersAreEmpty(t *testing.T) {
	src := newFakeSource(map[string][]txrecord.Group{addr: history("tx", descending(12)...)})
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = p.ShowFirstPage(ctx)
	require.NoError(t, err)
	// page fetch plus one boundary check
	assert.Equal(t, 2, src.beforeCalls)
	assert.Equal(t, 0, src.afterCalls)
	assert.Equal(t, 2, src.calls())
}

func TestPaginatorNotLoaded(t *testing.T) {
	p, err := paging.New(logrus.New(), newFakeSource(nil), addr, 5)
	require.NoError(t, err)

	_, err = p.ShowNextPage(context.Background())
	require.ErrorIs(t, err, paging.ErrNotLoaded)
	_, err = p.ShowPrevPage(context.Background())
	require.ErrorIs(t, err, paging.ErrNotLoaded)
}

func TestPaginatorClear(t *testing.T) {
	src := newFakeSource(map[string][]txrecord.Group{addr: history("tx", descending(12)...)})
	p, err := paging.New(logrus.New(), src, addr, 5)
	require.NoError(t, err)

	_, err = p.ShowLastPage(context.Background())
	require.NoError(t, err)
	p.Clear()
	assert.Empty(t, p.Current())
	assert.Equal(t, paging.Status{Page: 1}, p.Status())
}

func TestNewValidation(t *testing.T) {
	tests := map[string]struct {
		addresses   []string
		pageSize    int
		expectedErr error
	}{
		"zero page size": {
			addresses:   []string{addr},
			pageSize:    0,
			expectedErr: paging.ErrInvalidPageSize,
		},
		"negative page size": {
			addresses:   []string{addr},
			pageSize:    -1,
			expectedErr: paging.ErrInvalidPageSize,
		},
		"empty address": {
			addresses:   []string{""},
			pageSize:    5,
			expectedErr: paging.ErrNoAddresses,
		},
		"valid": {
			addresses: []string{addr},
			pageSize:  5,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := paging.New(logrus.New(), newFakeSource(nil), test.addresses[0], test.pageSize)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, paging.Status{Page: 1}, p.Status())
			assert.Empty(t, p.Current())
		})
	}
}

func TestNewMultiValidation(t *testing.T) {
	tests := map[string]struct {
		addresses         []string
		pageSize          int
		expectedErr       error
		expectedAddresses []string
	}{
		"zero page size": {
			addresses:   []string{addrA, addrB},
			pageSize:    0,
			expectedErr: paging.ErrInvalidPageSize,
		},
		"only empty addresses": {
			addresses:   []string{"", ""},
			pageSize:    5,
			expectedErr: paging.ErrNoAddresses,
		},
		"no addresses": {
			pageSize:    5,
			expectedErr: paging.ErrNoAddresses,
		},
		"duplicates and empties are dropped": {
			addresses:         []string{addrB, "", addrA, addrB},
			pageSize:          5,
			expectedAddresses: []string{addrA, addrB},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := paging.NewMulti(logrus.New(), newFakeSource(nil), test.addresses, test.pageSize)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedAddresses, p.Addresses())
			assert.Equal(t, paging.Status{Page: 1}, p.Status())
		})
	}
}
