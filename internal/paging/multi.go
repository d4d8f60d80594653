package paging

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hedisam/txpager/internal/txrecord"
)

// InternalTxCache receives the first page of every address loaded by a MultiPaginator.
type InternalTxCache interface {
	AddInternalTransactions(address string, groups []txrecord.Group) error
}

// MultiPaginator pages through the merged history of several addresses.
// Fetches are issued per address in parallel and the results are deduplicated and sorted by
// timestamp. It is not safe for concurrent use.
type MultiPaginator struct {
	logger    *logrus.Logger
	source    Source
	addresses []string
	cache     InternalTxCache
	engine

	// firstPages holds the per address batches of the last first page fetch until committed.
	firstPages map[string][]txrecord.Group
}

type MultiOption func(*MultiPaginator)

// WithInternalTxCache writes the first page of each address through to c.
func WithInternalTxCache(c InternalTxCache) MultiOption {
	return func(p *MultiPaginator) {
		p.cache = c
	}
}

// NewMulti returns a paginator over the merged histories of addresses. Duplicate and empty
// addresses are dropped.
func NewMulti(logger *logrus.Logger, source Source, addresses []string, pageSize int, opts ...MultiOption) (*MultiPaginator, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	addresses = slices.Compact(slices.Sorted(slices.Values(addresses)))
	addresses = slices.DeleteFunc(addresses, func(a string) bool { return a == "" })
	if len(addresses) == 0 {
		return nil, ErrNoAddresses
	}

	p := &MultiPaginator{
		logger:    logger,
		source:    source,
		addresses: addresses,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine = engine{
		logger:   logger.WithField("addresses", len(addresses)),
		pageSize: pageSize,
		fetch:    p.fetchAll,
		online:   onlineFunc(source),
		edgeOnly: true,
	}
	p.clear()

	return p, nil
}

// fetchAll fans the fetch out to every address and merges the batches.
// Any failing address fails the whole fetch.
func (p *MultiPaginator) fetchAll(ctx context.Context, dir direction, block uint64, count int) ([]txrecord.Group, error) {
	batches := make([][]txrecord.Group, len(p.addresses))
	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range p.addresses {
		g.Go(func() error {
			var err error
			switch dir {
			case older:
				batches[i], err = p.source.FetchBefore(gctx, addr, block, count)
			default:
				batches[i], err = p.source.FetchAfter(gctx, addr, block, count)
			}
			if err != nil {
				return fmt.Errorf("fetch %s block %d for %s: %w", dir, block, addr, err)
			}
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	if dir == older && block == 0 {
		p.firstPages = make(map[string][]txrecord.Group, len(p.addresses))
		for i, addr := range p.addresses {
			p.firstPages[addr] = batches[i]
		}
	}

	return txrecord.Merge(batches...), nil
}

// Addresses returns the addresses the paginator is bound to, sorted.
func (p *MultiPaginator) Addresses() []string {
	return slices.Clone(p.addresses)
}

// Clear resets all paging state.
func (p *MultiPaginator) Clear() {
	p.clear()
	p.firstPages = nil
}

// Status returns the page counter and boundary flags.
func (p *MultiPaginator) Status() Status {
	return p.status()
}

// Current returns the groups of the page currently shown.
func (p *MultiPaginator) Current() []txrecord.Group {
	return p.currentPage()
}

// ShowFirstPage loads the most recent page across all addresses.
func (p *MultiPaginator) ShowFirstPage(ctx context.Context) ([]txrecord.Group, error) {
	p.firstPages = nil
	page, err := p.showFirstPage(ctx, nil)
	if err != nil {
		return nil, err
	}
	p.writeThrough(ctx)
	return page, nil
}

// ShowFirstPageWith shows the first page from already merged groups. An empty input falls
// back to fetching.
func (p *MultiPaginator) ShowFirstPageWith(ctx context.Context, groups []txrecord.Group) ([]txrecord.Group, error) {
	if len(groups) == 0 {
		return p.ShowFirstPage(ctx)
	}
	return p.showFirstPage(ctx, groups)
}

// ShowLastPage loads the oldest page across all addresses.
func (p *MultiPaginator) ShowLastPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showLastPage(ctx)
}

// ShowNextPage moves one page towards older records.
func (p *MultiPaginator) ShowNextPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showNextPage(ctx)
}

// ShowPrevPage moves one page towards newer records.
func (p *MultiPaginator) ShowPrevPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showPrevPage(ctx)
}

func (p *MultiPaginator) writeThrough(ctx context.Context) {
	defer func() { p.firstPages = nil }()
	if p.cache == nil {
		return
	}

	for addr, groups := range p.firstPages {
		err := p.cache.AddInternalTransactions(addr, groups)
		if err != nil {
			p.logger.WithContext(ctx).WithError(err).WithField("addr", addr).Warn("Failed to cache first page")
		}
	}
}
