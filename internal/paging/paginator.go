package paging

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/txrecord"
)

// Source returns groups of one address mined strictly before or after a block, newest first.
// A zero block asks FetchBefore for the most recent groups and FetchAfter for the oldest ones.
// Both may return fewer groups than requested, or more when the last block holds several.
type Source interface {
	FetchBefore(ctx context.Context, address string, block uint64, count int) ([]txrecord.Group, error)
	FetchAfter(ctx context.Context, address string, block uint64, count int) ([]txrecord.Group, error)
}

// onlineReporter is implemented by sources that know whether the remote node is reachable.
type onlineReporter interface {
	Online() bool
}

func onlineFunc(src Source) func() bool {
	if r, ok := src.(onlineReporter); ok {
		return r.Online
	}
	return func() bool { return true }
}

// Paginator pages through the transaction history of a single address.
// It is not safe for concurrent use; callers serialise navigation actions.
type Paginator struct {
	source  Source
	address string
	engine
}

// New returns a paginator over the history of a single address, pageSize groups at a time.
func New(logger *logrus.Logger, source Source, address string, pageSize int) (*Paginator, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	if address == "" {
		return nil, ErrNoAddresses
	}

	p := &Paginator{
		source:  source,
		address: address,
	}
	p.engine = engine{
		logger:   logger.WithField("addr", address),
		pageSize: pageSize,
		fetch:    p.fetchAddress,
		online:   onlineFunc(source),
	}
	p.clear()

	return p, nil
}

func (p *Paginator) fetchAddress(ctx context.Context, dir direction, block uint64, count int) ([]txrecord.Group, error) {
	var (
		groups []txrecord.Group
		err    error
	)
	switch dir {
	case older:
		groups, err = p.source.FetchBefore(ctx, p.address, block, count)
	default:
		groups, err = p.source.FetchAfter(ctx, p.address, block, count)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s block %d: %w", dir, block, err)
	}
	return groups, nil
}

// Addresses returns the address the paginator is bound to.
func (p *Paginator) Addresses() []string {
	return []string{p.address}
}

// Clear resets all paging state.
func (p *Paginator) Clear() {
	p.clear()
}

// Status returns the page counter and boundary flags.
func (p *Paginator) Status() Status {
	return p.status()
}

// Current returns the groups of the page currently shown.
func (p *Paginator) Current() []txrecord.Group {
	return p.currentPage()
}

// ShowFirstPage loads the most recent page. Like every action it leaves the previous state
// untouched when it fails.
func (p *Paginator) ShowFirstPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showFirstPage(ctx, nil)
}

// ShowFirstPageWith shows the first page from already fetched groups, newest first.
// The groups beyond the page size are kept as the next page reminder.
func (p *Paginator) ShowFirstPageWith(ctx context.Context, groups []txrecord.Group) ([]txrecord.Group, error) {
	if groups == nil {
		groups = []txrecord.Group{}
	}
	return p.showFirstPage(ctx, groups)
}

// ShowLastPage loads the oldest page.
func (p *Paginator) ShowLastPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showLastPage(ctx)
}

// ShowNextPage moves one page towards older records.
func (p *Paginator) ShowNextPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showNextPage(ctx)
}

// ShowPrevPage moves one page towards newer records.
func (p *Paginator) ShowPrevPage(ctx context.Context) ([]txrecord.Group, error) {
	return p.showPrevPage(ctx)
}
