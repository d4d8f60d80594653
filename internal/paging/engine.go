package paging

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/txrecord"
)

var (
	// ErrInvalidPageSize is returned when a paginator is created with a non positive page size.
	ErrInvalidPageSize = errors.New("page size must be positive")
	// ErrNoAddresses is returned when a paginator is created without any address.
	ErrNoAddresses = errors.New("no addresses to paginate")
	// ErrNotLoaded is returned by next/prev before a first or last page was shown.
	ErrNotLoaded = errors.New("no page loaded yet")
)

// direction of a fetch relative to a block cursor.
type direction int

const (
	// older asks for groups mined before the cursor, i.e. the next pages.
	older direction = iota
	// newer asks for groups mined after the cursor, i.e. the previous pages.
	newer
)

func (d direction) String() string {
	if d == older {
		return "before"
	}
	return "after"
}

type fetchFunc func(ctx context.Context, dir direction, block uint64, count int) ([]txrecord.Group, error)

// Status is the public paging state after the last committed action.
type Status struct {
	Page      int  `json:"page"`
	FirstPage bool `json:"firstPage"`
	LastPage  bool `json:"lastPage"`
}

type state struct {
	current []txrecord.Group
	next    []txrecord.Group
	prev    []txrecord.Group

	// newestHash and oldestHash mark the edges seen by a fresh first or last page.
	newestHash string
	oldestHash string

	page      int
	firstPage bool
	lastPage  bool
}

// engine holds the navigation algorithm shared by the single and multi address paginators.
// Every action builds a candidate state and only assigns it once all fetches and probes
// succeeded, so a failed action leaves the previous state intact.
type engine struct {
	logger   *logrus.Entry
	pageSize int
	fetch    fetchFunc
	online   func() bool

	// edgeOnly keeps only groups sharing the page edge block in the reminders and replaces the
	// hash markers with page counter shortcuts. Used when several streams are merged.
	edgeOnly bool

	st state
}

func (e *engine) clear() {
	e.st = state{page: 1}
}

func (e *engine) status() Status {
	return Status{
		Page:      e.st.page,
		FirstPage: e.st.firstPage,
		LastPage:  e.st.lastPage,
	}
}

func (e *engine) currentPage() []txrecord.Group {
	return slices.Clone(e.st.current)
}

func (e *engine) showFirstPage(ctx context.Context, data []txrecord.Group) ([]txrecord.Group, error) {
	full := data
	if full == nil {
		var err error
		full, err = e.fetchCounted(ctx, older, 0, e.pageSize)
		if err != nil {
			failedActions.Inc()
			return nil, fmt.Errorf("fetch first page: %w", err)
		}
	}
	full = txrecord.Merge(full)

	cur := full[:min(e.pageSize, len(full))]
	rest := full[len(cur):]
	if e.edgeOnly {
		rest = sameBlock(rest, lastOf(cur).BlockNumber())
	}

	cand := state{
		current:   cur,
		next:      rest,
		page:      1,
		firstPage: true,
	}
	if !e.edgeOnly && len(cur) > 0 {
		cand.newestHash = cur[0].Hash()
	}

	last, err := e.isLastPage(ctx, cand, false)
	if err != nil {
		failedActions.Inc()
		return nil, fmt.Errorf("check last page: %w", err)
	}
	cand.lastPage = last

	e.st = cand
	e.logger.WithContext(ctx).WithFields(logrus.Fields{
		"groups":    len(cur),
		"reminder":  len(rest),
		"last_page": last,
	}).Debug("Showing first page")

	return e.currentPage(), nil
}

func (e *engine) showLastPage(ctx context.Context) ([]txrecord.Group, error) {
	full, err := e.fetchCounted(ctx, newer, 0, e.pageSize)
	if err != nil {
		failedActions.Inc()
		return nil, fmt.Errorf("fetch last page: %w", err)
	}
	full = txrecord.Merge(full)

	start := max(0, len(full)-e.pageSize)
	cur := full[start:]
	rest := full[:start]
	if e.edgeOnly {
		rest = sameBlock(rest, firstOf(cur).BlockNumber())
	}

	cand := state{
		current:  cur,
		prev:     rest,
		page:     -1,
		lastPage: true,
	}
	if !e.edgeOnly && len(cur) > 0 {
		cand.oldestHash = lastOf(cur).Hash()
	}

	first, err := e.isFirstPage(ctx, cand, false)
	if err != nil {
		failedActions.Inc()
		return nil, fmt.Errorf("check first page: %w", err)
	}
	cand.firstPage = first

	e.st = cand
	e.logger.WithContext(ctx).WithFields(logrus.Fields{
		"groups":     len(cur),
		"reminder":   len(rest),
		"first_page": first,
	}).Debug("Showing last page")

	return e.currentPage(), nil
}

func (e *engine) showNextPage(ctx context.Context) ([]txrecord.Group, error) {
	if e.st.lastPage {
		e.st.next = nil
		return e.currentPage(), nil
	}
	if len(e.st.current) == 0 {
		return nil, ErrNotLoaded
	}

	pool := slices.Clone(e.st.next)
	fromReminder := len(pool) >= e.pageSize
	if fromReminder {
		pagesFromReminder.Inc()
	} else {
		known := pool
		if len(known) == 0 {
			known = e.st.current
		}
		cursor := edgeBlock(known, older)
		if cursor > 0 {
			batch, err := e.fetchCounted(ctx, older, cursor, e.pageSize-len(pool))
			if err != nil {
				failedActions.Inc()
				return nil, fmt.Errorf("fetch next page: %w", err)
			}
			pool = without(txrecord.Merge(pool, batch), e.st.current, e.st.prev)
		}
	}

	if len(pool) == 0 {
		// the source ran dry even though the last check saw more data
		e.st.next = nil
		e.st.lastPage = true
		return e.currentPage(), nil
	}

	cur := pool[:min(e.pageSize, len(pool))]
	rest := pool[len(cur):]
	if e.edgeOnly {
		rest = sameBlock(rest, lastOf(cur).BlockNumber())
	}

	cand := state{
		current:    cur,
		next:       rest,
		prev:       prevReminderOnNext(e.st, cur),
		newestHash: e.st.newestHash,
		oldestHash: e.st.oldestHash,
		page:       e.st.page + 1,
		firstPage:  false,
	}

	last, err := e.isLastPage(ctx, cand, fromReminder)
	if err != nil {
		failedActions.Inc()
		return nil, fmt.Errorf("check last page: %w", err)
	}
	cand.lastPage = last

	e.st = cand
	e.logger.WithContext(ctx).WithFields(logrus.Fields{
		"page":      cand.page,
		"groups":    len(cur),
		"last_page": last,
	}).Debug("Showing next page")

	return e.currentPage(), nil
}

func (e *engine) showPrevPage(ctx context.Context) ([]txrecord.Group, error) {
	if e.st.firstPage {
		e.st.prev = nil
		return e.currentPage(), nil
	}
	if len(e.st.current) == 0 {
		return nil, ErrNotLoaded
	}

	pool := slices.Clone(e.st.prev)
	fromReminder := len(pool) >= e.pageSize
	if fromReminder {
		pagesFromReminder.Inc()
	} else {
		known := pool
		if len(known) == 0 {
			known = e.st.current
		}
		cursor := edgeBlock(known, newer)
		if cursor > 0 {
			batch, err := e.fetchCounted(ctx, newer, cursor, e.pageSize-len(pool))
			if err != nil {
				failedActions.Inc()
				return nil, fmt.Errorf("fetch previous page: %w", err)
			}
			pool = without(txrecord.Merge(batch, pool), e.st.current, e.st.next)
		}
	}

	if len(pool) == 0 {
		e.st.prev = nil
		e.st.firstPage = true
		return e.currentPage(), nil
	}

	start := max(0, len(pool)-e.pageSize)
	cur := pool[start:]
	rest := pool[:start]
	if e.edgeOnly {
		rest = sameBlock(rest, firstOf(cur).BlockNumber())
	}

	cand := state{
		current:    cur,
		next:       nextReminderOnPrev(e.st, cur),
		prev:       rest,
		newestHash: e.st.newestHash,
		oldestHash: e.st.oldestHash,
		page:       e.st.page - 1,
		lastPage:   false,
	}

	first, err := e.isFirstPage(ctx, cand, fromReminder)
	if err != nil {
		failedActions.Inc()
		return nil, fmt.Errorf("check first page: %w", err)
	}
	cand.firstPage = first

	e.st = cand
	e.logger.WithContext(ctx).WithFields(logrus.Fields{
		"page":       cand.page,
		"groups":     len(cur),
		"first_page": first,
	}).Debug("Showing previous page")

	return e.currentPage(), nil
}

// isLastPage decides whether nothing older than the candidate page exists. At most one probe
// is issued and only when the buffers cannot answer. A page served whole from the reminder
// never reaches the source: it is assumed not to be the last one, and a following next
// action that finds nothing flips the flag instead.
func (e *engine) isLastPage(ctx context.Context, cand state, fromReminder bool) (bool, error) {
	cur := cand.current
	switch {
	case len(cur) == 0:
		return true, nil
	case cand.oldestHash != "" && lastOf(cur).Hash() == cand.oldestHash:
		return true, nil
	case e.edgeOnly && cand.page == -1:
		return true, nil
	case len(cur) < e.pageSize:
		return true, nil
	case !e.online():
		return true, nil
	case len(cand.next) > 0 || fromReminder:
		return false, nil
	}

	return e.probe(ctx, older, edgeBlock(cur, older))
}

// isFirstPage decides whether nothing newer than the candidate page exists.
func (e *engine) isFirstPage(ctx context.Context, cand state, fromReminder bool) (bool, error) {
	cur := cand.current
	switch {
	case len(cur) == 0:
		return true, nil
	case cand.newestHash != "" && firstOf(cur).Hash() == cand.newestHash:
		return true, nil
	case e.edgeOnly && cand.page == 1:
		return true, nil
	case len(cur) < e.pageSize:
		return true, nil
	case !e.online():
		return true, nil
	case len(cand.prev) > 0 || fromReminder:
		return false, nil
	}

	return e.probe(ctx, newer, edgeBlock(cur, newer))
}

// probe reports true when no group exists past cursor in dir.
func (e *engine) probe(ctx context.Context, dir direction, cursor uint64) (bool, error) {
	if cursor == 0 {
		// a zero cursor would ask for the newest or oldest records instead
		return true, nil
	}

	boundaryProbes.Inc()
	more, err := e.fetch(ctx, dir, cursor, 1)
	if err != nil {
		return false, fmt.Errorf("probe %s block %d: %w", dir, cursor, err)
	}
	return len(more) == 0, nil
}

func (e *engine) fetchCounted(ctx context.Context, dir direction, cursor uint64, count int) ([]txrecord.Group, error) {
	sourceFetches.Inc()
	return e.fetch(ctx, dir, cursor, count)
}

// prevReminderOnNext keeps the groups of the old page that share the new page's leading block.
// Older buffered groups are carried over only while they belong to that same block.
func prevReminderOnNext(old state, cur []txrecord.Group) []txrecord.Group {
	carry := sameBlock(old.current, firstOf(cur).BlockNumber())
	if len(old.prev) > 0 && len(carry) > 0 && old.prev[0].BlockNumber() == carry[0].BlockNumber() {
		return slices.Concat(old.prev, carry)
	}
	return carry
}

// nextReminderOnPrev mirrors prevReminderOnNext for the trailing block.
func nextReminderOnPrev(old state, cur []txrecord.Group) []txrecord.Group {
	carry := sameBlock(old.current, lastOf(cur).BlockNumber())
	if len(old.next) > 0 && len(carry) > 0 && old.next[0].BlockNumber() == carry[0].BlockNumber() {
		return slices.Concat(carry, old.next)
	}
	return carry
}

func sameBlock(groups []txrecord.Group, block string) []txrecord.Group {
	if block == "" {
		return nil
	}
	var out []txrecord.Group
	for g := range slices.Values(groups) {
		if g.BlockNumber() == block {
			out = append(out, g)
		}
	}
	return out
}

// edgeBlock returns the lowest block of groups when dir is older and the highest otherwise.
// Groups without a parsable block are ignored; 0 means no usable cursor.
func edgeBlock(groups []txrecord.Group, dir direction) uint64 {
	var edge uint64
	for g := range slices.Values(groups) {
		b := g.Block()
		if b == 0 {
			continue
		}
		switch {
		case edge == 0:
			edge = b
		case dir == older && b < edge:
			edge = b
		case dir == newer && b > edge:
			edge = b
		}
	}
	return edge
}

// without drops the groups whose hash already appears in one of the excluded lists.
func without(groups []txrecord.Group, exclude ...[]txrecord.Group) []txrecord.Group {
	seen := make(map[string]struct{})
	for list := range slices.Values(exclude) {
		for g := range slices.Values(list) {
			seen[g.Hash()] = struct{}{}
		}
	}

	out := make([]txrecord.Group, 0, len(groups))
	for g := range slices.Values(groups) {
		if _, ok := seen[g.Hash()]; ok {
			continue
		}
		out = append(out, g)
	}
	return out
}

func firstOf(groups []txrecord.Group) txrecord.Group {
	if len(groups) == 0 {
		return nil
	}
	return groups[0]
}

func lastOf(groups []txrecord.Group) txrecord.Group {
	if len(groups) == 0 {
		return nil
	}
	return groups[len(groups)-1]
}
