package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hedisam/txpager/internal/paging"
	"github.com/hedisam/txpager/internal/txrecord"
)

var (
	// ErrNotFound is returned when an item in store is not found.
	ErrNotFound = errors.New("not found")
	// ErrTooLarge is returned when a value exceeds the store's size ceiling.
	ErrTooLarge = errors.New("value too large")
)

// Kind tells the two key value backends apart.
type Kind string

const (
	// KindTransient lives for the lifetime of the process.
	KindTransient Kind = "transient"
	// KindDurable survives restarts.
	KindDurable Kind = "durable"
)

func (k Kind) Valid() bool {
	return k == KindTransient || k == KindDurable
}

// Pager is a paginator over one or more addresses.
type Pager interface {
	Addresses() []string
	Status() paging.Status
	Current() []txrecord.Group
	Clear()
	ShowFirstPage(ctx context.Context) ([]txrecord.Group, error)
	ShowFirstPageWith(ctx context.Context, groups []txrecord.Group) ([]txrecord.Group, error)
	ShowLastPage(ctx context.Context) ([]txrecord.Group, error)
	ShowNextPage(ctx context.Context) ([]txrecord.Group, error)
	ShowPrevPage(ctx context.Context) ([]txrecord.Group, error)
}

// Session is one client's paging session.
type Session struct {
	ID        string
	Addresses []string
	PageSize  int
	CreatedAt time.Time
	Pager     Pager

	// mu serialises navigation actions, a paginator supports one action at a time.
	mu         sync.Mutex
	lastAccess atomic.Int64
}

// Lock acquires the session for one navigation action.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// LastAccess returns when the session was last looked up.
func (s *Session) LastAccess() time.Time {
	return time.Unix(0, s.lastAccess.Load())
}

func (s *Session) SetLastAccess(t time.Time) {
	s.lastAccess.Store(t.UnixNano())
}
