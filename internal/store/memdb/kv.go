package memdb

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/hedisam/txpager/internal/store"
)

// KV is the transient key value backend. Its content is lost when the process exits.
type KV struct {
	data map[string]string
	mu   sync.RWMutex
}

func NewKV(opts ...Option) *KV {
	cfg := newConfig(opts)
	return &KV{
		data: make(map[string]string, cfg.memSize),
	}
}

func (s *KV) Kind() store.Kind {
	return store.KindTransient
}

// Get returns the value stored under key or store.ErrNotFound.
func (s *KV) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (s *KV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *KV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys returns the sorted keys starting with prefix.
func (s *KV) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := slices.Collect(maps.Keys(s.data))
	keys = slices.DeleteFunc(keys, func(k string) bool {
		return !strings.HasPrefix(k, prefix)
	})
	slices.Sort(keys)
	return keys, nil
}
