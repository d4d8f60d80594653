package badgerdb

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/store"
)

// DefaultMaxValueSize is the largest value accepted by Set.
const DefaultMaxValueSize = 5 << 20

// KV is the durable key value backend.
type KV struct {
	db           *badger.DB
	maxValueSize int
}

type Option func(*KV)

// WithMaxValueSize overrides DefaultMaxValueSize.
func WithMaxValueSize(size int) Option {
	return func(kv *KV) {
		if size > 0 {
			kv.maxValueSize = size
		}
	}
}

// Open opens or creates the database under dir. An empty dir keeps the database in memory.
func Open(logger *logrus.Logger, dir string, opts ...Option) (*KV, error) {
	badgerOpts := badger.DefaultOptions(dir).WithLogger(logger)
	if dir == "" {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	return New(db, opts...), nil
}

// New wraps an already open database.
func New(db *badger.DB, opts ...Option) *KV {
	kv := &KV{
		db:           db,
		maxValueSize: DefaultMaxValueSize,
	}
	for _, opt := range opts {
		opt(kv)
	}
	return kv
}

func (s *KV) Close() error {
	return s.db.Close()
}

func (s *KV) Kind() store.Kind {
	return store.KindDurable
}

// Get returns the value stored under key or store.ErrNotFound.
func (s *KV) Get(key string) (string, error) {
	var value []byte
	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}

	return string(value), nil
}

func (s *KV) Set(key, value string) error {
	if len(value) > s.maxValueSize {
		return fmt.Errorf("set %q (%d bytes): %w", key, len(value), store.ErrTooLarge)
	}

	err := s.db.Update(func(tx *badger.Txn) error {
		return tx.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *KV) Delete(key string) error {
	err := s.db.Update(func(tx *badger.Txn) error {
		return tx.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Keys returns the sorted keys starting with prefix.
func (s *KV) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list keys with prefix %q: %w", prefix, err)
	}

	return keys, nil
}
