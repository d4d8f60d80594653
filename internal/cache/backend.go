package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/store"
)

// Backend is a string only key value store the caches keep their data in.
type Backend interface {
	Kind() store.Kind
	// Get returns store.ErrNotFound for a missing key.
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
}

// readJSON decodes the value under key. Missing keys and values that fail to decode are both
// reported as absent; the latter is logged.
func readJSON[T any](logger *logrus.Logger, b Backend, key string) (T, bool) {
	var v T
	raw, err := b.Get(key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.WithError(err).WithField("key", key).Warn("Failed to read cached value")
		}
		return v, false
	}

	err = json.Unmarshal([]byte(raw), &v)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("Discarding corrupted cached value")
		corruptReads.Inc()
		var zero T
		return zero, false
	}

	return v, true
}

func writeJSON(b Backend, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}

	err = b.Set(key, string(data))
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

func deletePrefix(b Backend, prefix string) error {
	keys, err := b.Keys(prefix)
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}
	for k := range slices.Values(keys) {
		err = b.Delete(k)
		if err != nil {
			return fmt.Errorf("delete %q: %w", k, err)
		}
	}
	return nil
}

// copyPrefix copies every key under prefix and returns the copied keys. On failure the keys
// copied so far are removed from the target again.
func copyPrefix(from, to Backend, prefix string) ([]string, error) {
	keys, err := from.Keys(prefix)
	if err != nil {
		return nil, fmt.Errorf("list source keys: %w", err)
	}

	copied := make([]string, 0, len(keys))
	for k := range slices.Values(keys) {
		v, err := from.Get(k)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err == nil {
			err = to.Set(k, v)
		}
		if err != nil {
			for c := range slices.Values(copied) {
				_ = to.Delete(c)
			}
			return nil, fmt.Errorf("copy %q: %w", k, err)
		}
		copied = append(copied, k)
	}

	return copied, nil
}

func hasAnyKey(b Backend, prefix string) (bool, error) {
	keys, err := b.Keys(prefix)
	if err != nil {
		return false, err
	}
	return len(keys) > 0, nil
}
