package cache

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/store"
)

var (
	// ErrBackendMismatch is returned when the address and global caches were found on different
	// backends. Both have been moved back to the transient backend when it is returned.
	ErrBackendMismatch = errors.New("address and global caches use different backends")
	// ErrUnknownKind is returned for a backend kind that is not configured.
	ErrUnknownKind = errors.New("unknown cache backend")
)

// Manager owns the address and global caches and moves both between backends together.
type Manager struct {
	logger   *logrus.Logger
	mu       sync.RWMutex
	backends map[store.Kind]Backend
	address  *AddressCache
	global   *GlobalCache
}

// NewManager picks the active backend and returns the coordinator. The durable backend is
// used when preferred or when it already holds cached data from an earlier run; durable may
// be nil when persistence is not configured.
func NewManager(logger *logrus.Logger, transient, durable Backend, prefer store.Kind) (*Manager, error) {
	if transient == nil {
		return nil, fmt.Errorf("transient backend: %w", ErrUnknownKind)
	}
	if !prefer.Valid() {
		return nil, fmt.Errorf("%q: %w", prefer, ErrUnknownKind)
	}

	m := &Manager{
		logger:   logger,
		backends: map[store.Kind]Backend{store.KindTransient: transient},
	}

	active := transient
	if durable != nil {
		m.backends[store.KindDurable] = durable

		persisted, err := hasPersistedData(durable)
		if err != nil {
			return nil, fmt.Errorf("check durable backend: %w", err)
		}
		if prefer == store.KindDurable || persisted {
			active = durable
		}
	} else if prefer == store.KindDurable {
		return nil, fmt.Errorf("durable backend not configured: %w", ErrUnknownKind)
	}

	m.address = &AddressCache{logger: logger, mu: &m.mu, backend: active}
	m.global = &GlobalCache{logger: logger, mu: &m.mu, backend: active}

	logger.WithField("backend", active.Kind()).Info("Cache backend selected")
	return m, nil
}

func hasPersistedData(b Backend) (bool, error) {
	for prefix := range slices.Values([]string{addressPrefix, globalPrefix}) {
		ok, err := hasAnyKey(b, prefix)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (m *Manager) Address() *AddressCache {
	return m.address
}

func (m *Manager) Global() *GlobalCache {
	return m.global
}

// Kind returns the backend both caches use. When they disagree the caches are forced back to
// the transient backend, persisted data is wiped and ErrBackendMismatch is returned.
func (m *Manager) Kind() (store.Kind, error) {
	m.mu.RLock()
	addrKind, globalKind := m.address.backend.Kind(), m.global.backend.Kind()
	m.mu.RUnlock()
	if addrKind == globalKind {
		return addrKind, nil
	}

	backendMismatches.Inc()
	m.logger.WithFields(logrus.Fields{
		"address_backend": addrKind,
		"global_backend":  globalKind,
	}).Error("Cache backends diverged, falling back to transient storage")

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.migrateLocked(store.KindTransient)
	if err != nil {
		return "", fmt.Errorf("recover from backend mismatch: %w", errors.Join(ErrBackendMismatch, err))
	}
	if durable, ok := m.backends[store.KindDurable]; ok {
		for prefix := range slices.Values([]string{addressPrefix, globalPrefix}) {
			err = deletePrefix(durable, prefix)
			if err != nil {
				return "", fmt.Errorf("wipe durable backend: %w", errors.Join(ErrBackendMismatch, err))
			}
		}
	}

	return "", ErrBackendMismatch
}

// MigrateTo copies every cached unit to the target backend, switches both caches to it and
// clears the previous backend. Readers are blocked for the duration, so they see either the
// old or the new backend fully populated. Migrating to the active kind is a no-op.
func (m *Manager) MigrateTo(kind store.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.migrateLocked(kind)
}

func (m *Manager) migrateLocked(kind store.Kind) error {
	target, ok := m.backends[kind]
	if !ok {
		return fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}

	type slot struct {
		prefix  string
		backend *Backend
	}
	slots := []slot{
		{prefix: addressPrefix, backend: &m.address.backend},
		{prefix: globalPrefix, backend: &m.global.backend},
	}

	var switched bool
	for s := range slices.Values(slots) {
		from := *s.backend
		if from.Kind() == target.Kind() {
			continue
		}

		copied, err := copyPrefix(from, target, s.prefix)
		if err != nil {
			return fmt.Errorf("copy %s to %s: %w", s.prefix, kind, err)
		}
		*s.backend = target
		switched = true

		err = deletePrefix(from, s.prefix)
		if err != nil {
			// the data is safe in the target already
			m.logger.WithError(err).WithField("prefix", s.prefix).Warn("Failed to clear previous cache backend")
		}

		migratedKeys.Add(float64(len(copied)))
		m.logger.WithFields(logrus.Fields{
			"prefix": s.prefix,
			"from":   from.Kind(),
			"to":     kind,
			"keys":   len(copied),
		}).Info("Migrated cache")
	}
	if switched {
		migrations.WithLabelValues(string(kind)).Inc()
	}

	return nil
}
