package cache_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/bigjson"
	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/store/badgerdb"
	"github.com/hedisam/txpager/internal/store/memdb"
	"github.com/hedisam/txpager/internal/txrecord"
)

func openDurable(t *testing.T, dir string) *badgerdb.KV {
	t.Helper()
	kv, err := badgerdb.Open(newLogger(), dir)
	require.NoError(t, err)
	return kv
}

func TestNewManagerSelectsBackend(t *testing.T) {
	tests := map[string]struct {
		durable   bool
		persisted bool
		prefer    store.Kind
		expected  store.Kind
		expectErr error
	}{
		"transient preferred": {
			durable:  true,
			prefer:   store.KindTransient,
			expected: store.KindTransient,
		},
		"durable preferred": {
			durable:  true,
			prefer:   store.KindDurable,
			expected: store.KindDurable,
		},
		"persisted data wins over preference": {
			durable:   true,
			persisted: true,
			prefer:    store.KindTransient,
			expected:  store.KindDurable,
		},
		"durable preferred but not configured": {
			prefer:    store.KindDurable,
			expectErr: cache.ErrUnknownKind,
		},
		"unknown preference": {
			prefer:    store.Kind("disk"),
			expectErr: cache.ErrUnknownKind,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var durable cache.Backend
			if tc.durable {
				kv := openDurable(t, t.TempDir())
				t.Cleanup(func() { _ = kv.Close() })
				if tc.persisted {
					require.NoError(t, kv.Set("global/ethPrice", "1"))
				}
				durable = kv
			}

			m, err := cache.NewManager(newLogger(), memdb.NewKV(), durable, tc.prefer)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)

			kind, err := m.Kind()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestManagerMigrate(t *testing.T) {
	tests := map[string]struct {
		from store.Kind
		to   store.Kind
	}{
		"transient to durable": {from: store.KindTransient, to: store.KindDurable},
		"durable to transient": {from: store.KindDurable, to: store.KindTransient},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			transient := memdb.NewKV()
			durable := openDurable(t, t.TempDir())
			t.Cleanup(func() { _ = durable.Close() })
			backends := map[store.Kind]cache.Backend{
				store.KindTransient: transient,
				store.KindDurable:   durable,
			}

			m, err := cache.NewManager(newLogger(), transient, durable, tc.from)
			require.NoError(t, err)

			groups := []txrecord.Group{group("0x1", 2000), group("0x2", 1000)}
			require.NoError(t, cache.Add(m.Address(), cache.Names, "0xA", "alice.eth"))
			require.NoError(t, cache.Add(m.Address(), cache.Unspents, "0xa", cache.Unspent{Balance: bigjson.NewInt64(5)}))
			require.NoError(t, m.Address().AddInternalTransactions("0xa", groups))
			require.NoError(t, m.Address().AddFavorite("0xa"))
			require.NoError(t, m.Global().SetGasPrice(big.NewInt(11)))

			require.NoError(t, m.MigrateTo(tc.to))

			kind, err := m.Kind()
			require.NoError(t, err)
			assert.Equal(t, tc.to, kind)

			leftover, err := backends[tc.from].Keys("")
			require.NoError(t, err)
			assert.Empty(t, leftover)
			moved, err := backends[tc.to].Keys("")
			require.NoError(t, err)
			assert.Len(t, moved, 5)

			name, ok := cache.Get(m.Address(), cache.Names, "0xa")
			require.True(t, ok)
			assert.Equal(t, "alice.eth", name)
			unspent, ok := cache.Get(m.Address(), cache.Unspents, "0xa")
			require.True(t, ok)
			assert.Equal(t, "5", unspent.Balance.String())
			internal, ok := cache.Get(m.Address(), cache.InternalTxs, "0xa")
			require.True(t, ok)
			assert.Equal(t, groups, internal)
			assert.True(t, m.Address().IsFavorite("0xA"))
			assert.Equal(t, "11", m.Global().GasPrice().String())

			// same kind again is a no-op
			require.NoError(t, m.MigrateTo(tc.to))
			moved, err = backends[tc.to].Keys("")
			require.NoError(t, err)
			assert.Len(t, moved, 5)
		})
	}
}

func TestManagerMigrateUnknownKind(t *testing.T) {
	m, err := cache.NewManager(newLogger(), memdb.NewKV(), nil, store.KindTransient)
	require.NoError(t, err)

	require.ErrorIs(t, m.MigrateTo(store.KindDurable), cache.ErrUnknownKind)
	kind, err := m.Kind()
	require.NoError(t, err)
	assert.Equal(t, store.KindTransient, kind)
}

func TestManagerMigrateIsAtomicForReaders(t *testing.T) {
	transient := memdb.NewKV()
	durable := openDurable(t, t.TempDir())
	t.Cleanup(func() { _ = durable.Close() })

	m, err := cache.NewManager(newLogger(), transient, durable, store.KindTransient)
	require.NoError(t, err)

	addresses := []string{"0x1", "0x2", "0x3", "0x4", "0x5", "0x6", "0x7", "0x8"}
	for _, addr := range addresses {
		require.NoError(t, cache.Add(m.Address(), cache.Names, addr, addr+".eth"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	var (
		wg     sync.WaitGroup
		misses int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ctx.Err() == nil {
			if len(cache.GetAll(m.Address(), cache.Names)) != len(addresses) {
				misses++
			}
		}
	}()

	for range 10 {
		require.NoError(t, m.MigrateTo(store.KindDurable))
		require.NoError(t, m.MigrateTo(store.KindTransient))
	}
	cancel()
	wg.Wait()

	assert.Zero(t, misses)
}

type failingBackend struct {
	cache.Backend
	failSet bool
}

func (b *failingBackend) Set(key, value string) error {
	if b.failSet {
		return errors.New("disk full")
	}
	return b.Backend.Set(key, value)
}

func (b *failingBackend) Kind() store.Kind {
	return store.KindDurable
}

func TestManagerFailedMigrationKeepsSource(t *testing.T) {
	transient := memdb.NewKV()
	target := &failingBackend{Backend: memdb.NewKV()}

	m, err := cache.NewManager(newLogger(), transient, target, store.KindTransient)
	require.NoError(t, err)
	require.NoError(t, cache.Add(m.Address(), cache.Names, "0xa", "alice.eth"))

	target.failSet = true
	require.Error(t, m.MigrateTo(store.KindDurable))

	kind, err := m.Kind()
	require.NoError(t, err)
	assert.Equal(t, store.KindTransient, kind)
	name, ok := cache.Get(m.Address(), cache.Names, "0xa")
	require.True(t, ok)
	assert.Equal(t, "alice.eth", name)
	keys, err := target.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestManagerDurableSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	durable := openDurable(t, dir)
	m, err := cache.NewManager(newLogger(), memdb.NewKV(), durable, store.KindDurable)
	require.NoError(t, err)
	require.NoError(t, cache.Add(m.Address(), cache.Tokens, "0xa", []cache.TokenBalance{{
		Token:   "0xt",
		Balance: bigjson.New(new(big.Int).Lsh(big.NewInt(1), 100)),
	}}))
	require.NoError(t, durable.Close())

	durable = openDurable(t, dir)
	t.Cleanup(func() { _ = durable.Close() })
	m, err = cache.NewManager(newLogger(), memdb.NewKV(), durable, store.KindTransient)
	require.NoError(t, err)

	kind, err := m.Kind()
	require.NoError(t, err)
	assert.Equal(t, store.KindDurable, kind)
	tokens, ok := cache.Get(m.Address(), cache.Tokens, "0xa")
	require.True(t, ok)
	require.Len(t, tokens, 1)
	assert.Equal(t, "1267650600228229401496703205376", tokens[0].Balance.String())
}
