package badgerdb_test

import (
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/store/badgerdb"
)

func runWithKV(t *testing.T, f func(kv *badgerdb.KV), opts ...badgerdb.Option) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	kv := badgerdb.New(db, opts...)
	defer func() { require.NoError(t, kv.Close()) }()
	f(kv)
}

func TestKV(t *testing.T) {
	runWithKV(t, func(kv *badgerdb.KV) {
		assert.Equal(t, store.KindDurable, kv.Kind())

		_, err := kv.Get("address/tokens/0xa")
		require.ErrorIs(t, err, store.ErrNotFound)

		require.NoError(t, kv.Set("address/tokens/0xa", `[]`))
		require.NoError(t, kv.Set("address/tokens/0xb", `[{}]`))
		require.NoError(t, kv.Set("global/gasPrice", `"12n"`))

		v, err := kv.Get("address/tokens/0xb")
		require.NoError(t, err)
		assert.Equal(t, `[{}]`, v)

		keys, err := kv.Keys("address/")
		require.NoError(t, err)
		assert.Equal(t, []string{"address/tokens/0xa", "address/tokens/0xb"}, keys)

		require.NoError(t, kv.Delete("address/tokens/0xa"))
		require.NoError(t, kv.Delete("address/tokens/missing"))
		keys, err = kv.Keys("")
		require.NoError(t, err)
		assert.Equal(t, []string{"address/tokens/0xb", "global/gasPrice"}, keys)
	})
}

func TestKVSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	kv := badgerdb.New(db)
	require.NoError(t, kv.Set("address/favorites", `["0xa"]`))
	require.NoError(t, kv.Close())

	db, err = badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	require.NoError(t, err)
	kv = badgerdb.New(db)
	defer kv.Close()

	v, err := kv.Get("address/favorites")
	require.NoError(t, err)
	assert.Equal(t, `["0xa"]`, v)
}

func TestKVSizeCeiling(t *testing.T) {
	runWithKV(t, func(kv *badgerdb.KV) {
		err := kv.Set("k", strings.Repeat("x", 11))
		require.ErrorIs(t, err, store.ErrTooLarge)
		require.NoError(t, kv.Set("k", strings.Repeat("x", 10)))
	}, badgerdb.WithMaxValueSize(10))
}
