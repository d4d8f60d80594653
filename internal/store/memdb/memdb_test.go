package memdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/store/memdb"
)

func TestKV(t *testing.T) {
	kv := memdb.NewKV(memdb.WithMemSize(2))
	assert.Equal(t, store.KindTransient, kv.Kind())

	_, err := kv.Get("missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, kv.Set("address/ens/0xb", `"bob.eth"`))
	require.NoError(t, kv.Set("address/ens/0xa", `"alice.eth"`))
	require.NoError(t, kv.Set("global/ethPrice", `1.5`))

	v, err := kv.Get("address/ens/0xa")
	require.NoError(t, err)
	assert.Equal(t, `"alice.eth"`, v)

	keys, err := kv.Keys("address/")
	require.NoError(t, err)
	assert.Equal(t, []string{"address/ens/0xa", "address/ens/0xb"}, keys)

	require.NoError(t, kv.Delete("address/ens/0xa"))
	require.NoError(t, kv.Delete("address/ens/0xa"))
	keys, err = kv.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"address/ens/0xb", "global/ethPrice"}, keys)
}

func TestSessionStore(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s := memdb.NewSessionStore(memdb.WithClock(clock))
	ctx := context.Background()

	idle := &store.Session{Addresses: []string{"0xa"}, PageSize: 5}
	id, err := s.CreateSession(ctx, idle)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, now, idle.CreatedAt)

	now = now.Add(10 * time.Minute)
	active := &store.Session{Addresses: []string{"0xb"}, PageSize: 5}
	activeID, err := s.CreateSession(ctx, active)
	require.NoError(t, err)
	assert.NotEqual(t, id, activeID)

	got, err := s.GetSession(ctx, activeID)
	require.NoError(t, err)
	assert.Same(t, active, got)

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, s.DeleteIdleSessions(ctx, 10*time.Minute))

	_, err = s.GetSession(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteSession(ctx, activeID))
	require.ErrorIs(t, s.DeleteSession(ctx, activeID), store.ErrNotFound)
}
