package cache

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/store/memdb"
)

type durableKV struct {
	*memdb.KV
}

func (durableKV) Kind() store.Kind {
	return store.KindDurable
}

func TestManagerRecoversFromBackendMismatch(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	transient := memdb.NewKV()
	durable := durableKV{KV: memdb.NewKV()}
	m, err := NewManager(logger, transient, durable, store.KindTransient)
	require.NoError(t, err)

	require.NoError(t, Add(m.Address(), Names, "0xa", "alice.eth"))
	require.NoError(t, m.Global().SetNativePrice(2))
	require.NoError(t, durable.Set("global/gasPrice", `"5n"`))
	m.global.backend = durable

	_, err = m.Kind()
	require.ErrorIs(t, err, ErrBackendMismatch)

	kind, err := m.Kind()
	require.NoError(t, err)
	assert.Equal(t, store.KindTransient, kind)

	keys, err := durable.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	name, ok := Get(m.Address(), Names, "0xa")
	require.True(t, ok)
	assert.Equal(t, "alice.eth", name)
	assert.Equal(t, "5", m.Global().GasPrice().String())
}
