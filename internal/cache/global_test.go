package cache_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/txpager/internal/bigjson"
	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/store/memdb"
	"github.com/hedisam/txpager/internal/txrecord"
)

func TestGlobalCache(t *testing.T) {
	c := cache.NewGlobalCache(newLogger(), memdb.NewKV())
	assert.False(t, c.HasAnyData())
	assert.False(t, c.HasData())
	assert.Nil(t, c.GasPrice())

	gas, ok := new(big.Int).SetString("30000000000000000000000", 10)
	require.True(t, ok)
	require.NoError(t, c.SetGasPrice(gas))
	assert.True(t, c.HasAnyData())
	assert.False(t, c.HasData())
	assert.Equal(t, 0, gas.Cmp(c.GasPrice()))

	require.NoError(t, c.SetMaxPriorityFee(big.NewInt(2)))
	require.NoError(t, c.SetLastBlocks([]cache.BlockSummary{{Number: 2, Hash: "0x2", ParentHash: "0x1", BaseFee: bigjson.NewInt64(9)}}))
	require.NoError(t, c.SetLastTxns([]cache.TxSummary{{Hash: "0xt", BlockNumber: 2, Value: bigjson.NewInt64(1)}}))
	require.NoError(t, c.SetLastUpdate(1700000000000))
	assert.True(t, c.HasData())
	assert.False(t, c.HasDataWithPrice())

	require.NoError(t, c.SetNativePrice(3150.5))
	assert.True(t, c.HasDataWithPrice())

	o := c.Snapshot()
	assert.True(t, o.Complete)
	assert.True(t, o.WithPrice)
	assert.Equal(t, 3150.5, o.NativePrice)
	assert.Equal(t, gas.String(), o.GasPrice.String())
	assert.Equal(t, "2", o.MaxPriorityFee.String())
	require.Len(t, o.LastBlocks, 1)
	assert.Equal(t, "9", o.LastBlocks[0].BaseFee.String())
	require.Len(t, o.LastTxns, 1)
	assert.Equal(t, int64(1700000000000), o.LastUpdate)
}

func TestGlobalCacheEmptyValueDeletes(t *testing.T) {
	tests := map[string]struct {
		set   func(c *cache.GlobalCache) error
		unset func(c *cache.GlobalCache) error
	}{
		"native price": {
			set:   func(c *cache.GlobalCache) error { return c.SetNativePrice(1) },
			unset: func(c *cache.GlobalCache) error { return c.SetNativePrice(0) },
		},
		"gas price": {
			set:   func(c *cache.GlobalCache) error { return c.SetGasPrice(big.NewInt(1)) },
			unset: func(c *cache.GlobalCache) error { return c.SetGasPrice(nil) },
		},
		"favorite addresses": {
			set:   func(c *cache.GlobalCache) error { return c.SetFavoriteAddresses([]string{"0xA"}) },
			unset: func(c *cache.GlobalCache) error { return c.SetFavoriteAddresses([]string{" "}) },
		},
		"last blocks": {
			set:   func(c *cache.GlobalCache) error { return c.SetLastBlocks([]cache.BlockSummary{{Number: 1}}) },
			unset: func(c *cache.GlobalCache) error { return c.SetLastBlocks(nil) },
		},
		"last update": {
			set:   func(c *cache.GlobalCache) error { return c.SetLastUpdate(1) },
			unset: func(c *cache.GlobalCache) error { return c.SetLastUpdate(0) },
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := cache.NewGlobalCache(newLogger(), memdb.NewKV())

			require.NoError(t, tc.set(c))
			assert.True(t, c.HasAnyData())
			require.NoError(t, tc.unset(c))
			assert.False(t, c.HasAnyData())
		})
	}
}

func TestGlobalCacheFavorites(t *testing.T) {
	c := cache.NewGlobalCache(newLogger(), memdb.NewKV())

	require.NoError(t, c.SetFavoriteAddresses([]string{"0xB", "0xa", "0xA"}))
	assert.Equal(t, []string{"0xa", "0xb"}, c.FavoriteAddresses())

	require.NoError(t, c.SetFavoriteTxns([]txrecord.Group{group("0x1", 1000)}))
	assert.Len(t, c.FavoriteTxns(), 1)

	require.NoError(t, c.SetGasPrice(big.NewInt(1)))
	require.NoError(t, c.ClearFavorites())
	assert.Empty(t, c.FavoriteAddresses())
	assert.Empty(t, c.FavoriteTxns())
	assert.NotNil(t, c.GasPrice())

	require.NoError(t, c.Clear())
	assert.False(t, c.HasAnyData())
}
