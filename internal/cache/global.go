package cache

import (
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/bigjson"
	"github.com/hedisam/txpager/internal/txrecord"
)

const globalPrefix = "global/"

const (
	nativePriceKey       = globalPrefix + "ethPrice"
	gasPriceKey          = globalPrefix + "gasPrice"
	maxPriorityFeeKey    = globalPrefix + "maxPriorityFee"
	favoriteAddressesKey = globalPrefix + "favoriteAddresses"
	favoriteTxnsKey      = globalPrefix + "favoriteTxns"
	lastBlocksKey        = globalPrefix + "lastBlocks"
	lastTxnsKey          = globalPrefix + "lastTxns"
	lastUpdateKey        = globalPrefix + "lastUpdateTimestamp"
)

// GlobalCache keeps the facts that are not tied to an address. Setting an empty value
// removes the record.
type GlobalCache struct {
	logger  *logrus.Logger
	mu      *sync.RWMutex
	backend Backend
}

func NewGlobalCache(logger *logrus.Logger, backend Backend) *GlobalCache {
	return &GlobalCache{
		logger:  logger,
		mu:      &sync.RWMutex{},
		backend: backend,
	}
}

// Overview is a snapshot of the global cache.
type Overview struct {
	NativePrice       float64          `json:"nativePrice"`
	GasPrice          *bigjson.Int     `json:"gasPrice,omitempty"`
	MaxPriorityFee    *bigjson.Int     `json:"maxPriorityFee,omitempty"`
	FavoriteAddresses []string         `json:"favoriteAddresses"`
	FavoriteTxns      []txrecord.Group `json:"favoriteTxns"`
	LastBlocks        []BlockSummary   `json:"lastBlocks"`
	LastTxns          []TxSummary      `json:"lastTxns"`
	LastUpdate        int64            `json:"lastUpdate"`
	Complete          bool             `json:"complete"`
	WithPrice         bool             `json:"withPrice"`
}

func (c *GlobalCache) set(key string, v any, empty bool) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if empty {
		err := c.backend.Delete(key)
		if err != nil {
			return fmt.Errorf("delete %q: %w", key, err)
		}
		return nil
	}
	return writeJSON(c.backend, key, v)
}

func get[T any](c *GlobalCache, key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return readJSON[T](c.logger, c.backend, key)
}

func (c *GlobalCache) has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, err := c.backend.Get(key)
	return err == nil
}

func (c *GlobalCache) SetNativePrice(price float64) error {
	return c.set(nativePriceKey, price, price == 0)
}

func (c *GlobalCache) NativePrice() float64 {
	v, _ := get[float64](c, nativePriceKey)
	return v
}

// SetGasPrice stores the gas price in wei.
func (c *GlobalCache) SetGasPrice(wei *big.Int) error {
	return c.set(gasPriceKey, bigjson.New(wei), wei == nil)
}

// GasPrice returns the gas price in wei, nil when unknown.
func (c *GlobalCache) GasPrice() *big.Int {
	v, _ := get[*bigjson.Int](c, gasPriceKey)
	return v.Big()
}

func (c *GlobalCache) SetMaxPriorityFee(wei *big.Int) error {
	return c.set(maxPriorityFeeKey, bigjson.New(wei), wei == nil)
}

func (c *GlobalCache) MaxPriorityFee() *big.Int {
	v, _ := get[*bigjson.Int](c, maxPriorityFeeKey)
	return v.Big()
}

// SetFavoriteAddresses stores the favorites shown in the overview, lower cased.
func (c *GlobalCache) SetFavoriteAddresses(addresses []string) error {
	favs := make([]string, 0, len(addresses))
	for addr := range slices.Values(addresses) {
		if a := canonical(addr); a != "" {
			favs = append(favs, a)
		}
	}
	slices.Sort(favs)
	favs = slices.Compact(favs)
	return c.set(favoriteAddressesKey, favs, len(favs) == 0)
}

func (c *GlobalCache) FavoriteAddresses() []string {
	v, _ := get[[]string](c, favoriteAddressesKey)
	return v
}

func (c *GlobalCache) SetFavoriteTxns(groups []txrecord.Group) error {
	return c.set(favoriteTxnsKey, groups, len(groups) == 0)
}

func (c *GlobalCache) FavoriteTxns() []txrecord.Group {
	v, _ := get[[]txrecord.Group](c, favoriteTxnsKey)
	return v
}

// SetLastBlocks stores the most recent blocks, newest first.
func (c *GlobalCache) SetLastBlocks(blocks []BlockSummary) error {
	return c.set(lastBlocksKey, blocks, len(blocks) == 0)
}

func (c *GlobalCache) LastBlocks() []BlockSummary {
	v, _ := get[[]BlockSummary](c, lastBlocksKey)
	return v
}

// SetLastTxns stores the most recent transactions, newest first.
func (c *GlobalCache) SetLastTxns(txs []TxSummary) error {
	return c.set(lastTxnsKey, txs, len(txs) == 0)
}

func (c *GlobalCache) LastTxns() []TxSummary {
	v, _ := get[[]TxSummary](c, lastTxnsKey)
	return v
}

// SetLastUpdate records when the overview was last refreshed, in unix milliseconds.
func (c *GlobalCache) SetLastUpdate(ms int64) error {
	return c.set(lastUpdateKey, ms, ms == 0)
}

func (c *GlobalCache) LastUpdate() int64 {
	v, _ := get[int64](c, lastUpdateKey)
	return v
}

// HasData reports whether everything the overview needs is cached. Favorites may be empty
// and the price is optional.
func (c *GlobalCache) HasData() bool {
	return c.has(gasPriceKey) &&
		c.has(maxPriorityFeeKey) &&
		c.has(lastBlocksKey) &&
		c.has(lastTxnsKey) &&
		c.has(lastUpdateKey)
}

func (c *GlobalCache) HasDataWithPrice() bool {
	return c.HasData() && c.has(nativePriceKey)
}

func (c *GlobalCache) HasAnyData() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ok, err := hasAnyKey(c.backend, globalPrefix)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to list global cache keys")
		return false
	}
	return ok
}

func (c *GlobalCache) Clear() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := deletePrefix(c.backend, globalPrefix)
	if err != nil {
		return fmt.Errorf("clear global cache: %w", err)
	}
	return nil
}

func (c *GlobalCache) ClearFavorites() error {
	err := c.set(favoriteAddressesKey, nil, true)
	if err != nil {
		return err
	}
	return c.set(favoriteTxnsKey, nil, true)
}

// Snapshot returns every cached global fact.
func (c *GlobalCache) Snapshot() Overview {
	o := Overview{
		NativePrice:       c.NativePrice(),
		FavoriteAddresses: c.FavoriteAddresses(),
		FavoriteTxns:      c.FavoriteTxns(),
		LastBlocks:        c.LastBlocks(),
		LastTxns:          c.LastTxns(),
		LastUpdate:        c.LastUpdate(),
		Complete:          c.HasData(),
		WithPrice:         c.HasDataWithPrice(),
	}
	if gp := c.GasPrice(); gp != nil {
		o.GasPrice = bigjson.New(gp)
	}
	if fee := c.MaxPriorityFee(); fee != nil {
		o.MaxPriorityFee = bigjson.New(fee)
	}
	return o
}
