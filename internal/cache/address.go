package cache

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/txrecord"
)

const (
	addressPrefix = "address/"
	favoritesKey  = addressPrefix + "favorites"
)

// Unit is one kind of per address artifact holding values of type T.
type Unit[T any] struct {
	name string
	// kept survives ClearAddressesForUpdate.
	kept bool
}

func (u Unit[T]) Name() string {
	return u.name
}

func (u Unit[T]) prefix() string {
	return addressPrefix + u.name + "/"
}

func (u Unit[T]) key(address string) string {
	return u.prefix() + canonical(address)
}

var (
	Tokens         = Unit[[]TokenBalance]{name: "tokens"}
	TokenInfos     = Unit[TokenInfo]{name: "tokenInfo"}
	TokenCreators  = Unit[ContractCreator]{name: "tokenCreator"}
	Names          = Unit[string]{name: "ens"}
	Unspents       = Unit[Unspent]{name: "unspent"}
	InternalTxs    = Unit[[]txrecord.Group]{name: "internalTransactions"}
	TokenTransfers = Unit[[]txrecord.Group]{name: "tokenTransfersTransactions", kept: true}
	UpdatedAt      = Unit[int64]{name: "updatedAtTimestamp"}
)

type unitInfo struct {
	name string
	kept bool
}

func info[T any](u Unit[T]) unitInfo {
	return unitInfo{name: u.name, kept: u.kept}
}

var units = []unitInfo{
	info(Tokens),
	info(TokenInfos),
	info(TokenCreators),
	info(Names),
	info(Unspents),
	info(InternalTxs),
	info(TokenTransfers),
	info(UpdatedAt),
}

func canonical(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// AddressCache keeps per address artifacts and the favorite addresses.
// Addresses are lower cased on every entry point.
type AddressCache struct {
	logger *logrus.Logger
	// mu is shared with the Manager: it is write locked while the backend is swapped.
	mu      *sync.RWMutex
	backend Backend
}

// NewAddressCache returns a cache writing to backend. Caches that may be migrated are
// created through a Manager instead.
func NewAddressCache(logger *logrus.Logger, backend Backend) *AddressCache {
	return &AddressCache{
		logger:  logger,
		mu:      &sync.RWMutex{},
		backend: backend,
	}
}

// Add stores v for address, replacing any previous value.
func Add[T any](c *AddressCache, u Unit[T], address string, v T) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := writeJSON(c.backend, u.key(address), v)
	if err != nil {
		return fmt.Errorf("add %s: %w", u.name, err)
	}
	return nil
}

// Get returns the value cached for address. Missing or unreadable values report false.
func Get[T any](c *AddressCache, u Unit[T], address string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return readJSON[T](c.logger, c.backend, u.key(address))
}

// Has reports whether a readable value is cached for address.
func Has[T any](c *AddressCache, u Unit[T], address string) bool {
	_, ok := Get(c, u, address)
	return ok
}

// Remove drops the value cached for address.
func Remove[T any](c *AddressCache, u Unit[T], address string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := c.backend.Delete(u.key(address))
	if err != nil {
		return fmt.Errorf("remove %s: %w", u.name, err)
	}
	return nil
}

// AddAll stores every value of values keyed by address.
func AddAll[T any](c *AddressCache, u Unit[T], values map[string]T) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for addr, v := range values {
		err := writeJSON(c.backend, u.key(addr), v)
		if err != nil {
			return fmt.Errorf("add all %s: %w", u.name, err)
		}
	}
	return nil
}

// GetAll returns every readable value of the unit keyed by address.
func GetAll[T any](c *AddressCache, u Unit[T]) map[string]T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]T)
	keys, err := c.backend.Keys(u.prefix())
	if err != nil {
		c.logger.WithError(err).WithField("unit", u.name).Warn("Failed to list cached addresses")
		return out
	}
	for k := range slices.Values(keys) {
		v, ok := readJSON[T](c.logger, c.backend, k)
		if !ok {
			continue
		}
		out[strings.TrimPrefix(k, u.prefix())] = v
	}

	return out
}

// HasForEveryAddress reports whether a value is cached for all the addresses.
func HasForEveryAddress[T any](c *AddressCache, u Unit[T], addresses []string) bool {
	for addr := range slices.Values(addresses) {
		if !Has(c, u, addr) {
			return false
		}
	}
	return true
}

// GetForAddresses returns the value cached for each address, the zero value where missing.
func GetForAddresses[T any](c *AddressCache, u Unit[T], addresses []string) map[string]T {
	out := make(map[string]T, len(addresses))
	for addr := range slices.Values(addresses) {
		v, _ := Get(c, u, addr)
		out[canonical(addr)] = v
	}
	return out
}

// AddInternalTransactions caches the latest known transaction groups of address.
func (c *AddressCache) AddInternalTransactions(address string, groups []txrecord.Group) error {
	return Add(c, InternalTxs, address, groups)
}

// CachedInternalTransactions returns the merged transaction groups of the addresses. It
// reports false unless every address has a cached list.
func (c *AddressCache) CachedInternalTransactions(addresses []string) ([]txrecord.Group, bool) {
	if len(addresses) == 0 {
		return nil, false
	}

	batches := make([][]txrecord.Group, 0, len(addresses))
	for addr := range slices.Values(addresses) {
		groups, ok := Get(c, InternalTxs, addr)
		if !ok {
			return nil, false
		}
		batches = append(batches, groups)
	}
	return txrecord.Merge(batches...), true
}

// Clear removes every per address artifact and keeps the favorites.
func (c *AddressCache) Clear() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for u := range slices.Values(units) {
		err := deletePrefix(c.backend, addressPrefix+u.name+"/")
		if err != nil {
			return fmt.Errorf("clear %s: %w", u.name, err)
		}
	}
	return nil
}

// ClearAll removes everything including the favorites.
func (c *AddressCache) ClearAll() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := deletePrefix(c.backend, addressPrefix)
	if err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	return nil
}

// ClearAddressesForUpdate drops the refreshable artifacts of the addresses. Token transfer
// lists are kept since they are only ever appended to.
func (c *AddressCache) ClearAddressesForUpdate(addresses []string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.deleteUnits(addresses, false)
}

// ClearFavorites drops every artifact of the favorite addresses and then the favorites.
func (c *AddressCache) ClearFavorites() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.deleteUnits(c.favorites(), true)
	if err != nil {
		return err
	}

	err = c.backend.Delete(favoritesKey)
	if err != nil {
		return fmt.Errorf("delete favorites: %w", err)
	}
	return nil
}

func (c *AddressCache) deleteUnits(addresses []string, includeKept bool) error {
	for u := range slices.Values(units) {
		if u.kept && !includeKept {
			continue
		}
		for addr := range slices.Values(addresses) {
			key := addressPrefix + u.name + "/" + canonical(addr)
			err := c.backend.Delete(key)
			if err != nil {
				return fmt.Errorf("delete %q: %w", key, err)
			}
		}
	}
	return nil
}

// AllCachedAddresses returns every address with at least one cached artifact, sorted.
func (c *AddressCache) AllCachedAddresses() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set := make(map[string]struct{})
	for u := range slices.Values(units) {
		prefix := addressPrefix + u.name + "/"
		keys, err := c.backend.Keys(prefix)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", u.name, err)
		}
		for k := range slices.Values(keys) {
			set[strings.TrimPrefix(k, prefix)] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set)), nil
}

// LowestUpdatedAt returns the oldest positive refresh timestamp of the addresses, 0 if none.
func (c *AddressCache) LowestUpdatedAt(addresses []string) int64 {
	var lowest int64
	for _, ts := range GetForAddresses(c, UpdatedAt, addresses) {
		if ts <= 0 {
			continue
		}
		if lowest == 0 || ts < lowest {
			lowest = ts
		}
	}
	return lowest
}

// SetUpdatedAtForAddresses records ts as the refresh time of all the addresses.
func (c *AddressCache) SetUpdatedAtForAddresses(addresses []string, ts int64) error {
	for addr := range slices.Values(addresses) {
		err := Add(c, UpdatedAt, addr, ts)
		if err != nil {
			return err
		}
	}
	return nil
}

// Favorites returns the favorite addresses, sorted.
func (c *AddressCache) Favorites() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.favorites()
}

func (c *AddressCache) favorites() []string {
	favs, _ := readJSON[[]string](c.logger, c.backend, favoritesKey)
	return favs
}

func (c *AddressCache) IsFavorite(address string) bool {
	return slices.Contains(c.Favorites(), canonical(address))
}

func (c *AddressCache) AddFavorite(address string) error {
	return c.AddAllFavorites([]string{address})
}

// AddAllFavorites adds the addresses to the favorites.
func (c *AddressCache) AddAllFavorites(addresses []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	favs := c.favorites()
	for addr := range slices.Values(addresses) {
		if a := canonical(addr); a != "" {
			favs = append(favs, a)
		}
	}
	slices.Sort(favs)

	return c.saveFavorites(slices.Compact(favs))
}

func (c *AddressCache) RemoveFavorite(address string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	favs := slices.DeleteFunc(c.favorites(), func(a string) bool {
		return a == canonical(address)
	})
	return c.saveFavorites(favs)
}

func (c *AddressCache) saveFavorites(favs []string) error {
	if len(favs) == 0 {
		err := c.backend.Delete(favoritesKey)
		if err != nil {
			return fmt.Errorf("delete favorites: %w", err)
		}
		return nil
	}

	err := writeJSON(c.backend, favoritesKey, favs)
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
