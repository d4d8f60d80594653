package rest

import (
	"context"
	"errors"
	"math"
	"net/http"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/paging"
	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/txrecord"
)

const (
	// InvalidAddrMessage is returned when users make a request with an invalid addr.
	InvalidAddrMessage = "Invalid Ethereum address. Expected a 40-character hex string, with or without '0x' prefix. Example: 0x12ab34cd56ef7890a1234567890abcdef1234567"

	DefaultPageSize = 25
	MaxPageSize     = 100
)

type SessionStore interface {
	CreateSession(ctx context.Context, session *store.Session) (string, error)
	GetSession(ctx context.Context, id string) (*store.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type AddressCache interface {
	AddInternalTransactions(address string, groups []txrecord.Group) error
	CachedInternalTransactions(addresses []string) ([]txrecord.Group, bool)
	Favorites() []string
	AddFavorite(address string) error
	RemoveFavorite(address string) error
	ClearAddressesForUpdate(addresses []string) error
}

type GlobalCache interface {
	Snapshot() cache.Overview
	SetFavoriteAddresses(addresses []string) error
	SetNativePrice(price float64) error
}

type CacheManager interface {
	Kind() (store.Kind, error)
	MigrateTo(kind store.Kind) error
}

type Server struct {
	logger    *logrus.Logger
	source    paging.Source
	sessions  SessionStore
	addresses AddressCache
	global    GlobalCache
	caches    CacheManager
}

func NewServer(logger *logrus.Logger, source paging.Source, sessions SessionStore, addresses AddressCache, global GlobalCache, caches CacheManager) *Server {
	return &Server{
		logger:    logger,
		source:    source,
		sessions:  sessions,
		addresses: addresses,
		global:    global,
		caches:    caches,
	}
}

func (s *Server) CreateSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addresses", req.Addresses)

	addresses, errResp := normalizeAddresses(req.Addresses)
	if errResp != nil {
		logger.WithField("reason", errResp.Message).Warn("Invalid addresses provided to create a session")
		return nil, errResp
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		logger.WithField("page_size", req.PageSize).Warn("Invalid page size provided to create a session")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'pageSize': must be between 1 and %d", MaxPageSize)
	}

	var (
		pager store.Pager
		err   error
	)
	if len(addresses) == 1 {
		pager, err = paging.New(s.logger, s.source, addresses[0], pageSize)
	} else {
		pager, err = paging.NewMulti(s.logger, s.source, addresses, pageSize, paging.WithInternalTxCache(s.addresses))
	}
	if err != nil {
		logger.WithError(err).Error("Failed to create paginator")
		return nil, NewErrf(http.StatusInternalServerError, "Could not create paginator")
	}

	session := &store.Session{
		Addresses: addresses,
		PageSize:  pageSize,
		Pager:     pager,
	}
	id, err := s.sessions.CreateSession(ctx, session)
	if err != nil {
		logger.WithError(err).Error("Failed to store session")
		return nil, NewErrf(http.StatusInternalServerError, "Could not create session")
	}

	logger.WithField("session_id", id).Debug("Created paging session")
	return &CreateSessionResponse{
		ID:        id,
		Addresses: addresses,
		PageSize:  pageSize,
	}, nil
}

func (s *Server) DeleteSession(ctx context.Context, req *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("session_id", req.ID)

	err := s.sessions.DeleteSession(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewErrf(http.StatusNotFound, "Session not found")
		}
		logger.WithError(err).Error("Failed to delete session")
		return nil, NewErrf(http.StatusInternalServerError, "Could not delete session")
	}

	return &DeleteSessionResponse{
		Ok: true,
	}, nil
}

func (s *Server) ShowPage(ctx context.Context, req *ShowPageRequest) (*ShowPageResponse, error) {
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": req.ID,
		"direction":  req.Direction,
	})

	session, err := s.sessions.GetSession(ctx, req.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Warn("Page requested for an unknown session")
			return nil, NewErrf(http.StatusNotFound, "Session not found")
		}
		logger.WithError(err).Error("Failed to get session")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get session")
	}

	// one navigation action at a time per session
	session.Lock()
	defer session.Unlock()

	var groups []txrecord.Group
	switch req.Direction {
	case "first":
		var (
			cached []txrecord.Group
			ok     bool
		)
		if req.Cached {
			cached, ok = s.addresses.CachedInternalTransactions(session.Addresses)
		}
		if ok {
			groups, err = session.Pager.ShowFirstPageWith(ctx, cached)
		} else {
			groups, err = session.Pager.ShowFirstPage(ctx)
		}
	case "last":
		groups, err = session.Pager.ShowLastPage(ctx)
	case "next":
		groups, err = session.Pager.ShowNextPage(ctx)
	case "prev":
		groups, err = session.Pager.ShowPrevPage(ctx)
	default:
		logger.Warn("Unknown page direction")
		return nil, NewErrf(http.StatusBadRequest, "Invalid direction %q: expected one of first, last, next, prev", req.Direction)
	}
	if err != nil {
		if errors.Is(err, paging.ErrNotLoaded) {
			return nil, NewErrf(http.StatusConflict, "No page loaded yet, request the first or last page before navigating")
		}
		logger.WithError(err).Error("Failed to load page")
		return nil, NewErrf(http.StatusBadGateway, "Could not load transactions from the node")
	}

	status := session.Pager.Status()
	if groups == nil {
		groups = []txrecord.Group{}
	}
	return &ShowPageResponse{
		Page:      status.Page,
		FirstPage: status.FirstPage,
		LastPage:  status.LastPage,
		Groups:    groups,
	}, nil
}

func (s *Server) AddFavorite(ctx context.Context, req *FavoriteRequest) (*FavoriteResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, valid := validateAndNormalizeAddress(req.Address)
	if !valid {
		logger.Warn("Invalid address provided to add to favorites")
		return nil, NewErrf(http.StatusBadRequest, InvalidAddrMessage)
	}

	err := s.addresses.AddFavorite(addr)
	if err != nil {
		logger.WithError(err).Error("Failed to add favorite address")
		return nil, NewErrf(http.StatusInternalServerError, "Could not add favorite address")
	}
	err = s.syncOverviewFavorites()
	if err != nil {
		logger.WithError(err).Error("Failed to update overview favorites")
		return nil, NewErrf(http.StatusInternalServerError, "Could not add favorite address")
	}

	return &FavoriteResponse{
		Ok: true,
	}, nil
}

func (s *Server) RemoveFavorite(ctx context.Context, req *FavoriteRequest) (*FavoriteResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addr", req.Address)

	addr, valid := validateAndNormalizeAddress(req.Address)
	if !valid {
		logger.Warn("Invalid address provided to remove from favorites")
		return nil, NewErrf(http.StatusBadRequest, InvalidAddrMessage)
	}

	err := s.addresses.RemoveFavorite(addr)
	if err != nil {
		logger.WithError(err).Error("Failed to remove favorite address")
		return nil, NewErrf(http.StatusInternalServerError, "Could not remove favorite address")
	}
	err = s.syncOverviewFavorites()
	if err != nil {
		logger.WithError(err).Error("Failed to update overview favorites")
		return nil, NewErrf(http.StatusInternalServerError, "Could not remove favorite address")
	}

	return &FavoriteResponse{
		Ok: true,
	}, nil
}

// syncOverviewFavorites copies the favorite set into the overview, whose favorite transactions
// are rebuilt from it on every new block.
func (s *Server) syncOverviewFavorites() error {
	return s.global.SetFavoriteAddresses(s.addresses.Favorites())
}

func (s *Server) ListFavorites(_ context.Context, _ *ListFavoritesRequest) (*ListFavoritesResponse, error) {
	favs := s.addresses.Favorites()
	if favs == nil {
		favs = []string{}
	}
	return &ListFavoritesResponse{
		Addresses: favs,
	}, nil
}

func (s *Server) GetCacheBackend(ctx context.Context, _ *GetCacheBackendRequest) (*CacheBackendResponse, error) {
	logger := s.logger.WithContext(ctx)

	kind, err := s.caches.Kind()
	if errors.Is(err, cache.ErrBackendMismatch) {
		logger.WithError(err).Warn("Cache backends were out of sync and have been reset")
		kind, err = s.caches.Kind()
	}
	if err != nil {
		logger.WithError(err).Error("Failed to get cache backend")
		return nil, NewErrf(http.StatusInternalServerError, "Could not get cache backend")
	}

	return &CacheBackendResponse{
		Kind: string(kind),
	}, nil
}

func (s *Server) SetCacheBackend(ctx context.Context, req *SetCacheBackendRequest) (*CacheBackendResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("kind", req.Kind)

	kind := store.Kind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !kind.Valid() {
		logger.Warn("Invalid cache backend requested")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'kind': expected %q or %q", store.KindTransient, store.KindDurable)
	}

	err := s.caches.MigrateTo(kind)
	if err != nil {
		if errors.Is(err, cache.ErrUnknownKind) {
			logger.Warn("Requested cache backend is not configured")
			return nil, NewErrf(http.StatusBadRequest, "Cache backend %q is not configured", kind)
		}
		logger.WithError(err).Error("Failed to migrate cache")
		return nil, NewErrf(http.StatusInternalServerError, "Could not migrate cache")
	}

	logger.Info("Cache backend changed")
	return &CacheBackendResponse{
		Kind: string(kind),
	}, nil
}

func (s *Server) RefreshCache(ctx context.Context, req *RefreshCacheRequest) (*RefreshCacheResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("addresses", req.Addresses)

	addresses, errResp := normalizeAddresses(req.Addresses)
	if errResp != nil {
		logger.WithField("reason", errResp.Message).Warn("Invalid addresses provided to refresh")
		return nil, errResp
	}

	err := s.addresses.ClearAddressesForUpdate(addresses)
	if err != nil {
		logger.WithError(err).Error("Failed to clear cached addresses")
		return nil, NewErrf(http.StatusInternalServerError, "Could not clear cached addresses")
	}

	return &RefreshCacheResponse{
		Ok: true,
	}, nil
}

func (s *Server) GetOverview(_ context.Context, _ *GetOverviewRequest) (*GetOverviewResponse, error) {
	return &GetOverviewResponse{
		Overview: s.global.Snapshot(),
	}, nil
}

// SetNativePrice records the native token price pushed by an external price feed. Zero clears it.
func (s *Server) SetNativePrice(ctx context.Context, req *SetNativePriceRequest) (*SetNativePriceResponse, error) {
	logger := s.logger.WithContext(ctx).WithField("price", req.Price)

	if req.Price < 0 || math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		logger.Warn("Invalid native price provided")
		return nil, NewErrf(http.StatusBadRequest, "Invalid 'price': must be a non negative number")
	}

	err := s.global.SetNativePrice(req.Price)
	if err != nil {
		logger.WithError(err).Error("Failed to store native price")
		return nil, NewErrf(http.StatusInternalServerError, "Could not store native price")
	}

	return &SetNativePriceResponse{
		Ok: true,
	}, nil
}

// normalizeAddresses validates, lower cases and deduplicates the addresses.
func normalizeAddresses(addresses []string) ([]string, *Err) {
	if len(addresses) == 0 {
		return nil, NewErrf(http.StatusBadRequest, "Missing required field: 'addresses'")
	}

	out := make([]string, 0, len(addresses))
	for addr := range slices.Values(addresses) {
		normalized, valid := validateAndNormalizeAddress(addr)
		if !valid {
			return nil, NewErrf(http.StatusBadRequest, InvalidAddrMessage)
		}
		out = append(out, normalized)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

func validateAndNormalizeAddress(addr string) (string, bool) {
	addr = strings.ToLower(strings.TrimSpace(addr))
	if !strings.HasPrefix(addr, "0x") {
		addr = "0x" + addr
	}
	if !common.IsHexAddress(addr) {
		return "", false
	}
	return addr, true
}
