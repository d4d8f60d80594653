package rest

import (
	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/txrecord"
)

// request and response types are defined below
// these types can be defined as protobuf messages in a production system (specifically if using gRPC + gRPC-gateway)

type CreateSessionRequest struct {
	Addresses []string `json:"addresses"`
	PageSize  int      `json:"pageSize"`
}

type CreateSessionResponse struct {
	ID        string   `json:"id"`
	Addresses []string `json:"addresses"`
	PageSize  int      `json:"pageSize"`
}

type DeleteSessionRequest struct {
	ID string `json:"-" path:"id"`
}

type DeleteSessionResponse struct {
	Ok bool `json:"ok"`
}

type ShowPageRequest struct {
	ID        string `json:"-" path:"id"`
	Direction string `json:"-" path:"direction"`
	// Cached serves the first page from the cached transaction lists when every address has one.
	Cached bool `json:"-" query:"cached"`
}

type ShowPageResponse struct {
	Page      int              `json:"page"`
	FirstPage bool             `json:"firstPage"`
	LastPage  bool             `json:"lastPage"`
	Groups    []txrecord.Group `json:"groups"`
}

type FavoriteRequest struct {
	Address string `json:"-" path:"address"`
}

type FavoriteResponse struct {
	Ok bool `json:"ok"`
}

type ListFavoritesRequest struct{}

type ListFavoritesResponse struct {
	Addresses []string `json:"addresses"`
}

type GetCacheBackendRequest struct{}

type SetCacheBackendRequest struct {
	Kind string `json:"kind"`
}

type CacheBackendResponse struct {
	Kind string `json:"kind"`
}

type RefreshCacheRequest struct {
	Addresses []string `json:"addresses"`
}

type RefreshCacheResponse struct {
	Ok bool `json:"ok"`
}

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	cache.Overview
}

type SetNativePriceRequest struct {
	Price float64 `json:"price"`
}

type SetNativePriceResponse struct {
	Ok bool `json:"ok"`
}
