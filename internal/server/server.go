// Package server wires the explorer REST API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lumenscan/explorer-backend/internal/auth"
	"github.com/lumenscan/explorer-backend/internal/cache"
	"github.com/lumenscan/explorer-backend/internal/middleware"
	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

// Source supplies chain-side read data. The mock source satisfies it today;
// a real indexing service replaces it without touching the handlers.
type Source interface {
	Blocks(ctx context.Context, page, limit int) ([]model.Block, int64, error)
	Block(ctx context.Context, number int64) (model.BlockDetails, error)
	Transactions(ctx context.Context, page, limit int) ([]model.Transaction, int64, error)
	Transaction(ctx context.Context, signature string) (model.TransactionDetails, error)
	Address(ctx context.Context, address string) (model.AddressDetails, error)
	AddressTransactions(ctx context.Context, address string, page, limit int) ([]model.Transaction, int64, error)
	Tokens(ctx context.Context, page, limit int, sort string) ([]model.Token, int64, error)
	Token(ctx context.Context, mint string) (model.TokenDetails, error)
	Markets(ctx context.Context, page, limit int, sort string) ([]model.Market, int64, error)
	Market(ctx context.Context, pair string) (model.MarketDetails, error)
	NetworkStats(ctx context.Context) (model.NetworkStats, error)
}

// Server bundles the HTTP endpoints of the explorer API.
type Server struct {
	source   Source
	store    storage.Store
	tokens   *auth.Manager
	cache    *cache.Cache
	logger   *zap.Logger
	registry *prometheus.Registry

	corsOrigins []string
	rateRPS     int
	rateBurst   int
}

// Options configure a Server.
type Options struct {
	Source      Source
	Store       storage.Store
	Tokens      *auth.Manager
	Cache       *cache.Cache // nil disables caching
	Logger      *zap.Logger
	CORSOrigins []string
	RateRPS     int
	RateBurst   int
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.RateRPS == 0 {
		opts.RateRPS = 50
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 100
	}
	return &Server{
		source:      opts.Source,
		store:       opts.Store,
		tokens:      opts.Tokens,
		cache:       opts.Cache,
		logger:      opts.Logger,
		registry:    prometheus.NewRegistry(),
		corsOrigins: opts.CORSOrigins,
		rateRPS:     opts.RateRPS,
		rateBurst:   opts.RateBurst,
	}
}

// Handler builds the routing table and middleware chain.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	metrics := middleware.NewMetrics(s.registry)
	r.Use(middleware.RequestLogger(s.logger), metrics.Handler)
	r.Use(middleware.NewRateLimiter(s.rateRPS, s.rateBurst).Handler)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Explorer reads (public).
	api.HandleFunc("/blocks", s.listBlocks).Methods(http.MethodGet)
	api.HandleFunc("/blocks/{number}", s.getBlock).Methods(http.MethodGet)
	api.HandleFunc("/transactions", s.listTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{signature}", s.getTransaction).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{address}", s.getAddress).Methods(http.MethodGet)
	api.HandleFunc("/addresses/{address}/transactions", s.listAddressTransactions).Methods(http.MethodGet)
	api.HandleFunc("/tokens", s.listTokens).Methods(http.MethodGet)
	api.HandleFunc("/tokens/{mint}", s.getToken).Methods(http.MethodGet)
	api.HandleFunc("/markets", s.listMarkets).Methods(http.MethodGet)
	api.HandleFunc("/markets/{pair}", s.getMarket).Methods(http.MethodGet)
	api.HandleFunc("/network/stats", s.networkStats).Methods(http.MethodGet)
	api.HandleFunc("/search", s.search).Methods(http.MethodGet)
	api.HandleFunc("/ads", s.listActiveAds).Methods(http.MethodGet)

	// Auth.
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)

	authMW := middleware.NewAuth(s.store, s.tokens, s.logger)

	// User-scoped resources.
	user := api.PathPrefix("/user").Subrouter()
	user.Use(authMW.Handler)
	user.HandleFunc("/profile", s.getProfile).Methods(http.MethodGet)
	user.HandleFunc("/profile", s.updateProfile).Methods(http.MethodPut)
	user.HandleFunc("/api-keys", s.listAPIKeys).Methods(http.MethodGet)
	user.HandleFunc("/api-keys", s.createAPIKey).Methods(http.MethodPost)
	user.HandleFunc("/api-keys/{id}", s.deleteAPIKey).Methods(http.MethodDelete)
	user.HandleFunc("/watchlist", s.listWatchlist).Methods(http.MethodGet)
	user.HandleFunc("/watchlist", s.addWatchlistItem).Methods(http.MethodPost)
	user.HandleFunc("/watchlist/{id}", s.removeWatchlistItem).Methods(http.MethodDelete)

	// Admin-scoped resources.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.Handler, middleware.RequireAdmin)
	admin.HandleFunc("/users", s.adminListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", s.adminUpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/ads", s.adminListAds).Methods(http.MethodGet)
	admin.HandleFunc("/ads", s.adminCreateAd).Methods(http.MethodPost)
	admin.HandleFunc("/ads/{id}", s.adminUpdateAd).Methods(http.MethodPut)
	admin.HandleFunc("/ads/{id}", s.adminDeleteAd).Methods(http.MethodDelete)

	// CORS wraps the whole router so preflight requests are answered
	// even for paths with no OPTIONS route.
	return middleware.NewCORS(s.corsOrigins).Handler(r)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "explorer-backend",
		"timestamp": time.Now().Unix(),
	})
}
