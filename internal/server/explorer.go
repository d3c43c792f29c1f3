package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

type blocksResponse struct {
	Blocks []model.Block `json:"blocks"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

type transactionsResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Total        int64               `json:"total"`
	Page         int                 `json:"page"`
	Limit        int                 `json:"limit"`
}

type tokensResponse struct {
	Tokens []model.Token `json:"tokens"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

type marketsResponse struct {
	Markets []model.Market `json:"markets"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

func (s *Server) listBlocks(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	blocks, total, err := s.source.Blocks(r.Context(), page, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blocksResponse{Blocks: blocks, Total: total, Page: page, Limit: limit})
}

func (s *Server) getBlock(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(mux.Vars(r)["number"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid block number")
		return
	}
	block, err := s.source.Block(r.Context(), number)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	txs, total, err := s.source.Transactions(r.Context(), page, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionsResponse{Transactions: txs, Total: total, Page: page, Limit: limit})
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.source.Transaction(r.Context(), mux.Vars(r)["signature"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (s *Server) getAddress(w http.ResponseWriter, r *http.Request) {
	addr, err := s.source.Address(r.Context(), mux.Vars(r)["address"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (s *Server) listAddressTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	txs, total, err := s.source.AddressTransactions(r.Context(), mux.Vars(r)["address"], page, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transactionsResponse{Transactions: txs, Total: total, Page: page, Limit: limit})
}

func (s *Server) listTokens(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	sort := r.URL.Query().Get("sort")

	key := fmt.Sprintf("tokens:%d:%d:%s", page, limit, sort)
	var cached tokensResponse
	if s.cache.Get(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	tokens, total, err := s.source.Tokens(r.Context(), page, limit, sort)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := tokensResponse{Tokens: tokens, Total: total, Page: page, Limit: limit}
	s.cache.Set(r.Context(), key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getToken(w http.ResponseWriter, r *http.Request) {
	token, err := s.source.Token(r.Context(), mux.Vars(r)["mint"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (s *Server) listMarkets(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	sort := r.URL.Query().Get("sort")

	key := fmt.Sprintf("markets:%d:%d:%s", page, limit, sort)
	var cached marketsResponse
	if s.cache.Get(r.Context(), key, &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	markets, total, err := s.source.Markets(r.Context(), page, limit, sort)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	resp := marketsResponse{Markets: markets, Total: total, Page: page, Limit: limit}
	s.cache.Set(r.Context(), key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getMarket(w http.ResponseWriter, r *http.Request) {
	market, err := s.source.Market(r.Context(), mux.Vars(r)["pair"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, market)
}

func (s *Server) networkStats(w http.ResponseWriter, r *http.Request) {
	var cached model.NetworkStats
	if s.cache.Get(r.Context(), "network:stats", &cached) {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	stats, err := s.source.NetworkStats(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.cache.Set(r.Context(), "network:stats", stats)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) listActiveAds(w http.ResponseWriter, r *http.Request) {
	slot := r.URL.Query().Get("slot")
	ads, err := s.store.ListActiveAdsBySlot(r.Context(), slot)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			ads = []model.Ad{}
		} else {
			writeStoreError(w, err)
			return
		}
	}
	if ads == nil {
		ads = []model.Ad{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ads": ads})
}
