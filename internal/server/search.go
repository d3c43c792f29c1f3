package server

import (
	"net/http"
	"strings"
)

// Signature lookups are 87 or 88 characters; addresses run 32-44. The
// search endpoint classifies in a fixed priority order so the frontend
// always routes a given query to the same detail page.
const (
	searchAddressMinLen = 32
	searchSigLenShort   = 87
	searchSigLenLong    = 88
)

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	switch {
	case isAllDigits(query):
		block, err := s.source.Block(r.Context(), parseSlot(query))
		if err != nil {
			s.searchMiss(w, query)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": "block", "result": block})

	case len(query) == searchSigLenShort || len(query) == searchSigLenLong:
		tx, err := s.source.Transaction(r.Context(), query)
		if err != nil {
			s.searchMiss(w, query)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": "transaction", "result": tx})

	case len(query) > searchAddressMinLen:
		addr, err := s.source.Address(r.Context(), query)
		if err != nil {
			s.searchMiss(w, query)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": "address", "result": addr})

	default:
		s.searchMiss(w, query)
	}
}

func (s *Server) searchMiss(w http.ResponseWriter, query string) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "no results found",
		"query": query,
	})
}

func parseSlot(s string) int64 {
	var n int64
	for _, r := range s {
		n = n*10 + int64(r-'0')
		if n < 0 {
			return -1
		}
	}
	return n
}
