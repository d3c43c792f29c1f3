package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Search result kinds.
const (
	SearchBlock       = "block"
	SearchTransaction = "transaction"
	SearchAddress     = "address"
	SearchToken       = "token"
	SearchUnknown     = "unknown"
)

// SearchResult is a tagged union over the possible search outcomes.
// Exactly one payload field matching Type is non-nil; a not-found outcome
// has Type SearchUnknown and no payload.
type SearchResult struct {
	Type        string
	Block       *BlockDetails
	Transaction *TransactionDetails
	Address     *AddressDetails
	Token       *TokenDetails
}

// Search classifies a free-text query server-side and returns the matched
// entity. A blank query fails with ErrEmptyQuery before any network call.
// An unmatched query returns a SearchUnknown result rather than an error.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	q := url.Values{}
	q.Set("q", query)

	var raw struct {
		Type   string          `json:"type"`
		Result json.RawMessage `json:"result"`
	}
	if err := c.get(ctx, "/api/search", q, &raw); err != nil {
		if IsNotFound(err) {
			return &SearchResult{Type: SearchUnknown}, nil
		}
		return nil, err
	}

	result := &SearchResult{Type: raw.Type}
	switch raw.Type {
	case SearchBlock:
		result.Block = new(BlockDetails)
		return result, json.Unmarshal(raw.Result, result.Block)
	case SearchTransaction:
		result.Transaction = new(TransactionDetails)
		return result, json.Unmarshal(raw.Result, result.Transaction)
	case SearchAddress:
		result.Address = new(AddressDetails)
		return result, json.Unmarshal(raw.Result, result.Address)
	case SearchToken:
		result.Token = new(TokenDetails)
		return result, json.Unmarshal(raw.Result, result.Token)
	default:
		result.Type = SearchUnknown
		return result, nil
	}
}
