package client

import (
	"context"
	"fmt"
	"net/url"
)

// Blocks fetches a page of recent blocks.
func (c *Client) Blocks(ctx context.Context, page, limit int) (*BlocksPage, error) {
	var out BlocksPage
	if err := c.get(ctx, "/api/blocks", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Block fetches one block by number.
func (c *Client) Block(ctx context.Context, number int64) (*BlockDetails, error) {
	var out BlockDetails
	if err := c.get(ctx, fmt.Sprintf("/api/blocks/%d", number), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions fetches a page of recent transactions.
func (c *Client) Transactions(ctx context.Context, page, limit int) (*TransactionsPage, error) {
	var out TransactionsPage
	if err := c.get(ctx, "/api/transactions", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transaction fetches one transaction by signature.
func (c *Client) Transaction(ctx context.Context, signature string) (*TransactionDetails, error) {
	var out TransactionDetails
	if err := c.get(ctx, "/api/transactions/"+url.PathEscape(signature), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Address fetches account details for an address.
func (c *Client) Address(ctx context.Context, address string) (*AddressDetails, error) {
	var out AddressDetails
	if err := c.get(ctx, "/api/addresses/"+url.PathEscape(address), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddressTransactions fetches a page of transactions touching an address.
func (c *Client) AddressTransactions(ctx context.Context, address string, page, limit int) (*TransactionsPage, error) {
	var out TransactionsPage
	path := "/api/addresses/" + url.PathEscape(address) + "/transactions"
	if err := c.get(ctx, path, pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tokens fetches a page of tokens. sort may be empty for the default
// ordering.
func (c *Client) Tokens(ctx context.Context, page, limit int, sort string) (*TokensPage, error) {
	q := pageQuery(page, limit)
	if sort != "" {
		q.Set("sort", sort)
	}
	var out TokensPage
	if err := c.get(ctx, "/api/tokens", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Token fetches one token by mint.
func (c *Client) Token(ctx context.Context, mint string) (*TokenDetails, error) {
	var out TokenDetails
	if err := c.get(ctx, "/api/tokens/"+url.PathEscape(mint), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Markets fetches a page of markets.
func (c *Client) Markets(ctx context.Context, page, limit int) (*MarketsPage, error) {
	var out MarketsPage
	if err := c.get(ctx, "/api/markets", pageQuery(page, limit), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Market fetches one market by pair, e.g. "SOL/USDC".
func (c *Client) Market(ctx context.Context, pair string) (*MarketDetails, error) {
	var out MarketDetails
	if err := c.get(ctx, "/api/markets/"+url.PathEscape(pair), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NetworkStats fetches the network dashboard summary.
func (c *Client) NetworkStats(ctx context.Context) (*NetworkStats, error) {
	var out NetworkStats
	if err := c.get(ctx, "/api/network/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ads fetches the active ads for a banner slot.
func (c *Client) Ads(ctx context.Context, slot string) ([]Ad, error) {
	q := url.Values{}
	q.Set("slot", slot)
	var out struct {
		Ads []Ad `json:"ads"`
	}
	if err := c.get(ctx, "/api/ads", q, &out); err != nil {
		return nil, err
	}
	return out.Ads, nil
}
