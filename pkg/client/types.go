package client

import "time"

// Block is one row of the block list.
type Block struct {
	BlockNumber       int64   `json:"block_number"`
	Slot              int64   `json:"slot"`
	Timestamp         float64 `json:"timestamp"`
	Leader            string  `json:"leader"`
	TransactionsCount int     `json:"transactions_count"`
}

// BlockDetails extends Block with chain linkage fields.
type BlockDetails struct {
	Block
	ParentSlot        int64  `json:"parent_slot"`
	Blockhash         string `json:"blockhash"`
	PreviousBlockhash string `json:"previous_blockhash"`
}

// Transaction is one row of the transaction list.
type Transaction struct {
	Signature string  `json:"signature"`
	Slot      int64   `json:"slot"`
	Timestamp float64 `json:"timestamp"`
	Fee       int64   `json:"fee"`
	Status    string  `json:"status"`
	Signer    string  `json:"signer"`
}

// TransactionDetails extends Transaction with its decoded contents.
type TransactionDetails struct {
	Transaction
	Instructions   []Instruction   `json:"instructions"`
	TokenTransfers []TokenTransfer `json:"token_transfers"`
}

// Instruction is one program invocation inside a transaction.
type Instruction struct {
	Program  string   `json:"program"`
	Data     string   `json:"data"`
	Accounts []string `json:"accounts"`
}

// TokenTransfer is one token movement inside a transaction.
type TokenTransfer struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Amount   string `json:"amount"`
	Token    string `json:"token"`
	Decimals int    `json:"decimals"`
}

// AddressDetails describes an on-chain account.
type AddressDetails struct {
	Address          string         `json:"address"`
	Balance          float64        `json:"balance"`
	Type             string         `json:"type"`
	Tokens           []TokenBalance `json:"tokens"`
	TransactionCount int            `json:"transaction_count"`
}

// TokenBalance is one token holding of an address.
type TokenBalance struct {
	Mint     string   `json:"mint"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Balance  string   `json:"balance"`
	Decimals int      `json:"decimals"`
	USDValue *float64 `json:"usd_value,omitempty"`
}

// Token is one row of the token list.
type Token struct {
	Mint           string  `json:"mint"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"`
	Volume24h      float64 `json:"volume_24h"`
	MarketCap      float64 `json:"market_cap"`
	Holders        int64   `json:"holders"`
	Decimals       int     `json:"decimals"`
}

// TokenDetails extends Token with supply and display metadata.
type TokenDetails struct {
	Token
	TotalSupply string  `json:"total_supply"`
	LogoURI     *string `json:"logo_uri,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Market is one row of the market list.
type Market struct {
	Pair           string  `json:"pair"`
	BaseToken      string  `json:"base_token"`
	QuoteToken     string  `json:"quote_token"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"`
	Volume24h      float64 `json:"volume_24h"`
	Liquidity      float64 `json:"liquidity"`
	High24h        float64 `json:"high_24h"`
	Low24h         float64 `json:"low_24h"`
	Dex            string  `json:"dex"`
}

// MarketDetails extends Market with chart and trade history.
type MarketDetails struct {
	Market
	ChartData    []ChartPoint `json:"chart_data"`
	RecentTrades []Trade      `json:"recent_trades"`
}

// ChartPoint is one OHLC candle.
type ChartPoint struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Trade is one fill on a market.
type Trade struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
	Side      string  `json:"side"`
	Signature string  `json:"signature"`
}

// NetworkStats is the network-level dashboard summary.
type NetworkStats struct {
	Slot              int64   `json:"slot"`
	BlockHeight       int64   `json:"block_height"`
	TPS               float64 `json:"tps"`
	Epoch             int64   `json:"epoch"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingSupply float64 `json:"circulating_supply"`
	AverageBlockTime  float64 `json:"average_block_time"`
}

// User is an account as the API reports it.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Username  *string `json:"username,omitempty"`
	Role      string  `json:"role"`
	Status    string  `json:"status,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// APIKey is a developer-portal key. Key is only set on the create
// response.
type APIKey struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Key          string `json:"key,omitempty"`
	Plan         string `json:"plan"`
	RateLimit    int    `json:"rate_limit"`
	RequestsUsed int    `json:"requests_used"`
	Active       bool   `json:"active"`
}

// WatchlistItem is one entry on the signed-in user's watchlist.
type WatchlistItem struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Address string    `json:"address"`
	Name    *string   `json:"name,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// Ad is a banner placement.
type Ad struct {
	ID          string  `json:"id"`
	Slot        string  `json:"slot"`
	ImageURL    string  `json:"image_url"`
	LinkURL     string  `json:"link_url"`
	Label       *string `json:"label,omitempty"`
	Active      bool    `json:"active"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
}

// BlocksPage is the paginated block list envelope.
type BlocksPage struct {
	Blocks []Block `json:"blocks"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// TransactionsPage is the paginated transaction list envelope.
type TransactionsPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}

// TokensPage is the paginated token list envelope.
type TokensPage struct {
	Tokens []Token `json:"tokens"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// MarketsPage is the paginated market list envelope.
type MarketsPage struct {
	Markets []Market `json:"markets"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

// UsersPage is the paginated admin user list envelope.
type UsersPage struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// AuthResponse is returned by Register and Login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
