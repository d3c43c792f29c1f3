// Package model defines the entities served by the explorer API.
package model

// Block is a single row in a block listing.
type Block struct {
	BlockNumber       int64   `json:"block_number"`
	Slot              int64   `json:"slot"`
	Timestamp         float64 `json:"timestamp"`
	Leader            string  `json:"leader"`
	TransactionsCount int     `json:"transactions_count"`
}

// BlockDetails extends Block with the fields only present on the detail page.
type BlockDetails struct {
	Block
	ParentSlot        int64  `json:"parent_slot"`
	Blockhash         string `json:"blockhash"`
	PreviousBlockhash string `json:"previous_blockhash"`
}

// Transaction statuses.
const (
	TxStatusSuccess = "success"
	TxStatusFailed  = "failed"
)

// Transaction is a single row in a transaction listing.
type Transaction struct {
	Signature string  `json:"signature"`
	Slot      int64   `json:"slot"`
	Timestamp float64 `json:"timestamp"`
	Fee       int64   `json:"fee"`
	Status    string  `json:"status"`
	Signer    string  `json:"signer"`
}

// TransactionDetails extends Transaction with decoded instructions and
// token movements.
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

// Token is a single row in a token listing.
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

// TokenDetails extends Token with supply and descriptive metadata.
type TokenDetails struct {
	Token
	TotalSupply string  `json:"total_supply"`
	LogoURI     *string `json:"logo_uri,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Market is a single row in a market listing.
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

// MarketDetails extends Market with candle history and recent fills.
type MarketDetails struct {
	Market
	ChartData    []ChartPoint `json:"chart_data"`
	RecentTrades []Trade      `json:"recent_trades"`
}

// ChartPoint is one OHLCV candle.
type ChartPoint struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Trade is one recent fill on a market.
type Trade struct {
	Timestamp int64   `json:"timestamp"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
	Side      string  `json:"side"`
	Signature string  `json:"signature"`
}

// NetworkStats is the cluster-wide snapshot shown on the dashboard.
type NetworkStats struct {
	Slot              int64   `json:"slot"`
	BlockHeight       int64   `json:"block_height"`
	TPS               float64 `json:"tps"`
	Epoch             int64   `json:"epoch"`
	TotalSupply       float64 `json:"total_supply"`
	CirculatingSupply float64 `json:"circulating_supply"`
	AverageBlockTime  float64 `json:"average_block_time"`
}
