// Package mockdata synthesizes plausible explorer data. It stands in for a
// real indexing service: values are drawn independently per call, but every
// response honors the wire contract of the API (envelope shape, descending
// slots, detail supersets).
package mockdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lumenscan/explorer-backend/internal/model"
	"github.com/lumenscan/explorer-backend/internal/storage"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// baseSlot anchors the synthetic chain tip.
const baseSlot = 287_654_321

// slotTime is the nominal slot interval.
const slotTime = 400 * time.Millisecond

var popularTokens = []struct {
	Name   string
	Symbol string
	Mint   string
}{
	{"Solana", "SOL", "So11111111111111111111111111111111111111112"},
	{"USD Coin", "USDC", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"},
	{"Tether USD", "USDT", "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"},
	{"Bonk", "BONK", "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263"},
	{"Jupiter", "JUP", "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"},
	{"Pyth Network", "PYTH", "HZ1JovNiVvGrGNiiYvEozEVgZ58xaU3RKwX8eACQBCt3"},
	{"Raydium", "RAY", "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R"},
	{"Orca", "ORCA", "orcaEKTdK7LKz57vaAYr9QeNsVEPfiu6QeMU1kektZE"},
}

var marketPairs = []string{
	"SOL/USDC", "SOL/USDT", "BONK/USDC", "JUP/USDC",
	"RAY/USDC", "ORCA/USDC", "PYTH/USDC", "mSOL/SOL",
}

var dexes = []string{"Raydium", "Orca", "Phoenix", "Meteora"}

// Source synthesizes explorer data.
type Source struct {
	started time.Time
}

// NewSource creates a mock data source.
func NewSource() *Source {
	return &Source{started: time.Now()}
}

// tip returns the current synthetic chain tip, advancing one slot per
// nominal slot interval since startup.
func (s *Source) tip() int64 {
	return baseSlot + int64(time.Since(s.started)/slotTime)
}

func randBase58(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base58Alphabet[rand.Intn(len(base58Alphabet))])
	}
	return b.String()
}

func (s *Source) blockAt(slot int64, age time.Duration) model.Block {
	return model.Block{
		BlockNumber:       slot,
		Slot:              slot,
		Timestamp:         float64(time.Now().Add(-age).UnixMilli()) / 1000,
		Leader:            fmt.Sprintf("Validator%d...", rand.Intn(100)),
		TransactionsCount: rand.Intn(500) + 100,
	}
}

// Blocks returns one page of blocks, slots strictly descending from the tip.
func (s *Source) Blocks(_ context.Context, page, limit int) ([]model.Block, int64, error) {
	tip := s.tip()
	blocks := make([]model.Block, 0, limit)
	for i := 0; i < limit; i++ {
		slot := tip - int64(page-1)*int64(limit) - int64(i)
		blocks = append(blocks, s.blockAt(slot, time.Duration(i)*slotTime))
	}
	return blocks, tip, nil
}

// Block returns the details of a single block.
func (s *Source) Block(_ context.Context, number int64) (model.BlockDetails, error) {
	if number <= 0 || number > s.tip() {
		return model.BlockDetails{}, storage.ErrNotFound
	}
	return model.BlockDetails{
		Block:             s.blockAt(number, 0),
		ParentSlot:        number - 1,
		Blockhash:         randBase58(44),
		PreviousBlockhash: randBase58(44),
	}, nil
}

func (s *Source) transactionAt(slot int64, age time.Duration) model.Transaction {
	status := model.TxStatusSuccess
	if rand.Float64() < 0.1 {
		status = model.TxStatusFailed
	}
	return model.Transaction{
		Signature: randBase58(88),
		Slot:      slot,
		Timestamp: float64(time.Now().Add(-age).UnixMilli()) / 1000,
		Fee:       int64(rand.Intn(10000)),
		Status:    status,
		Signer:    "Wallet" + randBase58(8) + "...",
	}
}

// Transactions returns one page of recent transactions.
func (s *Source) Transactions(_ context.Context, page, limit int) ([]model.Transaction, int64, error) {
	tip := s.tip()
	txs := make([]model.Transaction, 0, limit)
	for i := 0; i < limit; i++ {
		txs = append(txs, s.transactionAt(tip-int64(i), time.Duration(i)*2*slotTime))
	}
	return txs, 1_000_000, nil
}

// Transaction returns the details of a single transaction.
func (s *Source) Transaction(_ context.Context, signature string) (model.TransactionDetails, error) {
	if len(signature) < 32 {
		return model.TransactionDetails{}, storage.ErrNotFound
	}
	tx := s.transactionAt(s.tip()-int64(rand.Intn(100)), 0)
	tx.Signature = signature

	instructions := make([]model.Instruction, 0, 3)
	for i := 0; i < rand.Intn(3)+1; i++ {
		instructions = append(instructions, model.Instruction{
			Program:  []string{"System Program", "Token Program", "Compute Budget"}[rand.Intn(3)],
			Data:     randBase58(24),
			Accounts: []string{randBase58(44), randBase58(44)},
		})
	}
	transfers := make([]model.TokenTransfer, 0, 2)
	for i := 0; i < rand.Intn(3); i++ {
		t := popularTokens[rand.Intn(len(popularTokens))]
		transfers = append(transfers, model.TokenTransfer{
			From:     randBase58(44),
			To:       randBase58(44),
			Amount:   fmt.Sprintf("%d", rand.Intn(1_000_000)),
			Token:    t.Symbol,
			Decimals: 9,
		})
	}

	return model.TransactionDetails{
		Transaction:    tx,
		Instructions:   instructions,
		TokenTransfers: transfers,
	}, nil
}

// Address returns the details of an on-chain account.
func (s *Source) Address(_ context.Context, address string) (model.AddressDetails, error) {
	if len(address) < 32 {
		return model.AddressDetails{}, storage.ErrNotFound
	}
	tokens := make([]model.TokenBalance, 0, 3)
	for i := 0; i < rand.Intn(4); i++ {
		t := popularTokens[rand.Intn(len(popularTokens))]
		usd := rand.Float64() * 10_000
		tokens = append(tokens, model.TokenBalance{
			Mint:     t.Mint,
			Symbol:   t.Symbol,
			Name:     t.Name,
			Balance:  fmt.Sprintf("%d", rand.Intn(1_000_000)),
			Decimals: 9,
			USDValue: &usd,
		})
	}
	return model.AddressDetails{
		Address:          address,
		Balance:          rand.Float64() * 1000,
		Type:             "wallet",
		Tokens:           tokens,
		TransactionCount: rand.Intn(10_000),
	}, nil
}

// AddressTransactions returns one page of an address's transactions.
func (s *Source) AddressTransactions(ctx context.Context, address string, page, limit int) ([]model.Transaction, int64, error) {
	if len(address) < 32 {
		return nil, 0, storage.ErrNotFound
	}
	return s.Transactions(ctx, page, limit)
}

func (s *Source) tokenRow(i int) model.Token {
	var name, symbol, mint string
	if i < len(popularTokens) {
		t := popularTokens[i]
		name, symbol, mint = t.Name, t.Symbol, t.Mint
	} else {
		mint = randBase58(44)
		symbol = strings.ToUpper(randBase58(4))
		name = symbol + " Token"
	}
	return model.Token{
		Mint:           mint,
		Symbol:         symbol,
		Name:           name,
		Price:          rand.Float64() * 100,
		PriceChange24h: (rand.Float64() - 0.5) * 20,
		Volume24h:      float64(rand.Intn(10_000_000)),
		MarketCap:      float64(rand.Intn(100_000_000)),
		Holders:        int64(rand.Intn(1_000_000)),
		Decimals:       9,
	}
}

// Tokens returns one page of tokens. The sort key is accepted for contract
// compatibility; rows are independent draws, so ordering is not meaningful.
func (s *Source) Tokens(_ context.Context, page, limit int, _ string) ([]model.Token, int64, error) {
	tokens := make([]model.Token, 0, limit)
	for i := 0; i < limit; i++ {
		tokens = append(tokens, s.tokenRow((page-1)*limit+i))
	}
	return tokens, int64(len(popularTokens)), nil
}

// Token returns the details of a single token.
func (s *Source) Token(_ context.Context, mint string) (model.TokenDetails, error) {
	if len(mint) < 32 {
		return model.TokenDetails{}, storage.ErrNotFound
	}
	row := s.tokenRow(rand.Intn(len(popularTokens)))
	row.Mint = mint
	for _, t := range popularTokens {
		if t.Mint == mint {
			row.Name, row.Symbol = t.Name, t.Symbol
		}
	}
	desc := fmt.Sprintf("%s (%s) on Solana", row.Name, row.Symbol)
	return model.TokenDetails{
		Token:       row,
		TotalSupply: fmt.Sprintf("%d", rand.Int63n(1_000_000_000_000)),
		Description: &desc,
	}, nil
}

func (s *Source) marketRow(pair string) model.Market {
	base, quote := pair, "USDC"
	if idx := strings.IndexByte(pair, '/'); idx >= 0 {
		base, quote = pair[:idx], pair[idx+1:]
	}
	price := rand.Float64() * 100
	return model.Market{
		Pair:           pair,
		BaseToken:      base,
		QuoteToken:     quote,
		Price:          price,
		PriceChange24h: (rand.Float64() - 0.5) * 15,
		Volume24h:      float64(rand.Intn(5_000_000)),
		Liquidity:      float64(rand.Intn(10_000_000)),
		High24h:        price * (1 + rand.Float64()*0.1),
		Low24h:         price * (1 - rand.Float64()*0.1),
		Dex:            dexes[rand.Intn(len(dexes))],
	}
}

// Markets returns one page of markets.
func (s *Source) Markets(_ context.Context, page, limit int, _ string) ([]model.Market, int64, error) {
	markets := make([]model.Market, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (page-1)*limit + i
		pair := marketPairs[idx%len(marketPairs)]
		if idx >= len(marketPairs) {
			pair = strings.ToUpper(randBase58(3)) + "/USDC"
		}
		markets = append(markets, s.marketRow(pair))
	}
	return markets, int64(len(marketPairs)), nil
}

// Market returns the details of a single market.
func (s *Source) Market(_ context.Context, pair string) (model.MarketDetails, error) {
	if !strings.ContainsRune(pair, '/') {
		return model.MarketDetails{}, storage.ErrNotFound
	}
	row := s.marketRow(pair)

	now := time.Now().Unix()
	chart := make([]model.ChartPoint, 0, 24)
	for i := 23; i >= 0; i-- {
		open := row.Price * (1 + (rand.Float64()-0.5)*0.05)
		closePrice := open * (1 + (rand.Float64()-0.5)*0.05)
		high := open
		if closePrice > high {
			high = closePrice
		}
		low := open
		if closePrice < low {
			low = closePrice
		}
		chart = append(chart, model.ChartPoint{
			Timestamp: now - int64(i)*3600,
			Open:      open,
			High:      high * 1.01,
			Low:       low * 0.99,
			Close:     closePrice,
			Volume:    float64(rand.Intn(200_000)),
		})
	}

	trades := make([]model.Trade, 0, 20)
	for i := 0; i < 20; i++ {
		side := "buy"
		if rand.Intn(2) == 0 {
			side = "sell"
		}
		trades = append(trades, model.Trade{
			Timestamp: now - int64(i)*7,
			Price:     row.Price * (1 + (rand.Float64()-0.5)*0.01),
			Amount:    rand.Float64() * 1000,
			Side:      side,
			Signature: randBase58(88),
		})
	}

	return model.MarketDetails{
		Market:       row,
		ChartData:    chart,
		RecentTrades: trades,
	}, nil
}

// NetworkStats returns a cluster snapshot.
func (s *Source) NetworkStats(_ context.Context) (model.NetworkStats, error) {
	tip := s.tip()
	return model.NetworkStats{
		Slot:              tip + int64(rand.Intn(1000)),
		BlockHeight:       tip,
		TPS:               2000 + rand.Float64()*1000,
		Epoch:             612,
		TotalSupply:       580_000_000,
		CirculatingSupply: 470_000_000,
		AverageBlockTime:  0.4,
	}, nil
}
