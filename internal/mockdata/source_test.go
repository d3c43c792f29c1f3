package mockdata

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenscan/explorer-backend/internal/storage"
)

func TestBlocksPageShape(t *testing.T) {
	s := NewSource()

	for _, limit := range []int{1, 20, 50} {
		blocks, total, err := s.Blocks(context.Background(), 1, limit)
		require.NoError(t, err)
		assert.Len(t, blocks, limit)
		assert.Greater(t, total, int64(0))
	}
}

func TestBlocksSlotsStrictlyDescending(t *testing.T) {
	s := NewSource()

	blocks, _, err := s.Blocks(context.Background(), 2, 25)
	require.NoError(t, err)
	for i := 1; i < len(blocks); i++ {
		assert.Equal(t, blocks[i-1].Slot-1, blocks[i].Slot)
	}
}

func TestBlockDetailSuperset(t *testing.T) {
	s := NewSource()

	details, err := s.Block(context.Background(), baseSlot-10)
	require.NoError(t, err)
	assert.Equal(t, int64(baseSlot-10), details.BlockNumber)
	assert.Equal(t, details.Slot-1, details.ParentSlot)
	assert.NotEmpty(t, details.Blockhash)
	assert.NotEmpty(t, details.PreviousBlockhash)
}

func TestBlockNotFound(t *testing.T) {
	s := NewSource()

	_, err := s.Block(context.Background(), 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Block(context.Background(), baseSlot*10)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTransactionStatusVocabulary(t *testing.T) {
	s := NewSource()

	txs, _, err := s.Transactions(context.Background(), 1, 100)
	require.NoError(t, err)
	for _, tx := range txs {
		assert.Contains(t, []string{"success", "failed"}, tx.Status)
		assert.GreaterOrEqual(t, tx.Fee, int64(0))
		assert.Len(t, tx.Signature, 88)
	}
}

func TestTransactionDetailEchoesSignature(t *testing.T) {
	s := NewSource()

	sig := strings.Repeat("4", 88)
	details, err := s.Transaction(context.Background(), sig)
	require.NoError(t, err)
	assert.Equal(t, sig, details.Signature)
	assert.NotEmpty(t, details.Instructions)
}

func TestTransactionRejectsShortSignature(t *testing.T) {
	s := NewSource()

	_, err := s.Transaction(context.Background(), "abc")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTokensPageFillsLimit(t *testing.T) {
	s := NewSource()

	tokens, _, err := s.Tokens(context.Background(), 1, 30, "volume_24h")
	require.NoError(t, err)
	require.Len(t, tokens, 30)

	// Curated tokens come first.
	assert.Equal(t, "SOL", tokens[0].Symbol)
	for _, tok := range tokens {
		assert.NotEmpty(t, tok.Mint)
		assert.GreaterOrEqual(t, tok.Price, 0.0)
	}
}

func TestTokenDetailKeepsCuratedName(t *testing.T) {
	s := NewSource()

	details, err := s.Token(context.Background(), "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	assert.Equal(t, "Solana", details.Name)
	assert.NotEmpty(t, details.TotalSupply)
}

func TestMarketDetailHasHistory(t *testing.T) {
	s := NewSource()

	details, err := s.Market(context.Background(), "SOL/USDC")
	require.NoError(t, err)
	assert.Equal(t, "SOL", details.BaseToken)
	assert.Equal(t, "USDC", details.QuoteToken)
	assert.Len(t, details.ChartData, 24)
	assert.Len(t, details.RecentTrades, 20)
	for _, c := range details.ChartData {
		assert.GreaterOrEqual(t, c.High, c.Low)
	}
}

func TestMarketRejectsBarePair(t *testing.T) {
	s := NewSource()

	_, err := s.Market(context.Background(), "SOLUSDC")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNetworkStatsSupplyOrdering(t *testing.T) {
	s := NewSource()

	stats, err := s.NetworkStats(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.CirculatingSupply, stats.TotalSupply)
	assert.Greater(t, stats.TPS, 0.0)
}
