package papertrade

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeEncodeDecode(t *testing.T) {
	records := []TradeRecord{
		{Symbol: "RELIANCE.NS", Side: Buy, Price: M(2850.75), Quantity: 10,
			Time: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)},
		{Symbol: "TCS.NS", Side: Sell, Price: M(3900), Quantity: 3,
			Time: time.Date(2025, 6, 3, 14, 5, 0, 0, time.UTC)},
	}

	var buf bytes.Buffer
	for _, rec := range records {
		require.NoError(t, EncodeTrade(&buf, rec))
	}

	decoded, err := DecodeTrades(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.Symbol, decoded[i].Symbol)
		assert.Equal(t, rec.Side, decoded[i].Side)
		assert.True(t, rec.Price.Equal(decoded[i].Price), "price %v != %v", rec.Price, decoded[i].Price)
		assert.Equal(t, rec.Quantity, decoded[i].Quantity)
		assert.True(t, rec.Time.Equal(decoded[i].Time))
	}
}

func TestDecodeTrades_MalformedRow(t *testing.T) {
	for _, row := range []string{
		"RELIANCE.NS,Hold,100,1,2025-06-02T10:30:00Z\n",  // unknown side
		"RELIANCE.NS,Buy,abc,1,2025-06-02T10:30:00Z\n",   // bad price
		"RELIANCE.NS,Buy,100,1.5,2025-06-02T10:30:00Z\n", // fractional quantity
		"RELIANCE.NS,Buy,100,1,yesterday\n",              // bad timestamp
		"RELIANCE.NS,Buy,100\n",                          // short row
	} {
		_, err := DecodeTrades(strings.NewReader(row))
		assert.Error(t, err, "row %q must not decode", row)
	}
}

func TestFileTradeLog(t *testing.T) {
	log := NewFileTradeLog(t.TempDir())

	// a user with no trades reads as an empty ledger
	records, err := log.Records("alice")
	require.NoError(t, err)
	assert.Empty(t, records)

	first := TradeRecord{Symbol: "A.NS", Side: Buy, Price: M(100), Quantity: 5,
		Time: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}
	second := TradeRecord{Symbol: "A.NS", Side: Sell, Price: M(120), Quantity: 2,
		Time: time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)}
	require.NoError(t, log.Append("alice", first))
	require.NoError(t, log.Append("alice", second))

	records, err = log.Records("alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Buy, records[0].Side)
	assert.Equal(t, Sell, records[1].Side)

	// ledgers are scoped per user
	records, err = log.Records("bob")
	require.NoError(t, err)
	assert.Empty(t, records)

	// and the read-back reconciles
	net := NetRealizedValue(records)
	assert.True(t, net.IsZero())
	records, _ = log.Records("alice")
	assert.True(t, NetRealizedValue(records).Equal(M(-500+240)))
}
