package txrecord

import (
	"bytes"
	"encoding/json"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	nativeSymbol = "ETH"
	ethDecimals  = 18

	tokenMethod = "token"
)

// Batch is a raw batch of records as returned by a data source.
type Batch interface {
	groups() []Group
}

// Normalize converts a raw batch into canonical groups. Records whose timestamp cannot be
// resolved get an unknown timestamp; nothing is dropped.
func Normalize(b Batch) []Group {
	if b == nil {
		return nil
	}
	return b.groups()
}

// SearchTx is a transaction as returned by the node's address search.
type SearchTx struct {
	Hash        string `json:"hash"`
	BlockNumber string `json:"blockNumber"`
	From        string `json:"from"`
	To          string `json:"to"`
	Input       string `json:"input"`
	Value       string `json:"value"`
}

// SearchReceipt carries the block timestamp of a searched transaction.
type SearchReceipt struct {
	TransactionHash string          `json:"transactionHash"`
	Timestamp       json.RawMessage `json:"timestamp,omitempty"`
}

// SearchBatch is one page of address search results. Txs are newest first.
type SearchBatch struct {
	Txs       []SearchTx      `json:"txs"`
	Receipts  []SearchReceipt `json:"receipts"`
	FirstPage bool            `json:"firstPage"`
	LastPage  bool            `json:"lastPage"`
}

func (b *SearchBatch) groups() []Group {
	timestamps := make(map[string]Timestamp, len(b.Receipts))
	for r := range slices.Values(b.Receipts) {
		if r.TransactionHash == "" {
			continue
		}
		timestamps[r.TransactionHash] = parseSeconds(r.Timestamp)
	}

	out := make([]Group, 0, len(b.Txs))
	for tx := range slices.Values(b.Txs) {
		ts := timestamps[tx.Hash]
		out = append(out, Group{{
			Hash:        tx.Hash,
			Date:        FormatDate(ts),
			BlockNumber: decodeBlockNumber(tx.BlockNumber),
			From:        tx.From,
			To:          tx.To,
			Method:      MethodName(tx.Input),
			Value:       FormatUnits(decodeBig(tx.Value), ethDecimals),
			Symbol:      nativeSymbol,
			Timestamp:   ts,
		}})
	}

	return out
}

// TokenTransfer is a token movement that happened inside a transaction.
type TokenTransfer struct {
	From     string
	To       string
	Symbol   string
	Decimals *int
	Amount   *big.Int
}

// Transfer is a transaction together with its token transfers.
type Transfer struct {
	Hash           string
	Block          *uint64
	Timestamp      *int64 // milliseconds
	From           string
	To             string
	Value          *big.Int
	Input          string
	TokenTransfers []TokenTransfer
}

// TransferBatch is a list of transfers, newest first.
type TransferBatch []Transfer

func (b TransferBatch) groups() []Group {
	out := make([]Group, 0, len(b))
	for t := range slices.Values(b) {
		ts := Unknown()
		if t.Timestamp != nil {
			ts = Known(*t.Timestamp)
		}
		block := unknownTimestamp
		if t.Block != nil {
			block = strconv.FormatUint(*t.Block, 10)
		}

		g := make(Group, 0, 1+len(t.TokenTransfers))
		g = append(g, Record{
			Hash:        t.Hash,
			Date:        FormatDate(ts),
			BlockNumber: block,
			From:        t.From,
			To:          t.To,
			Method:      MethodName(t.Input),
			Value:       FormatUnits(t.Value, ethDecimals),
			Symbol:      nativeSymbol,
			Timestamp:   ts,
		})
		for tt := range slices.Values(t.TokenTransfers) {
			value := unknownTimestamp
			if tt.Amount != nil && tt.Decimals != nil {
				value = FormatUnits(tt.Amount, *tt.Decimals)
			}
			g = append(g, Record{
				Hash:        t.Hash,
				Date:        FormatDate(ts),
				BlockNumber: block,
				From:        tt.From,
				To:          tt.To,
				Method:      tokenMethod,
				Value:       value,
				Symbol:      tt.Symbol,
				Timestamp:   ts,
			})
		}
		out = append(out, g)
	}

	return out
}

// FormatDate renders a timestamp for list display, "-" when unknown.
func FormatDate(ts Timestamp) string {
	ms, ok := ts.Value()
	if !ok {
		return unknownTimestamp
	}
	return time.UnixMilli(ms).UTC().Format("2006.01.02 | 15:04")
}

// parseSeconds reads a receipt timestamp given in seconds, as a JSON number, a decimal
// string or a hex string, and returns it in milliseconds.
func parseSeconds(raw json.RawMessage) Timestamp {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Unknown()
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Unknown()
		}
		text = s
	}

	if strings.HasPrefix(text, "0x") {
		secs, err := hexutil.DecodeUint64(text)
		if err != nil {
			return Unknown()
		}
		return Known(int64(secs) * 1000)
	}

	secs, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Unknown()
	}
	return Known(secs * 1000)
}

func decodeBlockNumber(hex string) string {
	n, err := hexutil.DecodeUint64(hex)
	if err != nil {
		// some nodes already return decimal
		if _, perr := strconv.ParseUint(hex, 10, 64); perr == nil {
			return hex
		}
		return unknownTimestamp
	}
	return strconv.FormatUint(n, 10)
}

func decodeBig(hex string) *big.Int {
	if hex == "" {
		return new(big.Int)
	}
	v, err := hexutil.DecodeBig(hex)
	if err != nil {
		// leading zero digits are rejected by DecodeBig
		v, ok := new(big.Int).SetString(strings.TrimPrefix(hex, "0x"), 16)
		if !ok {
			return new(big.Int)
		}
		return v
	}
	return v
}
