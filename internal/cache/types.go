package cache

import (
	"github.com/hedisam/txpager/internal/bigjson"
)

// TokenInfo describes a token contract.
type TokenInfo struct {
	Contract    string       `json:"contract"`
	Name        string       `json:"name"`
	Symbol      string       `json:"symbol"`
	Decimals    int          `json:"decimals"`
	TotalSupply *bigjson.Int `json:"totalSupply,omitempty"`
	ABI         string       `json:"abi,omitempty"`
}

// TokenBalance is the balance an address holds of one token.
type TokenBalance struct {
	Token   string       `json:"token"`
	Balance *bigjson.Int `json:"balance"`
	Info    *TokenInfo   `json:"info,omitempty"`
	USD     *float64     `json:"usd,omitempty"`
}

// ContractCreator is the deployer of a contract and the deploying transaction.
type ContractCreator struct {
	Creator string `json:"creator"`
	Hash    string `json:"hash"`
}

// Unspent is the native balance state of an address.
type Unspent struct {
	Symbol     string       `json:"symbol"`
	Decimals   int          `json:"decimals"`
	Balance    *bigjson.Int `json:"balance"`
	Nonce      uint64       `json:"nonce"`
	Active     bool         `json:"active"`
	USDBalance *float64     `json:"usdBalance,omitempty"`
}

// BlockSummary is a recent block shown in the overview.
type BlockSummary struct {
	Number     uint64       `json:"number"`
	Hash       string       `json:"hash"`
	ParentHash string       `json:"parentHash"`
	Timestamp  int64        `json:"timestamp"` // seconds
	Miner      string       `json:"miner"`
	TxCount    int          `json:"txCount"`
	GasUsed    *bigjson.Int `json:"gasUsed,omitempty"`
	BaseFee    *bigjson.Int `json:"baseFee,omitempty"`
}

// TxSummary is a recent transaction shown in the overview.
type TxSummary struct {
	Hash        string       `json:"hash"`
	BlockNumber uint64       `json:"blockNumber"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Value       *bigjson.Int `json:"value"`
	Timestamp   int64        `json:"timestamp"` // seconds
}
