package otterscan

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcMethod string

const (
	searchTransactionsBefore rpcMethod = "ots_searchTransactionsBefore"
	searchTransactionsAfter  rpcMethod = "ots_searchTransactionsAfter"
	getBlockByNumber         rpcMethod = "eth_getBlockByNumber"
	gasPrice                 rpcMethod = "eth_gasPrice"
	maxPriorityFeePerGas     rpcMethod = "eth_maxPriorityFeePerGas"
)

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  rpcMethod `json:"method"`
	Params  []any     `json:"params"`
	ID      uint64    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error,omitempty"`
}

// RPCError is an error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Block is a block with its full transactions.
type Block struct {
	Hash       string          `json:"hash"`
	Number     hexutil.Uint64  `json:"number"`
	ParentHash string          `json:"parentHash"`
	Timestamp  hexutil.Uint64  `json:"timestamp"`
	Miner      string          `json:"miner"`
	GasUsed    *hexutil.Big    `json:"gasUsed"`
	BaseFee    *hexutil.Big    `json:"baseFeePerGas"`
	Txs        []*Tx           `json:"transactions"`
}

type Tx struct {
	Hash        string         `json:"hash"`
	BlockNumber hexutil.Uint64 `json:"blockNumber"`
	From        string         `json:"from"`
	To          string         `json:"to"`
	Value       *hexutil.Big   `json:"value"`
	Input       string         `json:"input"`
}
