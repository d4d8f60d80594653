package txrecord

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	noInput        = "-"
	transferMethod = "Transfer"
	selectorLen    = len("0x12345678")
)

// knownMethods maps 4-byte selectors of common token calls to a display name.
var knownMethods = selectorTable(
	"transfer(address,uint256)",
	"transferFrom(address,address,uint256)",
	"approve(address,uint256)",
	"safeTransferFrom(address,address,uint256)",
	"safeTransferFrom(address,address,uint256,bytes)",
	"setApprovalForAll(address,bool)",
	"deposit()",
	"withdraw(uint256)",
	"multicall(bytes[])",
)

func selectorTable(signatures ...string) map[string]string {
	out := make(map[string]string, len(signatures))
	for _, sig := range signatures {
		selector := hexutil.Encode(crypto.Keccak256([]byte(sig))[:4])
		name, _, _ := strings.Cut(sig, "(")
		out[selector] = name
	}
	return out
}

// MethodName derives the list label of a call from its input data.
func MethodName(input string) string {
	switch {
	case input == "":
		return noInput
	case input == "0x":
		return transferMethod
	case len(input) < selectorLen:
		return input
	}

	selector := strings.ToLower(input[:selectorLen])
	if name, ok := knownMethods[selector]; ok {
		return name
	}
	return selector
}

// FormatUnits renders v scaled down by 10^decimals without losing precision.
// Trailing fractional zeros are trimmed, e.g. 1500000000000000000 with 18 decimals is "1.5".
func FormatUnits(v *big.Int, decimals int) string {
	if v == nil {
		return "0"
	}
	if decimals <= 0 {
		return v.String()
	}

	neg := v.Sign() < 0
	digits := new(big.Int).Abs(v).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
