package bigjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
)

// Suffix marks an arbitrary-precision integer encoded as text.
const Suffix = "n"

var suffixed = regexp.MustCompile(`^-?\d+n$`)

// Int is a big integer that round-trips through string-only stores. It is written as a
// JSON string holding the decimal digits followed by Suffix, e.g. "1000000000000000000n".
//
// Text that looks like a suffixed integer but cannot be parsed, or any other unexpected
// payload, is kept verbatim and returned by Raw instead of failing the whole decode.
type Int struct {
	v   *big.Int
	raw string
}

// New wraps v. A nil v yields the zero Int.
func New(v *big.Int) *Int {
	if v == nil {
		return &Int{}
	}
	return &Int{v: new(big.Int).Set(v)}
}

// NewInt64 wraps an int64.
func NewInt64(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// Big returns a copy of the wrapped value, or nil when the Int holds a raw fallback.
func (i *Int) Big() *big.Int {
	if i == nil || i.v == nil {
		return nil
	}
	return new(big.Int).Set(i.v)
}

// Raw returns the undecoded text kept when decoding fell back.
func (i *Int) Raw() string {
	if i == nil {
		return ""
	}
	return i.raw
}

func (i *Int) String() string {
	if i == nil {
		return "0"
	}
	if i.v == nil {
		if i.raw != "" {
			return i.raw
		}
		return "0"
	}
	return i.v.String()
}

// Cmp compares the numeric values, a raw fallback compares as zero.
func (i *Int) Cmp(other *Int) int {
	a, b := i.Big(), other.Big()
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b)
}

func (i Int) MarshalJSON() ([]byte, error) {
	if i.v == nil && i.raw != "" {
		return json.Marshal(i.raw)
	}
	v := i.v
	if v == nil {
		v = new(big.Int)
	}
	return json.Marshal(v.String() + Suffix)
}

func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = Int{}
		return nil
	}

	// plain JSON numbers are accepted for payloads written before the suffix convention
	if len(data) > 0 && data[0] != '"' {
		v, ok := new(big.Int).SetString(string(data), 10)
		if !ok {
			*i = Int{raw: string(data)}
			return nil
		}
		*i = Int{v: v}
		return nil
	}

	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("unmarshal big int text: %w", err)
	}

	*i = Parse(s)
	return nil
}

// Parse decodes suffixed integer text. Anything else is kept as the raw string.
func Parse(s string) Int {
	if !suffixed.MatchString(s) {
		return Int{raw: s}
	}
	v, ok := new(big.Int).SetString(s[:len(s)-len(Suffix)], 10)
	if !ok {
		return Int{raw: s}
	}
	return Int{v: v}
}

// IsSuffixed reports whether s follows the suffixed integer convention.
func IsSuffixed(s string) bool {
	return suffixed.MatchString(s)
}
