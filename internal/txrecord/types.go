package txrecord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// unknownTimestamp is the persisted form of an unknown timestamp.
const unknownTimestamp = "-"

// Timestamp is either a known unix time in milliseconds or unknown.
// The zero value is unknown.
type Timestamp struct {
	ms    int64
	known bool
}

// Known returns a known timestamp.
func Known(ms int64) Timestamp {
	return Timestamp{ms: ms, known: true}
}

// Unknown returns the unknown timestamp.
func Unknown() Timestamp {
	return Timestamp{}
}

// Value returns the milliseconds and whether the timestamp is known.
func (t Timestamp) Value() (int64, bool) {
	return t.ms, t.known
}

func (t Timestamp) IsKnown() bool {
	return t.known
}

func (t Timestamp) String() string {
	if !t.known {
		return unknownTimestamp
	}
	return strconv.FormatInt(t.ms, 10)
}

// Compare orders timestamps newest first: a negative result means t sorts before other.
// Unknown sorts after every known timestamp and equal to another unknown.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case !t.known && !other.known:
		return 0
	case !t.known:
		return 1
	case !other.known:
		return -1
	case t.ms > other.ms:
		return -1
	case t.ms < other.ms:
		return 1
	default:
		return 0
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.known {
		return json.Marshal(unknownTimestamp)
	}
	return []byte(strconv.FormatInt(t.ms, 10)), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = Unknown()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("unmarshal timestamp text: %w", err)
		}
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			*t = Unknown()
			return nil
		}
		*t = Known(ms)
		return nil
	}

	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", data, err)
	}
	*t = Known(ms)
	return nil
}

// Record is the canonical transaction list item.
type Record struct {
	Hash        string    `json:"hash"`
	Date        string    `json:"date"`
	BlockNumber string    `json:"blockNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Method      string    `json:"method"`
	Value       string    `json:"value"`
	Symbol      string    `json:"symbol"`
	Timestamp   Timestamp `json:"timestamp"`
}

// Block parses the record's block number. Records without a block report false.
func (r Record) Block() (uint64, bool) {
	n, err := strconv.ParseUint(r.BlockNumber, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Group holds records that must stay adjacent, e.g. a native transfer followed by its
// token sub-transfers. The first record represents the group.
type Group []Record

// Hash returns the representative hash.
func (g Group) Hash() string {
	if len(g) == 0 {
		return ""
	}
	return g[0].Hash
}

// BlockNumber returns the representative block number text.
func (g Group) BlockNumber() string {
	if len(g) == 0 {
		return ""
	}
	return g[0].BlockNumber
}

// Block returns the representative block number, 0 when it cannot be parsed.
func (g Group) Block() uint64 {
	if len(g) == 0 {
		return 0
	}
	n, _ := g[0].Block()
	return n
}

// Timestamp returns the representative timestamp.
func (g Group) Timestamp() Timestamp {
	if len(g) == 0 {
		return Unknown()
	}
	return g[0].Timestamp
}
