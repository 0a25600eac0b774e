// Package scan finds transformable substrings in Spanish legal text and
// generates candidate verbalizations for each one.
//
// The scanner recognizes six pattern classes, tried in fixed precedence
// order: Abbreviation (closed dictionary of professional and address
// titles), Address (letter-digits-digits pairs like "N24-660"),
// Measurement (numbers with a metric unit), Percentage, Signed (numbers
// with an explicit sign), and Number (any other standalone number).
// Each match is returned with byte offsets satisfying the invariant
// s[m.Start:m.End] == m.Text.
//
// When two patterns claim overlapping character ranges, the earlier
// pattern class wins; within one class, the leftmost match wins. The
// surviving matches never overlap.
//
// Options generates the human-readable rewrite candidates for a match
// using the numwords grammar. A match can yield an empty candidate list
// (nothing sensible to offer); that is a valid result, not an error.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - The abbreviation dictionary is a closed, embedded list; it is not
//     extensible at runtime.
//   - Address pairs use a single leading letter ("N24-660"); two-letter
//     Quito prefixes ("Oe3-145") are matched by the trailing letter only.
//   - Number words above 999_999_999_999 are not generated; such tokens
//     only receive digit-by-digit candidates.
package scan

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a match. The declaration order is the pattern
// precedence order used for overlap resolution.
type Kind int

const (
	Abbreviation Kind = iota // dictionary title or legal abbreviation ("ing.", "av.", "ruc")
	Address                  // letter-digits-digits pair ("N24-660")
	Measurement              // number with metric unit ("20m", "18,5 m2")
	Percentage               // number with percent sign ("18,82%")
	Signed                   // explicitly signed number ("+2.60")
	Number                   // any other standalone number ("1234567890")
)

// kindNames maps Kind values to their string names.
var kindNames = [...]string{
	Abbreviation: "Abbreviation",
	Address:      "Address",
	Measurement:  "Measurement",
	Percentage:   "Percentage",
	Signed:       "Signed",
	Number:       "Number",
}

// kindFromName maps string names back to Kind values.
var kindFromName = map[string]Kind{
	"Abbreviation": Abbreviation,
	"Address":      Address,
	"Measurement":  Measurement,
	"Percentage":   Percentage,
	"Signed":       Signed,
	"Number":       Number,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Percentage").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Percentage") into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kk, ok := kindFromName[s]
	if !ok {
		return fmt.Errorf("scan: unknown kind: %q", s)
	}
	*k = kk
	return nil
}

// Match represents one transformable substring with its position in the
// source text.
type Match struct {
	Text  string `json:"text"`           // the matched text
	Start int    `json:"start"`          // byte offset in the original string (inclusive)
	End   int    `json:"end"`            // byte offset in the original string (exclusive)
	Kind  Kind   `json:"kind"`           // pattern class of the match
	Unit  string `json:"unit,omitempty"` // measurement unit as written; empty otherwise
}

// String returns a debug representation, e.g. Percentage("18,82%")[12:18].
func (m Match) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", m.Kind, m.Text, m.Start, m.End)
}

// Candidate is one proposed rewrite of a matched substring.
type Candidate struct {
	Label      string `json:"label"`       // human description of the transformation
	Value      string `json:"value"`       // resulting text
	ApplyToAll bool   `json:"applyToAll"`  // offer "apply to every identical occurrence"
}

// maxInputBytes is the maximum input length Scan will process.
// Inputs exceeding this are returned with no results.
const maxInputBytes = 1 << 20 // 1 MiB

// Scan finds all transformable substrings in s.
// Returns matches sorted by Start offset; matches never overlap.
// Returns nil for empty or oversized input.
func Scan(s string) []Match {
	if s == "" || len(s) > maxInputBytes {
		return nil
	}
	return scan(s)
}

// Options generates the rewrite candidates for m. All candidate values
// are distinct. An empty result means no transformation is available
// for this match; it is not an error.
func Options(m Match) []Candidate {
	return options(m)
}

// Find returns the matched texts of the given kind, in document order.
func Find(s string, k Kind) []string {
	var out []string
	for _, m := range Scan(s) {
		if m.Kind == k {
			out = append(out, m.Text)
		}
	}
	return out
}
