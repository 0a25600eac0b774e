// Package numwords converts numbers to formal Spanish text for notarial
// documents.
//
// The package provides three conversion operations:
//
//   - Cardinal turns an integer into Spanish cardinal text.
//   - Digits reads a digit string one character at a time.
//   - Decimal converts decimal number strings to text.
//
// Decimal supports two reading modes: whole-number ("dos punto sesenta")
// and digit-by-digit ("dos punto seis cero"), controlled by the Mode
// parameter.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to [0, 999_999_999_999]. Negative values
//     return ErrInvalidNumeral; signs are handled by Decimal.
//   - Apocope before "mil" and "millones" is not applied: 21_000
//     renders as "veintiuno mil", not "veintiún mil".
//   - Decimal fractional parts in whole-number mode drop leading zeros
//     ("2.05" reads "dos punto cinco"); use DigitMode when the exact
//     digit sequence matters.
package numwords

import (
	"errors"
	"fmt"
)

// ErrInvalidNumeral is returned when a value is outside the supported
// numeral domain (negative, out of range, or malformed).
var ErrInvalidNumeral = errors.New("invalid numeral")

// Mode controls how decimal fractions are read aloud.
type Mode int

const (
	// WordsMode reads the fractional part as one number: "dos punto sesenta" (2.60).
	WordsMode Mode = iota

	// DigitMode reads fractional digits individually: "dos punto seis cero" (2.60).
	DigitMode
)

// Cardinal returns the Spanish cardinal text for n.
// Zero returns "cero". Exact hundreds and thousands use the short forms
// ("cien", "mil"), and one million is "un millón".
// Returns ErrInvalidNumeral for negative n or n above 999_999_999_999.
func Cardinal(n int64) (string, error) {
	if n < 0 || n > maxCardinal {
		return "", fmt.Errorf("numwords: cardinal %d: %w", n, ErrInvalidNumeral)
	}
	return cardinal(n), nil
}

// Digits reads s one character at a time, mapping each digit to its
// Spanish unit word. Decimal separators become "punto" and "coma", a
// hyphen becomes "guión", and any other non-digit rune passes through
// unchanged as its own token. Tokens are joined with single spaces.
// Used for cédula and phone number readouts.
func Digits(s string) string {
	return digits(s)
}

// Decimal converts a decimal number string to Spanish text.
// Accepts dot or comma as decimal separator; the separator is read as
// "punto" or "coma" respectively. A leading '+' reads as "más" and a
// leading '-' as "menos". The mode parameter controls the fractional
// reading style. Input without a separator is converted as an integer
// and mode is ignored.
//
// Returns ErrInvalidNumeral for empty, non-numeric, or out-of-range input.
func Decimal(s string, mode Mode) (string, error) {
	if s == "" {
		return "", fmt.Errorf("numwords: decimal %q: %w", s, ErrInvalidNumeral)
	}
	return decimal(s, mode)
}
