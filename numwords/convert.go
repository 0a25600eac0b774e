// Unexported conversion functions for Spanish number-to-text conversion.
package numwords

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	growCardinal = 64  // estimated bytes for a full cardinal conversion
	growDecimal  = 128 // estimated bytes for a decimal conversion
	growDigits   = 6   // estimated bytes per digit readout token
)

// cardinal converts n in [0, maxCardinal] to Spanish cardinal text.
// Callers must range-check n.
func cardinal(n int64) string {
	if n == 0 {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growCardinal)

	m := n / million
	if m > 0 {
		// "un millón" for exactly one; otherwise "<words> millones".
		// 10^9 and above fall out of this recursion as "mil millones ...".
		if m == 1 {
			b.WriteString(wordMillion)
		} else {
			writeUnderMillion(&b, m)
			b.WriteByte(' ')
			b.WriteString(wordMillions)
		}
		n %= million
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeUnderMillion(&b, n)
	}

	return b.String()
}

// writeUnderMillion writes a number in [1, 999_999] as Spanish text into b.
func writeUnderMillion(b *strings.Builder, n int64) {
	t := n / thousand
	if t > 0 {
		// "mil" bare when the multiplier is exactly 1 (no "uno mil").
		if t == 1 {
			b.WriteString(wordThousand)
		} else {
			writeGroup(b, t)
			b.WriteByte(' ')
			b.WriteString(wordThousand)
		}
		n %= thousand
		if n == 0 {
			return
		}
		b.WriteByte(' ')
	}
	writeGroup(b, n)
}

// writeGroup writes a number in [1, 999] as Spanish text into b.
// Callers must ensure n > 0.
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	r := n % hundred

	if h > 0 {
		switch {
		case h == 1 && r == 0:
			b.WriteString(wordHundred) // "cien" exact, never "ciento"
			return
		case h == 1:
			b.WriteString(wordHundredOdd)
		default:
			b.WriteString(hundreds[h])
		}
		if r == 0 {
			return
		}
		b.WriteByte(' ')
	}

	switch {
	case r < 10:
		b.WriteString(ones[r])
	case r < 20:
		b.WriteString(teens[r-10])
	case r == 20:
		b.WriteString(tens[2])
	case r < 30:
		b.WriteString(twenties[r-20]) // veinti- contraction for 21–29
	default:
		b.WriteString(tens[r/10])
		if o := r % 10; o > 0 {
			b.WriteByte(' ')
			b.WriteString(wordAnd)
			b.WriteByte(' ')
			b.WriteString(ones[o])
		}
	}
}

// digits reads s one rune at a time: digit runes map through the unit
// table, separators map to their spoken names, everything else passes
// through literally.
func digits(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * growDigits)

	for _, r := range s {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch {
		case r >= '0' && r <= '9':
			b.WriteString(ones[r-'0'])
		case r == '.':
			b.WriteString(wordDot)
		case r == ',':
			b.WriteString(wordComma)
		case r == '-':
			b.WriteString(wordHyphen)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// decimal converts a decimal number string to Spanish text using the
// given Mode. Callers must ensure s is non-empty.
func decimal(s string, mode Mode) (string, error) {
	s = strings.TrimSpace(s)

	var signWord string
	if s != "" {
		switch s[0] {
		case '-':
			signWord = wordMinus
			s = s[1:]
		case '+':
			signWord = wordPlus
			s = s[1:]
		}
	}

	sepIdx := strings.IndexAny(s, ".,")

	if sepIdx == -1 {
		// No decimal separator; plain integer with optional sign word.
		val, err := parseIntPart(s)
		if err != nil {
			return "", err
		}
		text := cardinal(val)
		if signWord != "" {
			return signWord + " " + text, nil
		}
		return text, nil
	}

	wholePart := s[:sepIdx]
	fracPart := s[sepIdx+1:]
	sepWord := wordDot
	if s[sepIdx] == ',' {
		sepWord = wordComma
	}

	if wholePart == "" {
		wholePart = "0"
	}
	if !allDigits(fracPart) {
		return "", fmt.Errorf("numwords: decimal %q: %w", s, ErrInvalidNumeral)
	}

	wholeVal, err := parseIntPart(wholePart)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(growDecimal)

	if signWord != "" {
		b.WriteString(signWord)
		b.WriteByte(' ')
	}
	b.WriteString(cardinal(wholeVal))
	b.WriteByte(' ')
	b.WriteString(sepWord)

	switch mode {
	case WordsMode:
		fracVal, err := parseIntPart(fracPart)
		if err != nil {
			return "", err
		}
		b.WriteByte(' ')
		b.WriteString(cardinal(fracVal))

	case DigitMode:
		for _, ch := range fracPart {
			b.WriteByte(' ')
			b.WriteString(ones[ch-'0'])
		}
	}

	return b.String(), nil
}

// parseIntPart parses a digit string into an int64 within the cardinal
// domain. Returns ErrInvalidNumeral on malformed or out-of-range input.
func parseIntPart(s string) (int64, error) {
	if !allDigits(s) {
		return 0, fmt.Errorf("numwords: number %q: %w", s, ErrInvalidNumeral)
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val > maxCardinal {
		return 0, fmt.Errorf("numwords: number %q: %w", s, ErrInvalidNumeral)
	}
	return val, nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
