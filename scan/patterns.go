package scan

import (
	"cmp"
	"regexp"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Compiled regexes for the positional pattern classes. The abbreviation
// regex is built from the embedded dictionary in abbrev.go.
var (
	// Address: single letter, digit run, hyphen, digit run ("N24-660").
	reAddress = regexp.MustCompile(`(?i)\b([a-z])(\d+)-(\d+)\b`)

	// Measurement: optionally signed number, optional space, metric unit.
	// Longer units come first because alternation is leftmost-preferring.
	reMeasure = regexp.MustCompile(`(?i)([+-]?\d+(?:[.,]\d+)?)\s?(m²|m³|m2|m3|mm|cm|km|kg|ml|ha|g|l|m)`)

	// Percentage: optionally signed number, optional space, percent sign.
	rePercent = regexp.MustCompile(`([+-]?\d+(?:[.,]\d+)?)\s?%`)

	// Signed: explicitly signed standalone number.
	reSigned = regexp.MustCompile(`[+-]\d+(?:[.,]\d+)?`)

	// Number: any standalone number with optional decimal part.
	reNumber = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// maxMatches is the maximum number of matches returned per call.
const maxMatches = 10000

// scan is the internal implementation of Scan. Pattern classes are
// collected in precedence order; resolveOverlaps relies on that order.
func scan(s string) []Match {
	const minCap = 8
	all := make([]Match, 0, len(s)/50+minCap)

	all = appendAbbrev(all, s)
	all = appendAddress(all, s)
	all = appendMeasurement(all, s)
	all = appendPercentage(all, s)
	all = appendSigned(all, s)
	all = appendNumber(all, s)

	if len(all) == 0 {
		return nil
	}

	return resolveOverlaps(all)
}

// appendAbbrev appends dictionary abbreviation matches.
func appendAbbrev(all []Match, s string) []Match {
	for _, m := range reAbbrev.FindAllStringIndex(s, -1) {
		text := s[m[0]:m[1]]
		if _, ok := lookupAbbrev(text); !ok {
			continue
		}
		all = append(all, Match{
			Text:  text,
			Start: m[0],
			End:   m[1],
			Kind:  Abbreviation,
		})
	}
	return all
}

// appendAddress appends letter-digits-digits address pairs.
func appendAddress(all []Match, s string) []Match {
	for _, m := range reAddress.FindAllStringIndex(s, -1) {
		all = append(all, Match{
			Text:  s[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Kind:  Address,
		})
	}
	return all
}

// appendMeasurement appends number-with-unit matches. The regex has no
// trailing word boundary (² and ³ are not word runes), so both edges
// are checked here instead.
func appendMeasurement(all []Match, s string) []Match {
	for _, m := range reMeasure.FindAllStringSubmatchIndex(s, -1) {
		if !boundaryBefore(s, m[0]) || !boundaryAfter(s, m[1]) {
			continue
		}
		all = append(all, Match{
			Text:  s[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Kind:  Measurement,
			Unit:  s[m[4]:m[5]],
		})
	}
	return all
}

// appendPercentage appends percentage matches.
func appendPercentage(all []Match, s string) []Match {
	for _, m := range rePercent.FindAllStringIndex(s, -1) {
		if !boundaryBefore(s, m[0]) {
			continue
		}
		all = append(all, Match{
			Text:  s[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Kind:  Percentage,
		})
	}
	return all
}

// appendSigned appends explicitly signed standalone numbers. The sign
// must not continue a preceding token ("12-34" is not a signed -34).
func appendSigned(all []Match, s string) []Match {
	for _, m := range reSigned.FindAllStringIndex(s, -1) {
		if !boundaryBefore(s, m[0]) || !boundaryAfter(s, m[1]) {
			continue
		}
		all = append(all, Match{
			Text:  s[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Kind:  Signed,
		})
	}
	return all
}

// appendNumber appends standalone bare numbers.
func appendNumber(all []Match, s string) []Match {
	for _, m := range reNumber.FindAllStringIndex(s, -1) {
		if !boundaryBefore(s, m[0]) || !boundaryAfter(s, m[1]) {
			continue
		}
		all = append(all, Match{
			Text:  s[m[0]:m[1]],
			Start: m[0],
			End:   m[1],
			Kind:  Number,
		})
	}
	return all
}

// boundaryBefore reports whether position i does not continue a letter
// or digit run (i.e. the match does not start inside a larger token).
func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// boundaryAfter reports whether position i does not run into a letter
// or digit (i.e. the match does not end inside a larger token).
func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// resolveOverlaps keeps the first match per overlapping region. The
// input is ordered by pattern precedence, then by start offset within
// each pattern, so iterating in order and rejecting anything that
// overlaps an accepted match implements the precedence-then-leftmost
// rule. Returns the survivors sorted by Start offset.
func resolveOverlaps(matches []Match) []Match {
	accepted := make([]Match, 0, len(matches))

	for _, m := range matches {
		overlaps := false
		for i := range accepted {
			if m.Start < accepted[i].End && accepted[i].Start < m.End {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		accepted = append(accepted, m)
		if len(accepted) >= maxMatches {
			break
		}
	}

	slices.SortFunc(accepted, func(a, b Match) int {
		return cmp.Compare(a.Start, b.Start)
	})

	return accepted
}
