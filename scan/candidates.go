// Candidate generation for matched substrings.
package scan

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/EmesEmes/matriz-sub000/numwords"
)

// Candidate labels shown in the disambiguation menu.
const (
	labelWords       = "en palabras"
	labelWordsParen  = "en palabras (con original)"
	labelDigits      = "dígito por dígito"
	labelDigitsParen = "dígito por dígito (con original)"
	labelCapitalized = "en palabras con mayúscula inicial"
	labelMasculine   = "forma masculina"
	labelFeminine    = "forma femenina"
	labelExpanded    = "abreviatura expandida"
	labelFracDigits  = "fracción dígito por dígito"
)

// applyToAllDigits is the digit count from which candidates are flagged
// for bulk application. Long reference numbers (cédulas, RUCs, account
// numbers) tend to repeat within one document.
const applyToAllDigits = 10

// unitWords maps a lowercased measurement unit to its spoken form.
var unitWords = map[string]string{
	"m":  "metros",
	"m2": "metros cuadrados",
	"m²": "metros cuadrados",
	"m3": "metros cúbicos",
	"m³": "metros cúbicos",
	"cm": "centímetros",
	"mm": "milímetros",
	"km": "kilómetros",
	"kg": "kilogramos",
	"g":  "gramos",
	"l":  "litros",
	"ml": "mililitros",
	"ha": "hectáreas",
}

// options is the internal implementation of Options. A numeral the
// grammar cannot render contributes no candidate; the remaining
// variants are still offered.
func options(m Match) []Candidate {
	var cands []Candidate

	switch m.Kind {
	case Abbreviation:
		cands = genAbbrev(m)
	case Address:
		cands = genAddress(m)
	case Measurement:
		cands = genMeasurement(m)
	case Percentage:
		cands = genPercentage(m)
	case Signed:
		cands = genSigned(m)
	case Number:
		cands = genNumber(m)
	}

	return dedupe(cands)
}

// genAbbrev expands a dictionary abbreviation, preserving the leading
// case of the original. Gendered entries yield two candidates.
func genAbbrev(m Match) []Candidate {
	exp, ok := lookupAbbrev(m.Text)
	if !ok {
		return nil
	}
	if exp.masc == exp.fem {
		return []Candidate{{Label: labelExpanded, Value: matchCase(m.Text, exp.masc)}}
	}
	return []Candidate{
		{Label: labelMasculine, Value: matchCase(m.Text, exp.masc)},
		{Label: labelFeminine, Value: matchCase(m.Text, exp.fem)},
	}
}

// genAddress verbalizes a letter-digits-digits pair, uppercasing the
// leading letter and reading the hyphen as "guión".
func genAddress(m Match) []Candidate {
	sub := reAddress.FindStringSubmatch(m.Text)
	if sub == nil {
		return nil
	}
	letter := strings.ToUpper(sub[1])
	first, second := sub[2], sub[3]

	var cands []Candidate

	firstWords, err1 := wholeWords(first)
	secondWords, err2 := wholeWords(second)
	if err1 == nil && err2 == nil {
		words := letter + " " + firstWords + " guión " + secondWords
		cands = append(cands,
			Candidate{Label: labelWords, Value: words},
			Candidate{Label: labelWordsParen, Value: words + " (" + m.Text + ")"},
		)
	}

	digits := letter + " " + numwords.Digits(first) + " guión " + numwords.Digits(second)
	cands = append(cands,
		Candidate{Label: labelDigits, Value: digits},
		Candidate{Label: labelDigitsParen, Value: digits + " (" + m.Text + ")"},
	)

	return cands
}

// genMeasurement verbalizes a number-with-unit match. The original text
// is always preserved parenthetically; decimal values additionally
// offer a digit-by-digit reading of the fractional part.
func genMeasurement(m Match) []Candidate {
	num := strings.TrimSpace(strings.TrimSuffix(m.Text, m.Unit))
	unit, ok := unitWords[strings.ToLower(m.Unit)]
	if !ok {
		return nil
	}
	return genUnitReadings(num, unit, m.Text)
}

// genPercentage verbalizes a percentage match, suffixed "por ciento".
func genPercentage(m Match) []Candidate {
	num := strings.TrimSpace(strings.TrimSuffix(m.Text, "%"))
	return genUnitReadings(num, "por ciento", m.Text)
}

// genUnitReadings builds the shared measurement/percentage candidate
// set: number text plus unit words plus parenthetical original.
func genUnitReadings(num, unit, raw string) []Candidate {
	var cands []Candidate

	if words, err := numwords.Decimal(num, numwords.WordsMode); err == nil {
		cands = append(cands, Candidate{
			Label: labelWords,
			Value: words + " " + unit + " (" + raw + ")",
		})
	}
	if strings.ContainsAny(num, ".,") {
		if frac, err := numwords.Decimal(num, numwords.DigitMode); err == nil {
			cands = append(cands, Candidate{
				Label: labelFracDigits,
				Value: frac + " " + unit + " (" + raw + ")",
			})
		}
	}

	return cands
}

// genSigned verbalizes an explicitly signed number: "más"/"menos"
// prefix with word and digit-by-digit readings.
func genSigned(m Match) []Candidate {
	var cands []Candidate

	if words, err := numwords.Decimal(m.Text, numwords.WordsMode); err == nil {
		cands = append(cands,
			Candidate{Label: labelWords, Value: words},
			Candidate{Label: labelWordsParen, Value: words + " (" + m.Text + ")"},
		)
	}

	signWord := "menos"
	if m.Text[0] == '+' {
		signWord = "más"
	}
	digits := signWord + " " + numwords.Digits(m.Text[1:])
	cands = append(cands,
		Candidate{Label: labelDigits, Value: digits},
		Candidate{Label: labelDigitsParen, Value: digits + " (" + m.Text + ")"},
	)

	return cands
}

// genNumber verbalizes a standalone number. Whole numbers add a
// capitalized word form for street-name contexts. Tokens of ten or
// more digits flag every candidate for bulk application.
func genNumber(m Match) []Candidate {
	var cands []Candidate
	whole := !strings.ContainsAny(m.Text, ".,")

	if words, err := numwords.Decimal(m.Text, numwords.WordsMode); err == nil {
		cands = append(cands,
			Candidate{Label: labelWords, Value: words},
			Candidate{Label: labelWordsParen, Value: words + " (" + m.Text + ")"},
		)
		if whole {
			cands = append(cands, Candidate{Label: labelCapitalized, Value: upperFirst(words)})
		}
	}

	digits := numwords.Digits(m.Text)
	cands = append(cands,
		Candidate{Label: labelDigits, Value: digits},
		Candidate{Label: labelDigitsParen, Value: digits + " (" + m.Text + ")"},
	)

	if countDigits(m.Text) >= applyToAllDigits {
		for i := range cands {
			cands[i].ApplyToAll = true
		}
	}

	return cands
}

// wholeWords converts a digit string to cardinal words.
func wholeWords(s string) (string, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return "", numwords.ErrInvalidNumeral
	}
	return numwords.Cardinal(n)
}

// matchCase uppercases the first rune of repl when src starts with an
// uppercase rune, so "Ing." expands to "Ingeniero".
func matchCase(src, repl string) string {
	r, _ := utf8.DecodeRuneInString(src)
	if unicode.IsUpper(r) {
		return upperFirst(repl)
	}
	return repl
}

// upperFirst uppercases the first rune of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// countDigits returns the number of ASCII digit characters in s.
func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

// dedupe removes candidates whose Value duplicates an earlier one,
// preserving order. All returned candidate values are distinct.
func dedupe(cands []Candidate) []Candidate {
	if len(cands) <= 1 {
		return cands
	}
	seen := make(map[string]struct{}, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if _, ok := seen[c.Value]; ok {
			continue
		}
		seen[c.Value] = struct{}{}
		out = append(out, c)
	}
	return out
}
