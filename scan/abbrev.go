// Abbreviation dictionary loading and matching.
package scan

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	"github.com/EmesEmes/matriz-sub000/data"
)

// expansion holds the masculine and feminine forms of one abbreviation.
// The forms are equal for gender-neutral entries ("av." -> "avenida").
type expansion struct {
	masc string
	fem  string
}

const abbrevFields = 3 // abbreviation, masculine, feminine

var (
	// abbrevTable maps lowercase abbreviation keys to their expansions.
	abbrevTable map[string]expansion

	// reAbbrev matches any dictionary key case-insensitively. Keys
	// without a trailing dot get a word-boundary suffix so "ruc" does
	// not match inside "truco".
	reAbbrev *regexp.Regexp
)

func init() {
	// Parse data.Abbreviations: each line is <abbrev>\t<masc>\t<fem>\n.
	lines := bytes.Split(data.Abbreviations, []byte("\n"))
	abbrevTable = make(map[string]expansion, len(lines))
	keys := make([]string, 0, len(lines))

	for _, line := range lines {
		fields := bytes.Split(line, []byte("\t"))
		if len(fields) != abbrevFields {
			continue
		}
		key := strings.ToLower(string(fields[0]))
		abbrevTable[key] = expansion{
			masc: string(fields[1]),
			fem:  string(fields[2]),
		}
		keys = append(keys, key)
	}

	// Longest key first so "sra." is tried before "sr.".
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	alts := make([]string, len(keys))
	for i, key := range keys {
		alt := regexp.QuoteMeta(key)
		if !strings.HasSuffix(key, ".") {
			alt += `\b`
		}
		alts[i] = alt
	}
	reAbbrev = regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)`)
}

// lookupAbbrev returns the expansion for a matched abbreviation text.
func lookupAbbrev(text string) (expansion, bool) {
	exp, ok := abbrevTable[strings.ToLower(text)]
	return exp, ok
}
