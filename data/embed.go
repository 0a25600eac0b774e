// Package data embeds the dictionary files used by the scanner.
package data

import _ "embed"

//go:embed abbrev.txt
var Abbreviations []byte
