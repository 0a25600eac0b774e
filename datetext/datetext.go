// Package datetext formats calendar dates as ceremonial Spanish prose
// for notarial instruments.
//
// The package renders the solemn date line that opens a matriz:
//
//	"martes doce de octubre del año dos mil veintiuno"
//
// Day numbers use the notarial day grammar, which differs from the
// general cardinal grammar: days 21–29 are written "veinte y uno" ...
// "veinte y nueve", while numwords.Cardinal contracts the same values
// to "veintiuno" ... "veintinueve". Both conventions appear in real
// instruments and the divergence is deliberate; do not unify them.
//
// All functions are safe for concurrent use by multiple goroutines.
package datetext

import (
	"fmt"
	"time"

	"github.com/EmesEmes/matriz-sub000/numwords"
)

// weekdays is indexed by time.Weekday (Sunday = 0).
var weekdays = [7]string{
	"domingo",
	"lunes",
	"martes",
	"miércoles",
	"jueves",
	"viernes",
	"sábado",
}

// months is indexed by time.Month - 1.
var months = [12]string{
	"enero",
	"febrero",
	"marzo",
	"abril",
	"mayo",
	"junio",
	"julio",
	"agosto",
	"septiembre",
	"octubre",
	"noviembre",
	"diciembre",
}

const maxDay = 31

// DayWords returns the notarial day-number text for d in [0, 31].
// Days 21–29 use the ceremonial "veinte y <unit>" form instead of the
// veinti- contraction. Returns numwords.ErrInvalidNumeral outside the
// day range.
func DayWords(d int) (string, error) {
	if d < 0 || d > maxDay {
		return "", fmt.Errorf("datetext: day %d: %w", d, numwords.ErrInvalidNumeral)
	}
	if d > 20 && d < 30 {
		unit, err := numwords.Cardinal(int64(d - 20))
		if err != nil {
			return "", err
		}
		return "veinte y " + unit, nil
	}
	return numwords.Cardinal(int64(d))
}

// Notarial formats t as the ceremonial date line of a notarial
// instrument: "<weekday> <day-in-words> de <month> del año
// <year-in-words>".
func Notarial(t time.Time) string {
	day, err := DayWords(t.Day())
	if err != nil {
		// time.Time days are always 1–31.
		day = ""
	}
	year, err := numwords.Cardinal(int64(t.Year()))
	if err != nil {
		year = ""
	}
	return fmt.Sprintf("%s %s de %s del año %s",
		weekdays[t.Weekday()], day, months[t.Month()-1], year)
}
