// Word tables for Spanish number-to-text conversion.
package numwords

const (
	maxCardinal int64 = 999_999_999_999
	hundred     int64 = 100
	thousand    int64 = 1_000
	million     int64 = 1_000_000

	wordZero       = "cero"
	wordHundred    = "cien"
	wordHundredOdd = "ciento"
	wordThousand   = "mil"
	wordMillion    = "un millón"
	wordMillions   = "millones"
	wordAnd        = "y"
	wordPlus       = "más"
	wordMinus      = "menos"
	wordDot        = "punto"
	wordComma      = "coma"
	wordHyphen     = "guión"
)

var ones = [10]string{
	"cero",
	"uno",
	"dos",
	"tres",
	"cuatro",
	"cinco",
	"seis",
	"siete",
	"ocho",
	"nueve",
}

// teens is indexed by n-10 for n in [10, 19].
var teens = [10]string{
	"diez",
	"once",
	"doce",
	"trece",
	"catorce",
	"quince",
	"dieciséis",
	"diecisiete",
	"dieciocho",
	"diecinueve",
}

// twenties is indexed by n-20 for n in [21, 29]; index 0 is unused
// ("veinte" exact is handled through tens).
var twenties = [10]string{
	"",
	"veintiuno",
	"veintidós",
	"veintitrés",
	"veinticuatro",
	"veinticinco",
	"veintiséis",
	"veintisiete",
	"veintiocho",
	"veintinueve",
}

// tens is indexed by tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"veinte",
	"treinta",
	"cuarenta",
	"cincuenta",
	"sesenta",
	"setenta",
	"ochenta",
	"noventa",
}

// hundreds is indexed by hundreds digit (2–9); indices 0 and 1 are
// unused ("cien"/"ciento" are irregular and handled separately).
var hundreds = [10]string{
	"",
	"",
	"doscientos",
	"trescientos",
	"cuatrocientos",
	"quinientos",
	"seiscientos",
	"setecientos",
	"ochocientos",
	"novecientos",
}
