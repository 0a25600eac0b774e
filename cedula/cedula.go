// Package cedula validates Ecuadorian national identification numbers.
//
// A cédula is ten digits: a two-digit province code (01–24), a third
// digit below six, six sequence digits, and a mod-10 check digit
// computed with alternating coefficients 2,1,2,1,2,1,2,1,2 where any
// two-digit product contributes its value minus nine.
//
// Two API layers are provided:
//
//   - Structured: Validate returns a descriptive error naming the first
//     failed check.
//   - Convenience: IsValid returns a boolean for common use cases.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Foreign-resident cédulas with province code 30 are rejected;
//     only the 24 territorial provinces are accepted.
//   - RUC numbers (cédula plus an establishment suffix) are not
//     validated; pass the first ten digits only.
package cedula

import (
	"errors"
	"fmt"
)

// Validation errors, in check order.
var (
	ErrFormat     = errors.New("cedula: must be ten digits")
	ErrProvince   = errors.New("cedula: invalid province code")
	ErrThirdDigit = errors.New("cedula: invalid third digit")
	ErrChecksum   = errors.New("cedula: checksum mismatch")
)

const (
	cedulaLen     = 10
	maxProvince   = 24
	maxThirdDigit = 5
)

// coefficients multiply the first nine digits for the checksum.
var coefficients = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// Validate checks s as an Ecuadorian cédula and returns the first
// failed check: format, province range, third digit, then checksum.
func Validate(s string) error {
	if len(s) != cedulaLen || !allDigits(s) {
		return fmt.Errorf("%w: %q", ErrFormat, s)
	}

	province := int(s[0]-'0')*10 + int(s[1]-'0')
	if province < 1 || province > maxProvince {
		return fmt.Errorf("%w: %02d", ErrProvince, province)
	}

	if third := int(s[2] - '0'); third > maxThirdDigit {
		return fmt.Errorf("%w: %d", ErrThirdDigit, third)
	}

	sum := 0
	for i, coef := range coefficients {
		product := int(s[i]-'0') * coef
		if product > 9 {
			product -= 9
		}
		sum += product
	}
	check := (10 - sum%10) % 10
	if check != int(s[9]-'0') {
		return ErrChecksum
	}

	return nil
}

// IsValid reports whether s is a valid cédula.
func IsValid(s string) bool {
	return Validate(s) == nil
}

// Province returns the province code of a valid cédula.
// Returns the validation error otherwise.
func Province(s string) (int, error) {
	if err := Validate(s); err != nil {
		return 0, err
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}

// allDigits reports whether s consists entirely of ASCII digit characters.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
