package numwords

import (
	"errors"
	"testing"
)

// FuzzCardinal verifies that Cardinal never panics and errors exactly
// when the input is outside [0, maxCardinal].
func FuzzCardinal(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(1_000_000))
	f.Add(maxCardinal)
	f.Add(maxCardinal + 1)
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		got, err := Cardinal(n)
		if n < 0 || n > maxCardinal {
			if !errors.Is(err, ErrInvalidNumeral) {
				t.Errorf("Cardinal(%d) = %q, %v; want ErrInvalidNumeral", n, got, err)
			}
			return
		}
		if err != nil {
			t.Errorf("Cardinal(%d) unexpected error: %v", n, err)
		}
		if got == "" {
			t.Errorf("Cardinal(%d) returned empty text", n)
		}
	})
}

// FuzzDigits verifies that Digits never panics for any string input.
func FuzzDigits(f *testing.F) {
	f.Add("")
	f.Add("1234567890")
	f.Add("3.14")
	f.Add("N24-660")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_ = Digits(s)
	})
}

// FuzzDecimal verifies that Decimal never panics in either mode.
func FuzzDecimal(f *testing.F) {
	f.Add("")
	f.Add("3.14")
	f.Add("0,5")
	f.Add("-2.5")
	f.Add("+2.60")
	f.Add("abc")
	f.Add(".5")
	f.Add("3.")
	f.Add("3.14.15")
	f.Add("\xff\xfe")
	f.Add("999999999999999999.999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic in either mode.
		_, _ = Decimal(s, WordsMode)
		_, _ = Decimal(s, DigitMode)
	})
}
