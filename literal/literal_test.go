package literal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		text string
		d    Decimal
		err  bool
	}

	tcs := []TC{
		{
			text: "1234",
			d:    Decimal{Whole: "1234"},
		},
		{
			text: "-1.234",
			d:    Decimal{Negative: true, Whole: "1", Fraction: "234"},
		},
		{
			text: ".5",
			d:    Decimal{Fraction: "5"},
		},
		{
			text: "1.234e3",
			d:    Decimal{Whole: "1", Fraction: "234", Exponent: 3, HasExponent: true},
		},
		{
			text: "-1.234e-3",
			d:    Decimal{Negative: true, Whole: "1", Fraction: "234", Exponent: -3, HasExponent: true},
		},
		{
			text: "-1.234e+3",
			d:    Decimal{Negative: true, Whole: "1", Fraction: "234", Exponent: 3, HasExponent: true},
		},
		{
			text: "1e5",
			d:    Decimal{Whole: "1", Exponent: 5, HasExponent: true},
		},
		{
			text: "e5",
			d:    Decimal{Exponent: 5, HasExponent: true},
		},
		{text: "", err: true},
		{text: "-", err: true},
		{text: ".", err: true},
		{text: "1.", err: true},
		{text: "+1", err: true},
		{text: "1x5", err: true},
		{text: "1.2.3", err: true},
		{text: "1e", err: true},
		{text: "1E5", err: true},
		{text: " 1", err: true},
		{text: "1e1000001", err: true},
		{text: "1e99999999999999999999", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.text), func(t *testing.T) {
			d, err := Parse(tc.text)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.d, d)
		})
	}
}

func TestShift(t *testing.T) {
	type TC struct {
		in  Decimal
		out Decimal
	}

	tcs := []TC{
		{
			in:  Decimal{Whole: "1", Fraction: "234", Exponent: -3},
			out: Decimal{Whole: "", Fraction: "001234"},
		},
		{
			in:  Decimal{Whole: "12345", Fraction: "6", Exponent: -2},
			out: Decimal{Whole: "123", Fraction: "456"},
		},
		{
			in:  Decimal{Whole: "1", Fraction: "5", Exponent: 5},
			out: Decimal{Whole: "150000", Fraction: ""},
		},
		{
			in:  Decimal{Whole: "1", Fraction: "23456", Exponent: 2},
			out: Decimal{Whole: "123", Fraction: "456"},
		},
		{
			in:  Decimal{Whole: "7", Fraction: "1"},
			out: Decimal{Whole: "7", Fraction: "1"},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.Shift())
		})
	}
}

func TestNormalize(t *testing.T) {
	type TC struct {
		text   string
		digits string
	}

	tcs := []TC{
		{"0.554", "055400000"},
		{"1.5e5", "15000000000000"},
		{"-1.234e3", "-123400000000"},
		{"-1.234e+3", "-123400000000"},
		{"-1.234e-3", "-00123400"},
		{"1e5", "10000000000000"},
		{"430", "43000000000"},
		{".43", "43000000"},
		{"1.123456789", "112345678"},
		{"1e-9", "00000000"},
		{"1e0", "100000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.text), func(t *testing.T) {
			digits, err := Normalize(tc.text, 8)
			require.NoError(t, err)
			require.Equal(t, tc.digits, digits)
		})
	}
}

func TestDigitsScaleZero(t *testing.T) {
	require.Equal(t, "0", Decimal{Fraction: "5"}.Digits(0))
	require.Equal(t, "-0", Decimal{Negative: true, Fraction: "5"}.Digits(0))
	require.Equal(t, "12", Decimal{Whole: "12", Fraction: "5"}.Digits(0))
}

func BenchmarkNormalize(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := Normalize("-1.234e-3", 8)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
