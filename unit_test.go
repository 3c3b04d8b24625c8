package cryptounit_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/cryptounit"
	"github.com/calebcase/oops"
)

func TestNew(t *testing.T) {
	type TC struct {
		Input  interface{}
		Output string
		Mark   error
	}

	tcs := []TC{
		{Input: 554, Output: "554", Mark: oops.New("unexpected")},
		{Input: -554, Output: "-554", Mark: oops.New("unexpected")},
		{Input: "554", Output: "554", Mark: oops.New("unexpected")},
		{Input: "-554", Output: "-554", Mark: oops.New("unexpected")},
		{Input: int8(-8), Output: "-8", Mark: oops.New("unexpected")},
		{Input: uint32(32), Output: "32", Mark: oops.New("unexpected")},
		{Input: uint64(1<<64 - 1), Output: "18446744073709551615", Mark: oops.New("unexpected")},
		{Input: big.NewInt(7), Output: "7", Mark: oops.New("unexpected")},
		{Input: cryptounit.FromInt(9), Output: "9", Mark: oops.New("unexpected")},
		{Input: cryptounit.Int(10), Output: "10", Mark: oops.New("unexpected")},
		{Input: cryptounit.Digits("11"), Output: "11", Mark: oops.New("unexpected")},
		{Input: cryptounit.Big{Int: big.NewInt(12)}, Output: "12", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.Input), func(t *testing.T) {
			u, err := cryptounit.New(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, u.String(), tc.Mark)
		})
	}

	t.Run("errors", func(t *testing.T) {
		type TC struct {
			Input interface{}
			Class *errs.Class
		}

		tcs := []TC{
			{Input: 1.5, Class: &cryptounit.TypeError},
			{Input: nil, Class: &cryptounit.TypeError},
			{Input: []byte("1"), Class: &cryptounit.TypeError},
			{Input: (*big.Int)(nil), Class: &cryptounit.TypeError},
			{Input: cryptounit.Big{}, Class: &cryptounit.TypeError},
			{Input: "1.5", Class: &cryptounit.FormatError},
			{Input: "abc", Class: &cryptounit.FormatError},
			{Input: cryptounit.Digits("1e5"), Class: &cryptounit.FormatError},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]%v", i, tc.Input), func(t *testing.T) {
				_, err := cryptounit.New(tc.Input)
				require.Error(t, err)
				require.True(t, tc.Class.Has(err), "%+v", err)
			})
		}
	})
}

func TestZeroValue(t *testing.T) {
	var u cryptounit.Unit

	require.True(t, u.IsZero())
	require.Equal(t, "0", u.String())
	require.Equal(t, "0.00000000", u.DecimalString())

	v, err := u.Plus(cryptounit.Int(5))
	require.NoError(t, err)
	require.Equal(t, "5", v.String())
	require.True(t, u.IsZero())
}

func TestFromDecimal(t *testing.T) {
	type TC struct {
		Input  string
		Output string
	}

	tcs := []TC{
		{"0.554", "55400000"},
		{".554", "55400000"},
		{"1.5e5", "15000000000000"},
		{"-1.234e+3", "-123400000000"},
		{"-1.234e3", "-123400000000"},
		{"-1.234e-3", "-123400"},
		{"1e5", "10000000000000"},
		{"123", "12300000000"},
		{"0.00000001", "1"},
		{"0.000000019", "1"},
		{"-0.000000019", "-1"},
		{"21000000.00000000", "2100000000000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			u, err := cryptounit.FromDecimal(tc.Input)
			require.NoError(t, err)
			require.Equal(t, tc.Output, u.String())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "-", "1.2.3", "0x10", "1,5", "1e", "+-1"} {
			_, err := cryptounit.FromDecimal(input)
			require.Error(t, err, input)
			require.True(t, cryptounit.FormatError.Has(err), "%+v", err)
		}
	})
}

func TestFromFloat(t *testing.T) {
	type TC struct {
		Input  float64
		Output string
	}

	tcs := []TC{
		{.554, "55400000"},
		{-1.234e+3, "-123400000000"},
		{-1.234e-3, "-123400"},
		{123, "12300000000"},
		{9.005, "900500000"},
		{0.00031999, "31999"},
		{1e-7, "10"},
		{1e21, "100000000000000000000000000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%v", i, tc.Input), func(t *testing.T) {
			u, err := cryptounit.FromFloat(tc.Input)
			require.NoError(t, err)
			require.Equal(t, tc.Output, u.String())
		})
	}

	_, err := cryptounit.FromFloat(math.NaN())
	require.True(t, cryptounit.FormatError.Has(err))

	_, err = cryptounit.FromFloat(math.Inf(-1))
	require.True(t, cryptounit.FormatError.Has(err))
}

func TestDecimalString(t *testing.T) {
	type TC struct {
		Input  cryptounit.Unit
		Output string
	}

	tcs := []TC{
		{cryptounit.MustFromDecimal(".43"), "0.43000000"},
		{cryptounit.MustFromDecimal("430"), "430.00000000"},
		{cryptounit.FromInt(1), "0.00000001"},
		{cryptounit.FromInt(100000000), "1.00000000"},
		{cryptounit.FromInt(-123400), "-0.00123400"},
		{cryptounit.FromInt(-123400000000), "-1234.00000000"},
		{cryptounit.FromWhole(21000000), "21000000.00000000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Output), func(t *testing.T) {
			require.Equal(t, tc.Output, tc.Input.DecimalString())

			// Formatting round trips through the decimal parser.
			u, err := cryptounit.FromDecimal(tc.Output)
			require.NoError(t, err)
			require.Equal(t, tc.Input.String(), u.String())
		})
	}
}

func TestSplit(t *testing.T) {
	whole, fraction := cryptounit.MustFromDecimal("-12.5").Split()
	require.Equal(t, "-12", whole.String())
	require.Equal(t, "-50000000", fraction.String())
}

func TestText(t *testing.T) {
	u := cryptounit.FromInt(255)
	require.Equal(t, "ff", u.Text(16))
	require.Equal(t, "11111111", u.Text(2))

	v, err := cryptounit.ParseBase("ff", 16)
	require.NoError(t, err)
	require.Equal(t, "255", v.String())

	_, err = cryptounit.ParseBase("ff", 1)
	require.True(t, cryptounit.RangeError.Has(err))

	_, err = cryptounit.ParseBase("fg", 16)
	require.True(t, cryptounit.FormatError.Has(err))

	require.Equal(t, `cryptounit.MustParse("255")`, fmt.Sprintf("%#v", u))
	require.Equal(t, "255", fmt.Sprint(u))
	require.Equal(t, float64(255), u.Float64())
}

func TestImmutable(t *testing.T) {
	i := big.NewInt(5)
	u := cryptounit.FromBig(i)
	i.SetInt64(6)
	require.Equal(t, "5", u.String())

	b := u.Big()
	b.SetInt64(7)
	require.Equal(t, "5", u.String())

	c := cryptounit.FromUnit(u)
	_, err := c.Plus(cryptounit.Int(1))
	require.NoError(t, err)
	require.Equal(t, "5", u.String())
	require.Equal(t, "5", c.String())

	operand := big.NewInt(3)
	_, err = u.Times(cryptounit.Big{Int: operand})
	require.NoError(t, err)
	require.Equal(t, "3", operand.String())
}
