package cryptounit

import (
	"bytes"
	"math/big"
	"strconv"
	"strings"
)

// String returns the magnitude in base 10.
func (u Unit) String() string {
	return u.value().String()
}

// Text returns the magnitude in the given base, between 2 and big.MaxBase.
func (u Unit) Text(base int) string {
	return u.value().Text(base)
}

// GoString implements fmt.GoStringer.
func (u Unit) GoString() string {
	return "cryptounit.MustParse(\"" + u.String() + "\")"
}

// DecimalString returns the amount with exactly Scale fractional digits, for
// example "0.43000000". Negative amounts are the formatted absolute value
// prefixed with "-".
func (u Unit) DecimalString() string {
	i := u.value()

	digits := new(big.Int).Abs(i).String()
	if len(digits) <= Scale {
		digits = strings.Repeat("0", Scale+1-len(digits)) + digits
	}

	sb := &strings.Builder{}
	sb.Grow(len(digits) + 2)

	if i.Sign() < 0 {
		sb.WriteByte('-')
	}

	sb.WriteString(digits[:len(digits)-Scale])
	sb.WriteByte('.')
	sb.WriteString(digits[len(digits)-Scale:])

	return sb.String()
}

// Float64 returns the nearest float64 to the magnitude. The magnitude is not
// divided by the scale.
func (u Unit) Float64() float64 {
	f, _ := new(big.Float).SetInt(u.value()).Float64()
	return f
}

// MarshalText implements encoding.TextMarshaler. The text is the magnitude in
// base 10.
func (u Unit) MarshalText() (text []byte, err error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// MarshalJSON implements json.Marshaler. The magnitude is written as a base
// 10 JSON string; use DecimalString for a human readable amount.
func (u Unit) MarshalJSON() (data []byte, err error) {
	return []byte(strconv.Quote(u.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both JSON strings and JSON
// numbers are accepted as raw magnitudes.
func (u *Unit) UnmarshalJSON(data []byte) (err error) {
	data = bytes.TrimSpace(data)

	if string(data) == "null" {
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		text, err = strconv.Unquote(text)
		if err != nil {
			return FormatError.Wrap(err)
		}
	}

	return u.UnmarshalText([]byte(text))
}
