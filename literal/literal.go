package literal

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of all literal parsing errors.
var Error = errs.Class("literal")

// MaxExponent is the largest exponent magnitude accepted by Parse.
const MaxExponent = 1_000_000

var rx = regexp.MustCompile(`^(-)?([0-9]*)(?:\.([0-9]+))?(?:e([-+]?[0-9]+))?$`)

// Decimal is a decimal literal split into its parts.
type Decimal struct {
	Negative bool
	Whole    string
	Fraction string

	Exponent    int
	HasExponent bool
}

// Parse splits text into a Decimal.
func Parse(text string) (d Decimal, err error) {
	m := rx.FindStringSubmatch(text)
	if m == nil {
		return d, Error.New("invalid decimal format: %q", text)
	}

	d.Negative = m[1] == "-"
	d.Whole = m[2]
	d.Fraction = m[3]

	if m[4] != "" {
		d.Exponent, err = strconv.Atoi(m[4])
		if err != nil || d.Exponent > MaxExponent || d.Exponent < -MaxExponent {
			return Decimal{}, Error.New("exponent out of range: %q", text)
		}

		d.HasExponent = true
	}

	if d.Whole == "" && d.Fraction == "" && !d.HasExponent {
		return Decimal{}, Error.New("no digits: %q", text)
	}

	return d, nil
}

// Shift applies the exponent, moving digits between the whole and fraction
// groups. The returned Decimal has a zero exponent.
func (d Decimal) Shift() Decimal {
	k := d.Exponent

	switch {
	case k < 0:
		k = -k
		whole := lpad(d.Whole, k)
		d.Fraction = whole[len(whole)-k:] + d.Fraction
		d.Whole = whole[:len(whole)-k]
	case k > 0:
		fraction := rpad(d.Fraction, k)
		d.Whole = d.Whole + fraction[:k]
		d.Fraction = fraction[k:]
	}

	d.Exponent = 0

	return d
}

// Digits joins the sign, whole and fraction groups into a base 10 integer
// string with exactly scale fraction digits. The exponent is ignored; call
// Shift first.
func (d Decimal) Digits(scale int) string {
	fraction := d.Fraction
	if len(fraction) > scale {
		fraction = fraction[:scale]
	}

	sb := &strings.Builder{}
	sb.Grow(1 + len(d.Whole) + scale)

	if d.Negative {
		sb.WriteByte('-')
	}

	sb.WriteString(d.Whole)
	sb.WriteString(rpad(fraction, scale))

	if sb.Len() == 0 || (d.Negative && sb.Len() == 1) {
		// Only possible with scale 0 and no whole digits.
		sb.WriteByte('0')
	}

	return sb.String()
}

// Normalize parses text and returns its digits at the given scale.
func Normalize(text string, scale int) (digits string, err error) {
	d, err := Parse(text)
	if err != nil {
		return "", err
	}

	return d.Shift().Digits(scale), nil
}

func lpad(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}

func rpad(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return s + strings.Repeat("0", n-len(s))
}
