package cryptounit

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zeebo/errs"

	"github.com/calebcase/cryptounit/literal"
)

// Scale is the number of fractional decimal digits of every Unit.
const Scale = 8

// Error classes.
var (
	FormatError     = errs.Class("format")
	TypeError       = errs.Class("type")
	RangeError      = errs.Class("range")
	ArithmeticError = errs.Class("arithmetic")
)

var (
	zero = new(big.Int)

	// scaleFactor is 10^Scale. It must never be modified.
	scaleFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(Scale), nil)
)

// Unit is an amount with Scale fractional digits. The zero value is zero.
//
// A Unit is immutable. Its magnitude is never shared with, or modified by,
// any other Unit.
type Unit struct {
	i *big.Int
}

// value returns the magnitude. The result must not be modified.
func (u Unit) value() *big.Int {
	if u.i == nil {
		return zero
	}

	return u.i
}

// FromInt returns a Unit with magnitude n.
func FromInt(n int64) Unit {
	return Unit{big.NewInt(n)}
}

// FromUint64 returns a Unit with magnitude n.
func FromUint64(n uint64) Unit {
	return Unit{new(big.Int).SetUint64(n)}
}

// FromBig returns a Unit with a copy of i as its magnitude. A nil i is zero.
func FromBig(i *big.Int) Unit {
	if i == nil {
		return Unit{}
	}

	return Unit{new(big.Int).Set(i)}
}

// FromWhole returns a Unit for n whole units, n * 10^Scale.
func FromWhole(n int64) Unit {
	return Unit{new(big.Int).Mul(big.NewInt(n), scaleFactor)}
}

// FromUnit returns a copy of u.
func FromUnit(u Unit) Unit {
	return FromBig(u.i)
}

// Parse returns a Unit with the magnitude given as a base 10 integer string.
// An optional leading sign is permitted.
func Parse(s string) (u Unit, err error) {
	return ParseBase(s, 10)
}

// ParseBase is like Parse but for the given base, which must be between 2 and
// big.MaxBase. A base of 0 selects the base from the string prefix as
// big.Int.SetString does.
func ParseBase(s string, base int) (u Unit, err error) {
	if base != 0 && (base < 2 || base > big.MaxBase) {
		return u, RangeError.New("invalid base: %d", base)
	}

	i, ok := new(big.Int).SetString(s, base)
	if !ok {
		return u, FormatError.New("invalid base %d integer: %q", base, s)
	}

	return Unit{i}, nil
}

// FromDecimal returns the Unit for a decimal literal such as "0.554",
// "-1.234e-3" or "1e5". Digits past the eighth fractional digit are
// truncated.
func FromDecimal(s string) (u Unit, err error) {
	digits, err := literal.Normalize(s, Scale)
	if err != nil {
		return u, FormatError.Wrap(err)
	}

	i, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return u, FormatError.New("invalid normalized digits: %q", digits)
	}

	return Unit{i}, nil
}

// FromFloat returns the Unit for the decimal value of f, using the shortest
// representation that round trips to f.
func FromFloat(f float64) (u Unit, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return u, FormatError.New("not a finite number: %v", f)
	}

	return FromDecimal(strconv.FormatFloat(f, 'g', -1, 64))
}

// New returns a Unit for a raw magnitude held in v, which may be a Unit, an
// Operand, a *big.Int, a Go integer, or a base 10 integer string.
// Decimal literals are not accepted; use FromDecimal.
func New(v interface{}) (u Unit, err error) {
	switch x := v.(type) {
	case Unit:
		return FromUnit(x), nil
	case *big.Int:
		if x == nil {
			return u, TypeError.New("nil *big.Int")
		}

		return FromBig(x), nil
	case string:
		return Parse(x)
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromUint64(uint64(x)), nil
	case uint8:
		return FromUint64(uint64(x)), nil
	case uint16:
		return FromUint64(uint64(x)), nil
	case uint32:
		return FromUint64(uint64(x)), nil
	case uint64:
		return FromUint64(x), nil
	case Operand:
		return coerce(x)
	}

	return u, TypeError.New("invalid input type %T: must be Unit, Operand, integer or string", v)
}

// Big returns a copy of the magnitude.
func (u Unit) Big() *big.Int {
	return new(big.Int).Set(u.value())
}

// Split returns the whole units and the remaining fractional magnitude of u.
// Both have the sign of u.
func (u Unit) Split() (whole *big.Int, fraction *big.Int) {
	return new(big.Int).QuoRem(u.value(), scaleFactor, new(big.Int))
}

// Sign returns -1, 0 or +1 depending on the sign of u.
func (u Unit) Sign() int {
	return u.value().Sign()
}

// IsZero reports whether u is zero.
func (u Unit) IsZero() bool {
	return u.Sign() == 0
}
