package cryptounit

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/zeebo/errs"
)

// MaxShift is the largest bit shift accepted by BitshiftLeft and
// BitshiftRight.
const MaxShift = 1 << 20

// apply returns a new Unit holding fn(z, u, o) where z is a fresh integer.
func (u Unit) apply(o Operand, fn func(z, x, y *big.Int) *big.Int) (r Unit, err error) {
	y, err := magnitude(o)
	if err != nil {
		return r, err
	}

	return Unit{fn(new(big.Int), u.value(), y)}, nil
}

// Plus returns u + o.
func (u Unit) Plus(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).Add)
}

// Minus returns u - o.
func (u Unit) Minus(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).Sub)
}

// Times returns u * o. The scale is not corrected: multiplying two amounts
// produces a magnitude scaled by 10^16.
func (u Unit) Times(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).Mul)
}

// DividedBy returns u / o truncated toward zero. The scale is not corrected:
// dividing two amounts divides out the scale.
func (u Unit) DividedBy(o Operand) (r Unit, err error) {
	y, err := magnitude(o)
	if err != nil {
		return r, err
	}

	if y.Sign() == 0 {
		return r, ArithmeticError.New("division by zero")
	}

	return Unit{new(big.Int).Quo(u.value(), y)}, nil
}

// Mod returns the remainder of u / o truncated toward zero. The result has
// the sign of u.
func (u Unit) Mod(o Operand) (r Unit, err error) {
	y, err := magnitude(o)
	if err != nil {
		return r, err
	}

	if y.Sign() == 0 {
		return r, ArithmeticError.New("division by zero")
	}

	return Unit{new(big.Int).Rem(u.value(), y)}, nil
}

// Pow returns u ** o. The exponent must not be negative.
func (u Unit) Pow(o Operand) (r Unit, err error) {
	y, err := magnitude(o)
	if err != nil {
		return r, err
	}

	if y.Sign() < 0 {
		return r, RangeError.New("negative exponent: %s", y)
	}

	return Unit{new(big.Int).Exp(u.value(), y, nil)}, nil
}

// BitwiseAnd returns u & o using two's complement semantics.
func (u Unit) BitwiseAnd(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).And)
}

// BitwiseOr returns u | o using two's complement semantics.
func (u Unit) BitwiseOr(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).Or)
}

// BitwiseXor returns u ^ o using two's complement semantics.
func (u Unit) BitwiseXor(o Operand) (Unit, error) {
	return u.apply(o, (*big.Int).Xor)
}

// BitshiftLeft returns u << bits.
func (u Unit) BitshiftLeft(bits Operand) (r Unit, err error) {
	n, err := shift(bits)
	if err != nil {
		return r, err
	}

	return Unit{new(big.Int).Lsh(u.value(), n)}, nil
}

// BitshiftRight returns u >> bits. Negative values round toward negative
// infinity.
func (u Unit) BitshiftRight(bits Operand) (r Unit, err error) {
	n, err := shift(bits)
	if err != nil {
		return r, err
	}

	return Unit{new(big.Int).Rsh(u.value(), n)}, nil
}

func shift(bits Operand) (n uint, err error) {
	y, err := magnitude(bits)
	if err != nil {
		return 0, err
	}

	if y.Sign() < 0 || y.Cmp(big.NewInt(MaxShift)) > 0 {
		return 0, RangeError.New("shift out of range: %s", y)
	}

	return uint(y.Uint64()), nil
}

// Abs returns |u|.
func (u Unit) Abs() Unit {
	return Unit{new(big.Int).Abs(u.value())}
}

// Negate returns -u.
func (u Unit) Negate() Unit {
	return Unit{new(big.Int).Neg(u.value())}
}

// Random returns a uniformly random Unit in [0, upper) read from
// crypto/rand.
func Random(upper Operand) (Unit, error) {
	return RandomFrom(rand.Reader, upper)
}

// RandomFrom is like Random but reads entropy from r.
func RandomFrom(r io.Reader, upper Operand) (u Unit, err error) {
	bound, err := magnitude(upper)
	if err != nil {
		return u, err
	}

	if bound.Sign() <= 0 {
		return u, RangeError.New("upper bound must be positive: %s", bound)
	}

	i, err := rand.Int(r, bound)
	if err != nil {
		return u, errs.Wrap(err)
	}

	return Unit{i}, nil
}
