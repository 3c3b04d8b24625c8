package cryptounit

import "math/big"

// Operand is a raw magnitude accepted by the arithmetic and comparison
// methods. The set of operands is closed:
//
//  Unit    an existing Unit
//  Int     a native integer
//  Digits  a base 10 integer string
//  Big     an arbitrary precision integer
//
// Every operand is an already scaled magnitude. Decimal literals must be
// converted with FromDecimal first.
type Operand interface {
	operand() (*big.Int, error)
}

// Int is a raw magnitude operand.
type Int int64

// Digits is a raw magnitude operand written as a base 10 integer string.
type Digits string

// Big is a raw magnitude operand backed by a big.Int. The integer is not
// modified.
type Big struct {
	Int *big.Int
}

func (u Unit) operand() (*big.Int, error) { return u.value(), nil }

func (n Int) operand() (*big.Int, error) { return big.NewInt(int64(n)), nil }

func (s Digits) operand() (*big.Int, error) {
	i, ok := new(big.Int).SetString(string(s), 10)
	if !ok {
		return nil, FormatError.New("invalid integer operand: %q", string(s))
	}

	return i, nil
}

func (b Big) operand() (*big.Int, error) {
	if b.Int == nil {
		return nil, TypeError.New("nil big operand")
	}

	return b.Int, nil
}

// magnitude returns the magnitude of o. The result must not be modified.
func magnitude(o Operand) (*big.Int, error) {
	if o == nil {
		return nil, TypeError.New("nil operand")
	}

	return o.operand()
}

// coerce converts o into a Unit.
func coerce(o Operand) (u Unit, err error) {
	i, err := magnitude(o)
	if err != nil {
		return u, err
	}

	return FromBig(i), nil
}
