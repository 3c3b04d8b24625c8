package cryptounit

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Decimal returns the exact amount as a decimal.Decimal.
func (u Unit) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(u.value(), -Scale)
}

// FromDecimalValue returns the Unit for d. Digits past the eighth fractional
// digit are truncated.
func FromDecimalValue(d decimal.Decimal) Unit {
	return Unit{new(big.Int).Set(d.Shift(Scale).BigInt())}
}

// Uint256 returns the magnitude as a uint256.Int.
func (u Unit) Uint256() (x *uint256.Int, err error) {
	i := u.value()

	if i.Sign() < 0 {
		return nil, RangeError.New("negative magnitude: %s", i)
	}

	x, overflow := uint256.FromBig(i)
	if overflow {
		return nil, RangeError.New("magnitude exceeds 256 bits: %s", i)
	}

	return x, nil
}

// FromUint256 returns a Unit with magnitude x. A nil x is zero.
func FromUint256(x *uint256.Int) Unit {
	if x == nil {
		return Unit{}
	}

	return Unit{x.ToBig()}
}
