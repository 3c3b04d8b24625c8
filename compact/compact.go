// Package compact provides a variable length encoding for any Unit.
//
// The magnitude is written big-endian, shifted left by one bit, with the
// sign in the lowest bit (aka zigzag):
//
//  | Magnitude | Encoding    |
//  |-----------|-------------|
//  | 0         | 00          |
//  | +1        | 02          |
//  | -1        | 03          |
//  | +127      | fe          |
//  | -127      | ff          |
//  | +32767    | ff fe       |
//  |-----------|-------------|
//
// Unlike the 8 byte key encoding, compact encodings are not sortable but
// they hold negative values and values of any size.
package compact

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/cryptounit"
)

// Error is the class of compact encoding errors.
var Error = errs.Class("compact")

// Block is a signed integer magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// NewBlock returns the block for u.
func NewBlock(u cryptounit.Unit) *Block {
	i := u.Big()

	value := i.Abs(i).Bytes()
	if len(value) == 0 {
		value = []byte{0}
	}

	return &Block{
		Value:    value,
		Negative: u.Sign() < 0,
	}
}

// Unit returns the Unit held by the block.
func (b Block) Unit() cryptounit.Unit {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return cryptounit.FromBig(i)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative && i.Sign() != 0 {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Encode returns the compact encoding of u.
func Encode(u cryptounit.Unit) []byte {
	// MarshalBinary on a Block never fails.
	data, _ := NewBlock(u).MarshalBinary()

	return data
}

// Decode returns the Unit held by a compact encoding.
func Decode(data []byte) (u cryptounit.Unit, err error) {
	b := &Block{}

	err = b.UnmarshalBinary(data)
	if err != nil {
		return u, err
	}

	return b.Unit(), nil
}
