package cryptounit

import (
	"encoding/binary"
	"math/big"
)

// KeySize is the size in bytes of an encoded key.
const KeySize = 8

// Bytes returns the 8 byte big-endian key of the magnitude. Keys sort in the
// same order as the values they encode.
//
// Negative magnitudes and magnitudes of 2^64 or more can not be encoded.
func (u Unit) Bytes() (data []byte, err error) {
	return u.AppendBytes(make([]byte, 0, KeySize))
}

// AppendBytes appends the key of u to data.
func (u Unit) AppendBytes(data []byte) (_ []byte, err error) {
	i := u.value()

	if i.Sign() < 0 {
		return data, RangeError.New("negative magnitude: %s", i)
	}

	if i.BitLen() > KeySize*8 {
		return data, RangeError.New("magnitude exceeds %d bytes: %s", KeySize, i)
	}

	var key [KeySize]byte
	binary.BigEndian.PutUint64(key[:], i.Uint64())

	return append(data, key[:]...), nil
}

// FromBytes returns the Unit encoded by an 8 byte big-endian key.
func FromBytes(data []byte) (u Unit, err error) {
	if len(data) != KeySize {
		return u, RangeError.New("invalid key size: %d", len(data))
	}

	return Unit{new(big.Int).SetUint64(binary.BigEndian.Uint64(data))}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the key encoding.
func (u Unit) MarshalBinary() (data []byte, err error) {
	return u.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler using the key
// encoding.
func (u *Unit) UnmarshalBinary(data []byte) (err error) {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}

	*u = v

	return nil
}
