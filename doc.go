// Package cryptounit provides a fixed point amount with 8 fractional digits.
//
// A Unit stores a single arbitrary precision integer, the magnitude, which is
// the amount multiplied by 10^8 (the satoshi convention):
//
//  amount = magnitude * 10^-8
//
// For example:
//
//  0.554 BTC   = 55400000 * 10^-8
//  -1.234e-3   = -123400 * 10^-8
//
// Construction
//
// There are two ways to build a Unit and they are not interchangeable:
//
//  FromDecimal("1.5")  // decimal literal, scaled: magnitude 150000000
//  FromInt(150000000)  // raw magnitude, already scaled
//
// FromDecimal (and FromFloat) is the only entry point that applies the scale.
// Every other constructor, and every Operand passed to an arithmetic or
// comparison method, is a raw magnitude.
//
// Arithmetic
//
// All operations act directly on magnitudes and return a new Unit. In
// particular Times and DividedBy do not correct for the scale:
//
//  FromDecimal("3.19999999").DividedBy(Int(10000)) == FromDecimal("0.00031999")
//
// Key Encoding
//
// Bytes encodes a Unit as exactly 8 big-endian bytes of the unsigned
// magnitude. For every pair of encodable values, comparing the encoded bytes
// lexicographically gives the same result as comparing the values:
//
//  | Amount     | Magnitude        | Key                     |
//  |------------|------------------|-------------------------|
//  | 0          | 0                | 00 00 00 00 00 00 00 00 |
//  | 0.00000001 | 1                | 00 00 00 00 00 00 00 01 |
//  | 1          | 100000000        | 00 00 00 00 05 f5 e1 00 |
//  | 21000000   | 2100000000000000 | 00 07 75 f0 5a 07 40 00 |
//  |------------|------------------|-------------------------|
//
// Negative magnitudes and magnitudes of 2^64 or more cannot be encoded and
// return a RangeError. The compact package encodes any Unit.
package cryptounit
