// Package literal parses decimal literals into scaled integer digit strings.
//
// The accepted grammar is:
//
//  decimal := '-'? digits? ('.' digits)? ('e' ('-'|'+')? digits)?
//
// For example:
//
//  1234
//  -1.234
//  1.234e3
//  -1.234e-3
//  -1.234e+3
//  1e5
//  .5
//
// Normalization
//
// A literal is first split into its sign, whole digits, fraction digits and
// exponent. The exponent is then applied by moving digits between the whole
// and fraction groups:
//
//  -1.234e-3  whole=1     fraction=234  exponent=-3
//             whole=      fraction=001234
//
//  1.5e5      whole=1     fraction=5    exponent=5
//             whole=150000 fraction=
//
// Finally the fraction is padded (or truncated) to the requested scale and
// the groups are joined into a single base 10 integer string:
//
//  -1.234e-3 @ scale 8 = -00123400
//  1.5e5     @ scale 8 = 15000000000000
//
// Fraction digits past the scale are dropped, which truncates toward zero.
package literal
