package cryptounit

// Compare returns -1, 0 or +1 when u is less than, equal to or greater than
// o.
func (u Unit) Compare(o Operand) (int, error) {
	y, err := magnitude(o)
	if err != nil {
		return 0, err
	}

	return u.value().Cmp(y), nil
}

// EqualTo reports whether u == o.
func (u Unit) EqualTo(o Operand) (bool, error) {
	c, err := u.Compare(o)
	return c == 0 && err == nil, err
}

// GreaterThan reports whether u > o.
func (u Unit) GreaterThan(o Operand) (bool, error) {
	c, err := u.Compare(o)
	return c > 0 && err == nil, err
}

// GreaterThanOrEqual reports whether u >= o.
func (u Unit) GreaterThanOrEqual(o Operand) (bool, error) {
	c, err := u.Compare(o)
	return c >= 0 && err == nil, err
}

// LessThan reports whether u < o.
func (u Unit) LessThan(o Operand) (bool, error) {
	c, err := u.Compare(o)
	return c < 0 && err == nil, err
}

// LessThanOrEqual reports whether u <= o.
func (u Unit) LessThanOrEqual(o Operand) (bool, error) {
	c, err := u.Compare(o)
	return c <= 0 && err == nil, err
}

// Gt is shorthand for GreaterThan.
func (u Unit) Gt(o Operand) (bool, error) { return u.GreaterThan(o) }

// Gte is shorthand for GreaterThanOrEqual.
func (u Unit) Gte(o Operand) (bool, error) { return u.GreaterThanOrEqual(o) }

// Lt is shorthand for LessThan.
func (u Unit) Lt(o Operand) (bool, error) { return u.LessThan(o) }

// Lte is shorthand for LessThanOrEqual.
func (u Unit) Lte(o Operand) (bool, error) { return u.LessThanOrEqual(o) }

// Compare returns -1, 0 or +1 when a is less than, equal to or greater than
// b.
func Compare(a, b Operand) (int, error) {
	x, err := coerce(a)
	if err != nil {
		return 0, err
	}

	return x.Compare(b)
}

// Gt reports whether a > b.
func Gt(a, b Operand) (bool, error) {
	c, err := Compare(a, b)
	return c > 0 && err == nil, err
}

// Gte reports whether a >= b.
func Gte(a, b Operand) (bool, error) {
	c, err := Compare(a, b)
	return c >= 0 && err == nil, err
}

// Lt reports whether a < b.
func Lt(a, b Operand) (bool, error) {
	c, err := Compare(a, b)
	return c < 0 && err == nil, err
}

// Lte reports whether a <= b.
func Lte(a, b Operand) (bool, error) {
	c, err := Compare(a, b)
	return c <= 0 && err == nil, err
}

// Max returns the largest operand. When several operands are equal the first
// one wins.
func Max(os ...Operand) (Unit, error) {
	return fold(os, Unit.GreaterThan)
}

// Min returns the smallest operand. When several operands are equal the first
// one wins.
func Min(os ...Operand) (Unit, error) {
	return fold(os, Unit.LessThan)
}

func fold(os []Operand, better func(Unit, Operand) (bool, error)) (u Unit, err error) {
	if len(os) == 0 {
		return u, RangeError.New("no operands")
	}

	for i, o := range os {
		c, err := coerce(o)
		if err != nil {
			return Unit{}, err
		}

		if i == 0 {
			u = c
			continue
		}

		ok, err := better(c, u)
		if err != nil {
			return Unit{}, err
		}

		if ok {
			u = c
		}
	}

	return u, nil
}
