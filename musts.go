package cryptounit

// MustParse is like Parse but panics on error.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// MustFromDecimal is like FromDecimal but panics on error.
func MustFromDecimal(s string) Unit {
	u, err := FromDecimal(s)
	if err != nil {
		panic(err)
	}

	return u
}

// MustNew is like New but panics on error.
func MustNew(v interface{}) Unit {
	u, err := New(v)
	if err != nil {
		panic(err)
	}

	return u
}
