package quadratic

// RootPair holds two real roots in input order.
type RootPair struct {
	R1 float64
	R2 float64
}

// Polynomial is A·x^2 + B·x + C = 0. A is always 1.
type Polynomial struct {
	A float64
	B float64
	C float64
}

// Derive returns the monic quadratic whose roots are p.R1 and p.R2.
// NaN and Inf inputs propagate through ordinary float arithmetic.
func Derive(p RootPair) Polynomial {
	const a = 1.0
	return Polynomial{
		A: a,
		B: -a * (p.R1 + p.R2),
		C: a * (p.R1 * p.R2),
	}
}
