package ring

// Float64Ring is the default Ring for float64: value-equals-zero
// IsZero, ordinary IEEE-754 arithmetic.
type Float64Ring struct{}

func (Float64Ring) Add(a, b float64) float64 { return a + b }
func (Float64Ring) Sub(a, b float64) float64 { return a - b }
func (Float64Ring) Mul(a, b float64) float64 { return a * b }
func (Float64Ring) Zero() float64            { return 0 }
func (Float64Ring) One() float64             { return 1 }
func (Float64Ring) IsZero(v float64) bool    { return v == 0 }
func (Float64Ring) FromInteger(n int64) (float64, error) {
	if n != 0 {
		return 0, ErrUnsupportedFromInteger
	}
	return 0, nil
}

// Int64Ring is the default Ring for int64.
type Int64Ring struct{}

func (Int64Ring) Add(a, b int64) int64 { return a + b }
func (Int64Ring) Sub(a, b int64) int64 { return a - b }
func (Int64Ring) Mul(a, b int64) int64 { return a * b }
func (Int64Ring) Zero() int64          { return 0 }
func (Int64Ring) One() int64           { return 1 }
func (Int64Ring) IsZero(v int64) bool  { return v == 0 }
func (Int64Ring) FromInteger(n int64) (int64, error) {
	if n != 0 {
		return 0, ErrUnsupportedFromInteger
	}
	return 0, nil
}

// Complex128Ring is the Ring for complex128. IsZero(x+iy) is
// isZero(x) ∧ isZero(y) — component-wise, not a magnitude threshold.
type Complex128Ring struct{}

func (Complex128Ring) Add(a, b complex128) complex128 { return a + b }
func (Complex128Ring) Sub(a, b complex128) complex128 { return a - b }
func (Complex128Ring) Mul(a, b complex128) complex128 { return a * b }
func (Complex128Ring) Zero() complex128               { return 0 }
func (Complex128Ring) One() complex128                { return 1 }
func (Complex128Ring) IsZero(v complex128) bool {
	return real(v) == 0 && imag(v) == 0
}
func (Complex128Ring) FromInteger(n int64) (complex128, error) {
	if n != 0 {
		return 0, ErrUnsupportedFromInteger
	}
	return 0, nil
}
