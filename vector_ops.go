package cryptoburger

import (
	"math/big"
)

// zip combines v and w element-wise. No result is produced if op fails for any element.
func (v *Vector) zip(verb string, w *Vector, op func(i int, x, y *big.Int) (*big.Int, error)) (*Vector, error) {
	if len(v.values) != len(w.values) {
		return nil, &DimensionMismatchError{Op: verb, Left: len(v.values), Right: len(w.values)}
	}
	r := &Vector{values: make([]*big.Int, len(v.values))}
	for i, x := range v.values {
		z, err := op(i, x, w.values[i])
		if err != nil {
			return nil, err
		}
		r.values[i] = z
	}
	return r, nil
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	return v.zip("add", w, func(_ int, x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Add(x, y), nil
	})
}

// Subtract returns v - w.
func (v *Vector) Subtract(w *Vector) (*Vector, error) {
	return v.zip("subtract", w, func(_ int, x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(x, y), nil
	})
}

// ElementwiseMultiply returns the Hadamard product of v and w.
func (v *Vector) ElementwiseMultiply(w *Vector) (*Vector, error) {
	return v.zip("multiply", w, func(_ int, x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Mul(x, y), nil
	})
}

// Divide returns the element-wise quotient truncated toward zero.
func (v *Vector) Divide(w *Vector) (*Vector, error) {
	return v.zip("divide", w, func(i int, x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, &DivisionByZeroError{Op: "divide", Index: i}
		}
		return new(big.Int).Quo(x, y), nil
	})
}

// Modulo returns the element-wise Euclidean remainder, always non-negative.
func (v *Vector) Modulo(w *Vector) (*Vector, error) {
	return v.zip("compute remainder of", w, func(i int, x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, &DivisionByZeroError{Op: "modulo", Index: i}
		}
		return new(big.Int).Mod(x, y), nil
	})
}

// AddScalar adds k to every element.
func (v *Vector) AddScalar(k *big.Int) *Vector {
	return v.Map(func(x *big.Int) *big.Int { return x.Add(x, k) })
}

// SubtractScalar subtracts k from every element.
func (v *Vector) SubtractScalar(k *big.Int) *Vector {
	return v.Map(func(x *big.Int) *big.Int { return x.Sub(x, k) })
}

// Scale multiplies every element by k.
func (v *Vector) Scale(k *big.Int) *Vector {
	return v.Map(func(x *big.Int) *big.Int { return x.Mul(x, k) })
}

// DivideScalar divides every element by k, truncating toward zero.
func (v *Vector) DivideScalar(k *big.Int) (*Vector, error) {
	if k.Sign() == 0 {
		return nil, &DivisionByZeroError{Op: "divide", Index: -1}
	}
	return v.Map(func(x *big.Int) *big.Int { return x.Quo(x, k) }), nil
}

// ModuloScalar reduces every element modulo k.
func (v *Vector) ModuloScalar(k *big.Int) (*Vector, error) {
	if k.Sign() == 0 {
		return nil, &DivisionByZeroError{Op: "modulo", Index: -1}
	}
	return v.Map(func(x *big.Int) *big.Int { return x.Mod(x, k) }), nil
}

// ScaleInt64 is Scale with a machine integer factor.
func (v *Vector) ScaleInt64(k int64) *Vector {
	return v.Scale(Big(k))
}

// ModuloInt64 is ModuloScalar with a machine integer modulus.
func (v *Vector) ModuloInt64(k int64) (*Vector, error) {
	return v.ModuloScalar(Big(k))
}

// Plus returns a copy of v.
func (v *Vector) Plus() *Vector {
	return v.Clone()
}

// Negate returns -v.
func (v *Vector) Negate() *Vector {
	return v.Map(func(x *big.Int) *big.Int { return x.Neg(x) })
}

// Increment returns v with one added to every element.
func (v *Vector) Increment() *Vector {
	return v.AddScalar(big.NewInt(1))
}

// Decrement returns v with one subtracted from every element.
func (v *Vector) Decrement() *Vector {
	return v.SubtractScalar(big.NewInt(1))
}

// assign replaces the receiver's elements with r unless err is set.
func (v *Vector) assign(r *Vector, err error) error {
	if err != nil {
		return err
	}
	v.values = r.values
	return nil
}

// AddAssign sets v to v + w.
func (v *Vector) AddAssign(w *Vector) error {
	return v.assign(v.Add(w))
}

// SubtractAssign sets v to v - w.
func (v *Vector) SubtractAssign(w *Vector) error {
	return v.assign(v.Subtract(w))
}

// MultiplyAssign sets v to the element-wise product of v and w.
func (v *Vector) MultiplyAssign(w *Vector) error {
	return v.assign(v.ElementwiseMultiply(w))
}

// DivideAssign sets v to the element-wise quotient of v and w.
func (v *Vector) DivideAssign(w *Vector) error {
	return v.assign(v.Divide(w))
}

// ModuloAssign sets v to the element-wise remainder of v and w.
func (v *Vector) ModuloAssign(w *Vector) error {
	return v.assign(v.Modulo(w))
}

// AddScalarAssign adds k to every element of v.
func (v *Vector) AddScalarAssign(k *big.Int) {
	v.values = v.AddScalar(k).values
}

// ScaleAssign multiplies every element of v by k.
func (v *Vector) ScaleAssign(k *big.Int) {
	v.values = v.Scale(k).values
}

// DivideScalarAssign divides every element of v by k.
func (v *Vector) DivideScalarAssign(k *big.Int) error {
	return v.assign(v.DivideScalar(k))
}

// ModuloScalarAssign reduces every element of v modulo k.
func (v *Vector) ModuloScalarAssign(k *big.Int) error {
	return v.assign(v.ModuloScalar(k))
}
