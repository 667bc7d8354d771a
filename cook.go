package cryptoburger

import (
	"math/big"
)

// Cook is one stage of computation applied by the party holding the
// (possibly encrypted) data. Apply must be pure: equal inputs give equal
// outputs, and the input is never mutated.
type Cook[T any] interface {
	Apply(x T) (T, error)
}

// CookFunc adapts a function to the Cook interface.
type CookFunc[T any] func(x T) (T, error)

func (f CookFunc[T]) Apply(x T) (T, error) {
	return f(x)
}

type namedCook[T any] struct {
	name string
	f    CookFunc[T]
}

func (c namedCook[T]) Apply(x T) (T, error) {
	return c.f(x)
}

func (c namedCook[T]) String() string {
	return c.name
}

// NamedCook returns a cook that reports name in logs and errors.
func NamedCook[T any](name string, f CookFunc[T]) Cook[T] {
	return namedCook[T]{name: name, f: f}
}

// MapCook applies f to every element.
func MapCook(name string, f func(x *big.Int) *big.Int) Cook[*Vector] {
	return NamedCook[*Vector](name, func(x *Vector) (*Vector, error) {
		return x.Map(f), nil
	})
}

// Increment adds one to every element.
func Increment() Cook[*Vector] {
	return NamedCook[*Vector]("increment", func(x *Vector) (*Vector, error) {
		return x.Increment(), nil
	})
}

// AddVector adds w element-wise.
func AddVector(w *Vector) Cook[*Vector] {
	w = w.Clone()
	return NamedCook[*Vector]("add "+w.String(), func(x *Vector) (*Vector, error) {
		return x.Add(w)
	})
}

// AddScalar adds k to every element.
func AddScalar(k *big.Int) Cook[*Vector] {
	k = new(big.Int).Set(k)
	return NamedCook[*Vector]("add "+k.String(), func(x *Vector) (*Vector, error) {
		return x.AddScalar(k), nil
	})
}

// Scale multiplies every element by k.
func Scale(k *big.Int) Cook[*Vector] {
	k = new(big.Int).Set(k)
	return NamedCook[*Vector]("scale "+k.String(), func(x *Vector) (*Vector, error) {
		return x.Scale(k), nil
	})
}

// ModuloScalar reduces every element modulo m.
func ModuloScalar(m *big.Int) Cook[*Vector] {
	m = new(big.Int).Set(m)
	return NamedCook[*Vector]("mod "+m.String(), func(x *Vector) (*Vector, error) {
		return x.ModuloScalar(m)
	})
}
