package cryptoburger

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/exp/constraints"
)

// Vector is a fixed-length vector of arbitrary-precision integers. The elements
// are either plaintext values or ciphertexts of an additive cryptosystem.
//
// Operations returning a *Vector never alias the receiver or their arguments.
// Methods suffixed Assign mutate the receiver. A Vector is not safe for
// concurrent mutation.
type Vector struct {
	values []*big.Int
}

// Burger is the vector exchanged between the data owner and the cook.
type Burger = Vector

// NewVector returns a zero-filled vector of the given dimension. Panics if
// dimension is negative.
func NewVector(dimension int) *Vector {
	if dimension < 0 {
		panic(fmt.Sprintf("negative vector dimension %d", dimension))
	}
	values := make([]*big.Int, dimension)
	for i := range values {
		values[i] = new(big.Int)
	}
	return &Vector{values: values}
}

// NewVectorFilled returns a vector of the given dimension with every element set to value.
func NewVectorFilled(dimension int, value *big.Int) *Vector {
	v := NewVector(dimension)
	for _, x := range v.values {
		setOrZero(x, value)
	}
	return v
}

// VectorOf returns a vector holding copies of values. Nil values are read as zero.
func VectorOf(values ...*big.Int) *Vector {
	v := NewVector(len(values))
	for i, x := range values {
		setOrZero(v.values[i], x)
	}
	return v
}

// VectorOfInts returns a vector of machine integers.
func VectorOfInts[T constraints.Integer](values ...T) *Vector {
	v := &Vector{values: make([]*big.Int, len(values))}
	for i, x := range values {
		v.values[i] = Big(x)
	}
	return v
}

// Big converts a machine integer to a new big.Int.
func Big[T constraints.Integer](x T) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func setOrZero(dst, src *big.Int) {
	if src == nil {
		dst.SetInt64(0)
	} else {
		dst.Set(src)
	}
}

// Dimension returns the number of elements.
func (v *Vector) Dimension() int {
	return len(v.values)
}

func (v *Vector) checkIndex(index int) error {
	if index < 0 || index >= len(v.values) {
		return &IndexOutOfBoundsError{Index: index, Dimension: len(v.values)}
	}
	return nil
}

// Get returns a copy of the element at index.
func (v *Vector) Get(index int) (*big.Int, error) {
	if err := v.checkIndex(index); err != nil {
		return nil, err
	}
	return new(big.Int).Set(v.values[index]), nil
}

// Set stores a copy of value at index.
func (v *Vector) Set(index int, value *big.Int) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.values[index] = new(big.Int)
	setOrZero(v.values[index], value)
	return nil
}

// Resize changes the dimension, dropping trailing elements or padding with
// zeros. Panics if dimension is negative.
func (v *Vector) Resize(dimension int) {
	if dimension < 0 {
		panic(fmt.Sprintf("negative vector dimension %d", dimension))
	}
	if dimension <= len(v.values) {
		v.values = v.values[:dimension:dimension]
		return
	}
	values := make([]*big.Int, dimension)
	copy(values, v.values)
	for i := len(v.values); i < dimension; i++ {
		values[i] = new(big.Int)
	}
	v.values = values
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	c := &Vector{values: make([]*big.Int, len(v.values))}
	for i, x := range v.values {
		c.values[i] = new(big.Int).Set(x)
	}
	return c
}

// Elements returns a copy of the elements in index order.
func (v *Vector) Elements() []*big.Int {
	return v.Clone().values
}

// Contains reports whether some element equals x.
func (v *Vector) Contains(x *big.Int) bool {
	for _, y := range v.values {
		if y.Cmp(x) == 0 {
			return true
		}
	}
	return false
}

// Each calls f for every element in index order. f receives a copy.
func (v *Vector) Each(f func(i int, x *big.Int)) {
	for i, x := range v.values {
		f(i, new(big.Int).Set(x))
	}
}

// VectorIterator walks the elements of a vector in index order.
type VectorIterator struct {
	v   *Vector
	pos int
}

// Iterator returns an iterator positioned before the first element.
func (v *Vector) Iterator() *VectorIterator {
	return &VectorIterator{v: v, pos: -1}
}

// Next advances to the next element and reports whether there is one.
func (it *VectorIterator) Next() bool {
	if it.pos < len(it.v.values) {
		it.pos++
	}
	return it.pos < len(it.v.values)
}

// Value returns a copy of the element at the current position. Value is only
// meaningful after a call to Next that returned true; otherwise it returns nil.
func (it *VectorIterator) Value() *big.Int {
	if it.pos < 0 || it.pos >= len(it.v.values) {
		return nil
	}
	return new(big.Int).Set(it.v.values[it.pos])
}

// Reset rewinds the iterator to before the first element.
func (it *VectorIterator) Reset() {
	it.pos = -1
}

// Map returns the vector of f applied to every element.
func (v *Vector) Map(f func(x *big.Int) *big.Int) *Vector {
	return v.MapIndexed(func(_ int, x *big.Int) *big.Int { return f(x) })
}

// MapIndexed is Map with the element position passed to f.
func (v *Vector) MapIndexed(f func(i int, x *big.Int) *big.Int) *Vector {
	r := &Vector{values: make([]*big.Int, len(v.values))}
	for i, x := range v.values {
		r.values[i] = new(big.Int)
		setOrZero(r.values[i], f(i, new(big.Int).Set(x)))
	}
	return r
}

// MapAssign replaces every element with f of it.
func (v *Vector) MapAssign(f func(x *big.Int) *big.Int) {
	v.values = v.Map(f).values
}

// MapIndexedAssign replaces every element with f of its position and value.
func (v *Vector) MapIndexedAssign(f func(i int, x *big.Int) *big.Int) {
	v.values = v.MapIndexed(f).values
}

// Sum returns the sum of the elements, zero for an empty vector.
func (v *Vector) Sum() *big.Int {
	sum := new(big.Int)
	for _, x := range v.values {
		sum.Add(sum, x)
	}
	return sum
}

// DotProduct returns the sum of the element-wise products.
func (v *Vector) DotProduct(w *Vector) (*big.Int, error) {
	p, err := v.ElementwiseMultiply(w)
	if err != nil {
		var dm *DimensionMismatchError
		if errors.As(err, &dm) {
			dm.Op = "compute the dot product of"
		}
		return nil, err
	}
	return p.Sum(), nil
}

// EuclideanNorm returns the integer square root of the sum of squares, that is
// the largest a with a*a <= sum. The fractional part is truncated so that the
// result stays an integer like the elements it is computed from; see PNorm for
// a fractional norm.
func (v *Vector) EuclideanNorm() *big.Int {
	squares := v.Map(func(x *big.Int) *big.Int { return x.Mul(x, x) })
	root, _ := Sqrt(squares.Sum())
	return root
}

// Sqrt returns the largest a with a*a <= n using a binary search bounded
// above by n/32 + 8.
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("square root of negative number %v", n)
	}
	a := big.NewInt(1)
	b := new(big.Int).Rsh(n, 5)
	b.Add(b, big.NewInt(8))
	mid, sq := new(big.Int), new(big.Int)
	for b.Cmp(a) >= 0 {
		mid.Add(a, b).Rsh(mid, 1)
		if sq.Mul(mid, mid).Cmp(n) > 0 {
			b.Sub(mid, big.NewInt(1))
		} else {
			a.Add(mid, big.NewInt(1))
		}
	}
	return a.Sub(a, big.NewInt(1)), nil
}

// CrossProduct returns v x w. Both vectors must have dimension 3.
func (v *Vector) CrossProduct(w *Vector) (*Vector, error) {
	if len(v.values) != 3 || len(w.values) != 3 {
		return nil, &UnsupportedShapeError{Op: "cross product", Left: len(v.values), Right: len(w.values)}
	}
	a, b := v.values, w.values
	det := func(i, j int) *big.Int {
		l := new(big.Int).Mul(a[i], b[j])
		r := new(big.Int).Mul(a[j], b[i])
		return l.Sub(l, r)
	}
	return &Vector{values: []*big.Int{det(1, 2), det(2, 0), det(0, 1)}}, nil
}

// Equal reports whether both vectors have the same dimension and elements.
func (v *Vector) Equal(w *Vector) bool {
	if v == nil || w == nil {
		return v == w
	}
	if len(v.values) != len(w.values) {
		return false
	}
	for i, x := range v.values {
		if x.Cmp(w.values[i]) != 0 {
			return false
		}
	}
	return true
}

// Hash returns a digest of the dimension and elements. Equal vectors have equal hashes.
func (v *Vector) Hash() uint64 {
	hasher := blake3.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(v.values)))
	hasher.Write(buf[:])
	for _, x := range v.values {
		b := x.Bytes()
		sign := byte(x.Sign() + 1)
		binary.BigEndian.PutUint64(buf[:], uint64(len(b)))
		hasher.Write([]byte{sign})
		hasher.Write(buf[:])
		hasher.Write(b)
	}
	return binary.BigEndian.Uint64(hasher.Sum(nil))
}

// String renders the vector as [1, 2, 3].
func (v *Vector) String() string {
	parts := make([]string, len(v.values))
	for i, x := range v.values {
		parts[i] = x.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
