package cryptoburger

import (
	"fmt"
	"math/big"
)

// DimensionMismatchError is returned by binary vector operations whose operands
// differ in dimension.
type DimensionMismatchError struct {
	Op          string
	Left, Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot %s vector of size %d with vector of size %d", e.Op, e.Left, e.Right)
}

// IndexOutOfBoundsError is returned by direct element access outside [0, dimension).
type IndexOutOfBoundsError struct {
	Index, Dimension int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d is out of bound (size = %d)", e.Index, e.Dimension)
}

// UnsupportedShapeError is returned when an operation is only defined for a
// specific dimension.
type UnsupportedShapeError struct {
	Op          string
	Left, Right int
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("cannot apply %s on vectors of size %d and %d", e.Op, e.Left, e.Right)
}

// SlotCapacityError is returned when a vector has more elements than a packed
// ciphertext has slots.
type SlotCapacityError struct {
	Dimension, Slots int
}

func (e *SlotCapacityError) Error() string {
	return fmt.Sprintf("cannot pack vector of size %d into %d slots", e.Dimension, e.Slots)
}

// DivisionByZeroError is returned by element-wise division and remainder when a
// divisor is zero. Index is -1 for a scalar divisor.
type DivisionByZeroError struct {
	Op    string
	Index int
}

func (e *DivisionByZeroError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: division by zero", e.Op)
	}
	return fmt.Sprintf("%s: division by zero at index %d", e.Op, e.Index)
}

// EncryptionDomainError is returned when a value falls outside the plaintext
// space of a cryptosystem.
type EncryptionDomainError struct {
	Scheme string
	Value  *big.Int
	Err    error
}

func (e *EncryptionDomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: value %v outside plaintext domain: %v", e.Scheme, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: value %v outside plaintext domain", e.Scheme, e.Value)
}

func (e *EncryptionDomainError) Unwrap() error {
	return e.Err
}

// checkDomain verifies 0 <= value < n
func checkDomain(scheme string, value, n *big.Int) error {
	if value == nil || value.Sign() < 0 || value.Cmp(n) >= 0 {
		return &EncryptionDomainError{Scheme: scheme, Value: value}
	}
	return nil
}
