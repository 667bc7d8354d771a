package cryptoburger

import (
	"fmt"

	"github.com/google/uuid"
)

// Cloner is implemented by values a Kitchen can copy before cooking them.
type Cloner[T any] interface {
	Clone() T
}

// Kitchen applies its cooks in insertion order: Apply(x) is cookN(...cook1(x)).
// The order is the computation delegated to the cook and is never changed.
//
// A Kitchen is not safe for concurrent mutation; Add must not be called while
// Apply runs on another goroutine.
type Kitchen[T Cloner[T]] struct {
	cooks  []Cook[T]
	logger *Logger
}

// NewKitchen returns a kitchen running cooks in the given order.
func NewKitchen[T Cloner[T]](cooks ...Cook[T]) *Kitchen[T] {
	return NewKitchenFromSlice(cooks)
}

// NewKitchenFromSlice copies cooks into a new kitchen.
func NewKitchenFromSlice[T Cloner[T]](cooks []Cook[T]) *Kitchen[T] {
	k := &Kitchen[T]{cooks: make([]Cook[T], 0, len(cooks)), logger: GetDiscardLogger()}
	k.cooks = append(k.cooks, cooks...)
	return k
}

// WithLogger sets the logger used for per-stage debug output.
func (k *Kitchen[T]) WithLogger(logger *Logger) *Kitchen[T] {
	k.logger = logger.Sub("kitchen")
	return k
}

// Add appends a cook as the last stage.
func (k *Kitchen[T]) Add(cook Cook[T]) {
	k.cooks = append(k.cooks, cook)
}

// Len returns the number of stages.
func (k *Kitchen[T]) Len() int {
	return len(k.cooks)
}

// Apply cooks a copy of x through every stage. x is never modified. On failure
// the error of the failing stage is returned wrapped with its position.
func (k *Kitchen[T]) Apply(x T) (T, error) {
	cooks := k.cooks[:len(k.cooks):len(k.cooks)]
	logger := k.logger
	if logger == nil {
		logger = GetDiscardLogger()
	}
	log := logger.WithField("run", uuid.New().String())
	log.Debug("cooking through %d stages", len(cooks))

	result := x.Clone()
	for i, cook := range cooks {
		next, err := cook.Apply(result)
		if err != nil {
			var zero T
			err = fmt.Errorf("stage %d (%s): %w", i, cookName(cook), err)
			log.Debug("%v", err)
			return zero, err
		}
		log.Debug("stage %d (%s) done", i, cookName(cook))
		result = next
	}
	return result, nil
}

func cookName(cook interface{}) string {
	if s, ok := cook.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", cook)
}
