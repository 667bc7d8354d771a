package cryptoburger

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMapConcurrent(t *testing.T) {
	square := func(x *big.Int) (*big.Int, error) { return x.Mul(x, x), nil }
	v := randomVector(rand.New(rand.NewSource(7)), 100)
	want := v.Map(func(x *big.Int) *big.Int { return x.Mul(x, x) })

	for _, workers := range []int{-1, 0, 1, 7, 100, 1000} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			got, err := mapConcurrent(v, workers, square)
			require.NoError(t, err)
			compareVectors(t, want, got)
		})
	}

	t.Run("input untouched", func(t *testing.T) {
		w := VectorOfInts(1, 2, 3)
		_, err := mapConcurrent(w, 3, square)
		require.NoError(t, err)
		compareVectors(t, VectorOfInts(1, 2, 3), w)
	})

	t.Run("every element once", func(t *testing.T) {
		var calls int64
		_, err := mapConcurrent(v, 8, func(x *big.Int) (*big.Int, error) {
			atomic.AddInt64(&calls, 1)
			return x, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(v.Dimension()), calls)
	})

	t.Run("lowest failing index", func(t *testing.T) {
		failOdd := func(x *big.Int) (*big.Int, error) {
			if x.Bit(0) == 1 {
				return nil, fmt.Errorf("odd %s", x)
			}
			return x, nil
		}
		r, err := mapConcurrent(VectorOfInts(2, 4, 9, 6, 3, 5), 3, failOdd)
		require.Nil(t, r)
		require.EqualError(t, err, "odd 9")
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := GetLogger("burger", &buf, logrus.InfoLevel)
	l.Debug("hidden %d", 1)
	l.Sub("kitchen").WithField("run", "r1").Info("cooked %d", 2)
	l.Err(fmt.Errorf("burnt"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[kitchen] cooked 2")
	require.Contains(t, out, "run=r1")
	require.Contains(t, out, "[burger] burnt")
	require.Equal(t, 2, strings.Count(out, "\n"))

	GetDiscardLogger().Error("nowhere %d", 3)
}
