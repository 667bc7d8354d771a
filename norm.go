package cryptoburger

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// PNorm returns (sum |x|^p)^(1/p) with prec bits of mantissa. PNorm(2, prec)
// is the Euclidean norm without the truncation of EuclideanNorm. A zero prec
// means 53, the precision of a float64.
func (v *Vector) PNorm(p uint, prec uint) (*big.Float, error) {
	if p == 0 {
		return nil, fmt.Errorf("p-norm undefined for p = 0")
	}
	if prec == 0 {
		prec = 53
	}
	exp := big.NewInt(int64(p))
	sum := new(big.Int)
	for _, x := range v.values {
		t := new(big.Int).Abs(x)
		sum.Add(sum, t.Exp(t, exp, nil))
	}
	z := new(big.Float).SetPrec(prec).SetInt(sum)
	if sum.Sign() == 0 || p == 1 {
		return z, nil
	}
	inv := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1).SetPrec(prec), new(big.Float).SetPrec(prec).SetUint64(uint64(p)))
	return bigfloat.Pow(z, inv), nil
}
