package cryptoburger

import (
	"math/big"

	"github.com/montanaflynn/stats"
)

// Summary describes the distribution of a decrypted burger.
type Summary struct {
	Mean, Median, StdDev float64
	Min, Max             float64
}

// Summarize converts the elements to float64 and summarizes them. Elements
// beyond float64 range lose precision.
func Summarize(v *Vector) (Summary, error) {
	data := make(stats.Float64Data, v.Dimension())
	for i, x := range v.values {
		data[i], _ = new(big.Float).SetInt(x).Float64()
	}
	var s Summary
	var err error
	if s.Mean, err = data.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = data.Median(); err != nil {
		return s, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return s, err
	}
	if s.Min, err = data.Min(); err != nil {
		return s, err
	}
	s.Max, err = data.Max()
	return s, err
}
