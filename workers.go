package cryptoburger

import (
	"math/big"
	"sync"
)

type job struct {
	index int
	value *big.Int
}

type result struct {
	index int
	value *big.Int
	err   error
}

// elementWorker applies f to every job it receives until jobs is closed.
func elementWorker(f func(*big.Int) (*big.Int, error), jobs <-chan job, results chan<- result, wg *sync.WaitGroup) {
	defer wg.Done()
	for j := range jobs {
		v, err := f(j.value)
		results <- result{j.index, v, err}
	}
}

// mapConcurrent applies f to every element of v on up to workers goroutines.
// Elements are independent so the outcome equals the sequential map; on
// failure the error of the lowest failing index is returned.
func mapConcurrent(v *Vector, workers int, f func(*big.Int) (*big.Int, error)) (*Vector, error) {
	dim := v.Dimension()
	if workers < 1 {
		workers = 1
	}
	if workers > dim {
		workers = dim
	}
	jobs := make(chan job)
	results := make(chan result, dim)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go elementWorker(f, jobs, results, &wg)
	}
	for i, x := range v.values {
		jobs <- job{i, new(big.Int).Set(x)}
	}
	close(jobs)
	wg.Wait()
	close(results)

	r := &Vector{values: make([]*big.Int, dim)}
	firstErr, errIndex := error(nil), dim
	for res := range results {
		if res.err != nil {
			if res.index < errIndex {
				firstErr, errIndex = res.err, res.index
			}
			continue
		}
		r.values[res.index] = res.value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return r, nil
}

// EncryptVectorConcurrent is EncryptVector with the elements encrypted on up to
// workers goroutines. pk must be safe for concurrent use.
func EncryptVectorConcurrent(pk Encrypter, v *Vector, workers int) (*Vector, error) {
	return mapConcurrent(v, workers, pk.Encrypt)
}

// DecryptVectorConcurrent is DecryptVector on up to workers goroutines.
func DecryptVectorConcurrent(sk Decrypter, v *Vector, workers int) (*Vector, error) {
	return mapConcurrent(v, workers, sk.Decrypt)
}
