package cryptoburger

import (
	"fmt"
	"math/big"
)

// EncryptVector encrypts v element by element. The result has the dimension of v.
func EncryptVector(pk Encrypter, v *Vector) (*Vector, error) {
	r := &Vector{values: make([]*big.Int, len(v.values))}
	for i, x := range v.values {
		c, err := pk.Encrypt(x)
		if err != nil {
			return nil, err
		}
		r.values[i] = c
	}
	return r, nil
}

// DecryptVector decrypts v element by element; it inverts EncryptVector under
// the matching key.
func DecryptVector(sk Decrypter, v *Vector) (*Vector, error) {
	r := &Vector{values: make([]*big.Int, len(v.values))}
	for i, c := range v.values {
		x, err := sk.Decrypt(c)
		if err != nil {
			return nil, err
		}
		r.values[i] = x
	}
	return r, nil
}

// DecryptBurger is DecryptVector.
func DecryptBurger(sk Decrypter, b *Burger) (*Burger, error) {
	return DecryptVector(sk, b)
}

// EncryptedAddCiphertext adds the encrypted vector c to an encrypted burger.
func EncryptedAddCiphertext(pk Evaluator, c *Vector) Cook[*Vector] {
	c = c.Clone()
	return NamedCook[*Vector]("encrypted add", func(x *Vector) (*Vector, error) {
		return x.zip("add", c, func(_ int, a, b *big.Int) (*big.Int, error) {
			return pk.Add(a, b)
		})
	})
}

// EncryptedAddVector adds the plaintext vector w to an encrypted burger.
func EncryptedAddVector(pk PublicKey, w *Vector) Cook[*Vector] {
	w = w.Clone()
	return NamedCook[*Vector]("encrypted add "+w.String(), func(x *Vector) (*Vector, error) {
		if x.Dimension() != w.Dimension() {
			return nil, &DimensionMismatchError{Op: "add", Left: x.Dimension(), Right: w.Dimension()}
		}
		c, err := EncryptVector(pk, reduce(w, pk.N()))
		if err != nil {
			return nil, err
		}
		return EncryptedAddCiphertext(pk, c).Apply(x)
	})
}

// EncryptedScale multiplies every element of an encrypted burger by k.
func EncryptedScale(pk PublicKey, k *big.Int) Cook[*Vector] {
	k = new(big.Int).Mod(k, pk.N())
	return NamedCook[*Vector]("encrypted scale "+k.String(), func(x *Vector) (*Vector, error) {
		r := &Vector{values: make([]*big.Int, len(x.values))}
		for i, c := range x.values {
			p, err := pk.MultiplyScalar(c, k)
			if err != nil {
				return nil, err
			}
			r.values[i] = p
		}
		return r, nil
	})
}

// EncryptedSum folds an encrypted burger into a one-element burger holding
// the encrypted sum of its elements.
func EncryptedSum(pk PublicKey) Cook[*Vector] {
	return NamedCook[*Vector]("encrypted sum", func(x *Vector) (*Vector, error) {
		sum, err := pk.Encrypt(new(big.Int))
		if err != nil {
			return nil, err
		}
		for _, c := range x.values {
			if sum, err = pk.Add(sum, c); err != nil {
				return nil, err
			}
		}
		return &Vector{values: []*big.Int{sum}}, nil
	})
}

// EncryptedDotProduct computes the encrypted inner product of an encrypted
// burger with the plaintext weights w, as a one-element burger.
func EncryptedDotProduct(pk PublicKey, w *Vector) Cook[*Vector] {
	w = reduce(w, pk.N())
	return NamedCook[*Vector]("encrypted dot product "+w.String(), func(x *Vector) (*Vector, error) {
		terms, err := x.zip("compute the dot product of", w, func(_ int, c, k *big.Int) (*big.Int, error) {
			return pk.MultiplyScalar(c, k)
		})
		if err != nil {
			return nil, err
		}
		r, err := EncryptedSum(pk).Apply(terms)
		if err != nil {
			return nil, fmt.Errorf("sum terms: %w", err)
		}
		return r, nil
	})
}

// reduce maps w into [0, n)
func reduce(w *Vector, n *big.Int) *Vector {
	return w.Map(func(x *big.Int) *big.Int { return x.Mod(x, n) })
}
