package cryptoburger

import (
	"fmt"
	"math/big"

	"github.com/niclabs/tcpaillier"
)

const thresholdScheme = "damgard-jurik"

// DJPublicKey is a threshold Paillier (Damgard-Jurik, s = 1) public key.
type DJPublicKey struct {
	*tcpaillier.PubKey
}

func (pk DJPublicKey) Encrypt(plaintext *big.Int) (ciphertext *big.Int, err error) {
	if err = checkDomain(thresholdScheme, plaintext, pk.PubKey.N); err != nil {
		return
	}
	ciphertext, _, err = pk.PubKey.Encrypt(plaintext)
	return
}

func (pk DJPublicKey) Add(a, b *big.Int) (*big.Int, error) {
	return pk.PubKey.Add(a, b)
}

func (pk DJPublicKey) MultiplyScalar(ciphertext, constant *big.Int) (product *big.Int, err error) {
	k := new(big.Int).Mod(constant, pk.PubKey.N)
	product, _, err = pk.PubKey.Multiply(ciphertext, k)
	return
}

func (pk DJPublicKey) N() *big.Int {
	return new(big.Int).Set(pk.PubKey.N)
}

// DJSecretKey decrypts by collecting a decryption share from every key share.
// It models all parties agreeing to decrypt; use PartialDecryptVector and
// CombineVector when the shares are held apart.
type DJSecretKey struct {
	pk     *tcpaillier.PubKey
	shares []*tcpaillier.KeyShare
}

func (sk DJSecretKey) Decrypt(ciphertext *big.Int) (*big.Int, error) {
	parts := make([]*tcpaillier.DecryptionShare, len(sk.shares))
	for i, share := range sk.shares {
		part, err := share.PartialDecrypt(ciphertext)
		if err != nil {
			return nil, fmt.Errorf("partial decryption %d: %w", i, err)
		}
		parts[i] = part
	}
	return sk.pk.CombineShares(parts...)
}

// Shares returns the key shares of the parties.
func (sk DJSecretKey) Shares() []*tcpaillier.KeyShare {
	return sk.shares
}

// PartialDecryptVector computes one party's decryption shares of an encrypted burger.
func PartialDecryptVector(share *tcpaillier.KeyShare, v *Vector) ([]*tcpaillier.DecryptionShare, error) {
	parts := make([]*tcpaillier.DecryptionShare, v.Dimension())
	for i, c := range v.values {
		part, err := share.PartialDecrypt(c)
		if err != nil {
			return nil, err
		}
		parts[i] = part
	}
	return parts, nil
}

// CombineVector combines the decryption shares of every party into the plaintext
// burger. partials[p][i] is party p's share of element i.
func CombineVector(pk DJPublicKey, partials [][]*tcpaillier.DecryptionShare) (*Vector, error) {
	if len(partials) == 0 {
		return NewVector(0), nil
	}
	dim := len(partials[0])
	r := NewVector(dim)
	for _, parts := range partials {
		if len(parts) != dim {
			return nil, &DimensionMismatchError{Op: "combine", Left: dim, Right: len(parts)}
		}
	}
	for i := 0; i < dim; i++ {
		element := make([]*tcpaillier.DecryptionShare, len(partials))
		for p := range partials {
			element[p] = partials[p][i]
		}
		m, err := pk.CombineShares(element...)
		if err != nil {
			return nil, err
		}
		r.values[i] = m
	}
	return r, nil
}
