package cryptoburger

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	paillier "github.com/roasbeef/go-go-gadget-paillier"
)

const paillierScheme = "paillier"

var errNotCoprime = errors.New("ciphertext not coprime to N")

// PaillierPublicKey encrypts and evaluates under a Paillier public key.
// Ciphertexts are integers in [0, N^2).
type PaillierPublicKey struct {
	pk *paillier.PublicKey
}

// PaillierSecretKey decrypts Paillier ciphertexts.
type PaillierSecretKey struct {
	sk *paillier.PrivateKey
}

// GeneratePaillier generates a Paillier key pair with a modulus of bits bits.
func GeneratePaillier(bits int) (*KeyPair, error) {
	sk, err := paillier.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Paillier key: %w", err)
	}
	return &KeyPair{
		PublicKey: PaillierPublicKey{&sk.PublicKey},
		SecretKey: PaillierSecretKey{sk},
	}, nil
}

func (p PaillierPublicKey) N() *big.Int {
	return new(big.Int).Set(p.pk.N)
}

// Encrypt encrypts a plaintext in [0, N).
func (p PaillierPublicKey) Encrypt(plaintext *big.Int) (*big.Int, error) {
	if err := checkDomain(paillierScheme, plaintext, p.pk.N); err != nil {
		return nil, err
	}
	c, err := paillier.Encrypt(p.pk, plaintext.Bytes())
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(c), nil
}

// Add returns a ciphertext of the sum of the plaintexts of a and b.
func (p PaillierPublicKey) Add(a, b *big.Int) (*big.Int, error) {
	if err := p.checkCiphertext(a); err != nil {
		return nil, err
	}
	if err := p.checkCiphertext(b); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(paillier.AddCipher(p.pk, a.Bytes(), b.Bytes())), nil
}

// MultiplyScalar returns a ciphertext of the plaintext of c times constant mod N.
func (p PaillierPublicKey) MultiplyScalar(c, constant *big.Int) (*big.Int, error) {
	if err := p.checkCiphertext(c); err != nil {
		return nil, err
	}
	k := new(big.Int).Mod(constant, p.pk.N)
	return new(big.Int).SetBytes(paillier.Mul(p.pk, c.Bytes(), k.Bytes())), nil
}

func (p PaillierPublicKey) checkCiphertext(c *big.Int) error {
	return checkCiphertext(c, p.pk.N, p.pk.NSquared)
}

// checkCiphertext verifies c is a unit of Z_{N^2}, that is 0 <= c < N^2 and
// gcd(c, N) = 1.
func checkCiphertext(c, n, nSquared *big.Int) error {
	if err := checkDomain(paillierScheme, c, nSquared); err != nil {
		return err
	}
	if new(big.Int).GCD(nil, nil, c, n).Cmp(big.NewInt(1)) != 0 {
		return &EncryptionDomainError{Scheme: paillierScheme, Value: c, Err: errNotCoprime}
	}
	return nil
}

// Decrypt recovers the plaintext of c.
func (s PaillierSecretKey) Decrypt(c *big.Int) (*big.Int, error) {
	if err := checkCiphertext(c, s.sk.N, s.sk.NSquared); err != nil {
		return nil, err
	}
	m, err := paillier.Decrypt(s.sk, c.Bytes())
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(m), nil
}
