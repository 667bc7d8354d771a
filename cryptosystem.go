package cryptoburger

import (
	"math/big"
)

// Encrypter is the public half of an additive cryptosystem.
type Encrypter interface {
	Encrypt(plaintext *big.Int) (*big.Int, error)
	N() *big.Int // size of plaintext space
}

// Decrypter is the secret half of an additive cryptosystem.
type Decrypter interface {
	Decrypt(ciphertext *big.Int) (*big.Int, error)
}

// Evaluator computes on ciphertexts without the secret key. Ciphertexts are
// opaque: only addition of two ciphertexts and multiplication by a known
// plaintext constant are defined.
type Evaluator interface {
	Add(a, b *big.Int) (*big.Int, error)
	MultiplyScalar(ciphertext, constant *big.Int) (*big.Int, error)
}

// PublicKey is everything the cook needs to work on encrypted burgers.
type PublicKey interface {
	Encrypter
	Evaluator
}

// KeyPair is a matched public and secret key. It stays with the data owner;
// only PublicKey is handed to the cook.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey Decrypter
}
