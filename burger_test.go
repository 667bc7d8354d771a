package cryptoburger

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	paillierOnce sync.Once
	paillierKeys *KeyPair
	paillierErr  error
)

// testPaillier returns a 512-bit key pair shared by the tests of this package.
func testPaillier(t *testing.T) *KeyPair {
	t.Helper()
	paillierOnce.Do(func() {
		paillierKeys, paillierErr = GeneratePaillier(512)
	})
	require.NoError(t, paillierErr)
	return paillierKeys
}

// checkHomomorphism runs plain on v and encrypted on the encryption of v and
// requires the decrypted result to match.
func checkHomomorphism(t *testing.T, keys *KeyPair, v *Vector, plain, encrypted *Kitchen[*Vector]) {
	t.Helper()
	want, err := plain.Apply(v)
	require.NoError(t, err)
	want, err = want.ModuloScalar(keys.PublicKey.N())
	require.NoError(t, err)

	c, err := EncryptVector(keys.PublicKey, v)
	require.NoError(t, err)
	r, err := encrypted.Apply(c)
	require.NoError(t, err)
	got, err := DecryptVector(keys.SecretKey, r)
	require.NoError(t, err)
	compareVectors(t, want, got)
}

func TestPaillierRoundTrip(t *testing.T) {
	keys := testPaillier(t)
	n := keys.PublicKey.N()
	top := new(big.Int).Sub(n, big.NewInt(1))
	for _, v := range []*Vector{
		VectorOfInts(2, 3, 4),
		NewVector(0),
		VectorOf(big.NewInt(0), top),
	} {
		c, err := EncryptVector(keys.PublicKey, v)
		require.NoError(t, err)
		require.Equal(t, v.Dimension(), c.Dimension())
		if v.Dimension() > 0 {
			require.False(t, c.Equal(v), "plaintext didn't encrypt")
		}
		d, err := DecryptBurger(keys.SecretKey, c)
		require.NoError(t, err)
		compareVectors(t, v, d)
	}
}

func TestPaillierDomain(t *testing.T) {
	keys := testPaillier(t)
	n := keys.PublicKey.N()
	var de *EncryptionDomainError

	for _, x := range []*big.Int{big.NewInt(-1), n, new(big.Int).Lsh(n, 1)} {
		_, err := keys.PublicKey.Encrypt(x)
		require.ErrorAs(t, err, &de)
		require.Equal(t, 0, de.Value.Cmp(x))
	}

	c, err := EncryptVector(keys.PublicKey, VectorOf(big.NewInt(1), big.NewInt(-5)))
	require.Nil(t, c)
	require.ErrorAs(t, err, &de)

	_, err = keys.SecretKey.Decrypt(big.NewInt(-1))
	require.ErrorAs(t, err, &de)
	_, err = keys.PublicKey.Add(big.NewInt(-1), big.NewInt(1))
	require.ErrorAs(t, err, &de)

	valid, err := keys.PublicKey.Encrypt(big.NewInt(5))
	require.NoError(t, err)
	for _, c := range []*big.Int{big.NewInt(0), n, new(big.Int).Lsh(n, 1)} {
		_, err = keys.SecretKey.Decrypt(c)
		require.ErrorIs(t, err, errNotCoprime)
		_, err = keys.PublicKey.Add(valid, c)
		require.ErrorIs(t, err, errNotCoprime)
		_, err = keys.PublicKey.MultiplyScalar(c, big.NewInt(3))
		require.ErrorIs(t, err, errNotCoprime)
	}
}

func TestPaillierHomomorphism(t *testing.T) {
	keys := testPaillier(t)
	pk := keys.PublicKey
	v := VectorOfInts(2, 3, 4)
	w := VectorOfInts(5, 6, 7)

	t.Run("linear kitchen", func(t *testing.T) {
		checkHomomorphism(t, keys, v,
			NewKitchen(Scale(big.NewInt(3)), AddVector(w), Increment()),
			NewKitchen(EncryptedScale(pk, big.NewInt(3)), EncryptedAddVector(pk, w), EncryptedAddVector(pk, NewVectorFilled(3, big.NewInt(1)))),
		)
	})
	t.Run("negative constants wrap modulo N", func(t *testing.T) {
		checkHomomorphism(t, keys, v,
			NewKitchen(Scale(big.NewInt(-1)), AddVector(VectorOfInts(-10, 0, 10))),
			NewKitchen(EncryptedScale(pk, big.NewInt(-1)), EncryptedAddVector(pk, VectorOfInts(-10, 0, 10))),
		)
	})
	t.Run("ciphertext addition", func(t *testing.T) {
		cw, err := EncryptVector(pk, w)
		require.NoError(t, err)
		checkHomomorphism(t, keys, v, NewKitchen(AddVector(w)), NewKitchen(EncryptedAddCiphertext(pk, cw)))
	})
	t.Run("sum", func(t *testing.T) {
		sum := NamedCook[*Vector]("sum", func(x *Vector) (*Vector, error) { return VectorOf(x.Sum()), nil })
		checkHomomorphism(t, keys, v, NewKitchen(sum), NewKitchen(EncryptedSum(pk)))
	})
	t.Run("dot product", func(t *testing.T) {
		c, err := EncryptVector(pk, v)
		require.NoError(t, err)
		r, err := EncryptedDotProduct(pk, w).Apply(c)
		require.NoError(t, err)
		d, err := DecryptVector(keys.SecretKey, r)
		require.NoError(t, err)
		compareVectors(t, VectorOfInts(56), d)
	})
	t.Run("dimension mismatch", func(t *testing.T) {
		c, err := EncryptVector(pk, v)
		require.NoError(t, err)
		var dm *DimensionMismatchError
		_, err = EncryptedAddVector(pk, VectorOfInts(1, 2)).Apply(c)
		require.ErrorAs(t, err, &dm)
		_, err = EncryptedDotProduct(pk, VectorOfInts(1, 2)).Apply(c)
		require.ErrorAs(t, err, &dm)
	})
}

func TestConcurrentEncryption(t *testing.T) {
	keys := testPaillier(t)
	v := VectorOfInts(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	for _, workers := range []int{0, 1, 3, 32} {
		c, err := EncryptVectorConcurrent(keys.PublicKey, v, workers)
		require.NoError(t, err)
		d, err := DecryptVectorConcurrent(keys.SecretKey, c, workers)
		require.NoError(t, err)
		compareVectors(t, v, d)
	}

	t.Run("empty", func(t *testing.T) {
		c, err := EncryptVectorConcurrent(keys.PublicKey, NewVector(0), 4)
		require.NoError(t, err)
		require.Equal(t, 0, c.Dimension())
	})
	t.Run("first error wins", func(t *testing.T) {
		_, err := EncryptVectorConcurrent(keys.PublicKey, VectorOfInts(1, -2, 3, -4), 4)
		var de *EncryptionDomainError
		require.ErrorAs(t, err, &de)
		require.Equal(t, int64(-2), de.Value.Int64())
	})
}
