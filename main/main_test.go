package main

import (
	"math/big"
	"testing"

	"github.com/ontanj/cryptoburger"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

func TestParseBurger(t *testing.T) {
	b, err := parseBurger(nil)
	require.NoError(t, err)
	require.True(t, b.Equal(cryptoburger.VectorOfInts(1, 0, 1)))

	b, err = parseBurger([]string{"7", "-2", "123456789012345678901234567890"})
	require.NoError(t, err)
	big30, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, b.Equal(cryptoburger.VectorOf(big.NewInt(7), big.NewInt(-2), big30)))

	_, err = parseBurger([]string{"1", "x"})
	require.Error(t, err)
}

func TestServe(t *testing.T) {
	logger := cryptoburger.GetDiscardLogger()

	t.Run("paillier", func(t *testing.T) {
		setting := cryptoburger.DefaultSetting()
		setting.KeyBits = 512
		setting.Workers = 2
		d, err := serve(setting, logger, cryptoburger.VectorOfInts(1, 0, 1))
		require.NoError(t, err)
		require.True(t, d.Equal(cryptoburger.VectorOfInts(5, 3, 5)))
	})

	t.Run("bgv wraps modulo T", func(t *testing.T) {
		setting := cryptoburger.DefaultSetting()
		setting.Scheme = cryptoburger.SchemeBGV
		setting.BGV = &heint.ParametersLiteral{
			LogN:             10,
			LogQ:             []int{50, 50},
			LogP:             []int{60},
			PlaintextModulus: 65537,
		}
		d, err := serve(setting, logger, cryptoburger.VectorOfInts(1, 40000, 5))
		require.NoError(t, err)
		require.True(t, d.Equal(cryptoburger.VectorOfInts(5, 14466, 13)))
	})

	t.Run("outside domain", func(t *testing.T) {
		setting := cryptoburger.DefaultSetting()
		setting.KeyBits = 512
		_, err := serve(setting, logger, cryptoburger.VectorOfInts(-1))
		var de *cryptoburger.EncryptionDomainError
		require.ErrorAs(t, err, &de)
	})
}
