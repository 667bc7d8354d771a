package cryptoburger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeSetting(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setting.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetting(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := DefaultSetting()
		require.NoError(t, s.Validate())
		level, err := s.Level()
		require.NoError(t, err)
		require.Equal(t, logrus.InfoLevel, level)
	})

	t.Run("load overrides defaults", func(t *testing.T) {
		s, err := LoadSetting(writeSetting(t, `{"scheme": "threshold", "parties": 2, "keyBits": 512}`))
		require.NoError(t, err)
		require.Equal(t, SchemeThreshold, s.Scheme)
		require.Equal(t, 2, s.Parties)
		require.Equal(t, 512, s.KeyBits)
		require.Equal(t, 1, s.Workers)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, content := range []string{
			`{"scheme": "rsa"}`,
			`{"scheme": "threshold", "parties": 0}`,
			`{"scheme": "threshold", "parties": 300}`,
			`{"keyBits": 8}`,
			`{"workers": 0}`,
			`{"logLevel": "loud"}`,
			`{"scheme": `,
		} {
			_, err := LoadSetting(writeSetting(t, content))
			require.Error(t, err, content)
		}
		_, err := LoadSetting(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})

	t.Run("scheme factories", func(t *testing.T) {
		s := DefaultSetting()
		_, err := s.NewPacked()
		require.Error(t, err)

		s.KeyBits = 512
		keys, err := s.NewAdditive()
		require.NoError(t, err)
		require.IsType(t, PaillierPublicKey{}, keys.PublicKey)

		s.Scheme = SchemeBGV
		_, err = s.NewAdditive()
		require.Error(t, err)

		for _, parties := range []int{0, 256, 257} {
			s := DefaultSetting()
			s.Scheme = SchemeThreshold
			s.KeyBits = 512
			s.Parties = parties
			keys, err := s.NewAdditive()
			require.Error(t, err)
			require.Nil(t, keys)
		}

		s = DefaultSetting()
		s.Scheme = SchemeBGV
		s.LogLevel = "loud"
		_, err = s.NewPacked()
		require.Error(t, err)
	})

	t.Run("bgv parameters", func(t *testing.T) {
		s, err := LoadSetting(writeSetting(t,
			`{"scheme": "bgv", "bgv": {"LogN": 10, "LogQ": [50, 50], "LogP": [60], "PlaintextModulus": 65537}}`))
		require.NoError(t, err)
		scheme, err := s.NewPacked()
		require.NoError(t, err)
		require.Equal(t, uint64(65537), scheme.T().Uint64())

		p, err := scheme.EncryptVector(VectorOfInts(2, 3, 4))
		require.NoError(t, err)
		d, err := scheme.DecryptVector(p)
		require.NoError(t, err)
		compareVectors(t, VectorOfInts(2, 3, 4), d)
	})
}
