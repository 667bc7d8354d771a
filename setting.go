package cryptoburger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tuneinsight/lattigo/v5/he/heint"
)

const (
	SchemePaillier  = "paillier"
	SchemeThreshold = "threshold"
	SchemeBGV       = "bgv"
)

// Setting selects the cryptosystem and how burgers are processed.
type Setting struct {
	Scheme   string                   `json:"scheme"`
	KeyBits  int                      `json:"keyBits"` // Paillier modulus size
	Parties  int                      `json:"parties"` // key shares for the threshold scheme
	Workers  int                      `json:"workers"` // goroutines for element-wise encryption
	LogLevel string                   `json:"logLevel"`
	BGV      *heint.ParametersLiteral `json:"bgv,omitempty"`
}

func DefaultSetting() Setting {
	return Setting{
		Scheme:   SchemePaillier,
		KeyBits:  1024,
		Parties:  3,
		Workers:  1,
		LogLevel: "info",
	}
}

// LoadSetting reads a JSON setting file on top of the defaults.
func LoadSetting(path string) (Setting, error) {
	s := DefaultSetting()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, s.Validate()
}

func (s Setting) Validate() error {
	switch s.Scheme {
	case SchemePaillier, SchemeBGV:
	case SchemeThreshold:
		if s.Parties < 1 || s.Parties > 255 {
			return fmt.Errorf("parties must be in [1, 255], got %d", s.Parties)
		}
	default:
		return fmt.Errorf("unknown scheme %q", s.Scheme)
	}
	if s.Scheme != SchemeBGV && s.KeyBits < 64 {
		return fmt.Errorf("key size %d too small", s.KeyBits)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	_, err := s.Level()
	return err
}

// Level parses LogLevel.
func (s Setting) Level() (logrus.Level, error) {
	return logrus.ParseLevel(s.LogLevel)
}

// NewAdditive generates a key pair for the Paillier or threshold scheme.
func (s Setting) NewAdditive() (*KeyPair, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch s.Scheme {
	case SchemePaillier:
		return GeneratePaillier(s.KeyBits)
	case SchemeThreshold:
		return GenerateThreshold(s.KeyBits, uint8(s.Parties))
	}
	return nil, fmt.Errorf("scheme %q does not encrypt element-wise", s.Scheme)
}

// NewPacked sets up the BGV scheme, with DefaultBGVParameters unless BGV is set.
func (s Setting) NewPacked() (*BGV, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Scheme != SchemeBGV {
		return nil, fmt.Errorf("scheme %q does not pack vectors", s.Scheme)
	}
	literal := DefaultBGVParameters
	if s.BGV != nil {
		literal = *s.BGV
	}
	return NewBGV(literal)
}
