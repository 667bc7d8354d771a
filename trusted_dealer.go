package cryptoburger

import (
	"fmt"

	"github.com/niclabs/tcpaillier"
)

// GenerateThreshold deals a threshold Paillier key of bitSize bits split into
// n shares, all of which are needed to decrypt.
func GenerateThreshold(bitSize int, n uint8) (*KeyPair, error) {
	shares, pk, err := tcpaillier.NewKey(bitSize, 1, n, n)
	if err != nil {
		return nil, fmt.Errorf("failed to deal threshold key: %w", err)
	}
	return &KeyPair{
		PublicKey: DJPublicKey{pk},
		SecretKey: DJSecretKey{pk: pk, shares: shares},
	}, nil
}
