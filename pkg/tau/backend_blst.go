//go:build blst

// Real entropy source for PrivateKey generation using the supranational/blst
// library's key-derivation function, wrapped in a //go:build blst file.
// NewPrivateKeyFromBlst has the same signature as the pure-Go default
// NewPrivateKey; no interface type ties the two together.
//
// Build with: go build -tags blst ./...
package tau

import (
	"crypto/rand"
	"errors"
	"math/big"

	blst "github.com/supranational/blst/bindings/go"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

// ErrBlstIKMFailed is returned when the OS entropy source used to seed
// blst.KeyGen fails.
var ErrBlstIKMFailed = errors.New("tau: failed to read entropy for blst key generation")

// NewPrivateKeyFromBlst samples a secret using blst's HKDF-based key
// derivation (IETF BLS draft's KeyGen) instead of a direct crypto/rand mod-r
// reduction. The resulting scalar is reduced into Fr the same way either
// entropy source's output would be.
func NewPrivateKeyFromBlst() (*PrivateKey, error) {
	ikm := make([]byte, 32)
	if _, err := rand.Read(ikm); err != nil {
		return nil, ErrBlstIKMFailed
	}

	sk := blst.KeyGen(ikm)
	if sk == nil {
		return nil, ErrBlstIKMFailed
	}

	scalar := new(big.Int).SetBytes(sk.Serialize())
	return PrivateKeyFromBigInt(new(big.Int).Mod(scalar, bls.GroupOrder())), nil
}
