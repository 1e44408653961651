// Package tau implements the Powers-of-τ structured reference string: its
// update primitive, the update-proof chain that links contributions, and the
// batched verification algorithm that checks an SRS for well-formedness.
package tau

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

// ErrZeroSecret is returned when a private key's scalar is zero; a zero
// secret produces an identity update that must never be accepted.
var ErrZeroSecret = errors.New("tau: private key scalar is zero")

// PrivateKey is a scalar secret τ ∈ Fr. It is consumed exactly once, by an
// SRS update or by deriving its public key, and must be zeroized on every
// exit path including a panic unwind — callers should `defer pk.Zero()`
// immediately after construction.
type PrivateKey struct {
	tau *big.Int
}

// NewPrivateKey samples a uniformly random τ ∈ Fr using crypto/rand.
func NewPrivateKey() (*PrivateKey, error) {
	r := bls.GroupOrder()
	tau, err := rand.Int(rand.Reader, r)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{tau: tau}, nil
}

// PrivateKeyFromBigInt builds a PrivateKey from tau reduced mod the group
// order r. Used to decode hex-encoded ceremony secrets and in tests; the caller still
// owns zeroizing the supplied big.Int if it holds sensitive material.
func PrivateKeyFromBigInt(tau *big.Int) *PrivateKey {
	return &PrivateKey{tau: new(big.Int).Mod(tau, bls.GroupOrder())}
}

// PrivateKeyFromUint64 is a test-only convenience constructor for building a
// PrivateKey from a small literal secret.
func PrivateKeyFromUint64(v uint64) *PrivateKey {
	return &PrivateKey{tau: new(big.Int).SetUint64(v)}
}

// IsZero reports whether the secret scalar is zero.
func (pk *PrivateKey) IsZero() bool {
	return pk.tau.Sign() == 0
}

// Scalar returns the underlying field element. The returned value aliases
// the key's internal storage; callers must not retain it past pk.Zero().
func (pk *PrivateKey) Scalar() *big.Int {
	return pk.tau
}

// ToPublic returns τ·g2, the public commitment to this secret.
func (pk *PrivateKey) ToPublic() *bls.G2Point {
	return bls.ScalarMulG2WNAF(bls.G2Generator(), pk.tau)
}

// Zero overwrites the secret's backing storage with zero. It is safe to
// call multiple times and must be deferred immediately after construction.
func (pk *PrivateKey) Zero() {
	if pk.tau == nil {
		return
	}
	words := pk.tau.Bits()
	for i := range words {
		words[i] = 0
	}
	pk.tau.SetInt64(0)
}
