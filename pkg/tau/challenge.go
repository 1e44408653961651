package tau

import (
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

// challengeDomainTag domain-separates the verifier-challenge hash from any
// other use of blake2b over SRS bytes.
var challengeDomainTag = []byte("kzgtau-structure-check-challenge")

// DeriveChallenge derives a verifier's random challenge r via Fiat-Shamir:
// blake2b-256 of the domain tag followed by the serialized "before" and
// "after" SRS hex strings, reduced mod the scalar field order. This lets a
// verifier avoid supplying external randomness, at the cost of the check
// becoming non-interactive-sound only under the random oracle model.
func DeriveChallenge(before, after *SRS) *big.Int {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an over-long key, and nil never is one.
		panic(err)
	}

	h.Write(challengeDomainTag)
	writeSRSHex(h, before.Serialize())
	writeSRSHex(h, after.Serialize())

	digest := h.Sum(nil)
	return new(big.Int).Mod(new(big.Int).SetBytes(digest), bls.GroupOrder())
}

func writeSRSHex(h interface{ Write([]byte) (int, error) }, hexForm SRSHex) {
	for _, s := range hexForm.G1Powers {
		h.Write([]byte(s))
	}
	for _, s := range hexForm.G2Powers {
		h.Write([]byte(s))
	}
}
