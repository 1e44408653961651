package tau

import "github.com/powersoftau/kzgtau/pkg/bls"

// UpdateProof is a contributor's attestation of one SRS update: the pair
// (P, Q) where P = τ·g2 is the public key and Q is the new value of
// tau_g1[1] after the update.
type UpdateProof struct {
	P *bls.G2Point
	Q *bls.G1Point
}

// VerifyChain reconstructs a SharedSecretChain from startingPoint, links in
// (Q, P) for every proof in order, and reports whether the whole chain
// verifies. Given L proofs this costs 2L pairings. Panics if proofs is
// empty — callers reachable from external input (the SRS and ceremony
// facades) must reject an empty proof list before calling this.
func VerifyChain(startingPoint *bls.G1Point, proofs []UpdateProof) bool {
	if len(proofs) == 0 {
		panic("tau: VerifyChain requires at least one update proof")
	}
	chain := StartingFrom(startingPoint)
	for _, proof := range proofs {
		chain.Extend(proof.Q, proof.P)
	}
	return chain.Verify()
}
