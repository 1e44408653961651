package tau

import (
	"errors"
	"math/big"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

// Parameters fixes the size of an SRS: n G1 powers and m G2 powers.
type Parameters struct {
	NumG1Elements int
	NumG2Elements int
}

// ErrBadParameters is returned when New is asked for fewer than two
// elements in either group — a degree-0 SRS cannot express a pairing check.
var ErrBadParameters = errors.New("tau: SRS requires at least 2 elements in each group")

// ErrEmptyProofList names the empty-proof-list condition. No function in
// this package returns it: VerifyUpdates reports an empty list as false,
// and VerifyChain panics on one.
var ErrEmptyProofList = errors.New("tau: empty update proof list")

// SRS is the Structured Reference String: the ordered powers of a secret τ
// in G1 and G2. tau_g1[0] and tau_g2[0] are always the canonical generators.
type SRS struct {
	TauG1 []*bls.G1Point
	TauG2 []*bls.G2Point
}

// New builds a fresh, generator-filled SRS of the given size.
func New(params Parameters) (*SRS, error) {
	if params.NumG1Elements < 2 || params.NumG2Elements < 2 {
		return nil, ErrBadParameters
	}

	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	tauG1 := make([]*bls.G1Point, params.NumG1Elements)
	for i := range tauG1 {
		tauG1[i] = g1
	}
	tauG2 := make([]*bls.G2Point, params.NumG2Elements)
	for i := range tauG2 {
		tauG2[i] = g2
	}

	return &SRS{TauG1: tauG1, TauG2: tauG2}, nil
}

// vandermonde returns [x, x^2, ..., x^n], the consecutive powers of x.
func vandermonde(x *big.Int, n int) []*big.Int {
	r := bls.GroupOrder()
	out := make([]*big.Int, n)
	if n == 0 {
		return out
	}
	out[0] = new(big.Int).Mod(x, r)
	for i := 1; i < n; i++ {
		out[i] = new(big.Int).Mod(new(big.Int).Mul(out[i-1], x), r)
	}
	return out
}

// Update raises every element but the generator to successive powers of
// privateKey's secret, producing the update proof for this contribution.
// Index 0 of each vector is intentionally left unchanged: since it already
// holds τ_prev^0 · g = g, multiplying every other index k by τ^k preserves
// the powers-of-tau structure with the new secret being τ_prev·τ.
func (s *SRS) Update(privateKey *PrivateKey) UpdateProof {
	maxElements := len(s.TauG1)
	if len(s.TauG2) > maxElements {
		maxElements = len(s.TauG2)
	}
	powers := vandermonde(privateKey.Scalar(), maxElements-1)

	for i := 1; i < len(s.TauG1); i++ {
		s.TauG1[i] = bls.ScalarMulG1WNAF(s.TauG1[i], powers[i-1])
	}
	for j := 1; j < len(s.TauG2); j++ {
		s.TauG2[j] = bls.ScalarMulG2WNAF(s.TauG2[j], powers[j-1])
	}

	return UpdateProof{
		P: privateKey.ToPublic(),
		Q: s.TauG1[1],
	}
}

// VerifyUpdates checks that `after` was correctly derived from `before` via
// `proofs`, using r as the verifier's random challenge for the batched
// structure check. r must be freshly sampled by the caller; it is never
// reused across SRSs or derived from anything the prover controls without
// Fiat-Shamir binding.
func VerifyUpdates(before, after *SRS, proofs []UpdateProof, r *big.Int) bool {
	if len(proofs) == 0 {
		return false
	}

	last := proofs[len(proofs)-1]
	if !after.TauG1[1].Equal(last.Q) {
		return false
	}

	if !VerifyChain(before.TauG1[1], proofs) {
		return false
	}

	if after.TauG1[1].IsIdentity() || after.TauG2[1].IsIdentity() {
		return false
	}

	return after.StructureCheckBatched(r)
}

// VerifyUpdate is the single-proof convenience wrapper around VerifyUpdates.
func VerifyUpdate(before, after *SRS, proof UpdateProof, r *big.Int) bool {
	return VerifyUpdates(before, after, []UpdateProof{proof}, r)
}

// StructureCheckBatched verifies, with a single pairing per group, that
// every element of the SRS is the previous element raised to the same
// secret power — a Schwartz-Zippel random linear combination of the O(n)
// pairwise checks collapsed into O(1) pairings. Refuses (returns false) if
// r is zero mod the group order, since the check would then be trivially
// satisfiable.
func (s *SRS) StructureCheckBatched(r *big.Int) bool {
	if new(big.Int).Mod(r, bls.GroupOrder()).Sign() == 0 {
		return false
	}

	maxElements := len(s.TauG1)
	if len(s.TauG2) > maxElements {
		maxElements = len(s.TauG2)
	}
	rho := vandermonde(r, maxElements-1)

	// rho is sized to the larger of the two groups; each group's MSM only
	// ranges over its own n-1/m-1 terms, so each takes its own prefix of the
	// shared rho rather than the whole (possibly longer) slice.
	g1LComm, g1RComm := msmG1(s.TauG1[:len(s.TauG1)-1], s.TauG1[1:], rho[:len(s.TauG1)-1])
	if !bls.MultiPairing(
		[]*bls.G1Point{g1LComm, bls.NegG1(g1RComm)},
		[]*bls.G2Point{s.TauG2[1], s.TauG2[0]},
	) {
		return false
	}

	g2LComm, g2RComm := msmG2(s.TauG2[:len(s.TauG2)-1], s.TauG2[1:], rho[:len(s.TauG2)-1])
	if !bls.MultiPairing(
		[]*bls.G1Point{s.TauG1[1], bls.NegG1(s.TauG1[0])},
		[]*bls.G2Point{g2LComm, g2RComm},
	) {
		return false
	}

	return true
}

// msmG1 computes Σ rho[k]·left[k] and Σ rho[k]·right[k] in one pass.
func msmG1(left, right []*bls.G1Point, rho []*big.Int) (*bls.G1Point, *bls.G1Point) {
	lComm := bls.G1Identity()
	rComm := bls.G1Identity()
	for k, scalar := range rho {
		lComm = bls.AddG1(lComm, bls.ScalarMulG1WNAF(left[k], scalar))
		rComm = bls.AddG1(rComm, bls.ScalarMulG1WNAF(right[k], scalar))
	}
	return lComm, rComm
}

// msmG2 computes Σ rho[k]·left[k] and Σ rho[k]·right[k] in one pass.
func msmG2(left, right []*bls.G2Point, rho []*big.Int) (*bls.G2Point, *bls.G2Point) {
	lComm := bls.G2Identity()
	rComm := bls.G2Identity()
	for k, scalar := range rho {
		lComm = bls.AddG2(lComm, bls.ScalarMulG2WNAF(left[k], scalar))
		rComm = bls.AddG2(rComm, bls.ScalarMulG2WNAF(right[k], scalar))
	}
	return lComm, rComm
}

// StructureCheckPairwise re-derives the same verdict as StructureCheckBatched
// by checking every consecutive pair individually rather than batching them
// into one linear combination. O(n) pairings instead of O(1); kept to prove
// the two methods agree (see StructureCheckBatched's equivalence tests).
func (s *SRS) StructureCheckPairwise() bool {
	tauG2_0 := s.TauG2[0]
	tauG2_1 := s.TauG2[1]
	for i := 0; i+1 < len(s.TauG1); i++ {
		if !bls.MultiPairing(
			[]*bls.G1Point{s.TauG1[i+1], bls.NegG1(s.TauG1[i])},
			[]*bls.G2Point{tauG2_0, tauG2_1},
		) {
			return false
		}
	}

	tauG1_0 := s.TauG1[0]
	tauG1_1 := s.TauG1[1]
	for j := 0; j+1 < len(s.TauG2); j++ {
		if !bls.MultiPairing(
			[]*bls.G1Point{tauG1_1, bls.NegG1(tauG1_0)},
			[]*bls.G2Point{s.TauG2[j], s.TauG2[j+1]},
		) {
			return false
		}
	}

	return true
}

// SubgroupCheck verifies every element of the SRS lies in the prime-order
// subgroup, returning false on the first failure.
func (s *SRS) SubgroupCheck() bool {
	for _, p := range s.TauG1 {
		if !bls.InSubgroupG1(p) {
			return false
		}
	}
	for _, p := range s.TauG2 {
		if !bls.InSubgroupG2(p) {
			return false
		}
	}
	return true
}
