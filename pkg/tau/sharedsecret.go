package tau

import "github.com/powersoftau/kzgtau/pkg/bls"

// SharedSecretChain verifies, by pairing, that a sequence of G1 points were
// each produced from the previous one by multiplying by a scalar whose
// commitment (a G2 witness) is exposed — without ever learning the scalars
// themselves.
//
// Given P = (a·b·c)·g1, a chain proves P was built in three steps:
// g1 -> a·g1 -> (a·b)·g1 -> (a·b·c)·g1.
type SharedSecretChain struct {
	accumulatedPoints []*bls.G1Point
	witnesses         []*bls.G2Point
}

// StartingFrom begins a chain at the given accumulated point.
func StartingFrom(startingPoint *bls.G1Point) *SharedSecretChain {
	return &SharedSecretChain{
		accumulatedPoints: []*bls.G1Point{startingPoint},
	}
}

// Extend appends the next accumulated point and the G2 witness (sₖ·g2)
// for the secret that produced it from the previous point.
func (c *SharedSecretChain) Extend(newAccumulatedPoint *bls.G1Point, witness *bls.G2Point) {
	c.accumulatedPoints = append(c.accumulatedPoints, newAccumulatedPoint)
	c.witnesses = append(c.witnesses, witness)
}

// removeLast drops the most recently appended link. Used by tests to probe
// malformed chains without rebuilding one from scratch.
func (c *SharedSecretChain) removeLast() {
	c.accumulatedPoints = c.accumulatedPoints[:len(c.accumulatedPoints)-1]
	c.witnesses = c.witnesses[:len(c.witnesses)-1]
}

// Verify checks that, for every consecutive pair (Aₖ, Aₖ₊₁) with witness Wₖ,
// pairing(Aₖ₊₁, g2) == pairing(Aₖ, Wₖ). A single failing link short-circuits
// the whole chain to false.
func (c *SharedSecretChain) Verify() bool {
	g2 := bls.G2Generator()
	for k, witness := range c.witnesses {
		prevAcc := c.accumulatedPoints[k]
		nextAcc := c.accumulatedPoints[k+1]
		if !bls.MultiPairing(
			[]*bls.G1Point{nextAcc, bls.NegG1(prevAcc)},
			[]*bls.G2Point{g2, witness},
		) {
			return false
		}
	}
	return true
}
