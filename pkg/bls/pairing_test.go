package bls

import (
	"math/big"
	"testing"
)

func TestPairBilinear(t *testing.T) {
	a := big.NewInt(12)
	b := big.NewInt(7)

	// e([a]G1, [b]G2) == e([a*b]G1, G2)
	lhs := millerLoop(ScalarMulG1(G1Generator(), a), ScalarMulG2(G2Generator(), b))
	ab := new(big.Int).Mul(a, b)
	rhs := millerLoop(ScalarMulG1(G1Generator(), ab), G2Generator())

	f := fp12Mul(finalExponentiation(lhs), fp12Inv(finalExponentiation(rhs)))
	if !f.isOne() {
		t.Fatal("pairing is not bilinear in the tested exponents")
	}
}

func TestPairTrivialOnIdentity(t *testing.T) {
	if !Pair(G1Identity(), G2Generator()) {
		t.Fatal("pairing with G1 identity must be trivial")
	}
	if !Pair(G1Generator(), G2Identity()) {
		t.Fatal("pairing with G2 identity must be trivial")
	}
}

func TestMultiPairingConsistencyCheck(t *testing.T) {
	// e(P, Q) * e(-P, Q) == 1
	p := ScalarMulG1(G1Generator(), big.NewInt(99))
	q := G2Generator()
	if !MultiPairing([]*G1Point{p, NegG1(p)}, []*G2Point{q, q}) {
		t.Fatal("e(P,Q) * e(-P,Q) should equal 1")
	}
}
