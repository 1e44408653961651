package tau

import (
	"math/big"
	"testing"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

func TestNewRejectsTooFewElements(t *testing.T) {
	if _, err := New(Parameters{NumG1Elements: 1, NumG2Elements: 2}); err != ErrBadParameters {
		t.Fatalf("expected ErrBadParameters, got %v", err)
	}
	if _, err := New(Parameters{NumG1Elements: 2, NumG2Elements: 1}); err != ErrBadParameters {
		t.Fatalf("expected ErrBadParameters, got %v", err)
	}
}

func TestUnchangedGenerator(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 10, NumG2Elements: 10})
	if err != nil {
		t.Fatal(err)
	}
	for _, secret := range []uint64{3, 5, 7} {
		pk := PrivateKeyFromUint64(secret)
		srs.Update(pk)
	}
	if !srs.TauG1[0].Equal(bls.G1Generator()) {
		t.Fatal("tau_g1[0] must remain the generator")
	}
	if !srs.TauG2[0].Equal(bls.G2Generator()) {
		t.Fatal("tau_g2[0] must remain the generator")
	}
}

func TestPowerStructureAfterSingleUpdate(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 6, NumG2Elements: 6})
	if err != nil {
		t.Fatal(err)
	}
	tau := int64(17)
	srs.Update(PrivateKeyFromUint64(uint64(tau)))

	power := big.NewInt(1)
	for i := 0; i < 6; i++ {
		want := bls.ScalarMulG1(bls.G1Generator(), power)
		if !srs.TauG1[i].Equal(want) {
			t.Fatalf("tau_g1[%d] does not equal tau^%d * g1", i, i)
		}
		power = new(big.Int).Mul(power, big.NewInt(tau))
	}
}

func TestCompositionMatchesProductSecret(t *testing.T) {
	srsStep, err := New(Parameters{NumG1Elements: 8, NumG2Elements: 8})
	if err != nil {
		t.Fatal(err)
	}
	srsStep.Update(PrivateKeyFromUint64(11))
	srsStep.Update(PrivateKeyFromUint64(13))

	srsDirect, err := New(Parameters{NumG1Elements: 8, NumG2Elements: 8})
	if err != nil {
		t.Fatal(err)
	}
	srsDirect.Update(PrivateKeyFromUint64(11 * 13))

	for i := range srsStep.TauG1 {
		if !srsStep.TauG1[i].Equal(srsDirect.TauG1[i]) {
			t.Fatalf("tau_g1[%d] mismatch between stepwise and direct composition", i)
		}
	}
	for j := range srsStep.TauG2 {
		if !srsStep.TauG2[j].Equal(srsDirect.TauG2[j]) {
			t.Fatalf("tau_g2[%d] mismatch between stepwise and direct composition", j)
		}
	}
}

func TestChainVerificationAcceptsValidSequence(t *testing.T) {
	before, err := New(Parameters{NumG1Elements: 100, NumG2Elements: 2})
	if err != nil {
		t.Fatal(err)
	}
	after := &SRS{TauG1: append([]*bls.G1Point{}, before.TauG1...), TauG2: append([]*bls.G2Point{}, before.TauG2...)}

	proof1 := after.Update(PrivateKeyFromUint64(252))
	proof2 := after.Update(PrivateKeyFromUint64(512))
	proof3 := after.Update(PrivateKeyFromUint64(789))
	proofs := []UpdateProof{proof1, proof2, proof3}

	if !VerifyUpdates(before, after, proofs, big.NewInt(123456789)) {
		t.Fatal("expected three-party chain to verify")
	}

	want := bls.ScalarMulG1(bls.G1Generator(), big.NewInt(252*512*789))
	if !after.TauG1[1].Equal(want) {
		t.Fatal("tau_g1[1] does not equal 252*512*789 * g1")
	}
}

func TestChainOrderSensitive(t *testing.T) {
	before, err := New(Parameters{NumG1Elements: 20, NumG2Elements: 2})
	if err != nil {
		t.Fatal(err)
	}
	after := &SRS{TauG1: append([]*bls.G1Point{}, before.TauG1...), TauG2: append([]*bls.G2Point{}, before.TauG2...)}

	proof1 := after.Update(PrivateKeyFromUint64(9))
	proof2 := after.Update(PrivateKeyFromUint64(41))

	if !VerifyUpdates(before, after, []UpdateProof{proof1, proof2}, big.NewInt(7)) {
		t.Fatal("expected in-order proofs to verify")
	}
	if VerifyUpdates(before, after, []UpdateProof{proof2, proof1}, big.NewInt(7)) {
		t.Fatal("expected permuted proofs to fail verification")
	}
}

func TestRejectZeroSecret(t *testing.T) {
	before, err := New(Parameters{NumG1Elements: 100, NumG2Elements: 2})
	if err != nil {
		t.Fatal(err)
	}
	after := &SRS{TauG1: append([]*bls.G1Point{}, before.TauG1...), TauG2: append([]*bls.G2Point{}, before.TauG2...)}

	proof := after.Update(PrivateKeyFromUint64(0))
	if !after.TauG1[1].IsIdentity() {
		t.Fatal("zero secret should leave tau_g1[1] at the identity")
	}
	if VerifyUpdate(before, after, proof, big.NewInt(123456789)) {
		t.Fatal("zero-secret update must fail verification")
	}
}

func TestUnitSecretUnchangedButChainValid(t *testing.T) {
	before, err := New(Parameters{NumG1Elements: 10, NumG2Elements: 2})
	if err != nil {
		t.Fatal(err)
	}
	after := &SRS{TauG1: append([]*bls.G1Point{}, before.TauG1...), TauG2: append([]*bls.G2Point{}, before.TauG2...)}

	proof := after.Update(PrivateKeyFromUint64(1))
	if !proof.Q.Equal(bls.G1Generator()) {
		t.Fatal("unit secret should leave Q equal to g1")
	}
	if !proof.P.Equal(bls.G2Generator()) {
		t.Fatal("unit secret should leave P equal to g2")
	}
	if !VerifyUpdate(before, after, proof, big.NewInt(5)) {
		t.Fatal("unit-secret update is structurally valid and must verify")
	}
}

func TestSubgroupDetection(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 4, NumG2Elements: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !srs.SubgroupCheck() {
		t.Fatal("freshly generated SRS must pass the subgroup check")
	}

	// (4, sqrt(4^3+4)) lies on the curve but outside the prime-order subgroup.
	p := bls.FieldModulus()
	x := big.NewInt(4)
	y := new(big.Int).ModSqrt(big.NewInt(68), p)
	if y == nil {
		t.Fatal("expected 4^3+4 to be a square mod p")
	}
	srs.TauG1[2] = bls.G1FromAffine(x, y)
	if srs.SubgroupCheck() {
		t.Fatal("an on-curve point outside the subgroup must fail the subgroup check")
	}
}

func TestStructureCheckBatchedMatchesPairwise(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 12, NumG2Elements: 6})
	if err != nil {
		t.Fatal(err)
	}
	srs.Update(PrivateKeyFromUint64(4242))

	batched := srs.StructureCheckBatched(big.NewInt(100))
	pairwise := srs.StructureCheckPairwise()
	if batched != pairwise {
		t.Fatalf("batched (%v) and pairwise (%v) structure checks disagree", batched, pairwise)
	}
	if !batched {
		t.Fatal("expected a validly-updated SRS to pass the structure check")
	}
}

func TestStructureCheckBatchedRefusesZeroChallenge(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 6, NumG2Elements: 6})
	if err != nil {
		t.Fatal(err)
	}
	if srs.StructureCheckBatched(big.NewInt(0)) {
		t.Fatal("a zero challenge must be refused, not trivially accepted")
	}
}
