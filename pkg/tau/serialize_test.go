package tau

import (
	"math/big"
	"testing"

	"github.com/powersoftau/kzgtau/pkg/bls"
)

func TestSRSSerializationRoundTrip(t *testing.T) {
	params := Parameters{NumG1Elements: 100, NumG2Elements: 25}
	srs, err := New(params)
	if err != nil {
		t.Fatal(err)
	}
	srs.Update(PrivateKeyFromUint64(5687))

	hexForm := srs.Serialize()
	if len(hexForm.G1Powers) != 100 || len(hexForm.G2Powers) != 25 {
		t.Fatal("unexpected serialized vector lengths")
	}

	back, err := ParseSRS(hexForm, params)
	if err != nil {
		t.Fatalf("failed to parse serialized SRS: %v", err)
	}
	for i := range srs.TauG1 {
		if !srs.TauG1[i].Equal(back.TauG1[i]) {
			t.Fatalf("tau_g1[%d] mismatch after round trip", i)
		}
	}
	for j := range srs.TauG2 {
		if !srs.TauG2[j].Equal(back.TauG2[j]) {
			t.Fatalf("tau_g2[%d] mismatch after round trip", j)
		}
	}
}

func TestUpdateProofSerializationRoundTrip(t *testing.T) {
	pk := PrivateKeyFromUint64(777)
	proof := UpdateProof{
		P: pk.ToPublic(),
		Q: bls.ScalarMulG1(bls.G1Generator(), big.NewInt(777)),
	}

	hexForm := proof.Serialize()
	back, err := ParseUpdateProof(hexForm)
	if err != nil {
		t.Fatalf("failed to parse serialized proof: %v", err)
	}
	if !back.P.Equal(proof.P) || !back.Q.Equal(proof.Q) {
		t.Fatal("update proof mismatch after round trip")
	}
}

func TestGeneratorSerializationBitExact(t *testing.T) {
	wantG1 := "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb"
	gotG1 := hexEncodeNoPrefix(bls.CompressG1(bls.G1Generator()))
	if gotG1 != wantG1 {
		t.Fatalf("G1 generator mismatch:\n got  %s\n want %s", gotG1, wantG1)
	}

	wantG2 := "93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e" +
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"
	gotG2 := hexEncodeNoPrefix(bls.CompressG2(bls.G2Generator()))
	if gotG2 != wantG2 {
		t.Fatalf("G2 generator mismatch:\n got  %s\n want %s", gotG2, wantG2)
	}
}

func TestSRSParseRejectsSizeMismatch(t *testing.T) {
	srs, err := New(Parameters{NumG1Elements: 4, NumG2Elements: 4})
	if err != nil {
		t.Fatal(err)
	}
	hexForm := srs.Serialize()
	if _, err := ParseSRS(hexForm, Parameters{NumG1Elements: 5, NumG2Elements: 4}); err != ErrBadParameters {
		t.Fatalf("expected ErrBadParameters, got %v", err)
	}
}

func hexEncodeNoPrefix(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = hextable[v>>4]
		out[i*2+1] = hextable[v&0x0f]
	}
	return string(out)
}
