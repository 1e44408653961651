package ceremony

import (
	"testing"

	"github.com/powersoftau/kzgtau/pkg/tau"
)

func TestNewTranscriptMatchesEthereumParameters(t *testing.T) {
	transcript, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}
	for i, srs := range transcript.Transcripts {
		if len(srs.TauG1) != CeremonyParameters[i].NumG1Elements {
			t.Fatalf("slot %d: unexpected G1 vector length", i)
		}
		if len(srs.TauG2) != CeremonyParameters[i].NumG2Elements {
			t.Fatalf("slot %d: unexpected G2 vector length", i)
		}
		if transcript.Phase(i) != PhaseFresh {
			t.Fatalf("slot %d: expected fresh phase before any contribution", i)
		}
	}
}

func TestUpdateTranscriptAppliesAllFourSlots(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x01", "0x02", "0x03", "0x04"}
	after, proofs, ok := UpdateTranscript(before, secrets)
	if !ok {
		t.Fatal("expected update to succeed with well-formed hex secrets")
	}

	for i := range after.Transcripts {
		if after.Phase(i) != PhaseContributed {
			t.Fatalf("slot %d: expected contributed phase after update", i)
		}
		if !proofs[i].Q.Equal(after.Transcripts[i].TauG1[1]) {
			t.Fatalf("slot %d: proof Q must match the updated tau_g1[1]", i)
		}
	}

	if !TranscriptSubgroupCheck(after) {
		t.Fatal("expected updated transcript to pass the subgroup check")
	}
}

func TestUpdateTranscriptRejectsMissingPrefix(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x01", "02", "0x03", "0x04"}
	if _, _, ok := UpdateTranscript(before, secrets); ok {
		t.Fatal("expected whole-batch failure on a secret missing its 0x prefix")
	}
}

func TestUpdateTranscriptRejectsBadHex(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x01", "0x02", "0xzz", "0x04"}
	if _, _, ok := UpdateTranscript(before, secrets); ok {
		t.Fatal("expected whole-batch failure on non-hex payload")
	}
}

func TestTranscriptVerifyUpdateRoundTrip(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x0a", "0x0b", "0x0c", "0x0d"}
	after, proofs, ok := UpdateTranscript(before, secrets)
	if !ok {
		t.Fatal("expected update to succeed")
	}

	randoms := [NumCeremonies]string{"0x11", "0x12", "0x13", "0x14"}
	if !TranscriptVerifyUpdate(before, after, proofs, randoms) {
		t.Fatal("expected a valid four-slot update to verify")
	}
}

func TestUpdateTranscriptRejectsZeroSecret(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x01", "0x00", "0x03", "0x04"}
	if _, _, ok := UpdateTranscript(before, secrets); ok {
		t.Fatal("expected whole-batch failure on a zero secret")
	}
}

func TestTranscriptVerifyUpdateSelfChallengeRoundTrip(t *testing.T) {
	before, err := NewTranscript()
	if err != nil {
		t.Fatal(err)
	}

	secrets := [NumCeremonies]string{"0x21", "0x22", "0x23", "0x24"}
	after, proofs, ok := UpdateTranscript(before, secrets)
	if !ok {
		t.Fatal("expected update to succeed")
	}

	if !TranscriptVerifyUpdateSelfChallenge(before, after, proofs) {
		t.Fatal("expected a valid update to verify under a self-derived challenge")
	}
}

func TestFindContribution(t *testing.T) {
	pk1 := tau.PrivateKeyFromUint64(5)
	pk2 := tau.PrivateKeyFromUint64(7)
	proofs := []tau.UpdateProof{
		{P: pk1.ToPublic()},
		{P: pk2.ToPublic()},
	}

	if pos, found := FindContribution(proofs, pk2.ToPublic()); !found || pos != 1 {
		t.Fatalf("expected to find pk2's contribution at position 1, got pos=%d found=%v", pos, found)
	}

	other := tau.PrivateKeyFromUint64(99)
	if _, found := FindContribution(proofs, other.ToPublic()); found {
		t.Fatal("expected no contribution to be found for an unrelated key")
	}
}
