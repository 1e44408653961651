package bls

import (
	"encoding/hex"
	"math/big"
	"testing"
)

func TestCompressG1Generator(t *testing.T) {
	got := hex.EncodeToString(CompressG1(G1Generator()))
	want := "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb"
	if got != want {
		t.Fatalf("G1 generator encoding mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestCompressG1Identity(t *testing.T) {
	got := hex.EncodeToString(CompressG1(G1Identity()))
	if got[:2] != "c0" {
		t.Fatalf("identity should start with 0xc0, got %s", got[:2])
	}
	for _, c := range got[2:] {
		if c != '0' {
			t.Fatalf("identity encoding should be all-zero after flag byte, got %s", got)
		}
	}
}

func TestCompressG2Generator(t *testing.T) {
	got := hex.EncodeToString(CompressG2(G2Generator()))
	want := "93e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e" +
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"
	if got != want {
		t.Fatalf("G2 generator encoding mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestCompressDecompressG1RoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 42, 12345} {
		p := ScalarMulG1(G1Generator(), big.NewInt(k))
		enc := CompressG1(p)
		dec, err := DecompressG1(enc)
		if err != nil {
			t.Fatalf("k=%d: decompress failed: %v", k, err)
		}
		if !dec.Equal(p) {
			t.Fatalf("k=%d: round trip mismatch", k)
		}
	}
}

func TestCompressDecompressG2RoundTrip(t *testing.T) {
	for _, k := range []int64{1, 2, 3, 42, 12345} {
		p := ScalarMulG2(G2Generator(), big.NewInt(k))
		enc := CompressG2(p)
		dec, err := DecompressG2(enc)
		if err != nil {
			t.Fatalf("k=%d: decompress failed: %v", k, err)
		}
		if !dec.Equal(p) {
			t.Fatalf("k=%d: round trip mismatch", k)
		}
	}
}

func TestDecompressG1RejectsBadLength(t *testing.T) {
	if _, err := DecompressG1(make([]byte, 47)); err != ErrInvalidEncoding {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestDecompressG1IdentityRoundTrip(t *testing.T) {
	enc := CompressG1(G1Identity())
	dec, err := DecompressG1(enc)
	if err != nil {
		t.Fatalf("decompress identity: %v", err)
	}
	if !dec.IsIdentity() {
		t.Fatalf("expected identity")
	}
}

func TestDecompressG2IdentityRoundTrip(t *testing.T) {
	enc := CompressG2(G2Identity())
	dec, err := DecompressG2(enc)
	if err != nil {
		t.Fatalf("decompress identity: %v", err)
	}
	if !dec.IsIdentity() {
		t.Fatalf("expected identity")
	}
}
