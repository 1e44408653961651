// Package ceremony implements the fixed-size, four-SRS facade used for the
// Ethereum data-availability-sampling trusted setup: a Transcript bundles
// one tau.SRS per sub-ceremony size and applies or verifies contributions
// across all four as a single batch.
package ceremony

import (
	"log/slog"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/powersoftau/kzgtau/pkg/bls"
	"github.com/powersoftau/kzgtau/pkg/tau"
)

// logger records contribution and verification outcomes as structured JSON
// on stderr, tagged with this package's name the way a per-subsystem logger
// would be in a larger client.
var logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).With("module", "ceremony")

// NumCeremonies is the number of sub-ceremonies bundled into a Transcript.
const NumCeremonies = 4

// CeremonyParameters are the (n, m) pairs of the four Ethereum sub-ceremonies,
// matching the field-elements-per-blob sizes used by EIP-4844/7594.
var CeremonyParameters = [NumCeremonies]tau.Parameters{
	{NumG1Elements: 4096, NumG2Elements: 65},
	{NumG1Elements: 8192, NumG2Elements: 65},
	{NumG1Elements: 16384, NumG2Elements: 65},
	{NumG1Elements: 32768, NumG2Elements: 65},
}

// Ethereum blob-size constants the ceremony parameters above are derived
// from (matching EIP-4844/7594's consensus-layer constants).
const (
	KZGFieldElementsPerBlob = 4096
	KZGBytesPerFieldElement = 32
	KZGBytesPerCommitment   = 48
	KZGBytesPerProof        = 48
)

// CeremonyPhase observes where a sub-ceremony sits in its lifecycle. It is
// pure bookkeeping: nothing in the cryptographic verification depends on it.
type CeremonyPhase int

const (
	// PhaseFresh means no contribution has yet been applied.
	PhaseFresh CeremonyPhase = iota
	// PhaseContributed means at least one contribution has been applied.
	PhaseContributed
)

func (p CeremonyPhase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhaseContributed:
		return "contributed"
	default:
		return "unknown"
	}
}

// Transcript bundles the four fixed-size SRSs of the Ethereum ceremony.
type Transcript struct {
	Transcripts [NumCeremonies]*tau.SRS

	// contributions counts applied updates per slot; used only by Phase.
	contributions [NumCeremonies]int
}

// NewTranscript builds a fresh transcript: four generator-filled SRSs at
// the fixed Ethereum parameters.
func NewTranscript() (*Transcript, error) {
	var t Transcript
	for i, params := range CeremonyParameters {
		srs, err := tau.New(params)
		if err != nil {
			return nil, err
		}
		t.Transcripts[i] = srs
	}
	return &t, nil
}

// Phase reports the lifecycle state of sub-ceremony i.
func (t *Transcript) Phase(i int) CeremonyPhase {
	if t.contributions[i] == 0 {
		return PhaseFresh
	}
	return PhaseContributed
}

// maxSecretBytes bounds a hex secret to a single Fr-sized representation
// (32 bytes); longer payloads are rejected as malformed rather than folded,
// since uint256.Int.SetBytes requires its input to fit in 256 bits.
const maxSecretBytes = 32

// decodeHexSecret strips the mandatory "0x" prefix and reduces the result
// modulo the scalar field order, matching the ceremony's hex-secret
// convention (out-of-range scalars are allowed; reduction is mod r).
func decodeHexSecret(hexSecret string) (*tau.PrivateKey, error) {
	b, err := hexutil.Decode(hexSecret)
	if err != nil || len(b) > maxSecretBytes {
		return nil, tau.ErrMalformedHex
	}
	scalar := new(uint256.Int).SetBytes(b)
	pk := tau.PrivateKeyFromBigInt(scalar.ToBig())
	if pk.IsZero() {
		// The core SRS.Update primitive itself permits a zero secret (it
		// degenerates to an identity update), but this facade rejects it at
		// the contribution boundary: a zero secret can only ever be a caller
		// mistake, never a deliberate useful contribution.
		return nil, tau.ErrZeroSecret
	}
	return pk, nil
}

// decodeHexChallenge is decodeHexSecret's counterpart for verifier
// challenges; kept distinct since the two serve different roles even
// though the decoding itself is identical.
func decodeHexChallenge(hexChallenge string) (*uint256.Int, error) {
	b, err := hexutil.Decode(hexChallenge)
	if err != nil || len(b) > maxSecretBytes {
		return nil, tau.ErrMalformedHex
	}
	return new(uint256.Int).SetBytes(b), nil
}

// updateAndZero applies pk to srs and guarantees pk is zeroized on every
// exit path, including a panic unwind from srs.Update.
func updateAndZero(srs *tau.SRS, pk *tau.PrivateKey) tau.UpdateProof {
	defer pk.Zero()
	return srs.Update(pk)
}

// UpdateTranscript applies one hex-encoded secret per sub-ceremony and
// returns the updated transcript plus the four resulting update proofs.
// Any missing "0x" prefix or non-hex payload in any of the four secrets
// fails the whole batch: ok is false and the returned transcript/proofs
// must be discarded.
func UpdateTranscript(t *Transcript, hexSecrets [NumCeremonies]string) (*Transcript, [NumCeremonies]tau.UpdateProof, bool) {
	var proofs [NumCeremonies]tau.UpdateProof

	next := &Transcript{contributions: t.contributions}
	for i, hexSecret := range hexSecrets {
		pk, err := decodeHexSecret(hexSecret)
		if err != nil {
			reason := "malformed hex secret"
			if err == tau.ErrZeroSecret {
				reason = "zero secret"
			}
			logger.Warn("rejecting contribution batch", "slot", i, "reason", reason)
			return nil, [NumCeremonies]tau.UpdateProof{}, false
		}

		srs := &tau.SRS{
			TauG1: append([]*bls.G1Point{}, t.Transcripts[i].TauG1...),
			TauG2: append([]*bls.G2Point{}, t.Transcripts[i].TauG2...),
		}
		proofs[i] = updateAndZero(srs, pk)

		next.Transcripts[i] = srs
		next.contributions[i]++
	}

	logger.Info("applied contribution batch", "slots", NumCeremonies)
	return next, proofs, true
}

// TranscriptSubgroupCheck reports whether every SRS in the bundle passes
// its subgroup check; it is the conjunction over all four sub-ceremonies.
func TranscriptSubgroupCheck(t *Transcript) bool {
	for _, srs := range t.Transcripts {
		if !srs.SubgroupCheck() {
			return false
		}
	}
	return true
}

// TranscriptVerifyUpdate verifies a batch update across all four
// sub-ceremonies, each with its own independently-sampled random challenge.
// A single failing slot fails the whole check.
func TranscriptVerifyUpdate(before, after *Transcript, proofs [NumCeremonies]tau.UpdateProof, hexRandoms [NumCeremonies]string) bool {
	for i := range proofs {
		r, err := decodeHexChallenge(hexRandoms[i])
		if err != nil {
			logger.Warn("rejecting verification batch", "slot", i, "reason", "malformed hex challenge")
			return false
		}
		if !tau.VerifyUpdate(before.Transcripts[i], after.Transcripts[i], proofs[i], r.ToBig()) {
			logger.Warn("batch update failed verification", "slot", i)
			return false
		}
	}
	logger.Info("verified contribution batch", "slots", NumCeremonies)
	return true
}

// TranscriptVerifyUpdateSelfChallenge is TranscriptVerifyUpdate's
// non-interactive counterpart: instead of accepting externally supplied
// challenges, each slot's random challenge is derived via Fiat-Shamir from
// that slot's own before/after SRS bytes (tau.DeriveChallenge), so a verifier
// with no access to a trusted randomness beacon can still run the check.
func TranscriptVerifyUpdateSelfChallenge(before, after *Transcript, proofs [NumCeremonies]tau.UpdateProof) bool {
	for i := range proofs {
		r := tau.DeriveChallenge(before.Transcripts[i], after.Transcripts[i])
		if !tau.VerifyUpdate(before.Transcripts[i], after.Transcripts[i], proofs[i], r) {
			logger.Warn("self-challenge batch update failed verification", "slot", i)
			return false
		}
	}
	logger.Info("verified contribution batch via self-derived challenge", "slots", NumCeremonies)
	return true
}

// FindContribution reports the position in proofs whose public key P
// equals publicKey, or false if it never contributed.
func FindContribution(proofs []tau.UpdateProof, publicKey *bls.G2Point) (int, bool) {
	for i, proof := range proofs {
		if proof.P.Equal(publicKey) {
			return i, true
		}
	}
	return 0, false
}

// VerifyAndFindContribution verifies the update chain for a single
// sub-ceremony and, independently, reports the position of publicKey's
// contribution within it.
func VerifyAndFindContribution(before, after *tau.SRS, proofs []tau.UpdateProof, r *big.Int, publicKey *bls.G2Point) (bool, int, bool) {
	ok := tau.VerifyUpdates(before, after, proofs, r)
	position, found := FindContribution(proofs, publicKey)
	return ok, position, found
}
