//go:build goethkzg

// This file wraps go-eth-kzg's embedded, audited trusted setup (the
// production Ethereum ceremony output) to perform actual KZG commitment
// operations against it. It does not read or compare this package's own
// tau.SRS values.
// Computing and verifying commitments is outside this package's scope (the
// ceremony core only builds and checks the SRS) but is the reason the SRS
// exists, so it is kept as an optional, non-default adapter.
//
// Build with: go build -tags goethkzg ./...
package ceremony

import (
	"errors"
	"fmt"

	goethkzg "github.com/crate-crypto/go-eth-kzg"
)

// ErrBlobWrongSize and friends surface malformed-input errors from the
// real backend without depending on go-eth-kzg's own error types.
var (
	ErrBlobWrongSize       = errors.New("ceremony: blob has the wrong byte size")
	ErrCommitmentWrongSize = errors.New("ceremony: commitment has the wrong byte size")
	ErrProofWrongSize      = errors.New("ceremony: proof has the wrong byte size")
)

// RealKZGBackend performs KZG commitment operations against the real,
// audited Ethereum ceremony SRS embedded in go-eth-kzg.
type RealKZGBackend struct {
	ctx *goethkzg.Context
}

// NewRealKZGBackend initializes a go-eth-kzg Context from the embedded
// production trusted setup. This takes a few seconds, as it processes the
// full 4096-element SRS.
func NewRealKZGBackend() (*RealKZGBackend, error) {
	ctx, err := goethkzg.NewContext4096Secure()
	if err != nil {
		return nil, fmt.Errorf("ceremony: failed to initialize go-eth-kzg context: %w", err)
	}
	return &RealKZGBackend{ctx: ctx}, nil
}

// BlobToCommitment computes a KZG commitment for a blob using the real
// ceremony SRS. blob must be exactly KZGFieldElementsPerBlob *
// KZGBytesPerFieldElement bytes.
func (b *RealKZGBackend) BlobToCommitment(blob []byte) ([KZGBytesPerCommitment]byte, error) {
	var out [KZGBytesPerCommitment]byte
	if len(blob) != KZGFieldElementsPerBlob*KZGBytesPerFieldElement {
		return out, ErrBlobWrongSize
	}

	var blobArr goethkzg.Blob
	copy(blobArr[:], blob)

	comm, err := b.ctx.BlobToKZGCommitment(&blobArr, 0)
	if err != nil {
		return out, fmt.Errorf("ceremony: BlobToKZGCommitment failed: %w", err)
	}
	return [KZGBytesPerCommitment]byte(comm), nil
}

// VerifyBlobProof verifies a KZG blob proof against a commitment using the
// real ceremony SRS.
func (b *RealKZGBackend) VerifyBlobProof(blob, commitment, proof []byte) (bool, error) {
	if len(blob) != KZGFieldElementsPerBlob*KZGBytesPerFieldElement {
		return false, ErrBlobWrongSize
	}
	if len(commitment) != KZGBytesPerCommitment {
		return false, ErrCommitmentWrongSize
	}
	if len(proof) != KZGBytesPerProof {
		return false, ErrProofWrongSize
	}

	var blobArr goethkzg.Blob
	copy(blobArr[:], blob)

	var comm goethkzg.KZGCommitment
	copy(comm[:], commitment)

	var p goethkzg.KZGProof
	copy(p[:], proof)

	if err := b.ctx.VerifyBlobKZGProof(&blobArr, comm, p); err != nil {
		return false, err
	}
	return true, nil
}
