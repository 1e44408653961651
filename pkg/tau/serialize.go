package tau

import (
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/powersoftau/kzgtau/pkg/bls"
)

// ErrMalformedHex is returned when a hex string is missing its "0x" prefix,
// contains non-hex characters, or decodes to the wrong byte length.
var ErrMalformedHex = errors.New("tau: malformed hex encoding")

// SRSHex is the wire form of an SRS: two arrays of "0x"-prefixed lowercase
// hex strings, each the compressed encoding of §4.1.
type SRSHex struct {
	G1Powers []string
	G2Powers []string
}

// Serialize encodes the SRS to its hex-string array form. Never fails: every
// element of a valid SRS is a valid curve point.
func (s *SRS) Serialize() SRSHex {
	g1Powers := make([]string, len(s.TauG1))
	for i, p := range s.TauG1 {
		g1Powers[i] = hexutil.Encode(bls.CompressG1(p))
	}
	g2Powers := make([]string, len(s.TauG2))
	for j, p := range s.TauG2 {
		g2Powers[j] = hexutil.Encode(bls.CompressG2(p))
	}
	return SRSHex{G1Powers: g1Powers, G2Powers: g2Powers}
}

// ParseSRS decodes an SRSHex back into an SRS, verifying it matches the
// expected parameters and that every point is on-curve and in-subgroup.
func ParseSRS(hexForm SRSHex, params Parameters) (*SRS, error) {
	if len(hexForm.G1Powers) != params.NumG1Elements || len(hexForm.G2Powers) != params.NumG2Elements {
		return nil, ErrBadParameters
	}

	tauG1 := make([]*bls.G1Point, len(hexForm.G1Powers))
	for i, h := range hexForm.G1Powers {
		b, err := hexutil.Decode(h)
		if err != nil {
			return nil, ErrMalformedHex
		}
		p, err := bls.DecompressG1(b)
		if err != nil {
			return nil, err
		}
		tauG1[i] = p
	}

	tauG2 := make([]*bls.G2Point, len(hexForm.G2Powers))
	for j, h := range hexForm.G2Powers {
		b, err := hexutil.Decode(h)
		if err != nil {
			return nil, ErrMalformedHex
		}
		p, err := bls.DecompressG2(b)
		if err != nil {
			return nil, err
		}
		tauG2[j] = p
	}

	return &SRS{TauG1: tauG1, TauG2: tauG2}, nil
}

// Serialize encodes the update proof as the 2-tuple [P_hex_g2, Q_hex_g1].
func (p UpdateProof) Serialize() [2]string {
	return [2]string{
		hexutil.Encode(bls.CompressG2(p.P)),
		hexutil.Encode(bls.CompressG1(p.Q)),
	}
}

// ParseUpdateProof decodes a 2-tuple produced by UpdateProof.Serialize.
func ParseUpdateProof(hexForm [2]string) (UpdateProof, error) {
	pBytes, err := hexutil.Decode(hexForm[0])
	if err != nil {
		return UpdateProof{}, ErrMalformedHex
	}
	p, err := bls.DecompressG2(pBytes)
	if err != nil {
		return UpdateProof{}, err
	}

	qBytes, err := hexutil.Decode(hexForm[1])
	if err != nil {
		return UpdateProof{}, ErrMalformedHex
	}
	q, err := bls.DecompressG1(qBytes)
	if err != nil {
		return UpdateProof{}, err
	}

	return UpdateProof{P: p, Q: q}, nil
}
