package bls

// Compressed point encoding (§4.1) following the zkcrypto/IETF/ZCash
// convention: generalizes a 48-byte G1-only codec to also cover G2
// (96 bytes), matching the byte layout interop_point_encoding.rs checks:
//
//   - top 3 bits of the first byte are flags: compressed, infinity,
//     lexicographically-largest-y ("sort").
//   - the remaining bits hold the big-endian x coordinate; for G2 the x.c1
//     limb is serialized first (bytes 0..48), then x.c0 (bytes 48..96).
//   - the identity is encoded as 0xc0 followed by all-zero bytes.
//   - "lexicographically largest" means y > -y (mod p); for G2 this
//     compares (c1, c0) with c1 most significant, matching the
//     serialization order.

import (
	"errors"
	"math/big"
)

// CompressedG1Size is the length in bytes of a compressed G1 point.
const CompressedG1Size = 48

// CompressedG2Size is the length in bytes of a compressed G2 point.
const CompressedG2Size = 96

var (
	// ErrInvalidEncoding is returned when a compressed point's flag bits,
	// length, or zero-padding are malformed.
	ErrInvalidEncoding = errors.New("bls: invalid point encoding")
	// ErrPointNotOnCurve is returned when the decoded coordinates do not
	// satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("bls: point not on curve")
	// ErrPointNotInSubgroup is returned when an on-curve point fails the
	// prime-order subgroup check.
	ErrPointNotInSubgroup = errors.New("bls: point not in prime-order subgroup")
)

func isLexicographicallyLargestFp(y *big.Int) bool {
	return y.Cmp(fpHalf()) > 0
}

func isLexicographicallyLargestFp2(y *fp2) bool {
	c1 := new(big.Int).Mod(y.c1, fieldModulus)
	negC1 := fpNeg(c1)
	if c1.Cmp(negC1) != 0 {
		return c1.Cmp(negC1) > 0
	}
	c0 := new(big.Int).Mod(y.c0, fieldModulus)
	negC0 := fpNeg(c0)
	return c0.Cmp(negC0) > 0
}

// CompressG1 serializes p to the 48-byte compressed encoding.
func CompressG1(p *G1Point) []byte {
	out := make([]byte, CompressedG1Size)
	if p.IsIdentity() {
		out[0] = 0xc0
		return out
	}

	x, y := p.Affine()
	xBytes := x.Bytes()
	copy(out[CompressedG1Size-len(xBytes):], xBytes)

	out[0] |= 0x80
	if isLexicographicallyLargestFp(y) {
		out[0] |= 0x20
	}
	return out
}

// DecompressG1 parses a 48-byte compressed G1 point, checking it lies on
// the curve and in the prime-order subgroup.
func DecompressG1(data []byte) (*G1Point, error) {
	if len(data) != CompressedG1Size {
		return nil, ErrInvalidEncoding
	}

	buf := make([]byte, CompressedG1Size)
	copy(buf, data)

	flags := buf[0] >> 5
	compressed := (flags >> 2) & 1
	infinity := (flags >> 1) & 1
	sort := flags & 1

	if compressed != 1 {
		return nil, ErrInvalidEncoding
	}
	buf[0] &= 0x1f

	if infinity == 1 {
		if sort != 0 {
			return nil, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G1Identity(), nil
	}

	x := new(big.Int).SetBytes(buf)
	if x.Cmp(fieldModulus) >= 0 {
		return nil, ErrInvalidEncoding
	}

	rhs := fpAdd(fpMul(fpSqr(x), x), curveB)
	y := fpSqrt(rhs)
	if y == nil {
		return nil, ErrPointNotOnCurve
	}
	if isLexicographicallyLargestFp(y) != (sort == 1) {
		y = fpNeg(y)
	}

	if !IsOnCurveG1(x, y) {
		return nil, ErrPointNotOnCurve
	}
	p := G1FromAffine(x, y)
	if !InSubgroupG1(p) {
		return nil, ErrPointNotInSubgroup
	}
	return p, nil
}

// CompressG2 serializes p to the 96-byte compressed encoding, x.c1 first.
func CompressG2(p *G2Point) []byte {
	out := make([]byte, CompressedG2Size)
	if p.IsIdentity() {
		out[0] = 0xc0
		return out
	}

	x, y := p.Affine()
	c1Bytes := x.c1.Bytes()
	copy(out[CompressedG1Size-len(c1Bytes):CompressedG1Size], c1Bytes)
	c0Bytes := x.c0.Bytes()
	copy(out[CompressedG2Size-len(c0Bytes):], c0Bytes)

	out[0] |= 0x80
	if isLexicographicallyLargestFp2(y) {
		out[0] |= 0x20
	}
	return out
}

// DecompressG2 parses a 96-byte compressed G2 point, checking it lies on
// the twist and in the prime-order subgroup.
func DecompressG2(data []byte) (*G2Point, error) {
	if len(data) != CompressedG2Size {
		return nil, ErrInvalidEncoding
	}

	buf := make([]byte, CompressedG2Size)
	copy(buf, data)

	flags := buf[0] >> 5
	compressed := (flags >> 2) & 1
	infinity := (flags >> 1) & 1
	sort := flags & 1

	if compressed != 1 {
		return nil, ErrInvalidEncoding
	}
	buf[0] &= 0x1f

	if infinity == 1 {
		if sort != 0 {
			return nil, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return nil, ErrInvalidEncoding
			}
		}
		return G2Identity(), nil
	}

	c1 := new(big.Int).SetBytes(buf[0:CompressedG1Size])
	c0 := new(big.Int).SetBytes(buf[CompressedG1Size:CompressedG2Size])
	if c0.Cmp(fieldModulus) >= 0 || c1.Cmp(fieldModulus) >= 0 {
		return nil, ErrInvalidEncoding
	}
	x := &fp2{c0: c0, c1: c1}

	rhs := fp2Add(fp2Mul(fp2Sqr(x), x), twistB)
	y := fp2Sqrt(rhs)
	if y == nil {
		return nil, ErrPointNotOnCurve
	}
	if isLexicographicallyLargestFp2(y) != (sort == 1) {
		y = fp2Neg(y)
	}

	if !IsOnCurveG2(x, y) {
		return nil, ErrPointNotOnCurve
	}
	p := G2FromAffine(x, y)
	if !InSubgroupG2(p) {
		return nil, ErrPointNotInSubgroup
	}
	return p, nil
}
