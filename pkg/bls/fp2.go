package bls

// Extension field F_p^2 = F_p[u]/(u^2 + 1), used for G2 coordinates and as
// the base of the Fp6/Fp12 tower the pairing is computed over.

import "math/big"

// fp2 represents c0 + c1*u, an element of F_p^2.
type fp2 struct {
	c0, c1 *big.Int
}

func newFp2(c0, c1 *big.Int) *fp2 {
	return &fp2{c0: new(big.Int).Set(c0), c1: new(big.Int).Set(c1)}
}

func fp2Zero() *fp2 { return &fp2{c0: new(big.Int), c1: new(big.Int)} }

func fp2One() *fp2 { return &fp2{c0: big.NewInt(1), c1: new(big.Int)} }

func (e *fp2) isZero() bool {
	return e.c0.Sign() == 0 && e.c1.Sign() == 0
}

func (e *fp2) equal(f *fp2) bool {
	a0 := new(big.Int).Mod(e.c0, fieldModulus)
	a1 := new(big.Int).Mod(e.c1, fieldModulus)
	b0 := new(big.Int).Mod(f.c0, fieldModulus)
	b1 := new(big.Int).Mod(f.c1, fieldModulus)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

func fp2Add(e, f *fp2) *fp2 {
	return &fp2{c0: fpAdd(e.c0, f.c0), c1: fpAdd(e.c1, f.c1)}
}

func fp2Sub(e, f *fp2) *fp2 {
	return &fp2{c0: fpSub(e.c0, f.c0), c1: fpSub(e.c1, f.c1)}
}

// fp2Mul computes (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u.
func fp2Mul(e, f *fp2) *fp2 {
	v0 := fpMul(e.c0, f.c0)
	v1 := fpMul(e.c1, f.c1)
	return &fp2{
		c0: fpSub(v0, v1),
		c1: fpSub(fpMul(fpAdd(e.c0, e.c1), fpAdd(f.c0, f.c1)), fpAdd(v0, v1)),
	}
}

func fp2Sqr(e *fp2) *fp2 {
	ab := fpMul(e.c0, e.c1)
	return &fp2{
		c0: fpMul(fpAdd(e.c0, e.c1), fpSub(e.c0, e.c1)),
		c1: fpAdd(ab, ab),
	}
}

func fp2Neg(e *fp2) *fp2 {
	return &fp2{c0: fpNeg(e.c0), c1: fpNeg(e.c1)}
}

// fp2Conj returns the conjugate c0 - c1*u, which equals e^p since
// p is congruent to 3 mod 4 (the Frobenius map on Fp2 is conjugation).
func fp2Conj(e *fp2) *fp2 {
	return &fp2{c0: new(big.Int).Set(e.c0), c1: fpNeg(e.c1)}
}

func fp2Inv(e *fp2) *fp2 {
	t := fpAdd(fpSqr(e.c0), fpSqr(e.c1))
	inv := fpInv(t)
	return &fp2{c0: fpMul(e.c0, inv), c1: fpMul(fpNeg(e.c1), inv)}
}

func fp2MulScalar(e *fp2, s *big.Int) *fp2 {
	return &fp2{c0: fpMul(e.c0, s), c1: fpMul(e.c1, s)}
}

// fp2MulByU multiplies e by the non-residue u: u(c0+c1 u) = -c1 + c0 u.
func fp2MulByU(e *fp2) *fp2 {
	return &fp2{c0: fpNeg(e.c1), c1: new(big.Int).Set(e.c0)}
}

// fp2MulByNonResidue multiplies by (1+u), the Fp6 non-residue.
func fp2MulByNonResidue(e *fp2) *fp2 {
	return &fp2{c0: fpSub(e.c0, e.c1), c1: fpAdd(e.c0, e.c1)}
}

// fp2IsSquare reports whether e is a quadratic residue in Fp2. Since
// p = 3 mod 4, e is a QR iff its norm c0^2+c1^2 is a QR in Fp.
func fp2IsSquare(e *fp2) bool {
	if e.isZero() {
		return true
	}
	norm := fpAdd(fpSqr(e.c0), fpSqr(e.c1))
	return fpIsSquare(norm)
}

// fp2Sqrt returns a square root of e in Fp2, or nil if none exists.
func fp2Sqrt(e *fp2) *fp2 {
	if e.isZero() {
		return fp2Zero()
	}
	if !fp2IsSquare(e) {
		return nil
	}

	norm := fpAdd(fpSqr(e.c0), fpSqr(e.c1))
	sqrtNorm := fpSqrt(norm)
	if sqrtNorm == nil {
		return nil
	}

	two := big.NewInt(2)
	twoInv := fpInv(two)

	for _, x0 := range []*big.Int{fpMul(fpAdd(e.c0, sqrtNorm), twoInv), fpMul(fpSub(e.c0, sqrtNorm), twoInv)} {
		if !fpIsSquare(x0) {
			continue
		}
		sqrtX0 := fpSqrt(x0)
		if sqrtX0 == nil {
			continue
		}
		x1 := fpMul(e.c1, fpInv(fpAdd(sqrtX0, sqrtX0)))
		candidate := &fp2{c0: sqrtX0, c1: x1}
		if fp2Sqr(candidate).equal(e) {
			return candidate
		}
	}
	return nil
}
