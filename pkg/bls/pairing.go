package bls

// Optimal ate pairing e: G1 x G2 -> GT, computed as a Miller loop followed
// by a final exponentiation over the tower
//
//	Fp -> Fp2 = Fp[u]/(u^2+1) -> Fp6 = Fp2[v]/(v^3-(1+u)) -> Fp12 = Fp6[w]/(w^2-v)
//
// driven by the BLS12-381 seed x = -0xd201000000010000.

import "math/big"

// --- Fp6 = Fp2[v]/(v^3 - (1+u)) ---

type fp6 struct {
	c0, c1, c2 *fp2
}

func fp6Zero() *fp6 { return &fp6{c0: fp2Zero(), c1: fp2Zero(), c2: fp2Zero()} }
func fp6One() *fp6  { return &fp6{c0: fp2One(), c1: fp2Zero(), c2: fp2Zero()} }

func fp6Add(a, b *fp6) *fp6 {
	return &fp6{c0: fp2Add(a.c0, b.c0), c1: fp2Add(a.c1, b.c1), c2: fp2Add(a.c2, b.c2)}
}

func fp6Sub(a, b *fp6) *fp6 {
	return &fp6{c0: fp2Sub(a.c0, b.c0), c1: fp2Sub(a.c1, b.c1), c2: fp2Sub(a.c2, b.c2)}
}

func fp6Mul(a, b *fp6) *fp6 {
	t0 := fp2Mul(a.c0, b.c0)
	t1 := fp2Mul(a.c1, b.c1)
	t2 := fp2Mul(a.c2, b.c2)

	c0 := fp2Add(t0, fp2MulByNonResidue(
		fp2Sub(fp2Mul(fp2Add(a.c1, a.c2), fp2Add(b.c1, b.c2)), fp2Add(t1, t2))))
	c1 := fp2Add(fp2Sub(fp2Mul(fp2Add(a.c0, a.c1), fp2Add(b.c0, b.c1)), fp2Add(t0, t1)),
		fp2MulByNonResidue(t2))
	c2 := fp2Add(fp2Sub(fp2Mul(fp2Add(a.c0, a.c2), fp2Add(b.c0, b.c2)), fp2Add(t0, t2)), t1)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

func fp6Sqr(a *fp6) *fp6 {
	s0 := fp2Sqr(a.c0)
	ab := fp2Mul(a.c0, a.c1)
	s1 := fp2Add(ab, ab)
	s2 := fp2Sqr(fp2Sub(fp2Add(a.c0, a.c2), a.c1))
	bc := fp2Mul(a.c1, a.c2)
	s3 := fp2Add(bc, bc)
	s4 := fp2Sqr(a.c2)

	c0 := fp2Add(s0, fp2MulByNonResidue(s3))
	c1 := fp2Add(s1, fp2MulByNonResidue(s4))
	c2 := fp2Add(fp2Add(fp2Add(s1, s2), s3), fp2Sub(fp2Neg(s0), s4))

	return &fp6{c0: c0, c1: c1, c2: c2}
}

func fp6Neg(a *fp6) *fp6 {
	return &fp6{c0: fp2Neg(a.c0), c1: fp2Neg(a.c1), c2: fp2Neg(a.c2)}
}

func fp6Inv(a *fp6) *fp6 {
	t0 := fp2Sqr(a.c0)
	t1 := fp2Sqr(a.c1)
	t2 := fp2Sqr(a.c2)
	t3 := fp2Mul(a.c0, a.c1)
	t4 := fp2Mul(a.c0, a.c2)
	t5 := fp2Mul(a.c1, a.c2)

	c0 := fp2Sub(t0, fp2MulByNonResidue(t5))
	c1 := fp2Sub(fp2MulByNonResidue(t2), t3)
	c2 := fp2Sub(t1, t4)

	t6 := fp2Mul(a.c0, c0)
	t6 = fp2Add(t6, fp2MulByNonResidue(fp2Add(fp2Mul(a.c2, c1), fp2Mul(a.c1, c2))))
	t6 = fp2Inv(t6)

	return &fp6{c0: fp2Mul(c0, t6), c1: fp2Mul(c1, t6), c2: fp2Mul(c2, t6)}
}

// fp6MulByV multiplies by v: v(c0+c1 v+c2 v^2) = c2(1+u) + c0 v + c1 v^2.
func fp6MulByV(a *fp6) *fp6 {
	return &fp6{c0: fp2MulByNonResidue(a.c2), c1: newFp2(a.c0.c0, a.c0.c1), c2: newFp2(a.c1.c0, a.c1.c1)}
}

// --- Fp12 = Fp6[w]/(w^2 - v) ---

type fp12 struct {
	c0, c1 *fp6
}

func fp12One() *fp12 { return &fp12{c0: fp6One(), c1: fp6Zero()} }

func fp12Mul(a, b *fp12) *fp12 {
	t0 := fp6Mul(a.c0, b.c0)
	t1 := fp6Mul(a.c1, b.c1)

	c0 := fp6Add(t0, fp6MulByV(t1))
	c1 := fp6Sub(fp6Sub(fp6Mul(fp6Add(a.c0, a.c1), fp6Add(b.c0, b.c1)), t0), t1)

	return &fp12{c0: c0, c1: c1}
}

func fp12Sqr(a *fp12) *fp12 {
	ab := fp6Mul(a.c0, a.c1)
	c0 := fp6Add(fp6Mul(fp6Add(a.c0, a.c1), fp6Add(a.c0, fp6MulByV(a.c1))),
		fp6Neg(fp6Add(ab, fp6MulByV(ab))))
	c1 := fp6Add(ab, ab)
	return &fp12{c0: c0, c1: c1}
}

func fp12Inv(a *fp12) *fp12 {
	t := fp6Sub(fp6Sqr(a.c0), fp6MulByV(fp6Sqr(a.c1)))
	t = fp6Inv(t)
	return &fp12{c0: fp6Mul(a.c0, t), c1: fp6Neg(fp6Mul(a.c1, t))}
}

func fp12Conj(a *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: newFp2(a.c0.c0.c0, a.c0.c0.c1),
			c1: newFp2(a.c0.c1.c0, a.c0.c1.c1),
			c2: newFp2(a.c0.c2.c0, a.c0.c2.c1),
		},
		c1: fp6Neg(a.c1),
	}
}

func fp12Clone(f *fp12) *fp12 {
	return &fp12{
		c0: &fp6{
			c0: newFp2(f.c0.c0.c0, f.c0.c0.c1),
			c1: newFp2(f.c0.c1.c0, f.c0.c1.c1),
			c2: newFp2(f.c0.c2.c0, f.c0.c2.c1),
		},
		c1: &fp6{
			c0: newFp2(f.c1.c0.c0, f.c1.c0.c1),
			c1: newFp2(f.c1.c1.c0, f.c1.c1.c1),
			c2: newFp2(f.c1.c2.c0, f.c1.c2.c1),
		},
	}
}

// fp12Exp computes f^k by square-and-multiply.
func fp12Exp(f *fp12, k *big.Int) *fp12 {
	if k.Sign() == 0 {
		return fp12One()
	}
	result := fp12One()
	base := fp12Clone(f)
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = fp12Sqr(result)
		if k.Bit(i) == 1 {
			result = fp12Mul(result, base)
		}
	}
	return result
}

func (f *fp12) isOne() bool {
	return f.c0.c0.equal(fp2One()) &&
		f.c0.c1.isZero() && f.c0.c2.isZero() &&
		f.c1.c0.isZero() && f.c1.c1.isZero() && f.c1.c2.isZero()
}

// --- Miller loop ---

// millerLineAdd computes the sparse Fp12 line evaluation for R + Q (D-twist
// untwist-and-evaluate), returning the line value and the updated R.
func millerLineAdd(r *G2Point, qx, qy *fp2, px, py *big.Int) (*fp12, *G2Point) {
	if r.IsIdentity() {
		return fp12One(), G2FromAffine(qx, qy)
	}

	rx, ry := r.Affine()
	if rx.equal(qx) && ry.equal(qy) {
		return millerLineDouble(r, px, py)
	}

	num := fp2Sub(qy, ry)
	den := fp2Sub(qx, rx)
	if den.isZero() {
		return fp12One(), G2Identity()
	}
	lambda := fp2Mul(num, fp2Inv(den))

	ell0 := fp2Sub(fp2Mul(lambda, rx), ry)
	ell1 := fp2Neg(fp2MulScalar(lambda, px))

	f := &fp12{
		c0: &fp6{c0: ell0, c1: ell1, c2: fp2Zero()},
		c1: &fp6{c0: fp2Zero(), c1: &fp2{c0: new(big.Int).Set(py), c1: new(big.Int)}, c2: fp2Zero()},
	}

	return f, AddG2(r, G2FromAffine(qx, qy))
}

// millerLineDouble computes the sparse Fp12 line evaluation for 2R.
func millerLineDouble(r *G2Point, px, py *big.Int) (*fp12, *G2Point) {
	if r.IsIdentity() {
		return fp12One(), G2Identity()
	}

	rx, ry := r.Affine()
	if ry.isZero() {
		return fp12One(), G2Identity()
	}

	rxSq := fp2Sqr(rx)
	three := &fp2{c0: big.NewInt(3), c1: new(big.Int)}
	two := &fp2{c0: big.NewInt(2), c1: new(big.Int)}
	lambda := fp2Mul(fp2Mul(three, rxSq), fp2Inv(fp2Mul(two, ry)))

	ell0 := fp2Sub(fp2Mul(lambda, rx), ry)
	ell1 := fp2Neg(fp2MulScalar(lambda, px))

	f := &fp12{
		c0: &fp6{c0: ell0, c1: ell1, c2: fp2Zero()},
		c1: &fp6{c0: fp2Zero(), c1: &fp2{c0: new(big.Int).Set(py), c1: new(big.Int)}, c2: fp2Zero()},
	}

	return f, DoubleG2(r)
}

// millerLoop computes the Miller loop of the optimal ate pairing, iterating
// over the bits of the (positive) BLS12-381 seed x and conjugating the
// result at the end since x itself is negative.
func millerLoop(p *G1Point, q *G2Point) *fp12 {
	if p.IsIdentity() || q.IsIdentity() {
		return fp12One()
	}

	px, py := p.Affine()
	qx, qy := q.Affine()

	f := fp12One()
	r := G2FromAffine(qx, qy)

	for i := curveX.BitLen() - 2; i >= 0; i-- {
		var lineF *fp12
		lineF, r = millerLineDouble(r, px, py)
		f = fp12Sqr(f)
		f = fp12Mul(f, lineF)

		if curveX.Bit(i) == 1 {
			lineF, r = millerLineAdd(r, qx, qy, px, py)
			f = fp12Mul(f, lineF)
		}
	}

	return fp12Conj(f)
}

// finalExponentiation computes f^((p^12-1)/r), split into the easy part
// f^(p^6-1)(p^2+1) and a hard part computed directly by exponentiation.
func finalExponentiation(f *fp12) *fp12 {
	fInv := fp12Inv(f)
	f1 := fp12Mul(fp12Conj(f), fInv)

	f1p2 := fp12Exp(f1, new(big.Int).Mul(fieldModulus, fieldModulus))
	f2 := fp12Mul(f1p2, f1)

	p2 := new(big.Int).Mul(fieldModulus, fieldModulus)
	p4 := new(big.Int).Mul(p2, p2)
	hardExp := new(big.Int).Sub(p4, p2)
	hardExp.Add(hardExp, big.NewInt(1))
	hardExp.Div(hardExp, groupOrder)

	return fp12Exp(f2, hardExp)
}

// MultiPairing reports whether the product of e(g1Points[i], g2Points[i])
// equals 1 in GT. len(g1Points) must equal len(g2Points).
func MultiPairing(g1Points []*G1Point, g2Points []*G2Point) bool {
	f := fp12One()
	for i := range g1Points {
		if g1Points[i].IsIdentity() || g2Points[i].IsIdentity() {
			continue
		}
		f = fp12Mul(f, millerLoop(g1Points[i], g2Points[i]))
	}
	return finalExponentiation(f).isOne()
}

// Pair computes a single pairing check e(p, q) == 1, equivalently p or q is
// the identity, or neither and the bilinear pairing of the two is trivial.
func Pair(p *G1Point, q *G2Point) bool {
	return MultiPairing([]*G1Point{p}, []*G2Point{q})
}
