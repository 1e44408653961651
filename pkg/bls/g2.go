package bls

// G2 point operations over the twist y^2 = x^3 + 4(1+u) in F_p^2, in
// Jacobian coordinates (X, Y, Z) with X, Y, Z in F_p^2.

import "math/big"

// G2Point is a point on the BLS12-381 G2 twisted curve.
type G2Point struct {
	x, y, z *fp2
}

var twistB = &fp2{c0: big.NewInt(4), c1: big.NewInt(4)}

var (
	g2GenXc0, _ = new(big.Int).SetString(
		"024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8", 16)
	g2GenXc1, _ = new(big.Int).SetString(
		"13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e", 16)
	g2GenYc0, _ = new(big.Int).SetString(
		"0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801", 16)
	g2GenYc1, _ = new(big.Int).SetString(
		"0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be", 16)
)

// G2Generator returns the standard generator of G2.
func G2Generator() *G2Point {
	return &G2Point{
		x: &fp2{c0: new(big.Int).Set(g2GenXc0), c1: new(big.Int).Set(g2GenXc1)},
		y: &fp2{c0: new(big.Int).Set(g2GenYc0), c1: new(big.Int).Set(g2GenYc1)},
		z: fp2One(),
	}
}

// G2Identity returns the point at infinity of G2.
func G2Identity() *G2Point {
	return &G2Point{x: fp2One(), y: fp2One(), z: fp2Zero()}
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2Point) IsIdentity() bool { return p.z.isZero() }

// G2FromAffine builds a G2 point from affine Fp2 coordinates.
func G2FromAffine(x, y *fp2) *G2Point {
	if x.isZero() && y.isZero() {
		return G2Identity()
	}
	return &G2Point{x: newFp2(x.c0, x.c1), y: newFp2(y.c0, y.c1), z: fp2One()}
}

// Affine returns the affine Fp2 coordinates of p, or (0,0) for infinity.
func (p *G2Point) Affine() (x, y *fp2) {
	if p.IsIdentity() {
		return fp2Zero(), fp2Zero()
	}
	zInv := fp2Inv(p.z)
	zInv2 := fp2Sqr(zInv)
	zInv3 := fp2Mul(zInv2, zInv)
	return fp2Mul(p.x, zInv2), fp2Mul(p.y, zInv3)
}

// IsOnCurveG2 reports whether the affine point (x, y) satisfies y^2 = x^3 + 4(1+u).
func IsOnCurveG2(x, y *fp2) bool {
	if x.isZero() && y.isZero() {
		return true
	}
	xr0 := new(big.Int).Mod(x.c0, fieldModulus)
	xr1 := new(big.Int).Mod(x.c1, fieldModulus)
	yr0 := new(big.Int).Mod(y.c0, fieldModulus)
	yr1 := new(big.Int).Mod(y.c1, fieldModulus)
	if xr0.Cmp(x.c0) != 0 || xr1.Cmp(x.c1) != 0 || yr0.Cmp(y.c0) != 0 || yr1.Cmp(y.c1) != 0 {
		return false
	}
	lhs := fp2Sqr(y)
	rhs := fp2Add(fp2Mul(fp2Sqr(x), x), twistB)
	return lhs.equal(rhs)
}

// Equal reports whether p and q represent the same G2 point.
func (p *G2Point) Equal(q *G2Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.equal(qx) && py.equal(qy)
}

// AddG2 adds two G2 points.
func AddG2(a, b *G2Point) *G2Point {
	if a.IsIdentity() {
		return &G2Point{newFp2(b.x.c0, b.x.c1), newFp2(b.y.c0, b.y.c1), newFp2(b.z.c0, b.z.c1)}
	}
	if b.IsIdentity() {
		return &G2Point{newFp2(a.x.c0, a.x.c1), newFp2(a.y.c0, a.y.c1), newFp2(a.z.c0, a.z.c1)}
	}

	z1sq := fp2Sqr(a.z)
	z2sq := fp2Sqr(b.z)
	u1 := fp2Mul(a.x, z2sq)
	u2 := fp2Mul(b.x, z1sq)
	s1 := fp2Mul(a.y, fp2Mul(b.z, z2sq))
	s2 := fp2Mul(b.y, fp2Mul(a.z, z1sq))

	if u1.equal(u2) {
		if s1.equal(s2) {
			return DoubleG2(a)
		}
		return G2Identity()
	}

	h := fp2Sub(u2, u1)
	i := fp2Sqr(fp2Add(h, h))
	j := fp2Mul(h, i)
	r := fp2Add(fp2Sub(s2, s1), fp2Sub(s2, s1))
	v := fp2Mul(u1, i)

	x3 := fp2Sub(fp2Sub(fp2Sqr(r), j), fp2Add(v, v))
	y3 := fp2Sub(fp2Mul(r, fp2Sub(v, x3)), fp2Add(fp2Mul(s1, j), fp2Mul(s1, j)))
	z3 := fp2Mul(fp2Sub(fp2Sub(fp2Sqr(fp2Add(a.z, b.z)), z1sq), z2sq), h)

	return &G2Point{x: x3, y: y3, z: z3}
}

// DoubleG2 doubles a G2 point.
func DoubleG2(a *G2Point) *G2Point {
	if a.IsIdentity() {
		return G2Identity()
	}

	A := fp2Sqr(a.x)
	B := fp2Sqr(a.y)
	C := fp2Sqr(B)

	D := fp2Sub(fp2Sub(fp2Sqr(fp2Add(a.x, B)), A), C)
	D = fp2Add(D, D)

	E := fp2Add(fp2Add(A, A), A)

	x3 := fp2Sub(fp2Sqr(E), fp2Add(D, D))

	eightC := fp2Add(fp2Add(fp2Add(C, C), fp2Add(C, C)), fp2Add(fp2Add(C, C), fp2Add(C, C)))
	y3 := fp2Sub(fp2Mul(E, fp2Sub(D, x3)), eightC)

	z3 := fp2Mul(fp2Add(a.y, a.y), a.z)

	return &G2Point{x: x3, y: y3, z: z3}
}

// NegG2 returns -P.
func NegG2(p *G2Point) *G2Point {
	if p.IsIdentity() {
		return G2Identity()
	}
	return &G2Point{x: newFp2(p.x.c0, p.x.c1), y: fp2Neg(p.y), z: newFp2(p.z.c0, p.z.c1)}
}

// ScalarMulG2 computes [k]P using double-and-add.
func ScalarMulG2(p *G2Point, k *big.Int) *G2Point {
	if k.Sign() == 0 || p.IsIdentity() {
		return G2Identity()
	}
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 {
		return G2Identity()
	}

	r := G2Identity()
	base := &G2Point{x: newFp2(p.x.c0, p.x.c1), y: newFp2(p.y.c0, p.y.c1), z: newFp2(p.z.c0, p.z.c1)}
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = DoubleG2(r)
		if kMod.Bit(i) == 1 {
			r = AddG2(r, base)
		}
	}
	return r
}
