package bls

// G1 point operations over y^2 = x^3 + 4 in F_p, in Jacobian coordinates
// (X, Y, Z) where the affine point is (X/Z^2, Y/Z^3). Z=0 is the identity.

import "math/big"

// G1Point is a point on the BLS12-381 G1 curve.
type G1Point struct {
	x, y, z *big.Int
}

var (
	g1GenX, _ = new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	g1GenY, _ = new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
)

// G1Generator returns the standard generator of G1.
func G1Generator() *G1Point {
	return &G1Point{x: new(big.Int).Set(g1GenX), y: new(big.Int).Set(g1GenY), z: big.NewInt(1)}
}

// G1Identity returns the point at infinity (the additive identity of G1).
func G1Identity() *G1Point {
	return &G1Point{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1Point) IsIdentity() bool { return p.z.Sign() == 0 }

// G1FromAffine builds a G1 point from affine coordinates. (0,0) denotes
// the point at infinity, matching the convention used by the compressed
// encoding's infinity flag.
func G1FromAffine(x, y *big.Int) *G1Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Identity()
	}
	return &G1Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y), z: big.NewInt(1)}
}

// Affine returns the affine (x, y) coordinates of p, or (0,0) for infinity.
func (p *G1Point) Affine() (x, y *big.Int) {
	if p.IsIdentity() {
		return new(big.Int), new(big.Int)
	}
	zInv := fpInv(p.z)
	zInv2 := fpSqr(zInv)
	zInv3 := fpMul(zInv2, zInv)
	return fpMul(p.x, zInv2), fpMul(p.y, zInv3)
}

// IsOnCurveG1 reports whether the affine point (x, y) satisfies y^2 = x^3 + 4.
func IsOnCurveG1(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	if x.Sign() < 0 || x.Cmp(fieldModulus) >= 0 {
		return false
	}
	if y.Sign() < 0 || y.Cmp(fieldModulus) >= 0 {
		return false
	}
	lhs := fpSqr(y)
	rhs := fpAdd(fpMul(fpSqr(x), x), curveB)
	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and q represent the same G1 point.
func (p *G1Point) Equal(q *G1Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

// AddG1 adds two G1 points.
func AddG1(a, b *G1Point) *G1Point {
	if a.IsIdentity() {
		return &G1Point{new(big.Int).Set(b.x), new(big.Int).Set(b.y), new(big.Int).Set(b.z)}
	}
	if b.IsIdentity() {
		return &G1Point{new(big.Int).Set(a.x), new(big.Int).Set(a.y), new(big.Int).Set(a.z)}
	}

	z1sq := fpSqr(a.z)
	z2sq := fpSqr(b.z)
	u1 := fpMul(a.x, z2sq)
	u2 := fpMul(b.x, z1sq)
	s1 := fpMul(a.y, fpMul(b.z, z2sq))
	s2 := fpMul(b.y, fpMul(a.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return DoubleG1(a)
		}
		return G1Identity()
	}

	h := fpSub(u2, u1)
	i := fpSqr(fpAdd(h, h))
	j := fpMul(h, i)
	r := fpAdd(fpSub(s2, s1), fpSub(s2, s1))
	v := fpMul(u1, i)

	x3 := fpSub(fpSub(fpSqr(r), j), fpAdd(v, v))
	y3 := fpSub(fpMul(r, fpSub(v, x3)), fpAdd(fpMul(s1, j), fpMul(s1, j)))
	z3 := fpMul(fpSub(fpSub(fpSqr(fpAdd(a.z, b.z)), z1sq), z2sq), h)

	return &G1Point{x: x3, y: y3, z: z3}
}

// DoubleG1 doubles a G1 point.
func DoubleG1(a *G1Point) *G1Point {
	if a.IsIdentity() {
		return G1Identity()
	}

	A := fpSqr(a.x)
	B := fpSqr(a.y)
	C := fpSqr(B)

	D := fpSub(fpSub(fpSqr(fpAdd(a.x, B)), A), C)
	D = fpAdd(D, D)

	E := fpAdd(fpAdd(A, A), A)

	x3 := fpSub(fpSqr(E), fpAdd(D, D))

	eightC := fpAdd(fpAdd(fpAdd(C, C), fpAdd(C, C)), fpAdd(fpAdd(C, C), fpAdd(C, C)))
	y3 := fpSub(fpMul(E, fpSub(D, x3)), eightC)

	z3 := fpMul(fpAdd(a.y, a.y), a.z)

	return &G1Point{x: x3, y: y3, z: z3}
}

// NegG1 returns -P.
func NegG1(p *G1Point) *G1Point {
	if p.IsIdentity() {
		return G1Identity()
	}
	return &G1Point{x: new(big.Int).Set(p.x), y: fpNeg(p.y), z: new(big.Int).Set(p.z)}
}

// ScalarMulG1 computes [k]P using double-and-add. Scalars are reduced mod
// the group order r first; callers needing the windowed-NAF form should
// use ScalarMulG1WNAF. Neither form runs in constant time.
func ScalarMulG1(p *G1Point, k *big.Int) *G1Point {
	if k.Sign() == 0 || p.IsIdentity() {
		return G1Identity()
	}
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 {
		return G1Identity()
	}

	r := G1Identity()
	base := &G1Point{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), z: new(big.Int).Set(p.z)}
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = DoubleG1(r)
		if kMod.Bit(i) == 1 {
			r = AddG1(r, base)
		}
	}
	return r
}
