// Package bls implements BLS12-381 field, group, and pairing arithmetic,
// the compressed point encoding used by the ceremony wire format, and the
// endomorphism-based subgroup membership checks the ceremony relies on to
// reject points outside the prime-order subgroups of G1 and G2.
package bls

// Finite field arithmetic over F_p, the BLS12-381 base field.
//
//	p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab

import "math/big"

var (
	// fieldModulus is the base field modulus p.
	fieldModulus, _ = new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	// groupOrder is the prime order r of G1/G2/GT.
	groupOrder, _ = new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	// curveB is the G1 curve coefficient: y^2 = x^3 + 4.
	curveB = big.NewInt(4)
)

// FieldModulus returns the BLS12-381 base field modulus p.
func FieldModulus() *big.Int { return new(big.Int).Set(fieldModulus) }

// GroupOrder returns the BLS12-381 scalar field order r.
func GroupOrder() *big.Int { return new(big.Int).Set(groupOrder) }

func fpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, fieldModulus)
}

func fpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, fieldModulus)
}

func fpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, fieldModulus)
}

func fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(fieldModulus, new(big.Int).Mod(a, fieldModulus))
}

func fpInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, fieldModulus)
}

func fpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, fieldModulus)
}

func fpExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, fieldModulus)
}

// fpSqrt returns a square root of a mod p, or nil if a is not a residue.
// p = 3 mod 4 for BLS12-381, so sqrt(a) = a^((p+1)/4).
func fpSqrt(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	exp := new(big.Int).Add(fieldModulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	r := fpExp(a, exp)
	if fpSqr(r).Cmp(new(big.Int).Mod(a, fieldModulus)) != 0 {
		return nil
	}
	return r
}

// fpIsSquare reports whether a is a quadratic residue mod p (Euler's criterion).
func fpIsSquare(a *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(fieldModulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	return fpExp(a, exp).Cmp(big.NewInt(1)) == 0
}

// fpHalf returns (p-1)/2, the threshold used to decide the "larger" of
// {y, -y} in the compressed point encoding (§4.1): y is the larger root
// iff y > (p-1)/2, which is equivalent to y > -y mod p since p is odd.
func fpHalf() *big.Int {
	h := new(big.Int).Sub(fieldModulus, big.NewInt(1))
	return h.Rsh(h, 1)
}
