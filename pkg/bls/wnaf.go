package bls

// Windowed non-adjacent form (wNAF) scalar multiplication, window size 3,
// matching the window the reference ceremony implementation uses
// (`WnafContext::new(3)`) when multiplying each accumulator point by the
// corresponding power of the contributor's secret during an update.

import "math/big"

// wnafDigits returns the width-w NAF digit expansion of k, least
// significant digit first. Each nonzero digit is odd and lies in
// [-(2^(w-1)-1), 2^(w-1)-1].
func wnafDigits(k *big.Int, w uint) []int {
	if k.Sign() == 0 {
		return nil
	}
	n := new(big.Int).Set(k)
	width := new(big.Int).Lsh(big.NewInt(1), w)     // 2^w
	half := new(big.Int).Rsh(width, 1)              // 2^(w-1)
	halfInt := half.Int64()
	var digits []int

	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			mod := new(big.Int).Mod(n, width)
			d := mod.Int64()
			if d >= halfInt {
				d -= width.Int64()
			}
			digits = append(digits, int(d))
			n.Sub(n, big.NewInt(d))
		} else {
			digits = append(digits, 0)
		}
		n.Rsh(n, 1)
	}
	return digits
}

// ScalarMulG1WNAF computes [k]P using width-3 windowed NAF.
func ScalarMulG1WNAF(p *G1Point, k *big.Int) *G1Point {
	if p.IsIdentity() {
		return G1Identity()
	}
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 {
		return G1Identity()
	}

	// Precompute odd multiples 1P, 3P (window 3 -> digits in {-3,-1,1,3}).
	const w = 3
	table := make(map[int]*G1Point)
	table[1] = p
	double := DoubleG1(p)
	for d := 3; d < (1 << (w - 1)); d += 2 {
		table[d] = AddG1(table[d-2], double)
	}

	digits := wnafDigits(kMod, w)
	r := G1Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		r = DoubleG1(r)
		d := digits[i]
		if d == 0 {
			continue
		}
		if d > 0 {
			r = AddG1(r, table[d])
		} else {
			r = AddG1(r, NegG1(table[-d]))
		}
	}
	return r
}

// ScalarMulG2WNAF computes [k]P using width-3 windowed NAF.
func ScalarMulG2WNAF(p *G2Point, k *big.Int) *G2Point {
	if p.IsIdentity() {
		return G2Identity()
	}
	kMod := new(big.Int).Mod(k, groupOrder)
	if kMod.Sign() == 0 {
		return G2Identity()
	}

	const w = 3
	table := make(map[int]*G2Point)
	table[1] = p
	double := DoubleG2(p)
	for d := 3; d < (1 << (w - 1)); d += 2 {
		table[d] = AddG2(table[d-2], double)
	}

	digits := wnafDigits(kMod, w)
	r := G2Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		r = DoubleG2(r)
		d := digits[i]
		if d == 0 {
			continue
		}
		if d > 0 {
			r = AddG2(r, table[d])
		} else {
			r = AddG2(r, NegG2(table[-d]))
		}
	}
	return r
}
