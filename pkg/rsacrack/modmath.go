package rsacrack

import "math/bits"

// ModPow returns base^exponent mod modulus by binary square-and-multiply.
// The base is reduced first, and every multiplication goes through a 128-bit
// intermediate, so results stay exact for any modulus that fits in a uint64.
// Requires modulus > 0 and exponent >= 0.
func ModPow(base uint64, exponent int64, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}

	result := uint64(1)
	base %= modulus

	for exponent > 0 {
		if exponent%2 == 1 {
			result = mulMod(result, base, modulus)
		}
		base = mulMod(base, base, modulus)
		exponent /= 2
	}
	return result
}

// mulMod returns a*b mod m without overflow. Requires a, b < m, which keeps
// the high word of the product below m as bits.Div64 demands.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// Totient returns Euler's totient of a semiprime with prime factors p and q:
// phi(p*q) = (p-1)(q-1).
func Totient(p, q int64) int64 {
	return (p - 1) * (q - 1)
}

// ModInverse returns the unique d in [0, phi) with e*d = 1 (mod phi), found
// with the iterative extended Euclidean algorithm. Returns 0 when
// gcd(e, phi) != 1; zero is never a valid exponent, so callers must treat it
// as "no inverse exists", not as a usable result.
func ModInverse(e, phi int64) int64 {
	a, b := e, phi
	d, y := int64(1), int64(0)

	for b != 0 {
		q := a / b
		a, b = b, a%b
		d, y = y, d-q*y
	}

	// a is now gcd(e, phi)
	if a != 1 {
		return 0
	}
	if d < 0 {
		d += phi
	}
	return d
}
