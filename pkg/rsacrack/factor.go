package rsacrack

import "github.com/pkg/errors"

// FactorSemiprime decomposes n into its two prime factors by trial division:
// divide out 2s, then odd divisors up to sqrt of the remaining value. The
// result is ordered P <= Q because divisors are tried in ascending order.
//
// Unlike the textbook routine this fails fast: if n does not split into
// exactly two primes (n prime, n with three or more factors, n < 4) it
// returns ErrMalformedModulus instead of a garbage pair.
func FactorSemiprime(n int64) (FactorPair, error) {
	if n < 4 {
		return FactorPair{}, errors.Wrapf(ErrMalformedModulus, "n=%d", n)
	}

	factors := make([]int64, 0, 3)
	x := n

	for x%2 == 0 {
		factors = append(factors, 2)
		x /= 2
		if len(factors) > 2 {
			return FactorPair{}, errors.Wrapf(ErrMalformedModulus, "n=%d has more than two prime factors", n)
		}
	}

	for d := int64(3); d*d <= x; d += 2 {
		for x%d == 0 {
			factors = append(factors, d)
			x /= d
			if len(factors) > 2 {
				return FactorPair{}, errors.Wrapf(ErrMalformedModulus, "n=%d has more than two prime factors", n)
			}
		}
	}

	// Whatever is left after the loop is prime.
	if x > 1 {
		factors = append(factors, x)
	}

	if len(factors) != 2 {
		return FactorPair{}, errors.Wrapf(ErrMalformedModulus, "n=%d has %d prime factors, want 2", n, len(factors))
	}
	return FactorPair{P: factors[0], Q: factors[1]}, nil
}
