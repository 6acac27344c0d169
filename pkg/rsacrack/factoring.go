package rsacrack

import (
	"context"

	"github.com/pkg/errors"
)

// FactoringAttack recovers a plaintext by factoring the modulus and rebuilding
// the private exponent: n -> (p, q) -> phi -> d -> c^d mod n. Its cost is the
// O(sqrt(n)) trial division, which for toy moduli beats the O(n) scan by
// orders of magnitude.
type FactoringAttack struct{}

// NewFactoringAttack creates a factoring attack.
func NewFactoringAttack() *FactoringAttack {
	return &FactoringAttack{}
}

// Name returns the name of this strategy.
func (a *FactoringAttack) Name() string {
	return "Factoring"
}

// Decrypt implements the AttackStrategy interface.
//
// Failures are distinguishable: a modulus that is not a semiprime yields
// ErrMalformedModulus, and a key with gcd(e, phi) != 1 yields ErrNoInverse.
// Neither is ever silently coerced into a bogus plaintext.
func (a *FactoringAttack) Decrypt(ctx context.Context, ch Challenge) (*AttackResult, error) {
	if err := ch.validate(); err != nil {
		return nil, err
	}

	pair, err := FactorSemiprime(ch.N)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	phi := Totient(pair.P, pair.Q)
	d := ModInverse(ch.E, phi)
	if d == 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(e=%d, phi=%d) != 1", ch.E, phi)
	}

	m := ModPow(uint64(ch.C), d, uint64(ch.N))
	return &AttackResult{
		Plaintext: int64(m),
		Key:       &RecoveredKey{P: pair.P, Q: pair.Q, D: d},
		Strategy:  a.Name(),
	}, nil
}

// FactorAndDecrypt factors n, derives the private exponent and decrypts c
// directly, returning the plaintext together with the recovered key material
// for diagnostic display.
func FactorAndDecrypt(e, n, c int64) (int64, *RecoveredKey, error) {
	result, err := NewFactoringAttack().Decrypt(context.Background(), Challenge{E: e, N: n, C: c})
	if err != nil {
		return -1, nil, err
	}
	return result.Plaintext, result.Key, nil
}
