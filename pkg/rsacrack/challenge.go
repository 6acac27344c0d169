package rsacrack

import "github.com/pkg/errors"

// Challenge bundles the public values an attacker starts from: the public
// exponent e, the modulus n, and a ciphertext c in [0, n).
type Challenge struct {
	E int64 // Public exponent
	N int64 // RSA modulus, assumed to be a product of two primes
	C int64 // Ciphertext to decrypt
}

// validate rejects challenges the attacks cannot operate on. It does not
// verify that N is a semiprime; that is the factoring attack's job.
func (ch Challenge) validate() error {
	if ch.N <= 1 {
		return errors.Errorf("modulus must be greater than 1, got %d", ch.N)
	}
	if ch.E < 0 {
		return errors.Errorf("exponent must be non-negative, got %d", ch.E)
	}
	if ch.C < 0 || ch.C >= ch.N {
		return errors.Errorf("ciphertext %d outside [0, %d)", ch.C, ch.N)
	}
	return nil
}

// FactorPair holds the two prime factors of a semiprime modulus, P <= Q.
type FactorPair struct {
	P int64
	Q int64
}

// RecoveredKey carries the private material rebuilt by the factoring attack.
type RecoveredKey struct {
	P int64 // Smaller prime factor of N
	Q int64 // Larger prime factor of N
	D int64 // Private exponent, inverse of E modulo (P-1)(Q-1)
}

// AttackResult contains the result of a successful attack.
type AttackResult struct {
	Plaintext int64         // Recovered message
	Key       *RecoveredKey // Private key material, nil for brute force
	Attempts  int64         // Candidates tested (brute force only)
	Strategy  string        // Name of the strategy that produced the result
}
