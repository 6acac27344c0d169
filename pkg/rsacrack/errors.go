package rsacrack

import "github.com/pkg/errors"

// Failure modes the attacks can report. Callers should test with errors.Is;
// the returned errors wrap these with the offending values.
var (
	// ErrNoInverse means gcd(e, phi(n)) != 1: the assumed key is malformed
	// and no private exponent exists.
	ErrNoInverse = errors.New("e has no inverse modulo phi(n)")

	// ErrPlaintextNotFound means the brute-force scan exhausted [0, n)
	// without finding a message that encrypts to the ciphertext.
	ErrPlaintextNotFound = errors.New("no plaintext in [0, n) encrypts to c")

	// ErrMalformedModulus means n is not a product of exactly two primes.
	ErrMalformedModulus = errors.New("modulus is not a semiprime")
)
