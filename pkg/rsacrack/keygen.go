package rsacrack

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// KeyPair is a toy RSA key pair in the attackable range.
type KeyPair struct {
	E int64 // Public exponent
	N int64 // Modulus, product of P and Q
	D int64 // Private exponent
	P int64 // Smaller prime factor
	Q int64 // Larger prime factor
}

// candidate public exponents, largest first
var publicExponents = []int64{65537, 257, 17, 7, 5, 3}

// GenerateKeyPair produces a toy RSA key with two distinct primes of the
// given bit size. Sizes up to 31 bits keep n and all intermediate values
// comfortably inside int64.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits < 3 || bits > 31 {
		return nil, errors.Errorf("prime size must be 3..31 bits, got %d", bits)
	}

	for {
		p, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate prime")
		}
		q, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate prime")
		}
		if p.Cmp(q) == 0 {
			continue
		}

		pv, qv := p.Int64(), q.Int64()
		if pv > qv {
			pv, qv = qv, pv
		}
		phi := Totient(pv, qv)

		var e, d int64
		for _, cand := range publicExponents {
			if cand >= phi {
				continue
			}
			if inv := ModInverse(cand, phi); inv != 0 {
				e, d = cand, inv
				break
			}
		}
		if e == 0 {
			continue
		}

		return &KeyPair{E: e, N: pv * qv, D: d, P: pv, Q: qv}, nil
	}
}

// Encrypt computes the textbook RSA ciphertext m^e mod n.
func (k *KeyPair) Encrypt(m int64) int64 {
	return int64(ModPow(uint64(m), k.E, uint64(k.N)))
}

// Decrypt computes c^d mod n with the private exponent.
func (k *KeyPair) Decrypt(c int64) int64 {
	return int64(ModPow(uint64(c), k.D, uint64(k.N)))
}

// Challenge encrypts m and packages the public values an attacker would see.
func (k *KeyPair) Challenge(m int64) Challenge {
	return Challenge{E: k.E, N: k.N, C: k.Encrypt(m)}
}
