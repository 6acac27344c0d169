package rsacrack

import "context"

// AttackStrategy defines the interface for plaintext recovery attacks.
// Implement this interface to plug custom attacks into the Client.
type AttackStrategy interface {
	// Decrypt attempts to recover the plaintext of the challenge.
	// It returns a typed error (ErrPlaintextNotFound, ErrNoInverse,
	// ErrMalformedModulus) when the attack cannot succeed.
	// The context can be used for cancellation.
	Decrypt(ctx context.Context, ch Challenge) (*AttackResult, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// AttackConfig tunes how the brute-force scan runs.
type AttackConfig struct {
	// NumWorkers controls parallelization. 0 or 1 keeps the reference
	// single-threaded scan.
	NumWorkers int

	// ChunkSize is the number of candidate plaintexts handed to a worker
	// at a time in parallel mode.
	ChunkSize int64
}

// DefaultAttackConfig returns a sensible default configuration: the
// sequential scan the comparison is defined against.
func DefaultAttackConfig() AttackConfig {
	return AttackConfig{
		NumWorkers: 0,
		ChunkSize:  1 << 12,
	}
}
