package rsacrack

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// BruteForceAttack recovers a plaintext by scanning candidates m = 0, 1, ...
// and returning the first with m^e mod n == c. This is the deliberately slow
// attack: O(n) modular exponentiations.
type BruteForceAttack struct {
	Config AttackConfig
}

// NewBruteForceAttack creates a brute-force attack with default settings.
func NewBruteForceAttack() *BruteForceAttack {
	return &BruteForceAttack{Config: DefaultAttackConfig()}
}

// WithConfig sets the configuration for the attack.
func (a *BruteForceAttack) WithConfig(config AttackConfig) *BruteForceAttack {
	a.Config = config
	return a
}

// Name returns the name of this strategy.
func (a *BruteForceAttack) Name() string {
	return "BruteForce"
}

// Decrypt implements the AttackStrategy interface.
func (a *BruteForceAttack) Decrypt(ctx context.Context, ch Challenge) (*AttackResult, error) {
	if err := ch.validate(); err != nil {
		return nil, err
	}
	if a.Config.NumWorkers > 1 {
		return a.scanParallel(ctx, ch)
	}
	return a.scan(ctx, ch)
}

// scan is the reference sequential search over [0, n).
func (a *BruteForceAttack) scan(ctx context.Context, ch Challenge) (*AttackResult, error) {
	n := uint64(ch.N)
	c := uint64(ch.C)

	for m := int64(0); m < ch.N; m++ {
		if m%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		if ModPow(uint64(m), ch.E, n) == c {
			return &AttackResult{
				Plaintext: m,
				Attempts:  m + 1,
				Strategy:  a.Name(),
			}, nil
		}
	}
	return nil, errors.Wrapf(ErrPlaintextNotFound, "scanned all %d candidates", ch.N)
}

// scanParallel splits [0, n) into chunks consumed by a worker pool. The first
// worker to find a match wins; everyone else is cancelled.
func (a *BruteForceAttack) scanParallel(parent context.Context, ch Challenge) (*AttackResult, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	chunk := a.Config.ChunkSize
	if chunk <= 0 {
		chunk = DefaultAttackConfig().ChunkSize
	}

	workChan := make(chan [2]int64, a.Config.NumWorkers*2)
	resultChan := make(chan *AttackResult, 1)
	attempts := int64(0)

	// Generate work
	go func() {
		defer close(workChan)
		for lo := int64(0); lo < ch.N; lo += chunk {
			hi := lo + chunk
			if hi > ch.N {
				hi = ch.N
			}
			select {
			case <-ctx.Done():
				return
			case workChan <- [2]int64{lo, hi}:
			}
		}
	}()

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < a.Config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-workChan:
					if !ok {
						return
					}
					for m := r[0]; m < r[1]; m++ {
						atomic.AddInt64(&attempts, 1)
						if ModPow(uint64(m), ch.E, uint64(ch.N)) == uint64(ch.C) {
							select {
							case resultChan <- &AttackResult{
								Plaintext: m,
								Strategy:  a.Name(),
							}:
							default:
							}
							cancel()
							return
						}
					}
				}
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	// Wait for a hit or for the scan to drain.
	select {
	case result := <-resultChan:
		result.Attempts = atomic.LoadInt64(&attempts)
		return result, nil
	case <-done:
		select {
		case result := <-resultChan:
			result.Attempts = atomic.LoadInt64(&attempts)
			return result, nil
		default:
		}
		if err := parent.Err(); err != nil {
			return nil, err
		}
		return nil, errors.Wrapf(ErrPlaintextNotFound, "scanned all %d candidates", ch.N)
	}
}

// BruteForceDecrypt runs the reference sequential scan for (e, n, c) and
// returns the recovered plaintext, or -1 with ErrPlaintextNotFound when no
// candidate in [0, n) encrypts to c.
func BruteForceDecrypt(e, n, c int64) (int64, error) {
	result, err := NewBruteForceAttack().Decrypt(context.Background(), Challenge{E: e, N: n, C: c})
	if err != nil {
		return -1, err
	}
	return result.Plaintext, nil
}
