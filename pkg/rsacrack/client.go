package rsacrack

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Client provides a high-level API for running attacks over challenges.
type Client struct {
	strategy AttackStrategy
	parser   ChallengeParser
}

// NewClient creates a new client with default settings: the factoring attack
// and the JSON challenge parser.
func NewClient() *Client {
	return &Client{
		strategy: NewFactoringAttack(),
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom attack strategy.
func (c *Client) WithStrategy(strategy AttackStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom challenge parser.
func (c *Client) WithParser(parser ChallengeParser) *Client {
	c.parser = parser
	return c
}

// Decrypt runs the configured attack against a single challenge.
func (c *Client) Decrypt(ctx context.Context, ch Challenge) (*AttackResult, error) {
	return c.strategy.Decrypt(ctx, ch)
}

// DecryptFile parses challenges from a file (JSON or CSV, depending on the
// configured parser) and runs the configured attack against each of them.
func (c *Client) DecryptFile(ctx context.Context, source string) ([]*AttackResult, error) {
	challenges, err := c.parser.ParseChallenges(source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse challenges")
	}
	if len(challenges) == 0 {
		return nil, errors.Errorf("no challenges in %s", source)
	}

	results := make([]*AttackResult, 0, len(challenges))
	for i, ch := range challenges {
		result, err := c.strategy.Decrypt(ctx, ch)
		if err != nil {
			return nil, errors.Wrapf(err, "challenge %d (e=%d n=%d c=%d)", i, ch.E, ch.N, ch.C)
		}
		results = append(results, result)
	}
	return results, nil
}

// AttackTiming records one attack's outcome and wall-clock duration.
type AttackTiming struct {
	Strategy string
	Result   *AttackResult // nil when Err is set
	Err      error
	Elapsed  time.Duration
}

// Compare runs the given strategies back to back against the same challenge
// and reports each one's result and duration. With no strategies it runs the
// default pair, brute force then factoring, which is the comparison this
// toolkit exists to demonstrate.
func (c *Client) Compare(ctx context.Context, ch Challenge, strategies ...AttackStrategy) []AttackTiming {
	if len(strategies) == 0 {
		strategies = []AttackStrategy{NewBruteForceAttack(), NewFactoringAttack()}
	}

	timings := make([]AttackTiming, 0, len(strategies))
	for _, s := range strategies {
		start := time.Now()
		result, err := s.Decrypt(ctx, ch)
		timings = append(timings, AttackTiming{
			Strategy: s.Name(),
			Result:   result,
			Err:      err,
			Elapsed:  time.Since(start),
		})
	}
	return timings
}
