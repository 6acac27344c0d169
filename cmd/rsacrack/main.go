package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Pirat3King/rsa-attack-comparison/pkg/rsacrack"
)

func main() {
	var (
		e              = flag.Int64("e", 0, "Public exponent e")
		n              = flag.Int64("n", 0, "RSA modulus n")
		c              = flag.Int64("c", 0, "Ciphertext c")
		challengesFile = flag.String("challenges", "", "Path to challenge file (JSON or CSV) with e, n, c values")
		format         = flag.String("format", "json", "Challenge file format (json or csv)")
		attack         = flag.String("attack", "both", "Attack to run: brute, factor, or both")
		workers        = flag.Int("workers", 0, "Parallel brute-force workers (0 = sequential)")
		timeout        = flag.Duration("timeout", 0, "Abort attacks after this duration (0 = no limit)")
		verbose        = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	challenges := loadChallenges(*challengesFile, *format, *e, *n, *c)

	brute := rsacrack.NewBruteForceAttack()
	if *workers > 0 {
		cfg := rsacrack.DefaultAttackConfig()
		cfg.NumWorkers = *workers
		brute = brute.WithConfig(cfg)
	}

	var strategies []rsacrack.AttackStrategy
	switch *attack {
	case "brute":
		strategies = []rsacrack.AttackStrategy{brute}
	case "factor":
		strategies = []rsacrack.AttackStrategy{rsacrack.NewFactoringAttack()}
	case "both":
		strategies = []rsacrack.AttackStrategy{brute, rsacrack.NewFactoringAttack()}
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -attack %q (want brute, factor, or both)\n", *attack)
		flag.Usage()
		os.Exit(1)
	}

	client := rsacrack.NewClient()
	failed := false

	for _, ch := range challenges {
		log.WithFields(log.Fields{"e": ch.E, "n": ch.N, "c": ch.C}).Info("attacking challenge")

		timings := client.Compare(ctx, ch, strategies...)
		for _, t := range timings {
			if t.Err != nil {
				log.WithError(t.Err).WithField("attack", t.Strategy).Error("attack failed")
				failed = true
				continue
			}
			printResult(t)
		}
		printSpeedup(timings)
	}

	if failed {
		os.Exit(1)
	}
}

// loadChallenges builds the challenge list from a file or from the -e/-n/-c flags.
func loadChallenges(file, format string, e, n, c int64) []rsacrack.Challenge {
	if file == "" {
		if n == 0 {
			fmt.Fprintf(os.Stderr, "Error: either -challenges or -e/-n/-c is required\n")
			flag.Usage()
			os.Exit(1)
		}
		return []rsacrack.Challenge{{E: e, N: n, C: c}}
	}

	var parser rsacrack.ChallengeParser
	switch format {
	case "json":
		parser = &rsacrack.JSONParser{}
	case "csv":
		parser = &rsacrack.CSVParser{}
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid -format %q (want json or csv)\n", format)
		flag.Usage()
		os.Exit(1)
	}

	challenges, err := parser.ParseChallenges(file)
	if err != nil {
		log.WithError(err).Fatal("failed to parse challenges")
	}
	if len(challenges) == 0 {
		log.WithField("file", file).Fatal("no challenges in file")
	}
	return challenges
}

func printResult(t rsacrack.AttackTiming) {
	fmt.Printf("\n-------------------- %s result --------------------\n", t.Strategy)
	fmt.Printf("Decrypted message (M): %d\n", t.Result.Plaintext)
	if t.Result.Key != nil {
		fmt.Printf("Primes:\n\tp: %d\n\tq: %d\n", t.Result.Key.P, t.Result.Key.Q)
		fmt.Printf("Decryption exponent (d): %d\n", t.Result.Key.D)
	}
	if t.Result.Attempts > 0 {
		fmt.Printf("Candidates tested: %d\n", t.Result.Attempts)
	}
	fmt.Printf("Time to run: %s\n", t.Elapsed)
}

// printSpeedup reports how much faster the quickest attack was, when at least
// two attacks succeeded on the same challenge.
func printSpeedup(timings []rsacrack.AttackTiming) {
	var ok []rsacrack.AttackTiming
	for _, t := range timings {
		if t.Err == nil {
			ok = append(ok, t)
		}
	}
	if len(ok) < 2 {
		return
	}

	slowest, fastest := ok[0], ok[0]
	for _, t := range ok[1:] {
		if t.Elapsed > slowest.Elapsed {
			slowest = t
		}
		if t.Elapsed < fastest.Elapsed {
			fastest = t
		}
	}
	if fastest.Elapsed <= 0 {
		fastest.Elapsed = time.Nanosecond
	}
	fmt.Printf("\n%s was %.1fx faster than %s\n\n",
		fastest.Strategy,
		float64(slowest.Elapsed)/float64(fastest.Elapsed),
		slowest.Strategy)
}
