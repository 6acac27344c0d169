// Package rsacrack provides tools for recovering RSA plaintexts from toy-sized
// public keys by two independent attacks: exhaustive search over the message
// space, and factoring the modulus to rebuild the private exponent.
//
// The point of the package is the cost contrast between the two strategies.
// Brute force performs O(n) modular exponentiations; factoring performs
// O(sqrt(n)) trial divisions followed by a single exponentiation. Both target
// moduli small enough to crack in interactive time.
//
// # Quick Start
//
//	import "github.com/Pirat3King/rsa-attack-comparison/pkg/rsacrack"
//
//	// Create a client with default settings
//	client := rsacrack.NewClient()
//
//	// Recover the plaintext by factoring the modulus
//	result, err := client.Decrypt(ctx, rsacrack.Challenge{E: 7, N: 187, C: 11})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Recovered plaintext: %d\n", result.Plaintext)
//
// # Customization
//
// You can customize the brute-force attack:
//
//	attack := rsacrack.NewBruteForceAttack().
//	    WithConfig(rsacrack.AttackConfig{
//	        NumWorkers: 8,
//	        ChunkSize:  1 << 14,
//	    })
//
//	client := rsacrack.NewClient().WithStrategy(attack)
//
// # Custom Strategies
//
// Implement the AttackStrategy interface to plug in your own attack:
//
//	type MyAttack struct{}
//
//	func (a *MyAttack) Decrypt(ctx context.Context, ch rsacrack.Challenge) (*rsacrack.AttackResult, error) {
//	    // Your attack logic
//	}
//
//	func (a *MyAttack) Name() string {
//	    return "MyAttack"
//	}
//
//	client := rsacrack.NewClient().WithStrategy(&MyAttack{})
package rsacrack
