package rsacrack

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestFactoringAttack_Decrypt(t *testing.T) {
	attack := NewFactoringAttack()

	result, err := attack.Decrypt(context.Background(), Challenge{E: 7, N: 187, C: 11})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if result.Plaintext != 88 {
		t.Errorf("Plaintext = %d, want 88", result.Plaintext)
	}
	if result.Key == nil {
		t.Fatal("factoring attack should recover key material")
	}
	if result.Key.P != 11 || result.Key.Q != 17 {
		t.Errorf("factors = (%d, %d), want (11, 17)", result.Key.P, result.Key.Q)
	}
	if result.Key.D != 23 {
		t.Errorf("D = %d, want 23", result.Key.D)
	}
	if result.Strategy != "Factoring" {
		t.Errorf("Strategy = %q, want Factoring", result.Strategy)
	}
}

func TestFactoringAttack_Decrypt_3233(t *testing.T) {
	result, err := NewFactoringAttack().Decrypt(context.Background(), Challenge{E: 17, N: 3233, C: 65})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}

	if result.Key.P != 53 || result.Key.Q != 61 {
		t.Errorf("factors = (%d, %d), want (53, 61)", result.Key.P, result.Key.Q)
	}
	if result.Key.D != 2753 {
		t.Errorf("D = %d, want 2753", result.Key.D)
	}

	// The plaintext must agree with direct decryption using the derived d.
	want := int64(ModPow(65, result.Key.D, 3233))
	if result.Plaintext != want {
		t.Errorf("Plaintext = %d, want %d (= c^d mod n)", result.Plaintext, want)
	}
	if result.Plaintext != 588 {
		t.Errorf("Plaintext = %d, want 588", result.Plaintext)
	}
}

func TestFactoringAttack_PrimeModulus(t *testing.T) {
	_, err := NewFactoringAttack().Decrypt(context.Background(), Challenge{E: 7, N: 13, C: 5})
	if !errors.Is(err, ErrMalformedModulus) {
		t.Errorf("err = %v, want ErrMalformedModulus", err)
	}
}

func TestFactoringAttack_NoInverse(t *testing.T) {
	// gcd(6, phi(187)=160) = 2: the key is malformed and the attack must
	// say so instead of inventing a plaintext.
	result, err := NewFactoringAttack().Decrypt(context.Background(), Challenge{E: 6, N: 187, C: 11})
	if !errors.Is(err, ErrNoInverse) {
		t.Errorf("err = %v, want ErrNoInverse", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on failure", result)
	}
}

func TestFactoringAttack_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFactoringAttack().Decrypt(ctx, Challenge{E: 7, N: 187, C: 11})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAttacksAgree(t *testing.T) {
	ctx := context.Background()
	brute := NewBruteForceAttack()
	factoring := NewFactoringAttack()

	challenges := []Challenge{
		{E: 7, N: 187, C: 11},
		{E: 17, N: 3233, C: 65},
		{E: 5, N: 323, C: 264},
	}

	// Add freshly generated keys so the property is not tied to the fixed
	// textbook examples.
	for i := 0; i < 3; i++ {
		key, err := GenerateKeyPair(6)
		if err != nil {
			t.Fatalf("GenerateKeyPair failed: %v", err)
		}
		challenges = append(challenges, key.Challenge(int64(i*13+7)%key.N))
	}

	for _, ch := range challenges {
		bm, err := brute.Decrypt(ctx, ch)
		if err != nil {
			t.Errorf("brute force failed on %+v: %v", ch, err)
			continue
		}
		fm, err := factoring.Decrypt(ctx, ch)
		if err != nil {
			t.Errorf("factoring failed on %+v: %v", ch, err)
			continue
		}
		if bm.Plaintext != fm.Plaintext {
			t.Errorf("attacks disagree on %+v: brute=%d factoring=%d", ch, bm.Plaintext, fm.Plaintext)
		}
	}
}

func TestFactorAndDecrypt(t *testing.T) {
	m, key, err := FactorAndDecrypt(7, 187, 11)
	if err != nil {
		t.Fatalf("FactorAndDecrypt failed: %v", err)
	}
	if m != 88 {
		t.Errorf("m = %d, want 88", m)
	}
	if key == nil || key.P != 11 || key.Q != 17 || key.D != 23 {
		t.Errorf("key = %+v, want {P:11 Q:17 D:23}", key)
	}

	m, key, err = FactorAndDecrypt(7, 13, 5)
	if !errors.Is(err, ErrMalformedModulus) {
		t.Errorf("err = %v, want ErrMalformedModulus", err)
	}
	if m != -1 || key != nil {
		t.Errorf("failure should return -1 and nil key, got m=%d key=%+v", m, key)
	}
}
