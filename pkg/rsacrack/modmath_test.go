package rsacrack

import "testing"

func TestModPow(t *testing.T) {
	tests := []struct {
		base     uint64
		exponent int64
		modulus  uint64
		want     uint64
	}{
		{88, 7, 187, 11},      // textbook encryption
		{65, 2753, 3233, 588}, // decryption with derived d
		{11, 23, 187, 88},
		{2, 10, 1024, 0},
		{0, 5, 7, 0},
		{3, 1, 7, 3},
		{275, 7, 187, 11}, // base reduced before the loop (275 = 187+88)
	}

	for _, tt := range tests {
		got := ModPow(tt.base, tt.exponent, tt.modulus)
		if got != tt.want {
			t.Errorf("ModPow(%d, %d, %d) = %d, want %d", tt.base, tt.exponent, tt.modulus, got, tt.want)
		}
	}
}

func TestModPow_ZeroExponent(t *testing.T) {
	for _, m := range []uint64{2, 7, 187, 1 << 40} {
		if got := ModPow(12345, 0, m); got != 1 {
			t.Errorf("ModPow(12345, 0, %d) = %d, want 1", m, got)
		}
	}
}

func TestModPow_ModulusOne(t *testing.T) {
	if got := ModPow(42, 7, 1); got != 0 {
		t.Errorf("ModPow(42, 7, 1) = %d, want 0", got)
	}
}

func TestModPow_LargeModulus(t *testing.T) {
	// Squaring a 40-bit base would overflow uint64 without the widening
	// intermediate.
	const modulus = 2305843009213693951 // 2^61 - 1
	base := uint64(1<<40 + 12345)

	got := ModPow(base, 3, modulus)
	want := uint64(596186792177067075)
	if got != want {
		t.Errorf("ModPow(%d, 3, %d) = %d, want %d", base, modulus, got, want)
	}
}

func TestModPow_RoundTrip(t *testing.T) {
	// Encrypt then decrypt with the matching private exponent.
	const (
		e   = int64(7)
		d   = int64(23)
		n   = uint64(187)
		phi = int64(160)
	)
	if (e*d)%phi != 1 {
		t.Fatalf("test key is inconsistent: e*d mod phi = %d", (e*d)%phi)
	}

	for m := uint64(0); m < n; m++ {
		c := ModPow(m, e, n)
		if got := ModPow(c, d, n); got != m {
			t.Errorf("round trip failed for m=%d: got %d", m, got)
		}
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		e, phi, want int64
	}{
		{7, 160, 23},
		{17, 3120, 2753},
		{5, 288, 173},
		{1, 160, 1},
		{6, 160, 0},  // gcd(6, 160) = 2, no inverse
		{0, 160, 0},  // gcd(0, 160) = 160
		{15, 45, 0},  // shares factors 3 and 5
	}

	for _, tt := range tests {
		got := ModInverse(tt.e, tt.phi)
		if got != tt.want {
			t.Errorf("ModInverse(%d, %d) = %d, want %d", tt.e, tt.phi, got, tt.want)
		}
	}
}

func TestModInverse_Property(t *testing.T) {
	cases := []struct{ e, phi int64 }{
		{7, 160}, {17, 3120}, {65537, 3233 * 65}, {3, 20}, {5, 288},
	}
	for _, tt := range cases {
		d := ModInverse(tt.e, tt.phi)
		if d == 0 {
			t.Errorf("ModInverse(%d, %d) unexpectedly has no inverse", tt.e, tt.phi)
			continue
		}
		if d < 0 || d >= tt.phi {
			t.Errorf("ModInverse(%d, %d) = %d outside [0, phi)", tt.e, tt.phi, d)
		}
		if (tt.e*d)%tt.phi != 1 {
			t.Errorf("ModInverse(%d, %d) = %d: e*d mod phi = %d, want 1", tt.e, tt.phi, d, (tt.e*d)%tt.phi)
		}
	}
}

func TestTotient(t *testing.T) {
	tests := []struct {
		p, q, want int64
	}{
		{11, 17, 160},
		{53, 61, 3120},
		{17, 19, 288},
		{3, 5, 8},
	}
	for _, tt := range tests {
		if got := Totient(tt.p, tt.q); got != tt.want {
			t.Errorf("Totient(%d, %d) = %d, want %d", tt.p, tt.q, got, tt.want)
		}
	}
}
