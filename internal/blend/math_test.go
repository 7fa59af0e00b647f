package blend

import (
	"math/rand/v2"
	"testing"
)

// TestDiv65535Exact checks the shift form against integer division on the
// edges of every alpha row and on random products.
func TestDiv65535Exact(t *testing.T) {
	check := func(a, c uint32) {
		x := a * c
		if got, want := div65535(x), x/0xFFFF; got != want {
			t.Fatalf("div65535(%d*%d) = %d, want %d", a, c, got, want)
		}
	}
	for a := uint32(0); a <= 0xFFFF; a++ {
		check(a, 0)
		check(a, 1)
		check(a, 0xFFFE)
		check(a, 0xFFFF)
		check(a, a)
	}
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1_000_000; i++ {
		check(uint32(rng.IntN(0x10000)), uint32(rng.IntN(0x10000)))
	}
}

func TestMulDiv65535(t *testing.T) {
	tests := []struct {
		a, b     uint16
		expected uint16
	}{
		{0, 0, 0},
		{0xFFFF, 0xFFFF, 0xFFFF},
		{0, 0xFFFF, 0},
		{0xFFFF, 1, 1},
		{51400, 32896, 25800},
		{0x8080, 0x8080, 0x4080},
	}
	for _, tt := range tests {
		if got := mulDiv65535(tt.a, tt.b); got != tt.expected {
			t.Errorf("mulDiv65535(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestInv65535(t *testing.T) {
	tests := []struct {
		x        uint16
		expected uint16
	}{
		{0, 0xFFFF},
		{0xFFFF, 0},
		{0x8000, 0x7FFF},
	}
	for _, tt := range tests {
		if got := inv65535(tt.x); got != tt.expected {
			t.Errorf("inv65535(%d) = %d, want %d", tt.x, got, tt.expected)
		}
	}
}
