package memoryindex

import (
	"errors"
	"math"
	"testing"
	"testing/quick"

	"github.com/memoryindex/native/pkg/bridge"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"Zeros", 0, 0, 0},
		{"Small", 2, 3, 5},
		{"Cancel", -5, 5, 0},
		{"Negative", -7, -8, -15},
		{"MaxPlusOne wraps", math.MaxInt32, 1, math.MinInt32},
		{"MinMinusOne wraps", math.MinInt32, -1, math.MaxInt32},
		{"MaxPlusMax wraps", math.MaxInt32, math.MaxInt32, -2},
		{"MinPlusMin wraps", math.MinInt32, math.MinInt32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Add(tt.a, tt.b); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddCommutative(t *testing.T) {
	f := func(a, b int32) bool {
		return Add(a, b) == Add(b, a)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddMatchesWideSumModulo(t *testing.T) {
	f := func(a, b int32) bool {
		return Add(a, b) == int32(uint32(int64(a)+int64(b)))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestAddWith(t *testing.T) {
	tests := []struct {
		name    string
		policy  bridge.OverflowPolicy
		a, b    int32
		want    int32
		wantErr bool
	}{
		{"Wrap in range", bridge.Wrap, 2, 3, 5, false},
		{"Wrap overflow", bridge.Wrap, math.MaxInt32, 1, math.MinInt32, false},
		{"Saturate in range", bridge.Saturate, -5, 5, 0, false},
		{"Saturate high", bridge.Saturate, math.MaxInt32, 1, math.MaxInt32, false},
		{"Saturate low", bridge.Saturate, math.MinInt32, -1, math.MinInt32, false},
		{"Trap in range", bridge.Trap, math.MaxInt32, 0, math.MaxInt32, false},
		{"Trap high", bridge.Trap, math.MaxInt32, 1, 0, true},
		{"Trap low", bridge.Trap, math.MinInt32, math.MinInt32, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddWith(tt.policy, tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddWith() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AddWith(%v, %d, %d) = %d, want %d", tt.policy, tt.a, tt.b, got, tt.want)
			}
			if tt.wantErr {
				var arith *bridge.ArithmeticError
				if !errors.As(err, &arith) {
					t.Errorf("error = %T, want *bridge.ArithmeticError", err)
				}
			}
		})
	}
}

func TestAddWithAgreesInRange(t *testing.T) {
	policies := []bridge.OverflowPolicy{bridge.Wrap, bridge.Saturate, bridge.Trap}
	f := func(a, b int16) bool {
		for _, p := range policies {
			got, err := AddWith(p, int32(a), int32(b))
			if err != nil || got != Add(int32(a), int32(b)) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func BenchmarkAdd(b *testing.B) {
	var acc int32
	x, y := int32(1), int32(2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		acc += Add(x, y)
	}
	_ = acc
}
