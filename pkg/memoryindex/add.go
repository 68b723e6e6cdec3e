// Package memoryindex implements the natives declared by
// org.apache.lucene.index.memory.MemoryIndex. Functions here are pure; the
// exported symbols in cmd/libmemoryindex adapt them to the JNI ABI.
package memoryindex

import (
	"math"

	"github.com/memoryindex/native/pkg/bridge"
)

// Add returns a + b with two's-complement wraparound, matching Java int
// addition. Add(math.MaxInt32, 1) == math.MinInt32.
func Add(a, b int32) int32 {
	return a + b
}

// AddWith returns a + b under the given overflow policy. Only Trap can
// fail, with a *bridge.ArithmeticError.
func AddWith(policy bridge.OverflowPolicy, a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum >= math.MinInt32 && sum <= math.MaxInt32 {
		return int32(sum), nil
	}

	switch policy {
	case bridge.Saturate:
		if sum > math.MaxInt32 {
			return math.MaxInt32, nil
		}
		return math.MinInt32, nil
	case bridge.Trap:
		return 0, &bridge.ArithmeticError{Op: "+", A: int64(a), B: int64(b)}
	default:
		return Add(a, b), nil
	}
}
