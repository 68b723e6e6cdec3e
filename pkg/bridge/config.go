package bridge

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/memoryindex/native/pkg/debug"
)

// OverflowPolicy selects the behaviour of fixed-width arithmetic that
// leaves the int32 range.
type OverflowPolicy int

const (
	// Wrap uses two's-complement wraparound, the JVM's own int semantics.
	Wrap OverflowPolicy = iota
	// Saturate clamps to math.MinInt32 or math.MaxInt32.
	Saturate
	// Trap raises java.lang.ArithmeticException in the host.
	Trap
)

func (p OverflowPolicy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	case Trap:
		return "trap"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy converts a policy name into an OverflowPolicy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "wrap", "":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	case "trap":
		return Trap, nil
	}
	return Wrap, fmt.Errorf("unknown overflow policy %q", s)
}

// Config controls the native library's behaviour.
type Config struct {
	// Overflow applies to every integer native.
	Overflow OverflowPolicy

	// LogLevel, when non-nil, is applied to the default logger by
	// SetConfig. A nil level leaves the logger as it is.
	LogLevel *debug.Level
}

// DefaultConfig matches the behaviour of plain Java int addition.
var DefaultConfig = Config{
	Overflow: Wrap,
}

var current atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig
	current.Store(&cfg)
}

// SetConfig replaces the configuration seen by subsequent calls.
func SetConfig(cfg Config) {
	current.Store(&cfg)
	if cfg.LogLevel != nil {
		debug.SetLevel(*cfg.LogLevel)
	}
}

// CurrentConfig returns the configuration in effect.
func CurrentConfig() Config {
	return *current.Load()
}
