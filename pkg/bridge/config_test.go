package bridge

import (
	"testing"

	"github.com/memoryindex/native/pkg/debug"
)

func TestConfig(t *testing.T) {
	if got := CurrentConfig(); got != DefaultConfig {
		t.Fatalf("CurrentConfig() = %+v, want defaults", got)
	}

	level := debug.LevelError
	SetConfig(Config{Overflow: Trap, LogLevel: &level})
	defer func() {
		SetConfig(DefaultConfig)
		debug.SetLevel(debug.LevelInfo)
	}()

	if got := CurrentConfig().Overflow; got != Trap {
		t.Errorf("Overflow = %v, want trap", got)
	}
	if got := debug.Default().Level(); got != debug.LevelError {
		t.Errorf("logger level = %v, want ERROR", got)
	}
}

func TestConfigWithoutLogLevelKeepsLogger(t *testing.T) {
	debug.SetLevel(debug.LevelWarn)
	defer func() {
		SetConfig(DefaultConfig)
		debug.SetLevel(debug.LevelInfo)
	}()

	SetConfig(Config{Overflow: Trap})

	if got := debug.Default().Level(); got != debug.LevelWarn {
		t.Errorf("logger level = %v, want WARN unchanged", got)
	}
	if got := CurrentConfig().Overflow; got != Trap {
		t.Errorf("Overflow = %v, want trap", got)
	}
}

func TestParseOverflowPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    OverflowPolicy
		wantErr bool
	}{
		{"wrap", Wrap, false},
		{"", Wrap, false},
		{"Saturate", Saturate, false},
		{"trap", Trap, false},
		{"panic", Wrap, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverflowPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !tt.wantErr && tt.in != "" {
				if s := got.String(); s != tt.want.String() {
					t.Errorf("String() = %q", s)
				}
			}
		})
	}

	if s := OverflowPolicy(7).String(); s != "OverflowPolicy(7)" {
		t.Errorf("String() = %q", s)
	}
}
