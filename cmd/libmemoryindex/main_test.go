//go:build cgo

package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/memoryindex/native/pkg/bridge"
	"github.com/memoryindex/native/pkg/debug"
	"github.com/memoryindex/native/pkg/jni"
)

func TestExportedAdd(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
	}{
		{0, 0, 0},
		{2, 3, 5},
		{-5, 5, 0},
		{math.MaxInt32, 1, math.MinInt32},
	}

	for _, tt := range tests {
		if got := callAdd(tt.a, tt.b); got != tt.want {
			t.Errorf("add(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExportedAddTrapWithoutEnv(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.SetOutput(nopWriter{})

	bridge.SetConfig(bridge.Config{Overflow: bridge.Trap})
	defer bridge.SetConfig(bridge.DefaultConfig)

	if got := callAdd(math.MaxInt32, 1); got != 0 {
		t.Errorf("add() = %d, want 0 after a trapped overflow", got)
	}
	if !strings.Contains(buf.String(), "failed to throw java/lang/ArithmeticException: nil JNIEnv") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestHostEnvWithoutEnv(t *testing.T) {
	if err := (hostEnv{}).ThrowNew(jni.ClassError, "msg"); err == nil {
		t.Error("ThrowNew without a JNIEnv should fail")
	}
}

func TestThrowError(t *testing.T) {
	if err := throwError(0, jni.ClassError); err != nil {
		t.Errorf("thrown: %v", err)
	}
	if err := throwError(1, jni.ClassError); !errors.Is(err, errPending) {
		t.Errorf("pending: %v", err)
	}
	if err := throwError(-1, "p/Missing"); err == nil || err.Error() != "class p/Missing not found" {
		t.Errorf("no class: %v", err)
	}
	if err := throwError(-2, jni.ClassError); err == nil || err.Error() != "ThrowNew returned -2" {
		t.Errorf("throw failed: %v", err)
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
