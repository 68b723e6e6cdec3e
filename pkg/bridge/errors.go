package bridge

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/memoryindex/native/pkg/jni"
)

// MarshalError reports an argument or result that cannot be converted
// between its host and native representations.
type MarshalError struct {
	Arg    string
	Reason string
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("cannot marshal %s: %s", e.Arg, e.Reason)
}

// ArithmeticError reports an integer overflow under the Trap policy.
type ArithmeticError struct {
	Op   string
	A, B int64
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("integer overflow: %d %s %d", e.A, e.Op, e.B)
}

// Fault is a panic recovered at the native boundary. ID correlates the
// host exception with the log line that carries the stack.
type Fault struct {
	ID    uuid.UUID
	Op    string
	Value interface{}
	Stack []byte
}

func newFault(op string, value interface{}, stack []byte) *Fault {
	return &Fault{
		ID:    uuid.New(),
		Op:    op,
		Value: value,
		Stack: stack,
	}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("native fault in %s [%s]: %v", f.Op, f.ID, f.Value)
}

// Unwrap exposes a panic value that was itself an error.
func (f *Fault) Unwrap() error {
	err, _ := f.Value.(error)
	return err
}

// HostException maps err to the Java exception class and message raised in
// the host.
func HostException(err error) (class, message string) {
	var (
		fault *Fault
		arith *ArithmeticError
		marsh *MarshalError
	)
	switch {
	case errors.As(err, &fault):
		return jni.ClassError, fault.Error()
	case errors.As(err, &arith):
		return jni.ClassArithmeticException, arith.Error()
	case errors.As(err, &marsh):
		return jni.ClassIllegalArgumentException, marsh.Error()
	default:
		return jni.ClassRuntimeException, err.Error()
	}
}
