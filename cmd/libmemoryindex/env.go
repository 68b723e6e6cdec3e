//go:build cgo

package main

// #include <stdlib.h>
// #include "throw.h"
import "C"
import (
	"errors"
	"fmt"
	"unsafe"
)

var errPending = errors.New("an exception is already pending")

// hostEnv adapts the per-call JNIEnv to bridge.Thrower. It lives on the
// stack of one exported call and is never stored.
type hostEnv struct {
	env *C.JNIEnv
}

func (h hostEnv) ThrowNew(class, message string) error {
	if h.env == nil {
		return errors.New("nil JNIEnv")
	}

	cClass := C.CString(class)
	defer C.free(unsafe.Pointer(cClass))

	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cMessage))

	return throwError(int(C.memoryindex_throw(h.env, cClass, cMessage)), class)
}

// throwError maps a memoryindex_throw status to an error.
func throwError(rc int, class string) error {
	switch rc {
	case C.MEMORYINDEX_THROWN:
		return nil
	case C.MEMORYINDEX_PENDING:
		return errPending
	case C.MEMORYINDEX_NO_CLASS:
		return fmt.Errorf("class %s not found", class)
	default:
		return fmt.Errorf("ThrowNew returned %d", rc)
	}
}
