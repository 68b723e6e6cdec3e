// Package bridge is the catch-and-convert layer between exported native
// functions and the host runtime. Every exported function routes its work
// through Invoke so that errors and panics surface as host exceptions and
// never unwind across the cgo boundary.
package bridge

import (
	"fmt"
	rtdebug "runtime/debug"

	"github.com/memoryindex/native/pkg/debug"
)

// Thrower raises an exception in the host for the current call. It wraps
// the invocation context and must not outlive the call it was created for.
type Thrower interface {
	ThrowNew(class, message string) error
}

// Invoke runs fn on behalf of the native op. When fn returns an error or
// panics, the failure is raised in the host through t and the zero value
// is returned; the host discards the return value once an exception is
// pending.
func Invoke[T any](t Thrower, op string, fn func() (T, error)) (result T) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			raise(t, op, newFault(op, r, rtdebug.Stack()))
		}
	}()

	v, err := fn()
	if err != nil {
		raise(t, op, err)
		var zero T
		return zero
	}
	return v
}

// raise converts err into a host exception. It never panics.
func raise(t Thrower, op string, err error) {
	defer func() {
		if r := recover(); r != nil {
			debug.Error("%s: panic while raising host exception: %v", op, r)
		}
	}()

	if f, ok := err.(*Fault); ok {
		debug.Error("%s: recovered panic [%s]: %v\n%s", op, f.ID, f.Value, f.Stack)
	} else {
		debug.Error("%s: %v", op, err)
	}

	if t == nil {
		debug.Error("%s: no invocation context, exception dropped", op)
		return
	}

	class, message := HostException(err)
	if terr := t.ThrowNew(class, message); terr != nil {
		debug.Error("%s: %v", op, fmt.Errorf("failed to throw %s: %w", class, terr))
	}
}
