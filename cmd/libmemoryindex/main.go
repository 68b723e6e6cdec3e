//go:build cgo

// Command libmemoryindex builds the JNI library backing the natives of
// org.apache.lucene.index.memory.MemoryIndex.
//
// Build with the JDK headers on the include path:
//
//	CGO_CFLAGS="-I$JAVA_HOME/include -I$JAVA_HOME/include/linux" \
//	    go build -buildmode=c-shared -o libmemoryindex.so ./cmd/libmemoryindex
//
// and load it from Java with System.loadLibrary("memoryindex").
package main

// #include <jni.h>
import "C"
import (
	"unsafe"

	"github.com/memoryindex/native/pkg/bridge"
	"github.com/memoryindex/native/pkg/debug"
	"github.com/memoryindex/native/pkg/jni"
	"github.com/memoryindex/native/pkg/memoryindex"
)

//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	for _, m := range memoryindex.Natives {
		if err := m.Validate(); err != nil {
			debug.Error("JNI_OnLoad: %v", err)
			return C.jint(jni.ErrUnknown)
		}
		debug.Debug("JNI_OnLoad: %s -> %s", m, m.ShortName())
	}
	return C.jint(jni.Version1_8)
}

//export JNI_OnUnload
func JNI_OnUnload(vm *C.JavaVM, reserved unsafe.Pointer) {
	debug.Debug("JNI_OnUnload")
}

// The receiver is the MemoryIndex class; add is static and never reads it.
//
//export Java_org_apache_lucene_index_memory_MemoryIndex_add
func Java_org_apache_lucene_index_memory_MemoryIndex_add(env *C.JNIEnv, receiver C.jclass, a, b C.jint) C.jint {
	policy := bridge.CurrentConfig().Overflow
	return C.jint(bridge.Invoke(hostEnv{env}, "MemoryIndex.add", func() (int32, error) {
		return memoryindex.AddWith(policy, int32(a), int32(b))
	}))
}

// Required for c-shared build mode
func main() {}
