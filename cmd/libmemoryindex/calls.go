//go:build cgo

package main

// #include <jni.h>
import "C"

// callAdd invokes the exported add as the JVM would, without an
// environment or receiver. Test files cannot use cgo types directly.
func callAdd(a, b int32) int32 {
	return int32(Java_org_apache_lucene_index_memory_MemoryIndex_add(nil, nil, C.jint(a), C.jint(b)))
}
