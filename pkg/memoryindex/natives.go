package memoryindex

import (
	"github.com/memoryindex/native/pkg/jni"
)

// ClassName is the Java class whose natives this library implements.
const ClassName = "org.apache.lucene.index.memory.MemoryIndex"

// AddMethod is MemoryIndex.add(int, int).
var AddMethod = jni.Method{
	Class:      ClassName,
	Name:       "add",
	Descriptor: jni.MethodDescriptor(jni.Int, jni.Int, jni.Int),
	Static:     true,
	Params:     []string{"a", "b"},
}

// Natives lists every native method exported by the library. Exported
// symbol names are checked against this table.
var Natives = []jni.Method{
	AddMethod,
}
