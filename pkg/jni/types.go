// Package jni describes the host side of the Java Native Interface: the
// ABI constants a native library returns to the JVM, type descriptors, and
// the mechanical naming convention the JVM uses to resolve native methods
// to exported symbols.
package jni

// Return codes of the JNI invocation API.
const (
	OK          = 0
	ErrUnknown  = -1
	ErrDetached = -2
	ErrVersion  = -3
	ErrNoMemory = -4
	ErrExists   = -5
	ErrInvalid  = -6
)

// Interface versions a library may request from JNI_OnLoad.
const (
	Version1_1 = 0x00010001
	Version1_2 = 0x00010002
	Version1_4 = 0x00010004
	Version1_6 = 0x00010006
	Version1_8 = 0x00010008
	Version9   = 0x00090000
	Version10  = 0x000a0000
)

// Fully qualified exception classes, in the slash form FindClass expects.
const (
	ClassError                    = "java/lang/Error"
	ClassRuntimeException         = "java/lang/RuntimeException"
	ClassArithmeticException      = "java/lang/ArithmeticException"
	ClassIllegalArgumentException = "java/lang/IllegalArgumentException"
)
