package jni

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Method identifies a Java native method implemented by this library.
type Method struct {
	Class      string   // dotted or slash form, e.g. "org.apache.lucene.index.memory.MemoryIndex"
	Name       string   // method name
	Descriptor string   // e.g. "(II)I"
	Static     bool     // receiver is the class rather than an instance
	Params     []string // optional parameter names for generated Java
}

// Validate checks that the method can be named and declared.
func (m Method) Validate() error {
	if m.Class == "" {
		return errors.New("native method has no class")
	}
	if m.Name == "" {
		return fmt.Errorf("native method of %s has no name", m.Class)
	}
	if m.Name == "<init>" || m.Name == "<clinit>" {
		return fmt.Errorf("%s.%s cannot be native", m.Class, m.Name)
	}
	args, _, err := ParseDescriptor(m.Descriptor)
	if err != nil {
		return err
	}
	if len(m.Params) != 0 && len(m.Params) != len(args) {
		return fmt.Errorf("%s: %d parameter names for %d arguments", m, len(m.Params), len(args))
	}
	return nil
}

// String returns the method as "pkg.Class.name(desc)".
func (m Method) String() string {
	return strings.ReplaceAll(internalName(m.Class), "/", ".") + "." + m.Name + m.Descriptor
}

// ShortName returns the exported symbol the JVM looks up first:
// "Java_" + mangled class + "_" + mangled method.
func (m Method) ShortName() string {
	return "Java_" + Mangle(internalName(m.Class)) + "_" + Mangle(m.Name)
}

// LongName returns the symbol used to disambiguate overloaded natives:
// the short name followed by "__" and the mangled argument descriptor.
func (m Method) LongName() string {
	sig := m.Descriptor
	if open, end := strings.IndexByte(sig, '('), strings.IndexByte(sig, ')'); open == 0 && end > 0 {
		sig = sig[1:end]
	}
	return m.ShortName() + "__" + Mangle(sig)
}

// JavaDecl returns the Java declaration of the native method, e.g.
// "public static native int add(int a, int b);".
func (m Method) JavaDecl() (string, error) {
	args, ret, err := ParseDescriptor(m.Descriptor)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("public ")
	if m.Static {
		sb.WriteString("static ")
	}
	sb.WriteString("native ")
	sb.WriteString(ret.JavaName())
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		name := fmt.Sprintf("arg%d", i)
		if i < len(m.Params) {
			name = m.Params[i]
		}
		sb.WriteString(a.JavaName())
		sb.WriteByte(' ')
		sb.WriteString(name)
	}
	sb.WriteString(");")
	return sb.String(), nil
}

// Mangle applies the JNI name escapes to a slash-separated name:
// '/' becomes '_', '_' becomes "_1", ';' becomes "_2", '[' becomes "_3" and
// every character outside [A-Za-z0-9] becomes "_0xxxx" per UTF-16 unit.
func Mangle(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '/':
			sb.WriteByte('_')
		case r == '_':
			sb.WriteString("_1")
		case r == ';':
			sb.WriteString("_2")
		case r == '[':
			sb.WriteString("_3")
		case r < 0x80 && isAlnum(byte(r)):
			sb.WriteRune(r)
		default:
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&sb, "_0%04x", u)
			}
		}
	}
	return sb.String()
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func internalName(class string) string {
	return strings.ReplaceAll(class, ".", "/")
}
