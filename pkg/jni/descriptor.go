package jni

import (
	"fmt"
	"strings"
)

// Type is a JVM field descriptor such as "I" or "Ljava/lang/String;".
type Type string

// Primitive descriptors.
const (
	Boolean Type = "Z"
	Byte    Type = "B"
	Char    Type = "C"
	Short   Type = "S"
	Int     Type = "I"
	Long    Type = "J"
	Float   Type = "F"
	Double  Type = "D"
	Void    Type = "V"
)

var javaNames = map[Type]string{
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
	Void:    "void",
}

// Object returns the descriptor of a reference type. The class may be given
// in dotted or slash form.
func Object(class string) Type {
	return Type("L" + internalName(class) + ";")
}

// Array returns the descriptor of an array of elem.
func Array(elem Type) Type {
	return "[" + elem
}

// JavaName returns the type as written in Java source.
func (t Type) JavaName() string {
	s := string(t)
	dims := 0
	for strings.HasPrefix(s, "[") {
		dims++
		s = s[1:]
	}

	name, ok := javaNames[Type(s)]
	if !ok {
		name = strings.ReplaceAll(strings.TrimSuffix(strings.TrimPrefix(s, "L"), ";"), "/", ".")
	}
	return name + strings.Repeat("[]", dims)
}

// MethodDescriptor builds a method descriptor such as "(II)I".
func MethodDescriptor(ret Type, args ...Type) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, a := range args {
		sb.WriteString(string(a))
	}
	sb.WriteByte(')')
	sb.WriteString(string(ret))
	return sb.String()
}

// DescriptorError reports a malformed method descriptor.
type DescriptorError struct {
	Descriptor string
	Offset     int
	Reason     string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid method descriptor %q at offset %d: %s", e.Descriptor, e.Offset, e.Reason)
}

// ParseDescriptor splits a method descriptor into its argument and return
// types.
func ParseDescriptor(desc string) (args []Type, ret Type, err error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, "", &DescriptorError{desc, 0, "missing '('"}
	}

	i := 1
	for i < len(desc) && desc[i] != ')' {
		t, n, err := parseType(desc, i, false)
		if err != nil {
			return nil, "", err
		}
		args = append(args, t)
		i += n
	}
	if i >= len(desc) {
		return nil, "", &DescriptorError{desc, i, "missing ')'"}
	}
	i++

	ret, n, err := parseType(desc, i, true)
	if err != nil {
		return nil, "", err
	}
	if i+n != len(desc) {
		return nil, "", &DescriptorError{desc, i + n, "trailing characters"}
	}
	return args, ret, nil
}

// parseType reads one field descriptor starting at off and returns it with
// its length.
func parseType(desc string, off int, allowVoid bool) (Type, int, error) {
	start := off
	for off < len(desc) && desc[off] == '[' {
		off++
	}
	if off >= len(desc) {
		return "", 0, &DescriptorError{desc, off, "unexpected end"}
	}

	switch c := desc[off]; c {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		off++
	case 'V':
		if !allowVoid || off != start {
			return "", 0, &DescriptorError{desc, off, "void is only valid as a return type"}
		}
		off++
	case 'L':
		end := strings.IndexByte(desc[off:], ';')
		if end <= 1 {
			return "", 0, &DescriptorError{desc, off, "unterminated class name"}
		}
		off += end + 1
	default:
		return "", 0, &DescriptorError{desc, off, fmt.Sprintf("unknown type %q", c)}
	}
	return Type(desc[start:off]), off - start, nil
}
