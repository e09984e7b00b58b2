package jvm

import "strings"

var primitiveNames = map[string]string{
	"B": "byte",
	"C": "char",
	"D": "double",
	"F": "float",
	"I": "int",
	"J": "long",
	"S": "short",
	"Z": "boolean",
	"V": "void",
}

// ToDotted converts an internal (slash separated) class name to dotted form.
func ToDotted(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// IsArrayName reports whether a class name denotes an array type. Array
// "classes" have no declaration that could be looked up.
func IsArrayName(name string) bool {
	return strings.HasPrefix(name, "[")
}

// SignatureToDotted converts a JVM type signature to a dotted type name.
// Reference signatures ("Ljava/lang/Exception;") and arrays of references
// are fully converted; primitive and array-of-primitive forms fall back to a
// plain slash-to-dot conversion of the raw signature.
func SignatureToDotted(sig string) string {
	dims := 0
	s := sig
	for strings.HasPrefix(s, "[") {
		dims++
		s = s[1:]
	}
	var base string
	switch {
	case strings.HasPrefix(s, "L") && strings.HasSuffix(s, ";"):
		base = ToDotted(s[1 : len(s)-1])
	default:
		name, ok := primitiveNames[s]
		if !ok {
			return ToDotted(sig)
		}
		base = name
	}
	return base + strings.Repeat("[]", dims)
}

// DottedToSignature converts a dotted class name to a reference signature.
func DottedToSignature(name string) string {
	return "L" + strings.ReplaceAll(name, ".", "/") + ";"
}

// descriptorArgCount returns the number of argument slots in a method
// descriptor, counting each declared parameter once. A malformed descriptor
// yields the count of whatever could be parsed.
func descriptorArgCount(descriptor string) int {
	count := 0
	i := strings.IndexByte(descriptor, '(') + 1
	for i > 0 && i < len(descriptor) && descriptor[i] != ')' {
		switch descriptor[i] {
		case 'L':
			end := strings.IndexByte(descriptor[i:], ';')
			if end < 0 {
				return count
			}
			i += end + 1
			count++
		case '[':
			i++
		default:
			i++
			count++
		}
	}
	return count
}

// descriptorReturn returns the raw return signature of a method descriptor,
// or "" when it cannot be determined.
func descriptorReturn(descriptor string) string {
	end := strings.IndexByte(descriptor, ')')
	if end < 0 || end+1 >= len(descriptor) {
		return ""
	}
	return descriptor[end+1:]
}
