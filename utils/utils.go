package utils

import (
	mapset "github.com/deckarep/golang-set"
)

var javaKeywords = mapset.NewSetFromSlice([]interface{}{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double",
	"else", "enum", "extends", "final", "finally", "float", "for",
	"goto", "if", "implements", "import", "instanceof", "int",
	"interface", "long", "native", "new", "package", "private",
	"protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
	// reserved literals
	"true", "false", "null",
})

// IsJavaKeyword reports whether name is reserved in Java and therefore
// unusable as a field or class name.
func IsJavaKeyword(name string) bool {
	return javaKeywords.Contains(name)
}

// IsJavaIdentifier reports whether name is a legal Java identifier.
// Debug info for C code normally yields plain C identifiers, which are
// all legal, but mangled or template-expanded names are not.
func IsJavaIdentifier(name string) bool {
	if name == "" || IsJavaKeyword(name) {
		return false
	}
	for i, r := range name {
		if r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
