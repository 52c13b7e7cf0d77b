package main

import (
	"bytes"
	"fmt"

	dwarfindex "struct2java/dwarf"
	"struct2java/utils"
)

// InvalidJavaNameError is returned when a name from the debug
// information cannot be used as a Java identifier, because it is a
// reserved word or not an identifier at all.
type InvalidJavaNameError struct {
	Name string
	Role string // "class" or "field"
}

func (e *InvalidJavaNameError) Error() string {
	return fmt.Sprintf("%s is not usable as a Java %s name", e.Name, e.Role)
}

// renderJavaClass renders a final class wrapping one int constant per
// struct member, offsets as hex literals, in declaration order. The
// whole block is built in memory so a bad member never produces
// partial output.
func renderJavaClass(className string, members []dwarfindex.Member) ([]byte, error) {
	if !utils.IsJavaIdentifier(className) {
		return nil, &InvalidJavaNameError{Name: className, Role: "class"}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "final class %s {\n", className)
	for _, m := range members {
		if !utils.IsJavaIdentifier(m.Name) {
			return nil, &InvalidJavaNameError{Name: m.Name, Role: "field"}
		}
		fmt.Fprintf(&buf, "  public static final int %s = 0x%x;\n", m.Name, m.ByteOffset)
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
