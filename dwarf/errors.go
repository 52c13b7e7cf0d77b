package dwarfindex

import (
	"debug/dwarf"
	"errors"
	"fmt"
)

var (
	// ErrNoDebugInfo is returned when the object file has no debug
	// information section at all.
	ErrNoDebugInfo = errors.New("file does not contain debug information")

	// ErrMalformedDebugInfo wraps structural decoding failures of the
	// debug information section.
	ErrMalformedDebugInfo = errors.New("malformed debug information")
)

// StructNotFoundError is returned when a name matches neither a struct
// nor a typedef that resolves to an indexed struct.
type StructNotFoundError struct {
	Name string
}

func (e *StructNotFoundError) Error() string {
	return fmt.Sprintf("could not find struct %s", e.Name)
}

// MissingMemberNameError is returned when a struct member carries no
// name attribute. Index is the member's position in declaration order.
type MissingMemberNameError struct {
	Struct string
	Index  int
}

func (e *MissingMemberNameError) Error() string {
	return fmt.Sprintf("member %d of struct %s has no name", e.Index, e.Struct)
}

// MissingMemberOffsetError is returned when a struct member carries no
// usable DW_AT_data_member_location.
type MissingMemberOffsetError struct {
	Struct string
	Member string
}

func (e *MissingMemberOffsetError) Error() string {
	return fmt.Sprintf("member %s of struct %s has no data member location", e.Member, e.Struct)
}

// UnexpectedChildError is returned when a struct entry has a direct
// child that is not a member entry.
type UnexpectedChildError struct {
	Struct string
	Tag    dwarf.Tag
}

func (e *UnexpectedChildError) Error() string {
	return fmt.Sprintf("unknown child of struct %s: %s", e.Struct, e.Tag)
}
