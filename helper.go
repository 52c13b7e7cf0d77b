package main

import (
	"io"

	dwarfindex "struct2java/dwarf"
)

// StructToJava extracts the layout of the named struct (or of a
// typedef resolving to one) from the debug information in the object
// file at path, and writes a Java class of offset constants to out.
// Nothing is written unless every member could be extracted.
func StructToJava(out io.Writer, path, name string) error {
	index, err := dwarfindex.New(path)
	if err != nil {
		return err
	}
	return structToJava(out, index, name)
}

func structToJava(out io.Writer, index *dwarfindex.Index, name string) error {
	rec, err := index.ResolveStruct(name)
	if err != nil {
		return err
	}
	members, err := index.Members(rec)
	if err != nil {
		return err
	}
	block, err := renderJavaClass(name, members)
	if err != nil {
		return err
	}
	_, err = out.Write(block)
	return err
}
