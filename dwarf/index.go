package dwarfindex

import (
	"debug/dwarf"
	"debug/elf"
	"fmt"

	"github.com/sirupsen/logrus"
)

// StructRecord identifies a structure type entry in the parsed debug
// information. Name is empty for anonymous structs, which stay
// reachable through their entry offset (typedefs reference them that
// way).
type StructRecord struct {
	Name   string
	Offset dwarf.Offset
}

// typedefRecord remembers where a named typedef points. The target
// offset is global to the debug information section: debug/dwarf adds
// the compilation unit base while decoding reference forms.
type typedefRecord struct {
	target    dwarf.Offset
	hasTarget bool
}

// Index holds the lookup tables built from one pass over the debug
// information of an object file. It is read-only once built and
// answers resolve-struct-by-name queries. When the same name occurs in
// several compilation units, the last parsed occurrence wins; no
// attempt is made to reconcile conflicting definitions.
type Index struct {
	data            *dwarf.Data
	structsByName   map[string]*StructRecord
	structsByOffset map[dwarf.Offset]*StructRecord
	typedefsByName  map[string]typedefRecord
}

// New opens an ELF object file and indexes its debug information.
// Returns ErrNoDebugInfo if the file has no debug info section and
// ErrMalformedDebugInfo if the section cannot be decoded.
func New(path string) (*Index, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if f.Section(".debug_info") == nil && f.Section(".zdebug_info") == nil {
		return nil, ErrNoDebugInfo
	}
	data, err := f.DWARF()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDebugInfo, err)
	}
	return NewFromData(data)
}

// NewFromData indexes already-decoded debug information. This is the
// seam between the index and the decoder: anything able to produce a
// *dwarf.Data can front it.
func NewFromData(data *dwarf.Data) (*Index, error) {
	idx := &Index{
		data:            data,
		structsByName:   make(map[string]*StructRecord),
		structsByOffset: make(map[dwarf.Offset]*StructRecord),
		typedefsByName:  make(map[string]typedefRecord),
	}

	units := 0
	reader := data.Reader()
	for {
		entry, err := reader.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDebugInfo, err)
		}
		if entry == nil {
			break
		}
		switch entry.Tag {
		case dwarf.TagCompileUnit:
			units++
		case dwarf.TagTypedef:
			name, _ := entry.Val(dwarf.AttrName).(string)
			if name == "" {
				continue
			}
			td := typedefRecord{}
			if off, ok := entry.Val(dwarf.AttrType).(dwarf.Offset); ok {
				td.target = off
				td.hasTarget = true
			}
			idx.typedefsByName[name] = td
		case dwarf.TagStructType:
			rec := &StructRecord{Offset: entry.Offset}
			rec.Name, _ = entry.Val(dwarf.AttrName).(string)
			idx.structsByOffset[entry.Offset] = rec
			if rec.Name != "" {
				idx.structsByName[rec.Name] = rec
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"units":    units,
		"structs":  len(idx.structsByOffset),
		"typedefs": len(idx.typedefsByName),
	}).Debug("indexed debug information")

	return idx, nil
}

// ResolveStruct finds the struct entry for name. A struct with that
// name takes priority over a typedef of the same name. Failing a
// direct match, a typedef is followed exactly one level: if its target
// is not itself an indexed struct (a base type, or another typedef),
// the lookup fails with StructNotFoundError rather than walking the
// chain further.
func (idx *Index) ResolveStruct(name string) (*StructRecord, error) {
	if rec, ok := idx.structsByName[name]; ok {
		return rec, nil
	}
	td, ok := idx.typedefsByName[name]
	if !ok || !td.hasTarget {
		return nil, &StructNotFoundError{Name: name}
	}
	rec, ok := idx.structsByOffset[td.target]
	if !ok {
		return nil, &StructNotFoundError{Name: name}
	}
	return rec, nil
}
