package dwarfindex

import (
	"bytes"
	"debug/dwarf"
	"fmt"

	"github.com/go-delve/delve/pkg/dwarf/godwarf"
	"github.com/go-delve/delve/pkg/dwarf/leb128"
)

// Member is one field of a struct: its source name and its byte offset
// from the start of the struct.
type Member struct {
	Name       string
	ByteOffset int64
}

// DW_OP_plus_uconst, the only location opcode compilers emit for
// record members.
const opPlusUconst = 0x23

// Members returns the direct members of rec in declaration order. Any
// child of the struct entry that is not a member entry (a nested
// union, a method) fails the whole enumeration; no partial list is
// returned. The walk is a pure function of the parsed entries, so
// calling Members again yields the same sequence.
func (idx *Index) Members(rec *StructRecord) ([]Member, error) {
	tree, err := godwarf.LoadTree(rec.Offset, idx.data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDebugInfo, err)
	}

	sname := rec.Name
	if sname == "" {
		sname = "<anonymous>"
	}

	members := make([]Member, 0, len(tree.Children))
	for i, child := range tree.Children {
		if child.Tag != dwarf.TagMember {
			return nil, &UnexpectedChildError{Struct: sname, Tag: child.Tag}
		}
		name, _ := child.Val(dwarf.AttrName).(string)
		if name == "" {
			return nil, &MissingMemberNameError{Struct: sname, Index: i}
		}
		offset, ok := memberLocation(child)
		if !ok {
			return nil, &MissingMemberOffsetError{Struct: sname, Member: name}
		}
		members = append(members, Member{Name: name, ByteOffset: offset})
	}
	return members, nil
}

// memberLocation reads DW_AT_data_member_location from a member entry.
// The attribute is either a plain constant or a one-opcode
// [DW_OP_plus_uconst offset] location expression.
func memberLocation(child *godwarf.Tree) (int64, bool) {
	switch loc := child.Val(dwarf.AttrDataMemberLoc).(type) {
	case int64:
		return loc, true
	case []byte:
		if len(loc) >= 2 && loc[0] == opPlusUconst {
			buf := bytes.NewBuffer(loc[1:])
			n, _ := leb128.DecodeUnsigned(buf)
			if buf.Len() == 0 {
				return int64(n), true
			}
		}
	}
	return 0, false
}
