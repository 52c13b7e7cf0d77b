package dwarfindex_test

import (
	"debug/dwarf"
	"testing"

	"github.com/go-delve/delve/pkg/dwarf/dwarfbuilder"
	"github.com/stretchr/testify/require"

	dwarfindex "struct2java/dwarf"
)

func TestMemberPlusUconstLocation(t *testing.T) {
	dwb := dwarfbuilder.New()
	intOff := dwb.AddBaseType("int", dwarfbuilder.DW_ATE_signed, 4)
	dwb.AddStructType("Mixed", 24)
	addMember(dwb, "head", intOff, 0)
	// DW_OP_plus_uconst 0x90, the exprloc alternative to a constant
	dwb.AddMember("tail", intOff, []byte{0x23, 0x90, 0x01})
	dwb.TagClose()

	index, err := dwarfindex.NewFromData(buildData(t, dwb))
	require.NoError(t, err)

	rec, err := index.ResolveStruct("Mixed")
	require.NoError(t, err)
	members, err := index.Members(rec)
	require.NoError(t, err)
	require.Equal(t, []dwarfindex.Member{
		{Name: "head", ByteOffset: 0},
		{Name: "tail", ByteOffset: 0x90},
	}, members)
}

func TestMemberMissingOffset(t *testing.T) {
	dwb := dwarfbuilder.New()
	intOff := dwb.AddBaseType("int", dwarfbuilder.DW_ATE_signed, 4)
	dwb.AddStructType("Broken", 8)
	addMember(dwb, "ok", intOff, 0)
	dwb.TagOpen(dwarf.TagMember, "floating")
	dwb.Attr(dwarf.AttrType, intOff)
	dwb.TagClose()
	dwb.TagClose()

	index, err := dwarfindex.NewFromData(buildData(t, dwb))
	require.NoError(t, err)

	rec, err := index.ResolveStruct("Broken")
	require.NoError(t, err)
	members, err := index.Members(rec)
	require.Nil(t, members)
	var missing *dwarfindex.MissingMemberOffsetError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "floating", missing.Member)
	require.Equal(t, "Broken", missing.Struct)
}

func TestMemberMissingName(t *testing.T) {
	dwb := dwarfbuilder.New()
	intOff := dwb.AddBaseType("int", dwarfbuilder.DW_ATE_signed, 4)
	dwb.AddStructType("Anon", 8)
	addMember(dwb, "first", intOff, 0)
	addMember(dwb, "", intOff, 4)
	dwb.TagClose()

	index, err := dwarfindex.NewFromData(buildData(t, dwb))
	require.NoError(t, err)

	rec, err := index.ResolveStruct("Anon")
	require.NoError(t, err)
	members, err := index.Members(rec)
	require.Nil(t, members)
	var missing *dwarfindex.MissingMemberNameError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, 1, missing.Index)
}

func TestUnexpectedChild(t *testing.T) {
	dwb := dwarfbuilder.New()
	intOff := dwb.AddBaseType("int", dwarfbuilder.DW_ATE_signed, 4)
	dwb.AddStructType("HasUnion", 8)
	addMember(dwb, "a", intOff, 0)
	addTypedef(dwb, "inner", intOff)
	dwb.TagClose()

	index, err := dwarfindex.NewFromData(buildData(t, dwb))
	require.NoError(t, err)

	rec, err := index.ResolveStruct("HasUnion")
	require.NoError(t, err)
	members, err := index.Members(rec)
	require.Nil(t, members)
	var unexpected *dwarfindex.UnexpectedChildError
	require.ErrorAs(t, err, &unexpected)
	require.Equal(t, dwarf.TagTypedef, unexpected.Tag)
}

func TestMembersRestartable(t *testing.T) {
	index := pointIndex(t)
	rec, err := index.ResolveStruct("Point")
	require.NoError(t, err)

	first, err := index.Members(rec)
	require.NoError(t, err)
	second, err := index.Members(rec)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
