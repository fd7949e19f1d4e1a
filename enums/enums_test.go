package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zzl/go-enums/enums"
)

type colorDef struct{}

func (colorDef) EnumType() *enums.Type { return colorType }

// Color is an ordinal test enum.
type Color = enums.Value[colorDef]

var colorType = enums.Declare("Color",
	enums.Member{Name: "Red", Value: 0},
	enums.Member{Name: "Green", Value: 1},
	enums.Member{Name: "Blue", Value: 2},
)

var (
	Red   = Color(0)
	Green = Color(1)
	Blue  = Color(2)
)

type fileAccessDef struct{}

func (fileAccessDef) EnumType() *enums.Type { return fileAccessType }

// FileAccess is a flags test enum with disjoint bits plus the
// conventional None and All members.
type FileAccess = enums.Value[fileAccessDef]

var fileAccessType = enums.DeclareFlags("FileAccess",
	enums.Member{Name: "None", Value: 0},
	enums.Member{Name: "Read", Value: 1},
	enums.Member{Name: "Write", Value: 2},
	enums.Member{Name: "Async", Value: 4},
	enums.Member{Name: "All", Value: 7},
)

var (
	AccessNone  = FileAccess(0)
	AccessRead  = FileAccess(1)
	AccessWrite = FileAccess(2)
	AccessAsync = FileAccess(4)
)

type fontStyleDef struct{}

func (fontStyleDef) EnumType() *enums.Type { return fontStyleType }

// FontStyle is a flags test enum with overlapping members.
type FontStyle = enums.Value[fontStyleDef]

var fontStyleType = enums.DeclareFlags("FontStyle",
	enums.Member{Name: "Bold", Value: 1},
	enums.Member{Name: "Italic", Value: 2},
	enums.Member{Name: "BoldItalic", Value: 3},
)

func TestNewTypeValidation(t *testing.T) {
	assert.Panics(t, func() {
		enums.NewType("", false, nil)
	})
	assert.Panics(t, func() {
		enums.NewType("Bad", false, []enums.Member{{Name: "", Value: 0}})
	})
	assert.Panics(t, func() {
		enums.NewType("Bad", false, []enums.Member{
			{Name: "Dup", Value: 0},
			{Name: "dup", Value: 1},
		})
	})
}

func TestNewTypeDuplicateValuesAllowed(t *testing.T) {
	typ := enums.NewType("Alias", false, []enums.Member{
		{Name: "First", Value: 1},
		{Name: "Second", Value: 1},
	})
	m, ok := typ.MemberByValue(1)
	assert.True(t, ok)
	assert.Equal(t, "First", m.Name)
}

func TestMembersAreCopies(t *testing.T) {
	members := colorType.Members()
	assert.Equal(t, []enums.Member{
		{Name: "Red", Value: 0},
		{Name: "Green", Value: 1},
		{Name: "Blue", Value: 2},
	}, members)

	members[0].Name = "Mutated"
	m, ok := colorType.MemberByValue(0)
	assert.True(t, ok)
	assert.Equal(t, "Red", m.Name)
}

func TestNamesDeclarationOrder(t *testing.T) {
	assert.Equal(t, []string{"Red", "Green", "Blue"}, colorType.Names())
	assert.Equal(t, colorType.Names(), colorType.Names())
}

func TestFlagsReflectionExcludesNoneAndAll(t *testing.T) {
	assert.Equal(t, []string{"Read", "Write", "Async"}, fileAccessType.Names())
	assert.Equal(t, []enums.Member{
		{Name: "Read", Value: 1},
		{Name: "Write", Value: 2},
		{Name: "Async", Value: 4},
	}, fileAccessType.Reflected())
}

func TestMemberByName(t *testing.T) {
	m, ok := colorType.MemberByName("BLUE")
	assert.True(t, ok)
	assert.Equal(t, enums.Member{Name: "Blue", Value: 2}, m)

	_, ok = colorType.MemberByName("Yellow")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	typ, ok := enums.TypeByName("Color")
	assert.True(t, ok)
	assert.Same(t, colorType, typ)

	_, ok = enums.TypeByName("NoSuchType")
	assert.False(t, ok)

	var names []string
	for _, typ := range enums.Types() {
		names = append(names, typ.Name())
	}
	assert.Contains(t, names, "Color")
	assert.Contains(t, names, "FileAccess")
}

func TestTypeProperties(t *testing.T) {
	assert.Equal(t, "Color", colorType.Name())
	assert.False(t, colorType.IsFlags())
	assert.True(t, fileAccessType.IsFlags())
}
