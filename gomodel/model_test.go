package gomodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zzl/go-enums/enums"
	"github.com/zzl/go-enums/gomodel"
)

func seasonEnum() *gomodel.Enum {
	return &gomodel.Enum{
		Name: "Season",
		Values: []*gomodel.EnumValue{
			{Name: "Spring", Value: 0},
			{Name: "Summer", Value: 1},
			{Name: "Autumn", Value: 2},
			{Name: "Winter", Value: 3},
		},
	}
}

func TestEnumValidate(t *testing.T) {
	assert.NoError(t, seasonEnum().Validate())

	bad := &gomodel.Enum{}
	assert.Error(t, bad.Validate())

	bad = seasonEnum()
	bad.Values = append(bad.Values, &gomodel.EnumValue{Name: "SPRING", Value: 9})
	assert.Error(t, bad.Validate())

	bad = seasonEnum()
	bad.Values[0].Name = ""
	assert.Error(t, bad.Validate())
}

func TestEnumTable(t *testing.T) {
	table := seasonEnum().Table()
	assert.Equal(t, "Season", table.Name())
	assert.False(t, table.IsFlags())
	assert.Equal(t, []string{"Spring", "Summer", "Autumn", "Winter"}, table.Names())

	m, ok := table.MemberByValue(2)
	assert.True(t, ok)
	assert.Equal(t, "Autumn", m.Name)

	// Not registered.
	_, ok = enums.TypeByName("Season")
	assert.False(t, ok)
}

func TestEnumDeclare(t *testing.T) {
	e := &gomodel.Enum{
		Name:  "OpenMode",
		Flags: true,
		Values: []*gomodel.EnumValue{
			{Name: "None", Value: 0},
			{Name: "ReadOnly", Value: 1},
			{Name: "WriteOnly", Value: 2},
		},
	}
	table := e.Declare()
	assert.True(t, table.IsFlags())

	registered, ok := enums.TypeByName("OpenMode")
	assert.True(t, ok)
	assert.Same(t, table, registered)
	assert.Equal(t, "ReadOnly, WriteOnly", table.FormatValue(3))
}

func TestPackageValidate(t *testing.T) {
	pkg := &gomodel.Package{
		Name:     "calendar",
		FullName: "Demo.Calendar",
		Enums:    []*gomodel.Enum{seasonEnum()},
	}
	assert.NoError(t, pkg.Validate())
	assert.NotNil(t, pkg.EnumByName("Season"))
	assert.Nil(t, pkg.EnumByName("Month"))

	pkg.Enums = append(pkg.Enums, seasonEnum())
	assert.Error(t, pkg.Validate())
}

func TestModelValidate(t *testing.T) {
	model := &gomodel.Model{
		Packages: []*gomodel.Package{
			{Name: "a", Enums: []*gomodel.Enum{seasonEnum()}},
			{Name: "b"},
		},
	}
	assert.NoError(t, model.Validate())
	assert.Equal(t, 1, model.EnumCount())

	model.Packages = append(model.Packages, &gomodel.Package{})
	assert.Error(t, model.Validate())
}
