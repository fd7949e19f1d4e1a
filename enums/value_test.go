package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zzl/go-enums/enums"
)

func TestArithmetic(t *testing.T) {
	assert.True(t, Red.Add(1).Equal(Green))
	assert.True(t, Blue.Sub(2).Equal(Red))
	assert.Equal(t, "3", Red.Add(3).String())
	assert.Equal(t, "-1", Red.Sub(1).String())
}

func TestBitwise(t *testing.T) {
	rw := AccessRead.Or(AccessWrite)
	assert.Equal(t, int64(3), rw.Int())
	assert.True(t, rw.And(AccessRead).Equal(AccessRead))
	assert.True(t, rw.Xor(AccessRead).Equal(AccessWrite))
	assert.Equal(t, int64(^int64(1)), AccessRead.Not().Int())
}

func TestIncludes(t *testing.T) {
	ra := AccessRead.Or(AccessAsync)
	assert.True(t, ra.Includes(AccessRead))
	assert.False(t, ra.Includes(AccessWrite))
	assert.False(t, AccessNone.Includes(AccessRead))
}

func TestCompareTotalOrder(t *testing.T) {
	assert.Less(t, Red.Compare(Blue), 0)
	assert.Greater(t, Blue.Compare(Red), 0)
	assert.Equal(t, 0, Blue.Compare(Blue))
}

func TestEqualIgnoresProvenance(t *testing.T) {
	parsed, err := enums.Parse[colorDef]("green")
	assert.NoError(t, err)
	constructed := enums.New[colorDef](1)

	assert.True(t, Green.Equal(Green))
	assert.True(t, parsed.Equal(constructed))
	assert.True(t, constructed.Equal(parsed))
	assert.True(t, Red.Add(1).Equal(parsed))
	assert.False(t, parsed.Equal(Blue))
}

func TestHashConsistentWithEqual(t *testing.T) {
	assert.Equal(t, Red.Add(1).Hash(), Green.Hash())
	assert.NotEqual(t, Red.Hash(), Blue.Hash())
}

func TestLookupValue(t *testing.T) {
	for _, m := range colorType.Members() {
		val, err := enums.FromValue[colorDef](m.Value)
		assert.NoError(t, err)
		assert.True(t, val.Equal(Color(m.Value)))
		assert.Equal(t, m.Name, val.String())
	}

	_, ok := enums.LookupValue[colorDef](7)
	assert.False(t, ok)

	_, err := enums.FromValue[colorDef](7)
	assert.Error(t, err)
	lerr, ok := err.(*enums.LookupError)
	assert.True(t, ok)
	assert.Equal(t, "Color", lerr.EnumType)
	assert.Equal(t, int64(7), lerr.Value)
	assert.True(t, lerr.ByValue)
	assert.Equal(t, `enums: Color has no member with value 7`, err.Error())
}

func TestParseCaseInsensitive(t *testing.T) {
	val, err := enums.Parse[colorDef]("RED")
	assert.NoError(t, err)
	assert.True(t, val.Equal(Red))

	_, ok := enums.LookupName[colorDef]("Yellow")
	assert.False(t, ok)

	_, err = enums.Parse[colorDef]("Yellow")
	assert.Error(t, err)
	lerr, ok := err.(*enums.LookupError)
	assert.True(t, ok)
	assert.Equal(t, "Color", lerr.EnumType)
	assert.Equal(t, "Yellow", lerr.Name)
	assert.False(t, lerr.ByValue)
	assert.Equal(t, `enums: Color has no member named "Yellow"`, err.Error())
}

func TestOpenValues(t *testing.T) {
	open := enums.New[colorDef](42)
	assert.Equal(t, int64(42), open.Int())
	assert.False(t, open.Declared())
	assert.True(t, Red.Declared())
}

func TestReflection(t *testing.T) {
	assert.Equal(t, []string{"Red", "Green", "Blue"}, enums.Names[colorDef]())
	assert.Equal(t, []Color{Red, Green, Blue}, enums.Values[colorDef]())

	assert.Equal(t, []string{"Read", "Write", "Async"}, enums.Names[fileAccessDef]())
	assert.Equal(t, []FileAccess{AccessRead, AccessWrite, AccessAsync},
		enums.Values[fileAccessDef]())
}

func TestValueType(t *testing.T) {
	assert.Same(t, colorType, Red.Type())
	assert.Same(t, fileAccessType, AccessRead.Type())
}
