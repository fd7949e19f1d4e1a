package enums

// Def ties a Value to the member table of its concrete enum type.
// A def type is a zero-size struct whose EnumType method returns the
// table; generated code emits one per declared enum. Because the def
// type is part of the value's type, operations between values of
// different enum types do not type-check.
type Def interface {
	EnumType() *Type
}

// Value is an instance of the enum type identified by D. It holds
// exactly one int64 and nothing else; converting any integer to a Value
// is legal whether or not it matches a declared member.
type Value[D Def] int64

func typeOf[D Def]() *Type {
	var d D
	return d.EnumType()
}

// New returns the instance of D's enum type holding v.
// No validation against the member table is performed.
func New[D Def](v int64) Value[D] {
	return Value[D](v)
}

// Int returns the underlying integer.
func (v Value[D]) Int() int64 {
	return int64(v)
}

// Type returns the member table governing this value.
func (v Value[D]) Type() *Type {
	return typeOf[D]()
}

// Declared reports whether the value equals some declared member's value.
func (v Value[D]) Declared() bool {
	_, ok := typeOf[D]().MemberByValue(int64(v))
	return ok
}

// Add returns a new value holding v + n.
// Arithmetic wraps per int64 two's complement.
func (v Value[D]) Add(n int64) Value[D] {
	return v + Value[D](n)
}

// Sub returns a new value holding v - n.
// Arithmetic wraps per int64 two's complement.
func (v Value[D]) Sub(n int64) Value[D] {
	return v - Value[D](n)
}

// Or returns the bitwise union of the two values.
func (v Value[D]) Or(other Value[D]) Value[D] {
	return v | other
}

// And returns the bitwise intersection of the two values.
func (v Value[D]) And(other Value[D]) Value[D] {
	return v & other
}

// Xor returns the bitwise symmetric difference of the two values.
func (v Value[D]) Xor(other Value[D]) Value[D] {
	return v ^ other
}

// Not returns the bitwise complement. The result need not correspond
// to any declared member.
func (v Value[D]) Not() Value[D] {
	return ^v
}

// Compare three-way compares the underlying integers.
func (v Value[D]) Compare(other Value[D]) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	}
	return 0
}

// Equal reports whether the underlying integers are equal. Which
// declared member, if any, either side matches plays no part.
func (v Value[D]) Equal(other Value[D]) bool {
	return v == other
}

// Includes reports whether the two values share any bit. In flags mode
// this answers "does this composite contain that flag".
func (v Value[D]) Includes(other Value[D]) bool {
	return v&other != 0
}

// Hash returns a hash of the underlying integer, consistent with Equal.
func (v Value[D]) Hash() uint64 {
	return uint64(v)
}

// LookupValue returns the first declared member of D's type, in
// declaration order, whose value equals v.
func LookupValue[D Def](v int64) (Value[D], bool) {
	m, ok := typeOf[D]().MemberByValue(v)
	if !ok {
		return 0, false
	}
	return Value[D](m.Value), true
}

// FromValue is the strict form of LookupValue; absence is a *LookupError.
func FromValue[D Def](v int64) (Value[D], error) {
	val, ok := LookupValue[D](v)
	if !ok {
		return 0, &LookupError{EnumType: typeOf[D]().Name(), Value: v, ByValue: true}
	}
	return val, nil
}

// LookupName returns the declared member of D's type matching name,
// compared case-insensitively.
func LookupName[D Def](name string) (Value[D], bool) {
	m, ok := typeOf[D]().MemberByName(name)
	if !ok {
		return 0, false
	}
	return Value[D](m.Value), true
}

// Parse is the strict form of LookupName; absence is a *LookupError.
func Parse[D Def](name string) (Value[D], error) {
	val, ok := LookupName[D](name)
	if !ok {
		return 0, &LookupError{EnumType: typeOf[D]().Name(), Name: name}
	}
	return val, nil
}

// Names returns the member names of D's type in declaration order,
// excluding None and All in flags mode.
func Names[D Def]() []string {
	return typeOf[D]().Names()
}

// Values returns an instance per declared member of D's type in
// declaration order, with the same exclusion rule as Names.
func Values[D Def]() []Value[D] {
	reflected := typeOf[D]().Reflected()
	values := make([]Value[D], len(reflected))
	for n, m := range reflected {
		values[n] = Value[D](m.Value)
	}
	return values
}
