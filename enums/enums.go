// Package enums provides the shared runtime behavior of declared enum
// types: an immutable member table per type, integer-valued instances,
// bitwise and arithmetic operations, text rendering in plain and flags
// form, and lookup by name or value.
//
// A concrete enum type is declared once, typically by generated code,
// via Declare or DeclareFlags. Instances are plain int64-backed values;
// constructing one from an arbitrary integer is always legal, and values
// that match no declared member render as their decimal numeral.
package enums

import (
	"fmt"
	"strings"
	"sync"
)

// Member is a declared (name, value) pair of an enum type.
type Member struct {
	Name  string
	Value int64
}

// Type is the immutable member table of a declared enum type.
// It is built once by Declare/DeclareFlags and never changes afterwards,
// so it may be read from any number of goroutines without coordination.
type Type struct {
	name    string
	flags   bool
	members []Member
	byLower map[string]int
}

// NewType builds a member table without registering it.
// Member names must be unique within the table; values are unconstrained.
func NewType(name string, flags bool, members []Member) *Type {
	if name == "" {
		panic("enums: empty type name")
	}
	t := &Type{
		name:    name,
		flags:   flags,
		members: make([]Member, len(members)),
		byLower: make(map[string]int, len(members)),
	}
	copy(t.members, members)
	for n, m := range t.members {
		if m.Name == "" {
			panic(fmt.Sprintf("enums: %s: empty member name", name))
		}
		lower := strings.ToLower(m.Name)
		if _, ok := t.byLower[lower]; ok {
			panic(fmt.Sprintf("enums: %s: duplicate member name %q", name, m.Name))
		}
		t.byLower[lower] = n
	}
	return t
}

// Declare builds and registers an ordinal enum type.
func Declare(name string, members ...Member) *Type {
	t := NewType(name, false, members)
	register(t)
	return t
}

// DeclareFlags builds and registers a flags (bitmask) enum type.
func DeclareFlags(name string, members ...Member) *Type {
	t := NewType(name, true, members)
	register(t)
	return t
}

// Name returns the declared type name.
func (t *Type) Name() string {
	return t.name
}

// IsFlags reports whether values of this type are interpreted as bitmasks.
func (t *Type) IsFlags() bool {
	return t.flags
}

// Members returns all declared members in declaration order,
// including None and All in flags mode.
func (t *Type) Members() []Member {
	members := make([]Member, len(t.members))
	copy(members, t.members)
	return members
}

// Names returns the declared member names in declaration order.
// In flags mode the conventional None and All members are excluded.
func (t *Type) Names() []string {
	var names []string
	for _, m := range t.members {
		if t.hiddenFromReflection(m) {
			continue
		}
		names = append(names, m.Name)
	}
	return names
}

// Reflected returns the declared members in declaration order with the
// same exclusion rule as Names.
func (t *Type) Reflected() []Member {
	var members []Member
	for _, m := range t.members {
		if t.hiddenFromReflection(m) {
			continue
		}
		members = append(members, m)
	}
	return members
}

func (t *Type) hiddenFromReflection(m Member) bool {
	return t.flags && (m.Name == "None" || m.Name == "All")
}

// MemberByValue returns the first member, in declaration order, whose
// value equals v. This is a table lookup; it is not the way to obtain an
// instance holding a foreign value, which is a plain conversion.
func (t *Type) MemberByValue(v int64) (Member, bool) {
	for _, m := range t.members {
		if m.Value == v {
			return m, true
		}
	}
	return Member{}, false
}

// MemberByName returns the member matching name, compared
// case-insensitively. First declaration-order match wins.
func (t *Type) MemberByName(name string) (Member, bool) {
	n, ok := t.byLower[strings.ToLower(name)]
	if !ok {
		return Member{}, false
	}
	return t.members[n], true
}

// FromValue is the strict form of MemberByValue; absence is a *LookupError.
func (t *Type) FromValue(v int64) (Member, error) {
	m, ok := t.MemberByValue(v)
	if !ok {
		return Member{}, &LookupError{EnumType: t.name, Value: v, ByValue: true}
	}
	return m, nil
}

// Parse is the strict form of MemberByName; absence is a *LookupError.
func (t *Type) Parse(name string) (Member, error) {
	m, ok := t.MemberByName(name)
	if !ok {
		return Member{}, &LookupError{EnumType: t.name, Name: name}
	}
	return m, nil
}

var (
	regMu     sync.RWMutex
	regTypes  []*Type
	regByName = map[string]*Type{}
)

func register(t *Type) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := regByName[t.name]; ok {
		panic(fmt.Sprintf("enums: type %s declared twice", t.name))
	}
	regByName[t.name] = t
	regTypes = append(regTypes, t)
}

// TypeByName returns the registered enum type with the given name.
func TypeByName(name string) (*Type, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	t, ok := regByName[name]
	return t, ok
}

// Types returns all registered enum types in registration order.
func Types() []*Type {
	regMu.RLock()
	defer regMu.RUnlock()
	types := make([]*Type, len(regTypes))
	copy(types, regTypes)
	return types
}
