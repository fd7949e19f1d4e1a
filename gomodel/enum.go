package gomodel

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/zzl/go-enums/enums"
)

type EnumValue struct {
	Name    string
	Value   int64
	Comment string
}

type Enum struct {
	Name     string
	BaseType string //Go type of the generated value type, defaults to int32
	Flags    bool
	Values   []*EnumValue
	Comment  string
}

func (this *Enum) Validate() error {
	if this.Name == "" {
		return errors.New("enum with empty name")
	}
	nameSet := make(map[string]bool)
	for _, v := range this.Values {
		if v.Name == "" {
			return errors.Errorf("enum %s: value with empty name", this.Name)
		}
		lower := strings.ToLower(v.Name)
		if nameSet[lower] {
			return errors.Errorf("enum %s: duplicate value name %s", this.Name, v.Name)
		}
		nameSet[lower] = true
	}
	return nil
}

// Members converts the values to runtime table members.
func (this *Enum) Members() []enums.Member {
	members := make([]enums.Member, len(this.Values))
	for n, v := range this.Values {
		members[n] = enums.Member{Name: v.Name, Value: v.Value}
	}
	return members
}

// Table builds the runtime member table without registering it.
func (this *Enum) Table() *enums.Type {
	return enums.NewType(this.Name, this.Flags, this.Members())
}

// Declare builds and registers the runtime member table.
func (this *Enum) Declare() *enums.Type {
	if this.Flags {
		return enums.DeclareFlags(this.Name, this.Members()...)
	}
	return enums.Declare(this.Name, this.Members()...)
}
