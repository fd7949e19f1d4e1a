// Package gomodel describes enum types to generate or register: the
// neutral model the decl, goscan and mdimport front ends produce and
// the codegen back end consumes.
package gomodel

import (
	"strings"

	"github.com/pkg/errors"
)

type Package struct {
	Name     string
	FullName string //. separated namespace
	Dir      string //source directory, set by front ends that scan one
	Enums    []*Enum
}

func (this *Package) EnumByName(name string) *Enum {
	for _, e := range this.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (this *Package) Validate() error {
	if this.Name == "" {
		return errors.New("package with empty name")
	}
	nameSet := make(map[string]bool)
	for _, e := range this.Enums {
		if err := e.Validate(); err != nil {
			return errors.Wrapf(err, "package %s", this.Name)
		}
		lower := strings.ToLower(e.Name)
		if nameSet[lower] {
			return errors.Errorf("package %s: duplicate enum name %s", this.Name, e.Name)
		}
		nameSet[lower] = true
	}
	return nil
}

type Model struct {
	Packages []*Package
}

func (this *Model) Validate() error {
	for _, pkg := range this.Packages {
		if err := pkg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// EnumCount reports the number of enums across all packages.
func (this *Model) EnumCount() int {
	var count int
	for _, pkg := range this.Packages {
		count += len(pkg.Enums)
	}
	return count
}
