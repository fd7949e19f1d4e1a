// Package decl loads enum declarations from YAML manifests.
//
// A manifest declares one package of enums:
//
//	package: storage
//	namespace: Demo.Storage
//	enums:
//	  - name: FileAccess
//	    flags: true
//	    values:
//	      - {name: None, value: 0}
//	      - {name: Read, value: 1}
//	      - {name: Write, value: 2}
//
// A value without an explicit integer continues from the previous one
// plus one, starting at zero.
package decl

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zzl/go-enums/enums"
	"github.com/zzl/go-enums/gomodel"
)

type manifest struct {
	Package   string     `yaml:"package"`
	Namespace string     `yaml:"namespace"`
	Enums     []enumDecl `yaml:"enums"`
}

type enumDecl struct {
	Name    string      `yaml:"name"`
	Base    string      `yaml:"base"`
	Flags   bool        `yaml:"flags"`
	Comment string      `yaml:"comment"`
	Values  []valueDecl `yaml:"values"`
}

type valueDecl struct {
	Name    string `yaml:"name"`
	Value   *int64 `yaml:"value"`
	Comment string `yaml:"comment"`
}

// Parse builds a model package from manifest bytes.
func Parse(data []byte) (*gomodel.Package, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	if m.Package == "" {
		return nil, errors.New("manifest missing package name")
	}
	pkg := &gomodel.Package{
		Name:     m.Package,
		FullName: m.Namespace,
	}
	for _, e := range m.Enums {
		enum := &gomodel.Enum{
			Name:     e.Name,
			BaseType: e.Base,
			Flags:    e.Flags,
			Comment:  e.Comment,
		}
		next := int64(0)
		for _, v := range e.Values {
			value := next
			if v.Value != nil {
				value = *v.Value
			}
			next = value + 1
			enum.Values = append(enum.Values, &gomodel.EnumValue{
				Name:    v.Name,
				Value:   value,
				Comment: v.Comment,
			})
		}
		pkg.Enums = append(pkg.Enums, enum)
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Load reads and parses a single manifest file.
func Load(path string) (*gomodel.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	pkg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return pkg, nil
}

// LoadDir parses every .yaml/.yml manifest in dir, in file name order.
func LoadDir(dir string) (*gomodel.Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest dir")
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	model := &gomodel.Model{}
	for _, name := range names {
		pkg, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		model.Packages = append(model.Packages, pkg)
	}
	return model, nil
}

// Declare loads a manifest and registers every enum it declares,
// returning the runtime tables in declaration order.
func Declare(path string) ([]*enums.Type, error) {
	pkg, err := Load(path)
	if err != nil {
		return nil, err
	}
	types := make([]*enums.Type, len(pkg.Enums))
	for n, e := range pkg.Enums {
		types[n] = e.Declare()
	}
	return types, nil
}
