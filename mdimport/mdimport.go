// Package mdimport builds enum declarations from Windows metadata
// (.winmd) files, the same source the Windows API bindings are
// generated from. Only enum types are imported; everything else in the
// metadata is ignored.
package mdimport

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/zzl/go-winmd/apimodel"
	"github.com/zzl/go-winmd/mdmodel"

	"github.com/zzl/go-enums/gomodel"
)

type Importer struct {
	Filter *Filter
}

func NewImporter(filter *Filter) *Importer {
	return &Importer{Filter: filter}
}

// Import parses the winmd file and returns a model of every enum in
// the namespaces the filter admits.
func (this *Importer) Import(mdFilePath string) (*gomodel.Model, error) {
	mdModelParser := mdmodel.NewModelParser()
	mdModel, err := mdModelParser.Parse(mdFilePath)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", mdFilePath)
	}
	defer mdModel.Close()

	apiModelParser := apimodel.NewModelParser(nil)
	apiModel := apiModelParser.Parse(mdModel)
	return this.FromApiModel(apiModel)
}

// FromApiModel converts an already parsed api model.
func (this *Importer) FromApiModel(apiModel *apimodel.Model) (*gomodel.Model, error) {
	model := &gomodel.Model{}
	for _, ns := range apiModel.AllNamespaces {
		if len(ns.Types) == 0 {
			continue
		}
		if !this.Filter.Include(ns.FullName) {
			continue
		}
		pkg := this.importNs(ns)
		if len(pkg.Enums) > 0 {
			model.Packages = append(model.Packages, pkg)
		}
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

func (this *Importer) importNs(ns *apimodel.Namespace) *gomodel.Package {
	pkg := &gomodel.Package{FullName: ns.FullName}
	pos := strings.LastIndexByte(ns.FullName, '.')
	pkg.Name = strings.ToLower(ns.FullName[pos+1:])
	for _, apiType := range ns.Types {
		this.importType(pkg, apiType)
	}
	return pkg
}

func (this *Importer) importType(pkg *gomodel.Package, apiType *apimodel.Type) {
	if apiType.Enum {
		pkg.Enums = append(pkg.Enums, this.importEnum(apiType))
	}
	for _, nested := range apiType.NestedTypes {
		this.importType(pkg, nested)
	}
}

func (this *Importer) importEnum(apiType *apimodel.Type) *gomodel.Enum {
	enumDef := apiType.EnumDef
	enum := &gomodel.Enum{
		Name:     apiType.Name,
		BaseType: baseTypeName(enumDef.BaseType),
		Flags:    enumDef.Flags,
	}
	for _, v := range enumDef.Values {
		enum.Values = append(enum.Values, &gomodel.EnumValue{
			Name:  v.Name,
			Value: constValue(v.Value),
		})
	}
	return enum
}

// baseTypeName maps the metadata base type to a Go integer type name.
// Enum bases in winmd are always integer primitives; anything
// unrecognized falls back to int32, the CLR default.
func baseTypeName(baseType *apimodel.Type) string {
	if baseType == nil {
		return "int32"
	}
	switch strings.ToLower(baseType.Name) {
	case "int8", "sbyte":
		return "int8"
	case "int16", "short":
		return "int16"
	case "int32", "int":
		return "int32"
	case "int64", "long":
		return "int64"
	case "uint8", "byte":
		return "uint8"
	case "uint16", "ushort":
		return "uint16"
	case "uint32", "uint":
		return "uint32"
	case "uint64", "ulong":
		return "uint64"
	}
	return "int32"
}

func constValue(v interface{}) int64 {
	switch value := v.(type) {
	case int:
		return int64(value)
	case int8:
		return int64(value)
	case int16:
		return int64(value)
	case int32:
		return int64(value)
	case int64:
		return value
	case uint:
		return int64(value)
	case uint8:
		return int64(value)
	case uint16:
		return int64(value)
	case uint32:
		return int64(value)
	case uint64:
		return int64(value)
	}
	return 0
}
