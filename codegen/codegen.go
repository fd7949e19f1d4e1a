// Package codegen emits Go source declaring enum types wired to the
// enums runtime: a concrete integer type per enum, its member table
// declaration, typed constants and text/lookup helpers.
package codegen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/zzl/go-enums/gomodel"
	"github.com/zzl/go-enums/utils"
)

const defaultEnumsImport = "github.com/zzl/go-enums/enums"

type Generator struct {
	model *gomodel.Model

	OutputDir                string
	NsFullNameAsFileName     bool
	FileNamePrefixToStrip    string
	PrefixValuesWithTypeName bool
	GenHelpers               bool
	EnumsImportPath          string

	// Companion emits only the table declarations, methods and helpers,
	// next to source packages that already define the types and
	// constants themselves (the goscan workflow).
	Companion bool

	contextSymbolSet map[string]bool
	pkgSymbolSet     map[string]map[string]bool
}

func NewGenerator(model *gomodel.Model) *Generator {
	return &Generator{
		model:           model,
		EnumsImportPath: defaultEnumsImport,
		GenHelpers:      true,
		pkgSymbolSet:    make(map[string]map[string]bool),
	}
}

func (this *Generator) Gen() {
	if err := this.model.Validate(); err != nil {
		log.Panic(err)
	}
	for _, pkg := range this.model.Packages {
		if len(pkg.Enums) == 0 {
			continue
		}
		code := this.GenPkg(pkg)

		fileName := pkg.Name
		if this.NsFullNameAsFileName && pkg.FullName != "" {
			fileName = pkg.FullName
		}
		if this.FileNamePrefixToStrip != "" {
			fileName = strings.TrimPrefix(fileName, this.FileNamePrefixToStrip)
		}
		fileName += ".go"

		dirPath := filepath.Join(this.OutputDir, pkg.Name)
		if this.Companion && pkg.Dir != "" {
			dirPath = pkg.Dir
			fileName = pkg.Name + "_enums.go"
		}
		os.MkdirAll(dirPath, os.ModePerm)
		filePath := filepath.Join(dirPath, fileName)

		err := os.WriteFile(filePath, []byte(code), 0666)
		if err != nil {
			log.Panic(err)
		}
	}
}

func (this *Generator) GenPkg(pkg *gomodel.Package) string {
	this.contextSymbolSet = this.pkgSymbolSet[pkg.Name]
	if this.contextSymbolSet == nil {
		this.contextSymbolSet = make(map[string]bool)
		this.pkgSymbolSet[pkg.Name] = this.contextSymbolSet
	}

	var code string
	code += "// Code generated by enumgen. DO NOT EDIT.\n\n"
	code += "package " + pkg.Name + "\n\n"
	code += "import (\n\t\"" + this.EnumsImportPath + "\"\n)\n\n"

	for _, enum := range pkg.Enums {
		code += this.genEnum(enum)
	}
	return code
}

func (this *Generator) genEnum(enum *gomodel.Enum) string {
	var code string
	code += "// enum\n"
	if enum.Flags {
		code += "// flags\n"
	}
	if enum.Comment != "" {
		code += "// " + strings.ReplaceAll(enum.Comment, "\n", "\n// ") + "\n"
	}
	typeName := utils.CapSafeName(enum.Name)
	typeName = this.ensureUniqueSymbol(typeName)
	tableName := typeName + "_Type"

	if !this.Companion {
		code += "type " + typeName + " " + this.baseTypeName(enum) + "\n\n"
	}
	code += this.genTable(enum, typeName, tableName)
	if !this.Companion {
		code += this.genConsts(enum, typeName)
	}
	code += this.genMethods(enum, typeName, tableName)
	if this.GenHelpers {
		code += this.genHelpers(enum, typeName, tableName)
	}
	return code
}

func (this *Generator) genTable(enum *gomodel.Enum, typeName, tableName string) string {
	declareFunc := "Declare"
	if enum.Flags {
		declareFunc = "DeclareFlags"
	}
	code := "var " + tableName + " = enums." + declareFunc + "(\"" + typeName + "\",\n"
	for _, v := range enum.Values {
		code += fmt.Sprintf("\tenums.Member{Name: %q, Value: %d},\n",
			utils.CapSafeName(v.Name), v.Value)
	}
	code += ")\n\n"
	return code
}

func (this *Generator) genConsts(enum *gomodel.Enum, typeName string) string {
	if len(enum.Values) == 0 {
		return ""
	}
	code := "const (\n"
	for _, v := range enum.Values {
		name := utils.CapSafeName(v.Name)
		if this.PrefixValuesWithTypeName {
			name = typeName + "_" + name
		} else {
			name = this.ensureUniqueSymbol(name)
		}
		code += fmt.Sprintf("\t%s %s = %d", name, typeName, v.Value)
		if v.Comment != "" {
			code += " // " + v.Comment
		}
		code += "\n"
	}
	code += ")\n\n"
	return code
}

func (this *Generator) genMethods(enum *gomodel.Enum, typeName, tableName string) string {
	var code string
	code += "func (v " + typeName + ") String() string {\n"
	code += "\treturn " + tableName + ".FormatValue(int64(v))\n"
	code += "}\n\n"

	code += "func (v " + typeName + ") AppendString(dst []byte) []byte {\n"
	code += "\treturn " + tableName + ".AppendValue(dst, int64(v))\n"
	code += "}\n\n"

	if enum.Flags {
		code += "func (v " + typeName + ") Includes(other " + typeName + ") bool {\n"
		code += "\treturn v&other != 0\n"
		code += "}\n\n"
	}

	code += "func (v " + typeName + ") MarshalText() ([]byte, error) {\n"
	code += "\treturn v.AppendString(nil), nil\n"
	code += "}\n\n"

	code += "func (v *" + typeName + ") UnmarshalText(text []byte) error {\n"
	code += "\tparsed, err := " + tableName + ".ParseText(string(text))\n"
	code += "\tif err != nil {\n"
	code += "\t\treturn err\n"
	code += "\t}\n"
	code += "\t*v = " + typeName + "(parsed)\n"
	code += "\treturn nil\n"
	code += "}\n\n"
	return code
}

func (this *Generator) genHelpers(enum *gomodel.Enum, typeName, tableName string) string {
	var code string
	code += "func " + typeName + "FromValue(v int64) (" + typeName + ", error) {\n"
	code += "\tm, err := " + tableName + ".FromValue(v)\n"
	code += "\tif err != nil {\n"
	code += "\t\treturn 0, err\n"
	code += "\t}\n"
	code += "\treturn " + typeName + "(m.Value), nil\n"
	code += "}\n\n"

	code += "func Parse" + typeName + "(name string) (" + typeName + ", error) {\n"
	code += "\tm, err := " + tableName + ".Parse(name)\n"
	code += "\tif err != nil {\n"
	code += "\t\treturn 0, err\n"
	code += "\t}\n"
	code += "\treturn " + typeName + "(m.Value), nil\n"
	code += "}\n\n"

	code += "func " + typeName + "Names() []string {\n"
	code += "\treturn " + tableName + ".Names()\n"
	code += "}\n\n"

	code += "func " + typeName + "Values() []" + typeName + " {\n"
	code += "\tmembers := " + tableName + ".Reflected()\n"
	code += "\tvalues := make([]" + typeName + ", len(members))\n"
	code += "\tfor n, m := range members {\n"
	code += "\t\tvalues[n] = " + typeName + "(m.Value)\n"
	code += "\t}\n"
	code += "\treturn values\n"
	code += "}\n\n"
	return code
}

func (this *Generator) baseTypeName(enum *gomodel.Enum) string {
	if enum.BaseType == "" {
		return "int32"
	}
	return enum.BaseType
}

func (this *Generator) ensureUniqueSymbol(symbol string) string {
	if this.contextSymbolSet[symbol] {
		symbol += "_"
	}
	this.contextSymbolSet[symbol] = true
	return symbol
}
