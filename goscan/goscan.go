// Package goscan extracts enum declarations from Go source. A type is
// picked up when its declaration carries an "enums:enum" or
// "enums:flags" marker comment:
//
//	type Color int //enums:enum
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
// Scanned packages feed codegen in companion mode, which writes the
// member table declarations and methods next to the source.
package goscan

import (
	"go/ast"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/zzl/go-enums/gomodel"
)

const (
	markerEnum  = "enums:enum"
	markerFlags = "enums:flags"
)

type Scanner struct {
	//Dir is the working directory for package loading; empty means cwd.
	Dir string
}

func NewScanner(dir string) *Scanner {
	return &Scanner{Dir: dir}
}

// Scan loads the given package patterns and extracts every marked enum.
func (this *Scanner) Scan(patterns ...string) (*gomodel.Model, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  this.Dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}
	model := &gomodel.Model{}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Errorf("load %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		scanned, err := this.scanPkg(pkg)
		if err != nil {
			return nil, err
		}
		if len(scanned.Enums) > 0 {
			model.Packages = append(model.Packages, scanned)
		}
	}
	return model, nil
}

func (this *Scanner) scanPkg(pkg *packages.Package) (*gomodel.Package, error) {
	scanned := &gomodel.Package{
		Name:     pkg.Name,
		FullName: pkg.PkgPath,
	}
	if len(pkg.GoFiles) > 0 {
		scanned.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				base, ok := typeSpec.Type.(*ast.Ident)
				if !ok || !integerBaseType(base.Name) {
					continue
				}
				flags, marked := enumMarker(genDecl, typeSpec)
				if !marked {
					continue
				}
				scanned.Enums = append(scanned.Enums, &gomodel.Enum{
					Name:     typeSpec.Name.Name,
					BaseType: base.Name,
					Flags:    flags,
					Comment:  enumComment(genDecl, typeSpec),
				})
			}
		}
	}

	for _, enum := range scanned.Enums {
		values, err := this.extractValues(pkg, enum.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s", enum.Name)
		}
		enum.Values = values
	}
	return scanned, nil
}

func integerBaseType(name string) bool {
	switch name {
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return true
	}
	return false
}

// enumMarker reports whether the type declaration carries a marker,
// checked on the decl doc, the spec doc and the trailing line comment.
func enumMarker(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) (flags, marked bool) {
	for _, group := range []*ast.CommentGroup{genDecl.Doc, typeSpec.Doc, typeSpec.Comment} {
		if group == nil {
			continue
		}
		for _, comment := range group.List {
			text := strings.TrimSpace(strings.TrimPrefix(comment.Text, "//"))
			switch text {
			case markerFlags:
				return true, true
			case markerEnum:
				return false, true
			}
		}
	}
	return false, false
}

func enumComment(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) string {
	doc := typeSpec.Doc
	if doc == nil {
		doc = genDecl.Doc
	}
	if doc == nil {
		return ""
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(doc.Text()), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == markerEnum || trimmed == markerFlags {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// extractValues collects const-block values of the named type across
// the package, resolving iota, literals and the usual shift/or idioms.
func (this *Scanner) extractValues(pkg *packages.Package, enumName string) ([]*gomodel.EnumValue, error) {
	var values []*gomodel.EnumValue
	known := make(map[string]int64)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			collecting := false
			var carried []ast.Expr
			for iotaValue, spec := range genDecl.Specs {
				valueSpec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				exprs := valueSpec.Values
				if valueSpec.Type != nil {
					ident, ok := valueSpec.Type.(*ast.Ident)
					collecting = ok && ident.Name == enumName
					carried = nil
				} else if len(exprs) > 0 {
					//untyped explicit values leave the enum
					collecting = false
					carried = nil
				}
				if len(exprs) == 0 {
					exprs = carried
				} else {
					carried = exprs
				}
				if !collecting || len(exprs) == 0 {
					continue
				}
				for n, name := range valueSpec.Names {
					if name.Name == "_" {
						continue
					}
					if n >= len(exprs) {
						break
					}
					value, err := evalConstExpr(exprs[n], int64(iotaValue), known, enumName)
					if err != nil {
						return nil, errors.Wrap(err, name.Name)
					}
					known[name.Name] = value
					values = append(values, &gomodel.EnumValue{
						Name:    name.Name,
						Value:   value,
						Comment: lineComment(valueSpec),
					})
				}
			}
		}
	}
	return values, nil
}

func lineComment(spec *ast.ValueSpec) string {
	if spec.Comment == nil {
		return ""
	}
	return strings.TrimSpace(spec.Comment.Text())
}

func evalConstExpr(expr ast.Expr, iotaValue int64, known map[string]int64, enumName string) (int64, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return 0, errors.Errorf("unsupported literal %s", e.Value)
		}
		return strconv.ParseInt(e.Value, 0, 64)
	case *ast.Ident:
		if e.Name == "iota" {
			return iotaValue, nil
		}
		if v, ok := known[e.Name]; ok {
			return v, nil
		}
		return 0, errors.Errorf("unresolved constant %s", e.Name)
	case *ast.ParenExpr:
		return evalConstExpr(e.X, iotaValue, known, enumName)
	case *ast.CallExpr:
		//conversion like Color(2)
		ident, ok := e.Fun.(*ast.Ident)
		if !ok || ident.Name != enumName || len(e.Args) != 1 {
			return 0, errors.New("unsupported call expression")
		}
		return evalConstExpr(e.Args[0], iotaValue, known, enumName)
	case *ast.UnaryExpr:
		v, err := evalConstExpr(e.X, iotaValue, known, enumName)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case token.SUB:
			return -v, nil
		case token.XOR:
			return ^v, nil
		}
		return 0, errors.Errorf("unsupported unary op %s", e.Op)
	case *ast.BinaryExpr:
		x, err := evalConstExpr(e.X, iotaValue, known, enumName)
		if err != nil {
			return 0, err
		}
		y, err := evalConstExpr(e.Y, iotaValue, known, enumName)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case token.ADD:
			return x + y, nil
		case token.SUB:
			return x - y, nil
		case token.MUL:
			return x * y, nil
		case token.QUO:
			return x / y, nil
		case token.REM:
			return x % y, nil
		case token.OR:
			return x | y, nil
		case token.AND:
			return x & y, nil
		case token.XOR:
			return x ^ y, nil
		case token.SHL:
			return x << uint64(y), nil
		case token.SHR:
			return x >> uint64(y), nil
		}
		return 0, errors.Errorf("unsupported binary op %s", e.Op)
	}
	return 0, errors.New("unsupported constant expression")
}
