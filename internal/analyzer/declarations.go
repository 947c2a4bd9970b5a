package analyzer

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/symbols"
)

// declareFeatures registers the methods and attributes of class.
func (a *Analyzer) declareFeatures(class *ast.Class) []*diagnostics.DiagnosticError {
	var errs []*diagnostics.DiagnosticError
	for _, feature := range class.Features {
		var err error
		switch f := feature.(type) {
		case *ast.Method:
			err = a.symbolTable.AddMethod(class.Name, f.Name, f.ReturnType, f.FormalTypes())
		case *ast.Attribute:
			err = a.symbolTable.AddAttribute(class.Name, f.Name, f.Type)
		}
		if se, ok := err.(*symbols.SymbolError); ok {
			errs = append(errs, diagnostics.NewErrorAt(se.Code(), feature.Line(), "%s", se.Message))
		}
	}
	return errs
}
