package analyzer

import (
	"sort"

	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/symbols"
	"github.com/funvibe/coolc/internal/typesystem"
)

// Analyzer performs semantic analysis on the AST.
type Analyzer struct {
	graph       *typesystem.Graph
	symbolTable *symbols.SymbolTable
}

// New creates an Analyzer over a validated hierarchy.
func New(graph *typesystem.Graph) *Analyzer {
	return &Analyzer{
		graph:       graph,
		symbolTable: symbols.NewSymbolTable(graph),
	}
}

// SymbolTable exposes the declarations collected by Analyze.
func (a *Analyzer) SymbolTable() *symbols.SymbolTable {
	return a.symbolTable
}

// CheckProgram builds the inheritance graph and type-checks every class.
// Expressions of a successfully checked program carry their static types.
func CheckProgram(program *ast.Program) (*typesystem.Graph, diagnostics.List) {
	graph, errs := typesystem.BuildGraph(program)
	if errs.HasErrors() {
		return nil, errs
	}
	if errs := New(graph).Analyze(program); errs.HasErrors() {
		return graph, errs
	}
	return graph, nil
}

// Analyze runs the two passes. The declaration pass visits every class and
// accumulates; the body pass stops at the first failing feature.
func (a *Analyzer) Analyze(program *ast.Program) diagnostics.List {
	var errs diagnostics.List
	for _, class := range a.parentsFirst() {
		for _, err := range a.declareFeatures(class) {
			errs.Add(class.File, err)
		}
	}
	if errs.HasErrors() {
		return errs
	}

	for _, class := range program.Classes {
		if err := newChecker(a, classContext{name: class.Name}).checkClass(class); err != nil {
			errs.Add(class.File, err)
			return errs
		}
	}
	return nil
}

// parentsFirst orders the user classes of the graph by depth so inherited
// methods are declared before overrides are checked. Program order is kept
// within a depth.
func (a *Analyzer) parentsFirst() []*ast.Class {
	names := a.graph.Classes()
	sort.SliceStable(names, func(i, j int) bool {
		return a.graph.Depth(names[i]) < a.graph.Depth(names[j])
	})

	classes := make([]*ast.Class, 0, len(names))
	for _, name := range names {
		if a.graph.IsBasic(name) {
			continue
		}
		if class, ok := a.graph.Class(name); ok {
			classes = append(classes, class)
		}
	}
	return classes
}
