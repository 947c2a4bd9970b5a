package typesystem

import (
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
)

// Graph is the class hierarchy of one program. It is read only once built,
// apart from the depth memo.
type Graph struct {
	parents map[string]string // Object maps to ""
	order   []string          // basic classes, then user classes in program order
	classes map[string]*ast.Class
	depth   map[string]int
}

func newGraph() *Graph {
	g := &Graph{
		parents: make(map[string]string),
		classes: make(map[string]*ast.Class),
		depth:   map[string]int{config.ObjectClassName: 0},
	}
	for _, name := range config.BasicClassNames {
		parent := config.ObjectClassName
		if name == config.ObjectClassName {
			parent = ""
		}
		g.parents[name] = parent
		g.order = append(g.order, name)
	}
	return g
}

// BuildGraph validates the class declarations of program and returns the
// hierarchy. Insertion and parent checks visit every class and accumulate;
// the cycle and Main checks only run when those passed. The graph is nil
// whenever errors are returned.
func BuildGraph(program *ast.Program) (*Graph, diagnostics.List) {
	g := newGraph()
	var errs diagnostics.List

	var inserted []*ast.Class
	for _, class := range program.Classes {
		if err := g.insert(class); err != nil {
			errs.Add(class.File, err)
			continue
		}
		inserted = append(inserted, class)
	}

	for _, class := range inserted {
		if _, ok := g.parents[class.Parent]; !ok {
			errs.Add(class.File, diagnostics.NewErrorAt(diagnostics.ErrH004, class.Line(),
				"Class %s inherits from undefined class %s.", class.Name, class.Parent))
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	for _, class := range inserted {
		if g.inCycle(class.Name) {
			errs.Add(class.File, diagnostics.NewErrorAt(diagnostics.ErrH005, class.Line(),
				"Class %s, or an ancestor of %s, is involved in an inheritance cycle.", class.Name, class.Name))
		}
	}
	if !errs.HasErrors() && !g.HasClass(config.MainClassName) {
		errs.Add(program.File, diagnostics.NewErrorAt(diagnostics.ErrH006, 0, "Class Main is not defined."))
	}
	if errs.HasErrors() {
		return nil, errs
	}

	for _, name := range g.order {
		g.Depth(name)
	}
	return g, nil
}

func (g *Graph) insert(class *ast.Class) *diagnostics.DiagnosticError {
	switch {
	case class.Name == config.SelfTypeName:
		return diagnostics.NewErrorAt(diagnostics.ErrH001, class.Line(), "Redefinition of basic class SELF_TYPE.")
	case config.IsBasicClass(class.Name):
		return diagnostics.NewErrorAt(diagnostics.ErrH001, class.Line(), "Redefinition of basic class %s.", class.Name)
	case config.IsSealedClass(class.Parent) || class.Parent == config.SelfTypeName:
		return diagnostics.NewErrorAt(diagnostics.ErrH002, class.Line(), "Class %s cannot inherit class %s.", class.Name, class.Parent)
	case g.HasClass(class.Name):
		return diagnostics.NewErrorAt(diagnostics.ErrH003, class.Line(), "Class %s was previously defined.", class.Name)
	}
	g.parents[class.Name] = class.Parent
	g.classes[class.Name] = class
	g.order = append(g.order, class.Name)
	return nil
}

// inCycle walks from name toward Object, marking the current path. Reaching
// a marked class means name is on, or leads into, a cycle.
func (g *Graph) inCycle(name string) bool {
	onPath := make(map[string]bool)
	for cur := name; cur != ""; cur = g.parents[cur] {
		if onPath[cur] {
			return true
		}
		onPath[cur] = true
	}
	return false
}

// HasClass reports whether name is a basic or declared class.
func (g *Graph) HasClass(name string) bool {
	_, ok := g.parents[name]
	return ok
}

// Parent returns the parent of name; Object has none.
func (g *Graph) Parent(name string) (string, bool) {
	parent, ok := g.parents[name]
	if !ok || parent == "" {
		return "", false
	}
	return parent, true
}

// Class returns the declaration of a user class.
func (g *Graph) Class(name string) (*ast.Class, bool) {
	class, ok := g.classes[name]
	return class, ok
}

// IsBasic reports whether name is one of the built-in classes.
func (g *Graph) IsBasic(name string) bool {
	return config.IsBasicClass(name)
}

// Classes lists every class, basic ones first, then user classes in
// program order.
func (g *Graph) Classes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Depth is the distance from Object, memoised. Unknown names report -1.
func (g *Graph) Depth(name string) int {
	if d, ok := g.depth[name]; ok {
		return d
	}
	parent, ok := g.Parent(name)
	if !ok {
		return -1
	}
	d := g.Depth(parent)
	if d < 0 {
		return -1
	}
	g.depth[name] = d + 1
	return d + 1
}

// IsAncestor reports whether base is derived or one of its ancestors.
// SELF_TYPE as derived conforms to everything.
func (g *Graph) IsAncestor(base, derived string) bool {
	if derived == config.SelfTypeName {
		return true
	}
	for cur := derived; cur != ""; cur = g.parents[cur] {
		if cur == base {
			return true
		}
	}
	return false
}

// RootPath lists the classes from Object down to name.
func (g *Graph) RootPath(name string) ([]string, error) {
	d := g.Depth(name)
	if d < 0 {
		return nil, NewUnknownClassError(name)
	}
	path := make([]string, d+1)
	for cur := name; d >= 0; d-- {
		path[d] = cur
		cur = g.parents[cur]
	}
	return path, nil
}

// LCA returns the most specific common ancestor of a and b. Both must be
// known classes; SELF_TYPE has to be resolved by the caller.
func (g *Graph) LCA(a, b string) (string, error) {
	left, err := g.RootPath(a)
	if err != nil {
		return "", err
	}
	right, err := g.RootPath(b)
	if err != nil {
		return "", err
	}

	i := 0
	for i < len(left) && i < len(right) && left[i] == right[i] {
		i++
	}
	return left[i-1], nil
}
