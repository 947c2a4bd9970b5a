// symbols/symbol_table.go - Main symbol table entry point
//
// The table is split into focused files:
// - symbol_table_core.go: Symbol and MethodSignature types, errors
// - symbol_table_init.go: built-in method signatures and construction
// - symbol_table_operations.go: declarations and the scope stack
// - symbol_table_resolution.go: method and object lookup through ancestors

package symbols

// ClassHierarchy is the view of the inheritance graph the table needs.
// *typesystem.Graph implements it.
type ClassHierarchy interface {
	HasClass(name string) bool
	Parent(name string) (string, bool)
}
