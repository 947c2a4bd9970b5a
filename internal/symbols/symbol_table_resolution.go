package symbols

// LookupMethod finds name in class or the nearest ancestor that declares
// it, Object included.
func (st *SymbolTable) LookupMethod(class, name string) (*MethodSignature, bool) {
	for cur, ok := class, true; ok; cur, ok = st.classes.Parent(cur) {
		if sig, found := st.methods[cur][name]; found {
			return sig, true
		}
	}
	return nil, false
}

// LookupAttribute finds an attribute declared in class or an ancestor.
func (st *SymbolTable) LookupAttribute(class, name string) (*Symbol, bool) {
	for cur, ok := class, true; ok; cur, ok = st.classes.Parent(cur) {
		if sym, found := st.attributes[cur][name]; found {
			return sym, true
		}
	}
	return nil, false
}

// LookupObject resolves name from the innermost scope outwards, then
// through the attributes of class and its ancestors.
func (st *SymbolTable) LookupObject(class, name string) (*Symbol, bool) {
	for i := len(st.frames) - 1; i >= 0; i-- {
		if sym, found := st.frames[i][name]; found {
			return sym, true
		}
	}
	return st.LookupAttribute(class, name)
}
