package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/coolc/internal/token"
)

func TestErrorFormat(t *testing.T) {
	tok := token.Token{Type: token.OBJECTID, Lexeme: "x", Line: 4}

	err := NewError(ErrS001, tok, "Undeclared identifier %s.", "x")
	assert.Equal(t, "Undeclared identifier x.", err.Error())
	err.File = "a.cl"
	assert.Equal(t, "a.cl:4: Undeclared identifier x.", err.Error())
	assert.Equal(t, 4, err.Line())

	missing := NewErrorAt(ErrH006, 0, "Class Main is not defined.")
	missing.File = "a.cl"
	assert.Equal(t, "a.cl: Class Main is not defined.", missing.Error())

	bare := NewErrorAt(ErrL001, 1, "#")
	assert.Equal(t, "1: #", bare.Error())
}

func TestPhases(t *testing.T) {
	assert.Equal(t, PhaseLex, NewErrorAt(ErrL001, 1, "").Phase())
	assert.Equal(t, PhaseParse, NewErrorAt(ErrP003, 1, "").Phase())
	assert.Equal(t, PhaseSemant, NewErrorAt(ErrH005, 1, "").Phase())
	assert.Equal(t, PhaseSemant, NewErrorAt(ErrS011, 1, "").Phase())

	assert.Equal(t, "Compilation halted due to lex and parse errors", Halted(PhaseLex))
	assert.Equal(t, "Compilation halted due to lex and parse errors", Halted(PhaseParse))
	assert.Equal(t, "Compilation halted due to static semantic errors.", Halted(PhaseSemant))
}

func TestList(t *testing.T) {
	var l List
	assert.False(t, l.HasErrors())
	assert.NoError(t, l.Err())

	l.Add("b.cl", NewErrorAt(ErrS002, 9, "late"))
	l.Add("a.cl", NewErrorAt(ErrS001, 5, "first"))
	l.Add("a.cl", NewErrorAt(ErrP001, 2, "parse"))
	l.Add("a.cl", nil)

	withFile := NewErrorAt(ErrS003, 1, "kept")
	withFile.File = "c.cl"
	l.Add("a.cl", withFile)

	require.Len(t, l, 4)
	assert.True(t, l.HasErrors())
	assert.Equal(t, PhaseParse, l.Phase())
	assert.Equal(t, "c.cl", l[3].File)

	sorted := l.Sorted()
	assert.Equal(t, "a.cl:2: parse", sorted[0].Error())
	assert.Equal(t, "a.cl:5: first", sorted[1].Error())
	assert.Equal(t, "b.cl:9: late", sorted[2].Error())
	assert.Equal(t, "b.cl:9: late", l[0].Error())

	require.Error(t, l.Err())
	assert.Equal(t, "b.cl:9: late\na.cl:5: first\na.cl:2: parse\nc.cl:1: kept", l.Err().Error())
}

func TestPrinter(t *testing.T) {
	errs := List{NewErrorAt(ErrS001, 3, "Undeclared identifier y.")}
	errs[0].File = "a.cl"

	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	p.Print(errs)
	p.Halt(errs.Phase())
	assert.Equal(t, "a.cl:3: Undeclared identifier y.\nCompilation halted due to static semantic errors.\n", buf.String())

	buf.Reset()
	p.Color = true
	p.Print(errs)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "[S001]")
}
