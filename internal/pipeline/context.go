package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/logging"
	"github.com/funvibe/coolc/internal/symbols"
	"github.com/funvibe/coolc/internal/token"
	"github.com/funvibe/coolc/internal/typesystem"
)

// PipelineContext carries one program through the stages.
type PipelineContext struct {
	ID         uuid.UUID
	SourceCode string
	FilePath   string

	Tokens      []token.Token
	AstRoot     *ast.Program
	Graph       *typesystem.Graph
	SymbolTable *symbols.SymbolTable

	Errors diagnostics.List
	Halted bool

	Logger *zap.SugaredLogger
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		ID:         uuid.New(),
		SourceCode: source,
		Logger:     logging.Nop(),
	}
}

// AddError records err against the current file.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	ctx.Errors.Add(ctx.FilePath, err)
}

// Log returns the context logger, falling back to a no-op one.
func (ctx *PipelineContext) Log() *zap.SugaredLogger {
	if ctx.Logger == nil {
		return logging.Nop()
	}
	return ctx.Logger
}
