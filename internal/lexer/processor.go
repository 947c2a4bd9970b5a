package lexer

import (
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Name() string { return "lex" }

// Process tokenizes the source. Every ERROR token becomes an L001
// diagnostic; the tokens are kept either way so they can still be dumped.
func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.Tokens = Tokenize(ctx.SourceCode)
	for _, tok := range ctx.Tokens {
		if tok.IsError() {
			ctx.AddError(diagnostics.NewError(diagnostics.ErrL001, tok, "%s", tok.Lexeme))
		}
	}
	ctx.Log().Debugw("tokenized", "run", ctx.ID, "file", ctx.FilePath, "tokens", len(ctx.Tokens))
	return ctx
}
