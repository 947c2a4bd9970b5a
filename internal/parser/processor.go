package parser

import (
	"github.com/funvibe/coolc/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parse" }

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.Tokens, ctx.FilePath)
	program, err := p.ParseProgram()
	if err != nil {
		ctx.AddError(p.Err())
		return ctx
	}

	ctx.AstRoot = program
	ctx.Log().Debugw("parsed", "run", ctx.ID, "file", ctx.FilePath, "classes", len(program.Classes))
	return ctx
}
