package analyzer

import (
	"github.com/funvibe/coolc/internal/pipeline"
	"github.com/funvibe/coolc/internal/typesystem"
)

type SemanticAnalyzerProcessor struct{}

func (sap *SemanticAnalyzerProcessor) Name() string { return "semant" }

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	graph, errs := typesystem.BuildGraph(ctx.AstRoot)
	if errs.HasErrors() {
		for _, err := range errs {
			ctx.AddError(err)
		}
		return ctx
	}
	ctx.Graph = graph

	analyzer := New(graph)
	errs = analyzer.Analyze(ctx.AstRoot)
	ctx.SymbolTable = analyzer.SymbolTable()
	for _, err := range errs {
		ctx.AddError(err)
	}

	ctx.Log().Debugw("checked", "run", ctx.ID, "file", ctx.FilePath, "classes", len(graph.Classes()), "errors", len(errs))
	return ctx
}
