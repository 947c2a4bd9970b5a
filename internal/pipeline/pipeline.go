package pipeline

import (
	"time"
)

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline. A stage that leaves errors in the context stops
// the run; nothing downstream of a failing phase sees a broken artifact.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		start := time.Now()
		ctx = processor.Process(ctx)
		ctx.Log().Debugw("stage finished",
			"run", ctx.ID,
			"stage", stageName(processor),
			"file", ctx.FilePath,
			"elapsed", time.Since(start),
			"errors", len(ctx.Errors),
		)
		if ctx.Errors.HasErrors() {
			ctx.Halted = true
			break
		}
	}
	return ctx
}

func stageName(p Processor) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "unknown"
}
