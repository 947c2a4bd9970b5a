package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/coolc/internal/analyzer"
	"github.com/funvibe/coolc/internal/ast"
	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/diagnostics"
	"github.com/funvibe/coolc/internal/lexer"
	"github.com/funvibe/coolc/internal/parser"
	"github.com/funvibe/coolc/internal/pipeline"
	"github.com/funvibe/coolc/internal/prettyprinter"
)

type driver struct {
	cfg    config.Config
	log    *zap.SugaredLogger
	stdout io.Writer
	stderr io.Writer
	color  bool
}

// result is the rendered outcome of one file. Results are printed in input
// order once every file is done.
type result struct {
	out  bytes.Buffer
	errs diagnostics.List
}

// processors returns the stages up to and including stage.
func processors(stage config.Stage) []pipeline.Processor {
	stages := []pipeline.Processor{&lexer.LexerProcessor{}}
	if stage == config.StageLex {
		return stages
	}
	stages = append(stages, &parser.ParserProcessor{})
	if stage == config.StageParse {
		return stages
	}
	return append(stages, &analyzer.SemanticAnalyzerProcessor{})
}

// run compiles files concurrently and reports whether all of them passed.
// A file that cannot be read aborts the whole run before anything is printed.
func (d *driver) run(files []string) bool {
	results := make([]*result, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(d.cfg.Jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			r, err := d.compile(ctx, file)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(d.stderr, "coolc: %v\n", err)
		return false
	}

	ok := true
	printer := &diagnostics.Printer{Out: d.stderr, Color: d.color}
	for _, r := range results {
		d.stdout.Write(r.out.Bytes()) //nolint:errcheck
		if r.errs.HasErrors() {
			printer.Print(r.errs)
			printer.Halt(r.errs.Phase())
			ok = false
		}
	}
	return ok
}

func (d *driver) compile(ctx context.Context, file string) (*result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}

	pctx := pipeline.NewPipelineContext(string(src))
	pctx.FilePath = file
	pctx.Logger = d.log
	pctx = pipeline.New(processors(d.cfg.Stage)...).Run(pctx)

	r := &result{}
	switch {
	case d.cfg.Stage == config.StageLex:
		// lex errors are part of the token dump
		err = prettyprinter.PrintTokens(&r.out, file, pctx.Tokens)
	case pctx.Halted:
		r.errs = pctx.Errors
	default:
		err = d.dump(&r.out, pctx.AstRoot)
	}

	d.log.Infow("compiled",
		"run", pctx.ID,
		"file", file,
		"stage", d.cfg.Stage,
		"errors", len(pctx.Errors),
		"elapsed", time.Since(start),
	)
	return r, errors.Wrapf(err, "writing output for %s", file)
}

func (d *driver) dump(w io.Writer, program *ast.Program) error {
	if d.cfg.Format == config.FormatYAML {
		printer := prettyprinter.NewYAMLPrinter()
		program.Accept(printer)
		return printer.Encode(w)
	}
	printer := prettyprinter.NewTreePrinter()
	program.Accept(printer)
	_, err := io.WriteString(w, printer.String())
	return err
}
