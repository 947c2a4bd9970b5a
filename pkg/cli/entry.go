package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/funvibe/coolc/internal/config"
	"github.com/funvibe/coolc/internal/logging"
)

const usage = `Usage: coolc [lex|parse|semant] [flags] <file.cl> [file2.cl...]

Stages:
  lex      print the token stream of each file
  parse    print the untyped syntax tree
  semant   type-check and print the annotated syntax tree (default)

Flags:
`

// options are the command-line settings before they are merged into the config.
type options struct {
	stage      config.Stage
	configPath string
	format     string
	color      string
	logLevel   string
	logJSON    bool
	jobs       int
	files      []string
	set        map[string]bool
}

// Run drives the front-end over the files named in args and returns the
// process exit status: 0 on success, 1 when any file has compile errors or
// cannot be read, 2 on bad usage.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "coolc: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		fmt.Fprintf(stderr, "coolc: %v\n", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck

	d := &driver{
		cfg:    cfg,
		log:    logger,
		stdout: stdout,
		stderr: stderr,
		color:  useColor(cfg.Color, stderr),
	}
	if !d.run(opts.files) {
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{stage: config.StageSemant}
	if len(args) > 0 {
		switch config.Stage(args[0]) {
		case config.StageLex, config.StageParse, config.StageSemant:
			opts.stage = config.Stage(args[0])
			args = args[1:]
			opts.set = map[string]bool{"stage": true}
		}
	}

	fs := flag.NewFlagSet("coolc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./"+config.DefaultConfigFile+" if present)")
	fs.StringVar(&opts.format, "format", "", "tree dump format: tree or yaml")
	fs.StringVar(&opts.color, "color", "", "colored diagnostics: auto, always or never")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")
	fs.IntVar(&opts.jobs, "jobs", 0, "number of files compiled in parallel")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.set == nil {
		opts.set = map[string]bool{}
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		fs.Usage()
		return nil, errors.New("coolc: no input files")
	}
	for _, f := range opts.files {
		if !isSourceFile(f) {
			return nil, errors.Errorf("coolc: %s: not a COOL source file", f)
		}
	}
	return opts, nil
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// loadConfig reads the config file and lays the explicitly given flags over it.
func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.set["stage"] {
		cfg.Stage = opts.stage
	}
	if opts.set["format"] {
		cfg.Format = config.Format(opts.format)
	}
	if opts.set["color"] {
		cfg.Color = config.ColorMode(opts.color)
	}
	if opts.set["log-level"] {
		cfg.LogLevel = opts.logLevel
	}
	if opts.set["log-json"] {
		cfg.LogJSON = opts.logJSON
	}
	if opts.set["jobs"] {
		cfg.Jobs = opts.jobs
	}
	return cfg, cfg.Validate()
}

// useColor resolves the color mode against the diagnostics stream.
func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
