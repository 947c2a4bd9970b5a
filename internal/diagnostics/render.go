package diagnostics

import (
	"fmt"
	"io"
)

const (
	colorRed   = "\x1b[31m"
	colorBold  = "\x1b[1m"
	colorReset = "\x1b[0m"
)

// Printer writes diagnostics to a terminal or a plain stream.
type Printer struct {
	Out   io.Writer
	Color bool
}

// Print writes every diagnostic on its own line.
func (p *Printer) Print(errs List) {
	for _, e := range errs {
		if p.Color {
			fmt.Fprintf(p.Out, "%s%s%s %s[%s]%s\n", colorBold, e.Error(), colorReset, colorRed, e.Code, colorReset)
			continue
		}
		fmt.Fprintln(p.Out, e.Error())
	}
}

// Halt writes the halting line for the given phase.
func (p *Printer) Halt(phase Phase) {
	if p.Color {
		fmt.Fprintf(p.Out, "%s%s%s\n", colorRed, Halted(phase), colorReset)
		return
	}
	fmt.Fprintln(p.Out, Halted(phase))
}
