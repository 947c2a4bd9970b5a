package diagnostics

import (
	"sort"
	"strings"
)

// List collects diagnostics in the order they were reported.
type List []*DiagnosticError

// Add appends err, filling in the file when it is missing.
func (l *List) Add(file string, err *DiagnosticError) {
	if err == nil {
		return
	}
	if err.File == "" {
		err.File = file
	}
	*l = append(*l, err)
}

// HasErrors reports whether anything was collected.
func (l List) HasErrors() bool {
	return len(l) > 0
}

// Phase returns the earliest phase among the collected errors.
func (l List) Phase() Phase {
	phase := PhaseSemant
	for _, e := range l {
		if e.Phase() < phase {
			phase = e.Phase()
		}
	}
	return phase
}

// Sorted returns a copy ordered by file and line, keeping report order for ties.
func (l List) Sorted() List {
	out := make(List, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line() < out[j].Line()
	})
	return out
}

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns nil for an empty list so callers can use it as an error value.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
