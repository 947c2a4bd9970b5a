package prettyprinter

import (
	"bufio"
	"io"

	"github.com/funvibe/coolc/internal/token"
)

// PrintTokens writes the token dump of one file: a #name header followed by
// one token per line. The end-of-stream marker is not printed.
func PrintTokens(w io.Writer, file string, tokens []token.Token) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("#name \"" + file + "\"\n")
	for _, tok := range tokens {
		if tok.IsEOF() {
			break
		}
		bw.WriteString(tok.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
