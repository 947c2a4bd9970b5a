package token

import "strings"

var keywords = map[string]TokenType{
	"class":    CLASS,
	"if":       IF,
	"else":     ELSE,
	"then":     THEN,
	"fi":       FI,
	"in":       IN,
	"inherits": INHERITS,
	"isvoid":   ISVOID,
	"let":      LET,
	"loop":     LOOP,
	"pool":     POOL,
	"while":    WHILE,
	"case":     CASE,
	"esac":     ESAC,
	"new":      NEW,
	"of":       OF,
	"not":      NOT,
	"true":     TRUE,
	"false":    FALSE,
}

// LookupIdent classifies a word. Keywords match case-insensitively, except
// the boolean constants which are only recognised in lower case. Anything
// else is a TYPEID or OBJECTID depending on the case of the first letter.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[strings.ToLower(ident)]; ok {
		if tt != TRUE && tt != FALSE {
			return tt
		}
		if ident == "true" || ident == "false" {
			return tt
		}
	}
	if ident[0] >= 'A' && ident[0] <= 'Z' {
		return TYPEID
	}
	return OBJECTID
}
