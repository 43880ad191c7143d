// Package token defines the closed token alphabet shared by every producer
// in the pipeline (the raw-assembly lexer, the pre-tokenized reader, and the
// IR-to-token lowering in codegen) and every consumer (the two-pass
// assembler). Kind/Token mirrors a conventional lexer's TokenType/Token
// split, narrowed to a ten-kind-plus-NEWLINE alphabet: no comment tokens,
// no shift/bitwise operators, and a single directive lexeme (".8byte").
package token

import "fmt"

// Kind is one member of the closed token alphabet.
type Kind int

const (
	DOTID Kind = iota
	LABEL
	ID
	HEXINT
	REG
	ZREG
	INT
	COMMA
	LBRACK
	RBRACK
	NEWLINE
)

var kindNames = map[Kind]string{
	DOTID:   "DOTID",
	LABEL:   "LABEL",
	ID:      "ID",
	HEXINT:  "HEXINT",
	REG:     "REG",
	ZREG:    "ZREG",
	INT:     "INT",
	COMMA:   "COMMA",
	LBRACK:  "LBRACK",
	RBRACK:  "RBRACK",
	NEWLINE: "NEWLINE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindFromName maps a pre-tokenized stream's KIND word back to a Kind. Used
// only by internal/pretoken.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Token is a (kind, lexeme) pair. Lexeme is empty for NEWLINE.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int // 1-based source line, 0 when not meaningful (pre-tokenized input)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}
