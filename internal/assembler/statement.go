// Package assembler implements two-pass label resolution and instruction
// encoding: statements are grouped at NEWLINE boundaries, pass 1 walks
// them once to assign every label a byte address, and pass 2 walks them
// again to decode operands and emit machine code. Independent stages
// (lexer, symbol table, encoder) cooperate through a shared
// *symtab.SymbolTable, collapsed here to a single two-pass driver rather
// than a separate parse-then-encode object model.
package assembler

import (
	"arm64asm/internal/asmerr"
	"arm64asm/internal/token"
)

// Statement is a maximal run of non-NEWLINE tokens.
type Statement []token.Token

// GroupStatements splits a token stream at NEWLINE boundaries, discarding
// empty statements. A trailing statement with no terminating NEWLINE is
// still returned.
func GroupStatements(toks []token.Token) []Statement {
	var stmts []Statement
	var cur Statement
	for _, t := range toks {
		if t.Kind == token.NEWLINE {
			if len(cur) > 0 {
				stmts = append(stmts, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		stmts = append(stmts, cur)
	}
	return stmts
}

// kind classifies a statement by its first token(s).
type kind int

const (
	kindLabelOnly kind = iota
	kindData
	kindInstruction
)

func classify(s Statement) (kind, error) {
	if len(s) == 0 {
		return 0, asmerr.New(asmerr.SyntaxError, "empty statement")
	}
	first := s[0]
	switch {
	case first.Kind == token.LABEL && len(s) == 1:
		return kindLabelOnly, nil
	case first.Kind == token.DOTID && first.Lexeme == ".8byte":
		return kindData, nil
	case first.Kind == token.ID && isKnownMnemonic(first.Lexeme):
		return kindInstruction, nil
	case first.Kind == token.ID:
		return 0, asmerr.Newf(asmerr.UnknownInstruction, "unknown instruction: %s", first.Lexeme)
	default:
		return 0, asmerr.Newf(asmerr.SyntaxError, "unrecognized statement starting with %s", first)
	}
}
