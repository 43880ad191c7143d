// Package pretoken reads the pre-tokenized line format: whitespace-separated
// "KIND LEXEME" pairs, except NEWLINE which carries no lexeme. This is the
// default input mode. A bufio.Scanner with word-splitting keeps this
// reader a few lines long.
package pretoken

import (
	"bufio"
	"io"
	"strings"

	"arm64asm/internal/asmerr"
	"arm64asm/internal/token"
)

// Read parses a pre-tokenized stream into a token.Token slice.
func Read(r io.Reader) ([]token.Token, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var out []token.Token
	for sc.Scan() {
		kindName := sc.Text()
		kind, ok := token.KindFromName(kindName)
		if !ok {
			return nil, asmerr.Newf(asmerr.SyntaxError, "unknown token kind: %q", kindName)
		}
		if kind == token.NEWLINE {
			out = append(out, token.Token{Kind: token.NEWLINE})
			continue
		}
		if !sc.Scan() {
			return nil, asmerr.Newf(asmerr.MissingOperand, "token kind %q missing lexeme", kindName)
		}
		out = append(out, token.Token{Kind: kind, Lexeme: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, asmerr.Wrap(asmerr.IO, "reading pre-tokenized input", err)
	}
	return out, nil
}

// Write renders a token stream back to the pre-tokenized format. Not
// required by any external interface, but useful for round-trip testing
// against Read.
func Write(toks []token.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Kind.String())
		if t.Kind != token.NEWLINE {
			sb.WriteByte(' ')
			sb.WriteString(t.Lexeme)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
