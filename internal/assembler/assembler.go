package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"arm64asm/internal/asmerr"
	"arm64asm/internal/encoder"
	"arm64asm/internal/symtab"
	"arm64asm/internal/token"
)

// Result is the output of a successful two-pass assembly.
type Result struct {
	Code    []byte          // primary channel: concatenated instruction/data bytes
	Symbols *symtab.SymbolTable
}

// Assemble runs pass 1 (label resolution) and pass 2 (encode and emit) over
// a token stream.
func Assemble(toks []token.Token) (*Result, error) {
	stmts := GroupStatements(toks)

	st := symtab.New()
	if err := pass1(stmts, st); err != nil {
		return nil, err
	}

	code, err := pass2(stmts, st)
	if err != nil {
		return nil, err
	}

	return &Result{Code: code, Symbols: st}, nil
}

// pass1 walks statements once with a 64-bit PC, defining every label's
// address and validating that every statement is well-formed enough to
// classify.
func pass1(stmts []Statement, st *symtab.SymbolTable) error {
	var pc uint64
	for _, s := range stmts {
		k, err := classify(s)
		if err != nil {
			return err
		}
		switch k {
		case kindLabelOnly:
			name := strings.TrimSuffix(s[0].Lexeme, ":")
			if err := st.Define(name, pc); err != nil {
				return err
			}
		case kindData:
			pc += 8
		case kindInstruction:
			pc += 4
		}
	}
	return nil
}

// pass2 walks statements again with PC reset to 0, decoding operands,
// dispatching to the encoder, and emitting little-endian bytes.
func pass2(stmts []Statement, st *symtab.SymbolTable) ([]byte, error) {
	var out []byte
	var pc uint64
	for _, s := range stmts {
		k, err := classify(s)
		if err != nil {
			return nil, err
		}
		switch k {
		case kindLabelOnly:
			// Contributed in pass 1; no PC change, nothing to emit.
		case kindData:
			if len(s) < 2 {
				return nil, asmerr.New(asmerr.MissingOperand, ".8byte requires a value")
			}
			if len(s) > 2 {
				return nil, asmerr.New(asmerr.SyntaxError, ".8byte takes exactly one value")
			}
			v, err := decodeData8(s[1], st)
			if err != nil {
				return nil, err
			}
			out = encoder.PutUint64LE(out, v)
			pc += 8
		case kindInstruction:
			mnemonic := s[0].Lexeme
			word, err := encodeInstruction(mnemonic, s[1:], pc, st)
			if err != nil {
				return nil, err
			}
			out = encoder.PutUint32LE(out, word)
			pc += 4
		}
	}
	return out, nil
}

// decodeData8 resolves the value of a ".8byte V" statement: a label
// reference yields its address, a numeric literal is parsed as a 64-bit
// unsigned value with base auto-detection (0x/0X prefix selects hex,
// otherwise decimal).
func decodeData8(v token.Token, st *symtab.SymbolTable) (uint64, error) {
	switch v.Kind {
	case token.ID:
		return st.Lookup(v.Lexeme)
	case token.INT, token.HEXINT:
		s := v.Lexeme
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			n, err := strconv.ParseUint(s[2:], 16, 64)
			if err != nil {
				return 0, asmerr.Newf(asmerr.SyntaxError, "invalid .8byte value: %s", s)
			}
			return n, nil
		}
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, asmerr.Newf(asmerr.SyntaxError, "invalid .8byte value: %s", s)
		}
		return n, nil
	default:
		return 0, asmerr.Newf(asmerr.SyntaxError, "invalid .8byte value: %s", v)
	}
}

// DumpSymbols renders the post-pass-2 diagnostic channel: one "NAME
// ADDRESS\n" line per defined label, in definition order. hex selects
// "0x%X" rendering; otherwise the address is decimal.
func DumpSymbols(st *symtab.SymbolTable, hex bool) string {
	var sb strings.Builder
	for _, name := range st.Order() {
		addr, _ := st.Lookup(name)
		if hex {
			fmt.Fprintf(&sb, "%s 0x%X\n", name, addr)
		} else {
			fmt.Fprintf(&sb, "%s %d\n", name, addr)
		}
	}
	return sb.String()
}
