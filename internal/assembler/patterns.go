package assembler

import (
	"strings"

	"arm64asm/internal/asmerr"
	"arm64asm/internal/encoder"
	"arm64asm/internal/symtab"
	"arm64asm/internal/token"
)

// operandPatterns maps each mnemonic to its operand pattern string. "b.cond"
// is handled as a special case in pass2 (it is never a source-level first
// token) and reuses the "b" pattern ("j") on the tokens following the
// consumed condition suffix.
var operandPatterns = map[string]string{
	"add": "rcrcz", "sub": "rcrcz", "mul": "rcrcz",
	"smulh": "rcrcz", "umulh": "rcrcz", "sdiv": "rcrcz", "udiv": "rcrcz",
	"cmp": "rcz",
	"br":  "r", "blr": "r",
	"ldur": "rclrcit", "stur": "rclrcit",
	"ldr": "rcj",
	"b":   "j",
}

func isKnownMnemonic(m string) bool {
	_, ok := operandPatterns[m]
	return ok
}

// decodeOperands walks pattern and toks in lockstep, producing one int64
// per producing code (r, z, i, j) in order. pc is the byte address of the
// instruction being decoded, used by the "j" code to turn a label
// reference into a PC-relative byte offset.
func decodeOperands(pattern string, toks []token.Token, pc uint64, st *symtab.SymbolTable) ([]int64, error) {
	var out []int64
	ti := 0
	for _, code := range pattern {
		if ti >= len(toks) {
			return nil, asmerr.New(asmerr.MissingOperand, "too few operands")
		}
		t := toks[ti]
		switch code {
		case 'r':
			switch {
			case t.Kind == token.REG:
				v, err := encoder.ReadReg(t.Lexeme)
				if err != nil {
					return nil, err
				}
				out = append(out, int64(v))
			case t.Kind == token.ID && t.Lexeme == "sp":
				out = append(out, 31)
			default:
				return nil, asmerr.Newf(asmerr.InvalidRegister, "expected register or sp, got %s", t)
			}
			ti++
		case 'z':
			switch {
			case t.Kind == token.REG:
				v, err := encoder.ReadReg(t.Lexeme)
				if err != nil {
					return nil, err
				}
				out = append(out, int64(v))
			case t.Kind == token.ZREG:
				out = append(out, 31)
			default:
				return nil, asmerr.Newf(asmerr.InvalidRegister, "expected register or xzr, got %s", t)
			}
			ti++
		case 'c':
			if t.Kind != token.COMMA {
				return nil, asmerr.Newf(asmerr.SyntaxError, "expected ',', got %s", t)
			}
			ti++
		case 'l':
			if t.Kind != token.LBRACK {
				return nil, asmerr.Newf(asmerr.SyntaxError, "expected '[', got %s", t)
			}
			ti++
		case 't':
			if t.Kind != token.RBRACK {
				return nil, asmerr.Newf(asmerr.SyntaxError, "expected ']', got %s", t)
			}
			ti++
		case 'i':
			if t.Kind != token.INT && t.Kind != token.HEXINT {
				return nil, asmerr.Newf(asmerr.SyntaxError, "expected integer, got %s", t)
			}
			v, err := encoder.ReadImm(t.Lexeme)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
			ti++
		case 'j':
			switch t.Kind {
			case token.INT, token.HEXINT:
				v, err := encoder.ReadImm(t.Lexeme)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			case token.ID:
				addr, err := st.Lookup(t.Lexeme)
				if err != nil {
					return nil, err
				}
				out = append(out, int64(addr)-int64(pc))
			default:
				return nil, asmerr.Newf(asmerr.SyntaxError, "expected label or integer, got %s", t)
			}
			ti++
		}
	}
	if ti != len(toks) {
		return nil, asmerr.New(asmerr.SyntaxError, "extra operand tokens")
	}
	return out, nil
}

// encodeInstruction decodes the operand tokens of a single instruction
// statement and dispatches to encoder.Encode with the argument order each
// mnemonic's pattern implies.
func encodeInstruction(mnemonic string, operandToks []token.Token, pc uint64, st *symtab.SymbolTable) (uint32, error) {
	if mnemonic == "b" && len(operandToks) >= 1 && operandToks[0].Kind == token.DOTID {
		cond := strings.TrimPrefix(operandToks[0].Lexeme, ".")
		condVal, err := encoder.CondValue(cond)
		if err != nil {
			return 0, err
		}
		vals, err := decodeOperands(operandPatterns["b"], operandToks[1:], pc, st)
		if err != nil {
			return 0, err
		}
		return encoder.Encode("b.cond", int64(condVal), vals[0], 0)
	}

	pattern, ok := operandPatterns[mnemonic]
	if !ok {
		return 0, asmerr.Newf(asmerr.UnknownInstruction, "unknown instruction: %s", mnemonic)
	}
	vals, err := decodeOperands(pattern, operandToks, pc, st)
	if err != nil {
		return 0, err
	}

	switch mnemonic {
	case "add", "sub", "mul", "smulh", "umulh", "sdiv", "udiv":
		return encoder.Encode(mnemonic, vals[0], vals[1], vals[2])
	case "cmp":
		return encoder.Encode(mnemonic, vals[0], vals[1], 0)
	case "br", "blr":
		return encoder.Encode(mnemonic, vals[0], 0, 0)
	case "ldur", "stur":
		return encoder.Encode(mnemonic, vals[0], vals[1], vals[2])
	case "ldr":
		return encoder.Encode(mnemonic, vals[0], vals[1], 0)
	case "b":
		return encoder.Encode(mnemonic, vals[0], 0, 0)
	default:
		return 0, asmerr.Newf(asmerr.UnknownInstruction, "unknown instruction: %s", mnemonic)
	}
}
