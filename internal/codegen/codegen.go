// Package codegen lowers the target-independent IR into the ARM64 token
// stream the assembler consumes: instruction selection. An exhaustive
// switch over Op emits tokens instead of bit fields, one case per
// operation.
package codegen

import (
	"strings"

	"arm64asm/internal/ir"
	"arm64asm/internal/token"
)

// classifyRegister returns the token kind for a register-like operand
// lexeme: "xzr" is ZREG, "sp" is ID, "xN" is REG.
func classifyRegister(s string) token.Kind {
	switch {
	case s == "xzr":
		return token.ZREG
	case s == "sp":
		return token.ID
	default:
		return token.REG
	}
}

// classifyImmediate returns the token kind for an immediate/label operand
// lexeme: 0x/0X prefix is HEXINT, a leading digit or sign is INT, anything
// else is an ID (label reference).
func classifyImmediate(s string) token.Kind {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return token.HEXINT
	}
	if len(s) > 0 {
		c := s[0]
		if c == '-' || c == '+' || (c >= '0' && c <= '9') {
			return token.INT
		}
	}
	return token.ID
}

func reg(s string) token.Token  { return token.Token{Kind: classifyRegister(s), Lexeme: s} }
func imm(s string) token.Token  { return token.Token{Kind: classifyImmediate(s), Lexeme: s} }
func id(s string) token.Token   { return token.Token{Kind: token.ID, Lexeme: s} }
func comma() token.Token        { return token.Token{Kind: token.COMMA, Lexeme: ","} }
func lbrack() token.Token       { return token.Token{Kind: token.LBRACK, Lexeme: "["} }
func rbrack() token.Token       { return token.Token{Kind: token.RBRACK, Lexeme: "]"} }
func newline() token.Token      { return token.Token{Kind: token.NEWLINE} }
func dotid(s string) token.Token {
	return token.Token{Kind: token.DOTID, Lexeme: s}
}
func label(name string) token.Token {
	return token.Token{Kind: token.LABEL, Lexeme: name + ":"}
}

// condSuffix maps a pseudocode comparison operator to the b.cond condition
// suffix it lowers to (signed comparisons: ge/lt/gt/le; equality: eq/ne).
var condSuffix = map[string]string{
	"==": "eq",
	"!=": "ne",
	"<":  "lt",
	"<=": "le",
	">":  "gt",
	">=": "ge",
}

// CondSuffix exposes condSuffix for callers (the pseudocode parser) that
// need to validate an operator before emitting a CMP_BRANCH instruction.
func CondSuffix(op string) (string, bool) {
	s, ok := condSuffix[op]
	return s, ok
}

func threeReg(mnemonic, dst, src1, src2 string) []token.Token {
	return []token.Token{id(mnemonic), reg(dst), comma(), reg(src1), comma(), reg(src2)}
}

// Lower emits the ARM64 token sequence for a single IR instruction.
// Multi-statement expansions (MOD, CMP_BRANCH) are returned as several
// NEWLINE-separated statements within the same token slice; the caller
// appends one more NEWLINE after the whole instruction to separate it
// from the next.
func Lower(inst ir.Instruction) []token.Token {
	switch inst.Op {
	case ir.OpLabel:
		return []token.Token{label(inst.Dst)}

	case ir.OpAdd:
		return threeReg("add", inst.Dst, inst.Src1, inst.Src2)
	case ir.OpSub:
		return threeReg("sub", inst.Dst, inst.Src1, inst.Src2)
	case ir.OpMul:
		return threeReg("mul", inst.Dst, inst.Src1, inst.Src2)

	case ir.OpDiv:
		return threeReg("sdiv", inst.Dst, inst.Src1, inst.Src2)

	case ir.OpMod:
		var out []token.Token
		out = append(out, threeReg("sdiv", inst.Dst, inst.Src1, inst.Src2)...)
		out = append(out, newline())
		out = append(out, threeReg("mul", inst.Dst, inst.Dst, inst.Src2)...)
		out = append(out, newline())
		out = append(out, threeReg("sub", inst.Dst, inst.Src1, inst.Dst)...)
		return out

	case ir.OpMov:
		return threeReg("add", inst.Dst, inst.Src1, "xzr")

	case ir.OpLoad:
		return []token.Token{
			id("ldur"), reg(inst.Dst), comma(),
			lbrack(), reg(inst.Src1), comma(), imm(orZero(inst.Imm)), rbrack(),
		}

	case ir.OpStore:
		return []token.Token{
			id("stur"), reg(inst.Src1), comma(),
			lbrack(), reg(inst.Dst), comma(), imm(orZero(inst.Imm)), rbrack(),
		}

	case ir.OpCmpBranch:
		suffix, ok := CondSuffix(inst.Cond)
		if !ok {
			suffix = inst.Cond
		}
		var out []token.Token
		out = append(out, id("cmp"), reg(inst.Src1), comma(), reg(inst.Src2))
		out = append(out, newline())
		out = append(out, id("b"), dotid("."+suffix), id(inst.Label))
		return out

	case ir.OpBranch:
		return []token.Token{id("b"), id(inst.Label)}

	case ir.OpCall:
		return []token.Token{id("blr"), reg(inst.Src1)}

	case ir.OpRet:
		return []token.Token{id("br"), reg("x30")}

	case ir.OpData8:
		return []token.Token{dotid(".8byte"), imm(inst.Imm)}

	default:
		return nil
	}
}

// orZero returns "0" for an empty immediate field: LOAD/STORE without an
// explicit offset defaults to zero.
func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// LowerProgram lowers a full IR program into a single token stream, with a
// NEWLINE between every IR instruction and between the sub-statements of a
// multi-instruction expansion.
func LowerProgram(prog []ir.Instruction) []token.Token {
	var out []token.Token
	for _, inst := range prog {
		out = append(out, Lower(inst)...)
		out = append(out, newline())
	}
	return out
}
