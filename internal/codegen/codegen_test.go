package codegen_test

import (
	"testing"

	"arm64asm/internal/codegen"
	"arm64asm/internal/ir"
	"arm64asm/internal/token"
)

func TestLowerLabel(t *testing.T) {
	toks := codegen.Lower(ir.Label("loop"))
	want := []token.Token{{Kind: token.LABEL, Lexeme: "loop:"}}
	assertTokens(t, toks, want)
}

func TestLowerAdd(t *testing.T) {
	toks := codegen.Lower(ir.Arith(ir.OpAdd, "x1", "x2", "x3"))
	want := []token.Token{
		{Kind: token.ID, Lexeme: "add"},
		{Kind: token.REG, Lexeme: "x1"},
		{Kind: token.COMMA, Lexeme: ","},
		{Kind: token.REG, Lexeme: "x2"},
		{Kind: token.COMMA, Lexeme: ","},
		{Kind: token.REG, Lexeme: "x3"},
	}
	assertTokens(t, toks, want)
}

func TestLowerMov(t *testing.T) {
	toks := codegen.Lower(ir.Mov("x1", "x2"))
	// MOV lowers to "add x1, x2, xzr".
	if len(toks) != 6 {
		t.Fatalf("got %d tokens, want 6: %+v", len(toks), toks)
	}
	if toks[0].Lexeme != "add" {
		t.Errorf("mnemonic = %q, want add", toks[0].Lexeme)
	}
	last := toks[5]
	if last.Kind != token.ZREG || last.Lexeme != "xzr" {
		t.Errorf("last operand = %+v, want ZREG(xzr)", last)
	}
}

func TestLowerMod(t *testing.T) {
	toks := codegen.Lower(ir.Arith(ir.OpMod, "x1", "x2", "x3"))
	// sdiv x1, x2, x3 \n mul x1, x1, x3 \n sub x1, x2, x1
	mnemonics := []string{}
	for _, tok := range toks {
		if tok.Kind == token.ID {
			mnemonics = append(mnemonics, tok.Lexeme)
		}
	}
	want := []string{"sdiv", "mul", "sub"}
	if len(mnemonics) != len(want) {
		t.Fatalf("mnemonics = %v, want %v", mnemonics, want)
	}
	for i := range want {
		if mnemonics[i] != want[i] {
			t.Errorf("mnemonic %d = %q, want %q", i, mnemonics[i], want[i])
		}
	}
	newlines := 0
	for _, tok := range toks {
		if tok.Kind == token.NEWLINE {
			newlines++
		}
	}
	if newlines != 2 {
		t.Errorf("MOD lowering has %d internal NEWLINE separators, want 2", newlines)
	}
}

func TestLowerLoadDefaultsOffsetToZero(t *testing.T) {
	toks := codegen.Lower(ir.Load("x1", "x2", ""))
	found := false
	for _, tok := range toks {
		if tok.Kind == token.INT && tok.Lexeme == "0" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a zero-immediate operand for an omitted LOAD offset, got %+v", toks)
	}
}

func TestLowerCmpBranch(t *testing.T) {
	toks := codegen.Lower(ir.CmpBranch("x1", "x2", "<", "loop"))
	// Only the first token of each statement is a mnemonic; the branch
	// target "loop" is also an ID token.
	mnemonics := []string{}
	atStart := true
	for _, tok := range toks {
		if atStart && tok.Kind == token.ID {
			mnemonics = append(mnemonics, tok.Lexeme)
		}
		atStart = tok.Kind == token.NEWLINE
	}
	if len(mnemonics) != 2 || mnemonics[0] != "cmp" || mnemonics[1] != "b" {
		t.Fatalf("mnemonics = %v, want [cmp b]", mnemonics)
	}

	var sawCond bool
	for _, tok := range toks {
		if tok.Kind == token.DOTID && tok.Lexeme == ".lt" {
			sawCond = true
		}
	}
	if !sawCond {
		t.Errorf("expected a .lt condition suffix token, got %+v", toks)
	}
}

func TestLowerRet(t *testing.T) {
	toks := codegen.Lower(ir.Ret())
	want := []token.Token{
		{Kind: token.ID, Lexeme: "br"},
		{Kind: token.REG, Lexeme: "x30"},
	}
	assertTokens(t, toks, want)
}

func TestCondSuffix(t *testing.T) {
	tests := map[string]string{
		"==": "eq", "!=": "ne", "<": "lt", "<=": "le", ">": "gt", ">=": "ge",
	}
	for op, want := range tests {
		got, ok := codegen.CondSuffix(op)
		if !ok {
			t.Errorf("CondSuffix(%q): not found", op)
			continue
		}
		if got != want {
			t.Errorf("CondSuffix(%q) = %q, want %q", op, got, want)
		}
	}

	if _, ok := codegen.CondSuffix("???"); ok {
		t.Error("CondSuffix(???) = true, want false")
	}
}

func TestLowerProgramSeparatesInstructionsWithNewline(t *testing.T) {
	prog := []ir.Instruction{ir.Ret(), ir.Ret()}
	toks := codegen.LowerProgram(prog)

	newlines := 0
	for _, tok := range toks {
		if tok.Kind == token.NEWLINE {
			newlines++
		}
	}
	if newlines != 2 {
		t.Errorf("LowerProgram of 2 RETs has %d NEWLINEs, want 2", newlines)
	}
}

func assertTokens(t *testing.T, got, want []token.Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d:\n got=%+v\nwant=%+v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
