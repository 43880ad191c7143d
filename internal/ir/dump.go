package ir

import (
	"fmt"
	"strings"
)

// Dump renders prog in a human-readable IR dump format, written to the
// diagnostic channel by --dump-ir --high.
func Dump(prog []Instruction) string {
	var sb strings.Builder
	for _, inst := range prog {
		switch inst.Op {
		case OpLabel:
			fmt.Fprintf(&sb, "%s:\n", inst.Dst)
		case OpAdd, OpSub, OpMul, OpDiv, OpMod:
			fmt.Fprintf(&sb, "  %s %s, %s, %s\n", inst.Op, inst.Dst, inst.Src1, inst.Src2)
		case OpMov:
			fmt.Fprintf(&sb, "  MOV %s, %s\n", inst.Dst, inst.Src1)
		case OpLoad:
			fmt.Fprintf(&sb, "  LOAD %s, [%s + %s]\n", inst.Dst, inst.Src1, orZero(inst.Imm))
		case OpStore:
			fmt.Fprintf(&sb, "  STORE [%s + %s], %s\n", inst.Dst, orZero(inst.Imm), inst.Src1)
		case OpCmpBranch:
			fmt.Fprintf(&sb, "  CMP_BRANCH %s %s %s, %s\n", inst.Src1, inst.Cond, inst.Src2, inst.Label)
		case OpBranch:
			fmt.Fprintf(&sb, "  BRANCH %s\n", inst.Label)
		case OpCall:
			fmt.Fprintf(&sb, "  CALL %s\n", inst.Src1)
		case OpRet:
			sb.WriteString("  RET\n")
		case OpData8:
			fmt.Fprintf(&sb, "  DATA8 %s\n", inst.Imm)
		}
	}
	return sb.String()
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
