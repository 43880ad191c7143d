// Package encoder implements a bit-exact ARM64 instruction encoder: one
// 32-bit word per mnemonic, built as a base word ORed with operand-derived
// fields, with precondition-checked register and immediate decoding, over
// a fixed AArch64 subset rather than the full ISA. Routed to one file per
// instruction family (arithmetic.go, branch.go, memory.go, condition.go),
// dispatched from the Encode switch below.
package encoder

import (
	"strconv"
	"strings"

	"arm64asm/internal/asmerr"
)

// ReadReg decodes a register lexeme into its number 0..31. "xzr" and "sp"
// both decode to 31; "xN" decodes to N for 0<=N<=30. Callers (the
// assembler's operand-pattern decoder) are responsible for rejecting "sp"
// where a "z" slot is required and "xzr" where an "r" slot is required —
// this function only knows how to turn a lexeme into a number.
func ReadReg(s string) (uint32, error) {
	if s == "xzr" || s == "sp" {
		return 31, nil
	}
	if strings.HasPrefix(s, "x") {
		n, err := strconv.ParseUint(s[1:], 10, 32)
		if err == nil && n <= 30 {
			return uint32(n), nil
		}
	}
	return 0, asmerr.Newf(asmerr.InvalidRegister, "invalid register: %q", s)
}

// ReadImm parses a decimal (optionally signed) or hex (0x/0X prefix,
// case-insensitive) immediate literal.
func ReadImm(s string) (int64, error) {
	neg := false
	t := s
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	} else if strings.HasPrefix(t, "+") {
		t = t[1:]
	}
	var v uint64
	var err error
	if strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X") {
		v, err = strconv.ParseUint(t[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(t, 10, 64)
	}
	if err != nil {
		return 0, asmerr.Newf(asmerr.SyntaxError, "invalid immediate: %q", s)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}

// ValidSignedImm reports whether v fits in a two's-complement field of the
// given bit width: -2^(bits-1) <= v <= 2^(bits-1)-1.
func ValidSignedImm(v int64, bits uint) bool {
	lo := -(int64(1) << (bits - 1))
	hi := (int64(1) << (bits - 1)) - 1
	return v >= lo && v <= hi
}

// mask truncates v to its two's-complement representation in the given bit
// width (negative values wrap to fill the field).
func mask(v int64, bits uint) uint32 {
	return uint32(v) & ((1 << bits) - 1)
}

// Encode produces the 32-bit word for mnemonic given its decoded operand
// slots. The meaning of a, b, c depends on the mnemonic's operand pattern:
// for three-register arithmetic they are (rd, rn, rm); for cmp (rn, rm);
// for br/blr (rn); for ldur/stur (rt, rn, imm9); for ldr (rd, pcOffset);
// for b (pcOffset); for b.cond (cond, pcOffset).
func Encode(mnemonic string, a, b, c int64) (uint32, error) {
	switch mnemonic {
	case "add", "sub", "mul", "smulh", "umulh", "sdiv", "udiv":
		return encodeArithmetic(mnemonic, a, b, c)
	case "cmp":
		return encodeCmp(a, b)
	case "br", "blr":
		return encodeBranchReg(mnemonic, a)
	case "ldur", "stur":
		return encodeLdurStur(mnemonic, a, b, c)
	case "ldr":
		return encodeLdr(a, b)
	case "b":
		return encodeB(a)
	case "b.cond":
		return encodeBCond(a, b)
	default:
		return 0, asmerr.Newf(asmerr.UnknownInstruction, "unknown mnemonic: %q", mnemonic)
	}
}

// PutUint32LE appends the little-endian bytes of w.
func PutUint32LE(buf []byte, w uint32) []byte {
	return append(buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
}

// PutUint64LE appends the little-endian bytes of w.
func PutUint64LE(buf []byte, w uint64) []byte {
	return append(buf,
		byte(w), byte(w>>8), byte(w>>16), byte(w>>24),
		byte(w>>32), byte(w>>40), byte(w>>48), byte(w>>56))
}
