package encoder

import "arm64asm/internal/asmerr"

// base words for the memory-access family.
const (
	baseLdur = 0xF8400000
	baseStur = 0xF8000000
	baseLdr  = 0x58000000
)

func encodeLdurStur(mnemonic string, a, b, c int64) (uint32, error) {
	rt, rn, imm := uint32(a), uint32(b), c
	if !ValidSignedImm(imm, 9) {
		return 0, asmerr.Newf(asmerr.ImmediateRange, "ldur/stur immediate out of range: %d", imm)
	}
	var base uint32 = baseLdur
	if mnemonic == "stur" {
		base = baseStur
	}
	return base | rt | (rn << 5) | (mask(imm, 9) << 12), nil
}

func encodeLdr(a, off int64) (uint32, error) {
	rd := uint32(a)
	if off%4 != 0 {
		return 0, asmerr.Newf(asmerr.ImmediateRange, "ldr offset not word-aligned: %d", off)
	}
	q := off / 4
	if !ValidSignedImm(q, 19) {
		return 0, asmerr.Newf(asmerr.ImmediateRange, "ldr offset out of range: %d", off)
	}
	return baseLdr | rd | (mask(q, 19) << 5), nil
}
