package encoder

// base words for the three-register data-processing family.
const (
	baseAdd   = 0x8B206000
	baseSub   = 0xCB206000
	baseMul   = 0x9B007C00
	baseSmulh = 0x9B407C00
	baseUmulh = 0x9BC07C00
	baseSdiv  = 0x9AC00C00
	baseUdiv  = 0x9AC00800
	baseCmp   = 0xEB20601F
)

// rrrField packs Rd | (Rn<<5) | (Rm<<16), the field layout shared by
// add/sub/mul/smulh/umulh/sdiv/udiv.
func rrrField(rd, rn, rm uint32) uint32 {
	return rd | (rn << 5) | (rm << 16)
}

func encodeArithmetic(mnemonic string, a, b, c int64) (uint32, error) {
	rd, rn, rm := uint32(a), uint32(b), uint32(c)
	switch mnemonic {
	case "add":
		return baseAdd | rrrField(rd, rn, rm), nil
	case "sub":
		return baseSub | rrrField(rd, rn, rm), nil
	case "mul":
		return baseMul | rrrField(rd, rn, rm), nil
	case "smulh":
		return baseSmulh | rrrField(rd, rn, rm), nil
	case "umulh":
		return baseUmulh | rrrField(rd, rn, rm), nil
	case "sdiv":
		return baseSdiv | rrrField(rd, rn, rm), nil
	default: // "udiv"
		return baseUdiv | rrrField(rd, rn, rm), nil
	}
}

func encodeCmp(a, b int64) (uint32, error) {
	rn, rm := uint32(a), uint32(b)
	return baseCmp | (rn << 5) | (rm << 16), nil
}
