package encoder_test

import (
	"testing"

	"arm64asm/internal/asmerr"
	"arm64asm/internal/encoder"
)

func TestReadReg(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"x0", 0, false},
		{"x30", 30, false},
		{"xzr", 31, false},
		{"sp", 31, false},
		{"x31", 0, true}, // x31 is not a valid general register lexeme
		{"w1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := encoder.ReadReg(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ReadReg(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ReadReg(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadReg(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadImm(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"-8", -8, false},
		{"+8", 8, false},
		{"0x10", 16, false},
		{"0X1F", 31, false},
		{"not-a-number", 0, true},
	}

	for _, tt := range tests {
		got, err := encoder.ReadImm(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ReadImm(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ReadImm(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadImm(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidSignedImm(t *testing.T) {
	if !encoder.ValidSignedImm(255, 9) {
		t.Error("255 should fit in 9 bits")
	}
	if !encoder.ValidSignedImm(-256, 9) {
		t.Error("-256 should fit in 9 bits")
	}
	if encoder.ValidSignedImm(256, 9) {
		t.Error("256 should not fit in 9 bits")
	}
	if encoder.ValidSignedImm(-257, 9) {
		t.Error("-257 should not fit in 9 bits")
	}
}

func TestCondValue(t *testing.T) {
	tests := []struct {
		suffix string
		want   uint32
	}{
		{"eq", 0}, {"EQ", 0}, {"ne", 1},
		{"hs", 2}, {"lo", 3}, {"hi", 8}, {"ls", 9},
		{"ge", 10}, {"lt", 11}, {"gt", 12}, {"le", 13},
	}
	for _, tt := range tests {
		got, err := encoder.CondValue(tt.suffix)
		if err != nil {
			t.Errorf("CondValue(%q): unexpected error: %v", tt.suffix, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CondValue(%q) = %d, want %d", tt.suffix, got, tt.want)
		}
	}

	if _, err := encoder.CondValue("xx"); err == nil {
		t.Error("CondValue(xx): expected error")
	}
}

// TestEncodeThreeRegister verifies the shared rrrField layout: Rd | (Rn<<5)
// | (Rm<<16) ORed onto each mnemonic's base word.
func TestEncodeThreeRegister(t *testing.T) {
	bases := map[string]uint32{
		"add": 0x8B206000, "sub": 0xCB206000, "mul": 0x9B007C00,
		"smulh": 0x9B407C00, "umulh": 0x9BC07C00, "sdiv": 0x9AC00C00, "udiv": 0x9AC00800,
	}
	rd, rn, rm := int64(1), int64(2), int64(3)
	for mnemonic, base := range bases {
		word, err := encoder.Encode(mnemonic, rd, rn, rm)
		if err != nil {
			t.Fatalf("Encode(%s): %v", mnemonic, err)
		}
		want := base | uint32(rd) | (uint32(rn) << 5) | (uint32(rm) << 16)
		if word != want {
			t.Errorf("Encode(%s, 1, 2, 3) = %#x, want %#x", mnemonic, word, want)
		}
	}
}

func TestEncodeCmp(t *testing.T) {
	word, err := encoder.Encode("cmp", 2, 3, 0)
	if err != nil {
		t.Fatalf("Encode(cmp): %v", err)
	}
	want := uint32(0xEB20601F) | (2 << 5) | (3 << 16)
	if word != want {
		t.Errorf("Encode(cmp, 2, 3, 0) = %#x, want %#x", word, want)
	}
}

func TestEncodeBrBlr(t *testing.T) {
	word, err := encoder.Encode("br", 30, 0, 0)
	if err != nil {
		t.Fatalf("Encode(br): %v", err)
	}
	if want := uint32(0xD61F0000) | (30 << 5); word != want {
		t.Errorf("Encode(br, 30, 0, 0) = %#x, want %#x", word, want)
	}

	word, err = encoder.Encode("blr", 9, 0, 0)
	if err != nil {
		t.Fatalf("Encode(blr): %v", err)
	}
	if want := uint32(0xD63F0000) | (9 << 5); word != want {
		t.Errorf("Encode(blr, 9, 0, 0) = %#x, want %#x", word, want)
	}
}

func TestEncodeLdurStur(t *testing.T) {
	word, err := encoder.Encode("ldur", 0, 1, 16)
	if err != nil {
		t.Fatalf("Encode(ldur): %v", err)
	}
	want := uint32(0xF8400000) | 0 | (1 << 5) | (16 << 12)
	if word != want {
		t.Errorf("Encode(ldur, 0, 1, 16) = %#x, want %#x", word, want)
	}

	if _, err := encoder.Encode("ldur", 0, 1, 1000); err == nil {
		t.Error("Encode(ldur) with out-of-range immediate: expected error")
	} else if kindOf(err) != asmerr.ImmediateRange {
		t.Errorf("Encode(ldur) error kind = %v, want ImmediateRange", kindOf(err))
	}
}

func TestEncodeLdr(t *testing.T) {
	word, err := encoder.Encode("ldr", 0, 16, 0)
	if err != nil {
		t.Fatalf("Encode(ldr): %v", err)
	}
	want := uint32(0x58000000) | 0 | (uint32(4) << 5)
	if word != want {
		t.Errorf("Encode(ldr, 0, 16, 0) = %#x, want %#x", word, want)
	}

	if _, err := encoder.Encode("ldr", 0, 3, 0); err == nil {
		t.Error("Encode(ldr) with unaligned offset: expected error")
	} else if kindOf(err) != asmerr.ImmediateRange {
		t.Errorf("Encode(ldr) error kind = %v, want ImmediateRange", kindOf(err))
	}
}

func TestEncodeB(t *testing.T) {
	// A backward branch of -4 bytes: q = -1, masked to 26 bits.
	word, err := encoder.Encode("b", -4, 0, 0)
	if err != nil {
		t.Fatalf("Encode(b): %v", err)
	}
	want := uint32(0x14000000) | 0x3FFFFFF // -1 masked to 26 bits
	if word != want {
		t.Errorf("Encode(b, -4, 0, 0) = %#x, want %#x", word, want)
	}
}

func TestEncodeBCond(t *testing.T) {
	word, err := encoder.Encode("b.cond", 0, 8, 0)
	if err != nil {
		t.Fatalf("Encode(b.cond): %v", err)
	}
	want := uint32(0x54000000) | (uint32(2) << 5) | 0
	if word != want {
		t.Errorf("Encode(b.cond, eq, 8, 0) = %#x, want %#x", word, want)
	}
}

func TestEncodeUnknownMnemonic(t *testing.T) {
	if _, err := encoder.Encode("xyz", 0, 0, 0); err == nil {
		t.Error("Encode(xyz): expected error")
	} else if kindOf(err) != asmerr.UnknownInstruction {
		t.Errorf("Encode(xyz) error kind = %v, want UnknownInstruction", kindOf(err))
	}
}

func TestPutUint32LE(t *testing.T) {
	got := encoder.PutUint32LE(nil, 0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytesEqual(got, want) {
		t.Errorf("PutUint32LE = % x, want % x", got, want)
	}
}

func TestPutUint64LE(t *testing.T) {
	got := encoder.PutUint64LE(nil, 0x0102030405060708)
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	if !bytesEqual(got, want) {
		t.Errorf("PutUint64LE = % x, want % x", got, want)
	}
}

func kindOf(err error) asmerr.Kind {
	if ae, ok := err.(*asmerr.Error); ok {
		return ae.Kind
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
