// Package symtab implements an insertion-ordered label table: a map-backed
// Define/Lookup pair plus definition-order tracking for the diagnostic
// dump. Simplified to what the assembler core actually needs: a label
// always has a known address by the time it's looked up in pass 2 (no
// forward-reference relocation bookkeeping — pass 1 fully resolves every
// label before pass 2 begins).
package symtab

import "arm64asm/internal/asmerr"

// SymbolTable maps label names to 64-bit byte addresses, preserving
// first-definition order for the post-assembly diagnostic dump.
type SymbolTable struct {
	addrs map[string]uint64
	names []string
}

// New creates an empty symbol table.
func New() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]uint64)}
}

// Define inserts a new label at address. Redefining an existing label is a
// fatal DuplicateLabel error. The map and the order slice are updated
// together; if Define returns an error, neither was touched.
func (st *SymbolTable) Define(name string, address uint64) error {
	if _, exists := st.addrs[name]; exists {
		return asmerr.Newf(asmerr.DuplicateLabel, "label %q defined more than once", name)
	}
	st.addrs[name] = address
	st.names = append(st.names, name)
	return nil
}

// Lookup returns the address of name, or UndefinedLabel if it was never
// defined.
func (st *SymbolTable) Lookup(name string) (uint64, error) {
	addr, ok := st.addrs[name]
	if !ok {
		return 0, asmerr.Newf(asmerr.UndefinedLabel, "undefined label %q", name)
	}
	return addr, nil
}

// Contains reports whether name has been defined.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.addrs[name]
	return ok
}

// Order returns label names in first-definition order.
func (st *SymbolTable) Order() []string {
	out := make([]string, len(st.names))
	copy(out, st.names)
	return out
}

// Len returns the number of defined labels.
func (st *SymbolTable) Len() int {
	return len(st.names)
}
