// Package xref builds a label cross-reference report: where each label is
// defined and every place it is referenced (branch target, ldr literal
// load, or .8byte data word). Built as a Symbol{Definition, References} map
// constructed by walking a parsed program; this pipeline has a small set of
// label-producing constructs — there is no .equ constant, no BL-to-label
// call (CALL here is a register branch) — so the reference kinds are
// correspondingly narrow.
package xref

import (
	"fmt"
	"sort"
	"strings"

	"arm64asm/internal/assembler"
	"arm64asm/internal/token"
)

// RefKind categorizes how a label is referenced.
type RefKind int

const (
	RefBranch RefKind = iota
	RefLoad
	RefData
)

func (k RefKind) String() string {
	switch k {
	case RefBranch:
		return "branch"
	case RefLoad:
		return "load"
	case RefData:
		return "data"
	default:
		return "unknown"
	}
}

// Entry collects everything known about one label.
type Entry struct {
	Name       string
	Defined    bool
	Address    uint64
	References []RefKind
}

// Report is the full cross-reference, label name -> Entry.
type Report map[string]*Entry

// Build assembles toks (to resolve label addresses) and walks the
// statement stream a second time to collect references. Assembly errors
// propagate unchanged — xref never runs on a program that fails to
// assemble.
func Build(toks []token.Token) (Report, error) {
	result, err := assembler.Assemble(toks)
	if err != nil {
		return nil, err
	}

	rep := make(Report)
	addEntry := func(name string) *Entry {
		e, ok := rep[name]
		if !ok {
			e = &Entry{Name: name}
			rep[name] = e
		}
		return e
	}

	for _, name := range result.Symbols.Order() {
		addr, _ := result.Symbols.Lookup(name)
		e := addEntry(name)
		e.Defined = true
		e.Address = addr
	}

	for _, stmt := range assembler.GroupStatements(toks) {
		if len(stmt) == 0 {
			continue
		}
		first := stmt[0]
		if first.Kind == token.DOTID && first.Lexeme == ".8byte" && len(stmt) == 2 && stmt[1].Kind == token.ID {
			addEntry(stmt[1].Lexeme).References = append(addEntry(stmt[1].Lexeme).References, RefData)
			continue
		}
		if first.Kind != token.ID {
			continue
		}
		switch first.Lexeme {
		case "b":
			target := stmt[len(stmt)-1]
			if target.Kind == token.ID {
				addEntry(target.Lexeme).References = append(addEntry(target.Lexeme).References, RefBranch)
			}
		case "ldr":
			if len(stmt) >= 4 && stmt[3].Kind == token.ID {
				addEntry(stmt[3].Lexeme).References = append(addEntry(stmt[3].Lexeme).References, RefLoad)
			}
		}
	}

	return rep, nil
}

// String renders the report sorted by label name, one line per label
// followed by indented reference lines: a terse cross-reference listing.
func (r Report) String() string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, n := range names {
		e := r[n]
		status := "undefined"
		if e.Defined {
			status = fmt.Sprintf("defined at %d", e.Address)
		}
		fmt.Fprintf(&sb, "%s: %s\n", n, status)
		for _, ref := range e.References {
			fmt.Fprintf(&sb, "  %s\n", ref)
		}
	}
	return sb.String()
}
