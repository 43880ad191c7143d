// Command arm64asm is the CLI front end for the ARM64 teaching assembler:
// mode-flag parsing, file/stdin wiring, and the two output channels
// (binary machine code on stdout, diagnostics on stderr). Flags are
// registered with bare flag.Bool/flag.String rather than a subcommand
// framework.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"arm64asm/internal/assembler"
	"arm64asm/internal/codegen"
	"arm64asm/internal/config"
	"arm64asm/internal/inspect"
	"arm64asm/internal/ir"
	"arm64asm/internal/pretoken"
	"arm64asm/internal/pseudo"
	"arm64asm/internal/rawlex"
	"arm64asm/internal/token"
	"arm64asm/internal/xref"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("arm64asm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		tokenized  = fs.Bool("tokenized", false, "read pre-tokenized input (default mode)")
		raw        = fs.Bool("raw", false, "read raw ARM64 assembly text")
		high       = fs.Bool("high", false, "read structured pseudocode")
		dumpIR     = fs.Bool("dump-ir", false, "with --high, dump IR and exit without assembling")
		configPath = fs.String("config", "", "path to a TOML configuration file")
		doInspect  = fs.Bool("inspect", false, "launch the terminal symbol/IR inspector instead of writing to stdout/stderr")
		doXref     = fs.Bool("xref", false, "write a label cross-reference report to the diagnostic channel")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprint(stderr, asmDiagnostic(err))
		return 1
	}

	mode := cfg.Assemble.DefaultMode
	switch {
	case *tokenized:
		mode = "tokenized"
	case *raw:
		mode = "raw"
	case *high:
		mode = "high"
	}

	file := "-"
	if fs.NArg() > 0 {
		file = fs.Arg(0)
	}

	src, err := readInput(file, stdin)
	if err != nil {
		fmt.Fprint(stderr, asmDiagnostic(err))
		return 1
	}

	toks, irDumpText, earlyExit, err := resolveTokens(src, mode, *dumpIR)
	if err != nil {
		fmt.Fprint(stderr, asmDiagnostic(err))
		return 1
	}
	if earlyExit {
		fmt.Fprint(stderr, irDumpText)
		return 0
	}

	result, err := assembler.Assemble(toks)
	if err != nil {
		fmt.Fprint(stderr, asmDiagnostic(err))
		return 1
	}

	symbolText := assembler.DumpSymbols(result.Symbols, cfg.Diagnostics.AddressFormat == "hex")
	if *doXref {
		rep, err := xref.Build(toks)
		if err != nil {
			fmt.Fprint(stderr, asmDiagnostic(err))
			return 1
		}
		symbolText += rep.String()
	}

	if *doInspect || cfg.Inspect.Enabled {
		v := inspect.New(symbolText, irDumpText)
		if err := v.Run(); err != nil {
			fmt.Fprint(stderr, asmDiagnostic(err))
			return 1
		}
		return 0
	}

	if _, err := stdout.Write(result.Code); err != nil {
		fmt.Fprint(stderr, asmDiagnostic(err))
		return 1
	}
	fmt.Fprint(stderr, colorize(symbolText, cfg.Diagnostics.ColorOutput))
	return 0
}

// resolveTokens reads src under the given mode, producing the token stream
// the assembler consumes. When mode is "high" and dumpIR is set, it
// returns earlyExit=true and the IR dump text instead of lowering to
// tokens.
func resolveTokens(src []byte, mode string, dumpIR bool) (toks []token.Token, irDumpText string, earlyExit bool, err error) {
	switch mode {
	case "raw":
		toks, err = rawlex.Lex(string(src))
		return toks, "", false, err

	case "high":
		prog, perr := pseudo.Parse(string(src))
		if perr != nil {
			return nil, "", false, perr
		}
		dump := ir.Dump(prog)
		if dumpIR {
			return nil, dump, true, nil
		}
		return codegen.LowerProgram(prog), dump, false, nil

	default: // "tokenized"
		toks, err = pretoken.Read(newByteReader(src))
		return toks, "", false, err
	}
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, wrapIOErr(err)
	}
	defer f.Close()
	return io.ReadAll(f)
}
