package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

var errNoInput = errors.New("no input")

// inputArg picks the single document a command reads. On a terminal the
// document is a file argument or, with -stdin, standard input. When
// standard input is piped it is always the document.
func (cfg *MainConfig) inputArg(cc *cli.Context, args []string) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
	}
	hasFile := len(args) == 1 && args[0] != "-"
	if stdinPiped(cc.In) {
		if hasFile {
			return "", fmt.Errorf("%w: cannot use a file argument when stdin is piped", cli.ErrUsage)
		}
		return "-", nil
	}
	switch {
	case cfg.Stdin && hasFile:
		return "", fmt.Errorf("%w: cannot use -stdin with a file argument", cli.ErrUsage)
	case cfg.Stdin, len(args) == 1:
		if !hasFile {
			fmt.Fprintln(stderr, "Reading multiple lines, end with Ctrl+D")
			return "-", nil
		}
		return args[0], nil
	}
	return "", fmt.Errorf("%w: missing file argument or -stdin", cli.ErrUsage)
}

// stdinPiped reports whether in is a pipe or a redirected file rather
// than a terminal or a device such as /dev/null.
func stdinPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return in != nil
	}
	if isTerminal(f) {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeNamedPipe != 0 || st.Mode().IsRegular()
}

// readDoc parses the document named by name, "-" being stdin.
func (cfg *MainConfig) readDoc(cc *cli.Context, name string, st *parse.Stats) (*ir.Value, error) {
	opts := cfg.parseOpts(st)
	if name == "-" {
		if cfg.Strategy == parse.Buffered {
			cfg.logInput(name, "stream")
			return parse.ParseReader(cc.In, opts...)
		}
		cfg.logInput(name, "data")
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return parseTrimmed(d, opts)
	}
	if cfg.Trim {
		cfg.logInput(name, "string")
		d, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		return parseTrimmed(d, opts)
	}
	cfg.logInput(name, cfg.Strategy.String())
	return parse.ParseFile(name, cfg.Strategy, opts...)
}

func parseTrimmed(d []byte, opts []parse.ParseOption) (*ir.Value, error) {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return nil, errNoInput
	}
	return parse.Parse(d, opts...)
}

func (cfg *MainConfig) logInput(name, method string) {
	if !cfg.Verbose {
		return
	}
	if name == "-" {
		name = "stdin"
	}
	theLog.Info("parsing", "input", name, "method", method)
}

func printStats(st *parse.Stats) {
	fmt.Fprintln(stderr, st.String())
}
