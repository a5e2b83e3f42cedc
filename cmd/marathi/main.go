package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/oarkflow/log"

	"marathi/interpreter-go/pkg/driver"
	"marathi/interpreter-go/pkg/interpreter"
	"marathi/interpreter-go/pkg/lexer"
	"marathi/interpreter-go/pkg/parser"
	"marathi/interpreter-go/pkg/runtime"
)

const cliVersion = "marathi 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	argv := append([]string{"marathi"}, args...)
	opts, optind, err := getopt.Getopts(argv, "taVh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return 1
	}

	dumpTokens := false
	dumpAST := false
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			dumpTokens = true
		case 'a':
			dumpAST = true
		case 'V':
			fmt.Fprintln(os.Stdout, cliVersion)
			return 0
		case 'h':
			printUsage()
			return 0
		}
	}

	rest := argv[optind:]
	var entry string
	switch len(rest) {
	case 0:
		manifestPath, err := driver.FindManifest(".")
		if err != nil {
			if errors.Is(err, driver.ErrManifestNotFound) {
				printUsage()
				return 1
			}
			color.Red("failed to locate manifest: %v", err)
			return 1
		}
		manifest, err := driver.LoadManifest(manifestPath)
		if err != nil {
			color.Red("%v", err)
			return 1
		}
		entry = manifest.EntryPath()
	case 1:
		entry = rest[0]
	default:
		printUsage()
		return 1
	}

	source, err := driver.LoadSource(entry)
	if err != nil {
		color.Red("%v", err)
		return 1
	}

	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		color.Red("%v", err)
		return 1
	}
	if dumpTokens {
		for _, tok := range tokens {
			fmt.Fprintln(os.Stdout, tok)
		}
		return 0
	}

	program, err := parser.New(tokens).Parse()
	if err != nil {
		color.Red("%v", err)
		return 1
	}
	if dumpAST {
		data, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			color.Red("failed to encode AST: %v", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, string(data))
		return 0
	}

	interp := interpreter.New(interpreter.Options{
		Stdin:  os.Stdin,
		Logger: &log.DefaultLogger,
	})
	if err := interp.Interpret(program); err != nil {
		var rtErr *runtime.Error
		if errors.As(err, &rtErr) {
			color.Red("runtime error: %s", rtErr.Message)
		} else {
			color.Red("%v", err)
		}
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: marathi [-t] [-a] [-V] <file.marathi>")
	fmt.Fprintln(os.Stderr, "  -t  dump the token stream and exit")
	fmt.Fprintln(os.Stderr, "  -a  dump the parsed AST as JSON and exit")
	fmt.Fprintln(os.Stderr, "  -V  print version")
	fmt.Fprintln(os.Stderr, "with no file, the main entry from marathi.yml is run")
}
