/*
File    : go-lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Lox source files from the command line

The interpreter uses a lexer-parser-resolver-evaluator pipeline to process
Lox code. Exit codes follow the convention:

	0  - success
	64 - incorrect command-line usage
	65 - static error (scan, parse, or resolve)
	70 - runtime error
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/repl"
	"github.com/akashmaji946/go-lox/resolver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION represents the current version of the go-lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Lox >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
   ▄▄▄▄                  ▄▄▄▄▄▄
 ██▀▀▀▀█                 ▀▀██▀▀
██         ▄████▄          ██       ▄████▄   ▀██  ██▀
██  ▄▄▄▄  ██▀  ▀██         ██      ██▀  ▀██    ████
██  ▀▀██  ██    ██  █████  ██      ██    ██    ▄██▄
 ██▄▄▄██  ▀██▄▄██▀         ██▄▄▄   ▀██▄▄██▀   ▄█▀▀█▄
   ▀▀▀▀     ▀▀▀▀           ▀▀▀▀▀▀    ▀▀▀▀    ▀▀▀  ▀▀▀
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
// - redColor: Error messages and critical failures
// - cyanColor: Informational messages (e.g., the AST dump heading)
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// dumpAST controls whether the parsed AST is printed before execution
var dumpAST bool

// rootCmd is the single cobra command driving the interpreter:
// no argument starts the REPL, one argument runs a script file, and
// anything more is a usage error.
var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Lox interpreter",
	Long: `go-lox is a Go implementation of the Lox scripting language.

Lox is a small dynamically typed language with first-class functions,
closures, and classes with single inheritance. Running golox with no
arguments starts an interactive prompt; passing a script path executes
the file.`,
	Version:       VERSION,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "Usage: lox [script]")
			os.Exit(64)
		}
		if len(args) == 1 {
			runFile(args[0])
			return
		}
		// REPL mode: start the interactive interpreter
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before execution (for debugging)")
}

// main is the entry point of the go-lox interpreter.
//
// Usage:
//
//	golox              - Start in REPL (interactive) mode
//	golox <filename>   - Execute the specified Lox source file
//	golox --version    - Display version information
func main() {
	if err := rootCmd.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(64)
	}
}

// runFile reads and executes a Lox source file.
// It handles the complete file execution pipeline:
// 1. Read the file from disk
// 2. Run the source through lexing, parsing, and resolution,
//    exiting with code 65 on any static error
// 3. Evaluate the program, exiting with code 70 on a runtime error
func runFile(fileName string) {
	// Read the file contents
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		// Display file read error in red and exit
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	// Convert file contents from []byte to string for parsing
	source := string(fileContent)

	run(source)
}

// run executes Lox source text end to end.
// Each stage runs to completion before the next; if an earlier stage
// records an error, execution does not start.
func run(source string) {
	// Parse the source code into an Abstract Syntax Tree (AST)
	par := parser.NewParser(source)
	rootNode := par.Parse()

	// Check for scan and parse errors
	// The parser collects errors instead of panicking, allowing multiple
	// errors to be reported in one go
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", err)
		}
		os.Exit(65)
	}

	// Resolve variable depths and check static rules
	res := resolver.NewResolver()
	res.Resolve(rootNode)
	if res.HasErrors() {
		for _, err := range res.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", err)
		}
		os.Exit(65)
	}

	// Optionally print the AST for debugging
	if dumpAST {
		cyanColor.Fprintln(os.Stdout, "Parsed AST:")
		printAST(rootNode)
	}

	// Create evaluator and execute the AST
	evaluator := eval.NewEvaluator()
	evaluator.AddLocals(res.Locals)
	result := evaluator.Interpret(rootNode)

	// A runtime error ends the run; only the first one is reported
	if result != nil && result.GetType() == objects.ErrorType {
		redColor.Fprintf(os.Stderr, "%s\n", result.ToString())
		os.Exit(70)
	}
}

// printAST is a helper function to display the AST structure for debugging.
// It walks the tree with a PrintingVisitor and writes the indented dump
// to standard output.
func printAST(rootNode *parser.RootNode) {
	p := &PrintingVisitor{}
	p.VisitRootNode(rootNode)
	fmt.Println(p.Buf.String())
}
