package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/xiam/arith"
	"github.com/xiam/arith/lexer"
)

var errArguments = errors.New("Incorrect number of arguments")

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("arith", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())

	showTokens := fs.Bool("tokens", false, "print the tokens of the expression and exit")
	debug := fs.Bool("debug", false, "dump the expression tree")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errArguments
	}
	input := fs.Arg(0)

	if *showTokens {
		tokens, err := lexer.Tokenize([]byte(input))
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok)
		}
		return nil
	}

	res, err := arith.Evaluate(input)
	if err != nil {
		return err
	}

	for _, diag := range res.Diagnostics {
		logger.Printf("warning: %v", diag)
	}
	if *debug {
		fmt.Fprintln(stdout, repr.String(res.Tree, repr.Indent("  ")))
	}

	fmt.Fprintf(stdout, "expr: %s\n", res.Expr)
	fmt.Fprintf(stdout, "eval: %v\n", res.Value)
	return nil
}

func main() {
	logger := log.New(os.Stderr, "", 0)

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}
}
