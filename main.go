package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// flag names
const (
	verboseFlagName  = "verbose"
	examplesFlagName = "examples"
	astFlagName      = "ast"
	parensFlagName   = "parens"
)

func main() {
	// fun test expressions:
	//
	// let x = 2 in let y = x * 3 in y + x
	// let x = 1 in (let x = 2 in x) + x
	//
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:   "letcheck",
		Usage:  "parse and type check let expressions",
		Writer: w,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  verboseFlagName,
				Usage: "log progress to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "type check expressions",
				ArgsUsage: "[EXPR...]",
				Description: "Each argument is checked on its own. Without arguments the " +
					"example set is checked instead.",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:  examplesFlagName,
						Usage: "YAML example set to check instead of the built-in one",
					},
					&cli.BoolFlag{
						Name:  astFlagName,
						Usage: "print the syntax tree of each input",
					},
					&cli.BoolFlag{
						Name:  parensFlagName,
						Usage: "print each input fully parenthesized",
					},
				},
				Action: checkAction,
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of an expression",
				ArgsUsage: "EXPR",
				Action: func(c *cli.Context) error {
					return printTokens(c.App.Writer, strings.NewReader(source(c)))
				},
			},
			{
				Name:      "fmt",
				Usage:     "print an expression in canonical form",
				ArgsUsage: "EXPR",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  parensFlagName,
						Usage: "parenthesize every binary expression",
					},
				},
				Action: func(c *cli.Context) error {
					expr, err := parse(strings.NewReader(source(c)))
					if err != nil {
						return err
					}
					if c.Bool(parensFlagName) {
						fmt.Fprintln(c.App.Writer, parenthesize(expr))
					} else {
						fmt.Fprintln(c.App.Writer, format(expr))
					}
					return nil
				},
			},
		},
	}
}

func checkAction(c *cli.Context) error {
	log := newLogger(c.Bool(verboseFlagName))

	var examples []Example
	var err error
	switch {
	case c.Args().Present():
		for _, arg := range c.Args().Slice() {
			examples = append(examples, Example{Source: arg})
		}
	case c.IsSet(examplesFlagName):
		examples, err = loadExamplesFile(c.Path(examplesFlagName))
	default:
		examples, err = loadBuiltinExamples()
	}
	if err != nil {
		return err
	}

	ch := &checker{
		w:       c.App.Writer,
		log:     log,
		showAST: c.Bool(astFlagName),
		parens:  c.Bool(parensFlagName),
	}
	if failed := ch.run(examples); failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(examples))
	}
	return nil
}

// source joins the command's arguments into one expression,
// so that "letcheck fmt 1 + 2" works without quoting.
func source(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}
