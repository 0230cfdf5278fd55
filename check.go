package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jcgregorio/slog"
	"github.com/kr/pretty"
)

var (
	okColor      = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

// checker runs examples through the pipeline and reports on each one.
type checker struct {
	w   io.Writer
	log slog.Logger

	showAST bool // pretty-print the tree of every input that parses
	parens  bool // print the fully parenthesized form of every input that parses
}

// run checks every example in order and returns how many did not
// turn out as expected. A failing example never stops the ones after it.
func (c *checker) run(examples []Example) int {
	failed := 0
	for _, ex := range examples {
		res := c.check(ex)
		if err := res.verify(); err != nil {
			warningColor.Fprintf(c.w, "    FAIL %s\n", err)
			failed++
		}
	}
	c.log.Info(fmt.Sprintf("checked %d inputs, %d failed", len(examples), failed))
	return failed
}

func (c *checker) check(ex Example) Result {
	c.log.Info(fmt.Sprintf("checking %s %q", ex.Name, ex.Source))
	res := checkExample(ex)
	if res.Expr != nil {
		if c.showAST {
			pretty.Fprintf(c.w, "%# v\n", res.Expr)
		}
		if c.parens {
			fmt.Fprintln(c.w, parenthesize(res.Expr))
		}
		if free := freeVars(res.Expr); len(free) > 0 {
			c.log.Info(fmt.Sprintf("free variables: %s", strings.Join(free, " ")))
		}
	}
	switch res.category() {
	case "":
		okColor.Fprint(c.w, "ok          ")
		fmt.Fprintf(c.w, " %s : %s\n", ex.Source, res.Type)
	case syntaxCategory:
		errorColor.Fprint(c.w, "syntax error")
		fmt.Fprintf(c.w, " %s : %s\n", ex.Source, res.Err)
	case typeCategory:
		errorColor.Fprint(c.w, "type error  ")
		fmt.Fprintf(c.w, " %s : %s\n", ex.Source, res.Err)
	}
	return res
}
