package main

import (
	"fmt"
	"io"
)

// this file prints the token stream for debugging

// printTokens writes one line per token of the input read from r,
// ending with EOF. It stops at the first lexical error and returns it.
func printTokens(w io.Writer, r io.Reader) error {
	l := newLexer(r)
	for {
		tok, err := l.next()
		if err != nil {
			return err
		}
		pos := posString(tok.Pos)
		switch tok.Kind {
		case NUMBER:
			fmt.Fprintf(w, "%5s  %-8s %d\n", pos, tok.Kind, tok.Num)
		case IDENT:
			fmt.Fprintf(w, "%5s  %-8s %s\n", pos, tok.Kind, tok.Name)
		default:
			fmt.Fprintf(w, "%5s  %s\n", pos, tok.Kind)
		}
		if tok.Kind == EOF {
			return nil
		}
	}
}
