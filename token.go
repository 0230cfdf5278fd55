package main

import (
	"fmt"
	"text/scanner"
)

// TokenKind identifies the category of a lexed token.
type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER // decimal integer literal
	IDENT  // variable name

	// keywords
	LET // "let"
	IN  // "in"

	EQUALS // =
	PLUS   // +
	STAR   // *
	LPAREN // (
	RPAREN // )
)

var tokenNames = [...]string{
	EOF:    "EOF",
	NUMBER: "NUMBER",
	IDENT:  "IDENT",
	LET:    "let",
	IN:     "in",
	EQUALS: "=",
	PLUS:   "+",
	STAR:   "*",
	LPAREN: "(",
	RPAREN: ")",
}

func (k TokenKind) String() string {
	if int(k) >= 0 && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// quoted is the kind's name as it appears in messages:
// literal text is quoted, token classes are not.
func (k TokenKind) quoted() string {
	switch k {
	case EOF, NUMBER, IDENT:
		return k.String()
	default:
		return fmt.Sprintf("%q", k.String())
	}
}

var keywords = map[string]TokenKind{
	"let": LET,
	"in":  IN,
}

var punctuation = map[rune]TokenKind{
	'+': PLUS,
	'*': STAR,
	'(': LPAREN,
	')': RPAREN,
	'=': EQUALS,
}

// Token is a single lexical unit.
// Num is set only for NUMBER tokens and Name only for IDENT tokens.
type Token struct {
	Kind TokenKind
	Num  int64
	Name string
	Pos  scanner.Position
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("NUMBER(%d)", t.Num)
	case IDENT:
		return fmt.Sprintf("IDENT(%s)", t.Name)
	default:
		return t.Kind.quoted()
	}
}
