package main

import (
	"io"
	"text/scanner"
)

const scannerMode = scanner.ScanIdents

const whitespace = 1<<' ' | 1<<'\t' | 1<<'\n'

// lexer turns source text into tokens, one per call to next.
//
// Numbers are not left to the scanner: with ScanInts off it hands back
// each digit as a single character and the lexer collects the rest of the
// run itself, so that hex prefixes and digit separators are never accepted.
type lexer struct {
	scanner scanner.Scanner
	err     error
}

func newLexer(r io.Reader) *lexer {
	l := new(lexer)
	l.Init(r)
	return l
}

func (l *lexer) Init(r io.Reader) {
	l.scanner.Init(r)
	// invalid UTF-8 and NUL come back as ordinary characters and are
	// rejected below, so the scanner's own reports are not needed.
	l.scanner.Error = func(*scanner.Scanner, string) {}
	l.scanner.Mode = scannerMode
	l.scanner.Whitespace = whitespace
	l.scanner.IsIdentRune = isIdentRune
}

// next returns the next token.
// Once the input is exhausted it keeps returning EOF,
// and once it has failed it keeps returning the same error.
func (l *lexer) next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	r := l.scanner.Scan()
	pos := l.scanner.Position
	switch {
	case r == scanner.EOF:
		return Token{Kind: EOF, Pos: pos}, nil
	case r == scanner.Ident:
		text := l.scanner.TokenText()
		if kind, ok := keywords[text]; ok {
			return Token{Kind: kind, Pos: pos}, nil
		}
		return Token{Kind: IDENT, Name: text, Pos: pos}, nil
	case isDigit(r):
		return Token{Kind: NUMBER, Num: l.scanNumber(r), Pos: pos}, nil
	}
	if kind, ok := punctuation[r]; ok {
		return Token{Kind: kind, Pos: pos}, nil
	}
	l.err = &UnknownCharacterError{Char: r, Pos: pos}
	return Token{}, l.err
}

// scanNumber accumulates a run of digits starting with first.
// There is no overflow check: the value wraps around like any int64 arithmetic.
func (l *lexer) scanNumber(first rune) int64 {
	n := int64(first - '0')
	for isDigit(l.scanner.Peek()) {
		n = n*10 + int64(l.scanner.Next()-'0')
	}
	return n
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isIdentRune(r rune, i int) bool {
	return isLetter(r) || i > 0 && isDigit(r)
}
