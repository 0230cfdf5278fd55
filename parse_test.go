package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(n int64) Expr { return &IntExpr{Value: n} }
func ref(name string) Expr { return &VarExpr{Name: name} }
func add(l, r Expr) Expr { return &BinExpr{Op: OpAdd, Left: l, Right: r} }
func mul(l, r Expr) Expr { return &BinExpr{Op: OpMul, Left: l, Right: r} }
func let(v string, val, body Expr) Expr {
	return &LetExpr{Var: v, Val: val, Body: body}
}

var parseTests = []struct {
	input string
	want  Expr
}{
	{"42", num(42)},
	{"x", ref("x")},
	{"2 + 3 * 4", add(num(2), mul(num(3), num(4)))},
	{"2 * 3 + 4", add(mul(num(2), num(3)), num(4))},
	{"(2 + 3) * 4", mul(add(num(2), num(3)), num(4))},
	{"1 + 2 + 3", add(add(num(1), num(2)), num(3))},
	{"1 * 2 * 3", mul(mul(num(1), num(2)), num(3))},
	{"1 + (2 + 3)", add(num(1), add(num(2), num(3)))},
	{"2 + 3 * (4 + 5)", add(num(2), mul(num(3), add(num(4), num(5))))},
	{"((7))", num(7)},
	{"let x = 10 in x + 20", let("x", num(10), add(ref("x"), num(20)))},
	{"let x = 2 in let y = x * 3 in y + x",
		let("x", num(2), let("y", mul(ref("x"), num(3)), add(ref("y"), ref("x"))))},
	{"let x = 1 in (let x = 2 in x) + x",
		let("x", num(1), add(let("x", num(2), ref("x")), ref("x")))},
	// the value of a let is a full expr, so it can be another let
	{"let y = let x = 1 in x in y", let("y", let("x", num(1), ref("x")), ref("y"))},
	{"(let a = 1 in a) * 2", mul(let("a", num(1), ref("a")), num(2))},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTests {
		got, err := parse(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("parse(%q) failed: %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestParse_Grouping(t *testing.T) {
	for _, tt := range []struct {
		input, want string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"1 + 2 + 3 + 4", "(((1 + 2) + 3) + 4)"},
		{"1 * 2 + 3 * 4", "((1 * 2) + (3 * 4))"},
		{"(1 + 2) * (3 + 4)", "((1 + 2) * (3 + 4))"},
		{"2 + 3 * (4 + 5)", "(2 + (3 * (4 + 5)))"},
	} {
		e, err := parse(strings.NewReader(tt.input))
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, parenthesize(e), tt.input)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected []TokenKind
		actual   TokenKind
	}{
		{"let x = 1 in", operandStart, EOF},
		{"", operandStart, EOF},
		{"1 +", operandStart, EOF},
		{"(1 + 2", []TokenKind{RPAREN}, EOF},
		{"1 + 2)", []TokenKind{EOF}, RPAREN},
		{"1 + 2 garbage", []TokenKind{EOF}, IDENT},
		{"1 2", []TokenKind{EOF}, NUMBER},
		{"let x 1 in x", []TokenKind{EQUALS}, NUMBER},
		{"let x = 1 x", []TokenKind{IN}, IDENT},
		{"let x = 1", []TokenKind{IN}, EOF},
		{"1 + let x = 1 in x", operandStart, LET},
		{"in", operandStart, IN},
		{"* 2", operandStart, STAR},
	} {
		e, err := parse(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("parse(%q) = %# v, expected an error", tt.input, pretty.Formatter(e))
			continue
		}
		assert.Nil(t, e, tt.input)
		var ut *UnexpectedTokenError
		if !errors.As(err, &ut) {
			t.Errorf("parse(%q): expected UnexpectedTokenError, got %T: %v", tt.input, err, err)
			continue
		}
		assert.Equal(t, tt.expected, ut.Expected, tt.input)
		assert.Equal(t, tt.actual, ut.Actual.Kind, tt.input)
	}
}

func TestParse_MissingIdentifier(t *testing.T) {
	for _, input := range []string{"let = 1 in 2", "let 5 = 1 in 2", "let", "let let x = 1 in x"} {
		_, err := parse(strings.NewReader(input))
		var mi *MissingIdentifierError
		if assert.True(t, errors.As(err, &mi), "%q: got %v", input, err) {
			var se SyntaxError
			assert.True(t, errors.As(err, &se))
		}
	}
}

func TestParse_LexErrorStopsParse(t *testing.T) {
	_, err := parse(strings.NewReader("let x = 1 in x @ 2"))
	var uc *UnknownCharacterError
	require.True(t, errors.As(err, &uc), "got %v", err)
	assert.Equal(t, '@', uc.Char)
	assert.Equal(t, "1:16: unknown character '@'", err.Error())
}

func TestParse_ErrorMessages(t *testing.T) {
	for _, tt := range []struct {
		input, want string
	}{
		{"let x = 1 in", `1:13: expected one of NUMBER IDENT "(", found EOF`},
		{"(1", `1:3: expected ")", found EOF`},
		{"1 + 2 garbage", "1:7: expected EOF, found IDENT(garbage)"},
		{"let = 1 in 2", `1:5: expected identifier after let, found "="`},
	} {
		_, err := parse(strings.NewReader(tt.input))
		require.Error(t, err, tt.input)
		assert.Equal(t, tt.want, err.Error(), tt.input)
	}
}
