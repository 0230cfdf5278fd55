package main

import (
	"bytes"
	"fmt"
	"strconv"
)

// format.go converts an AST back to source code

type formatter struct {
	buf bytes.Buffer
	// parens puts every binary expression in parentheses,
	// which makes the grouping chosen by the parser visible.
	parens bool
}

// format returns source text for expr using as few parentheses as possible.
// Parsing the result gives back an identical tree.
func format(expr Expr) string {
	var f formatter
	f.visitExpr(expr, 0)
	return f.buf.String()
}

// parenthesize is like format but wraps every binary expression in parentheses:
// "2 + 3 * 4" comes out as "(2 + (3 * 4))".
func parenthesize(expr Expr) string {
	f := formatter{parens: true}
	f.visitExpr(expr, 0)
	return f.buf.String()
}

var binOpPrec = map[Op]int{
	OpAdd: 1,
	OpMul: 2,
}

// visitExpr writes e in a context that binds with precedence prec.
// Precedence 0 is a context where a let may appear unparenthesized.
func (f *formatter) visitExpr(e Expr, prec int) {
	switch e := e.(type) {
	case *VarExpr:
		f.write(e.Name)
	case *IntExpr:
		f.write(strconv.FormatInt(e.Value, 10))
	case *BinExpr:
		op, ok := binOpPrec[e.Op]
		if !ok {
			op = 1
		}
		paren := f.parens || op < prec
		if paren {
			f.write("(")
		}
		f.visitExpr(e.Left, op)
		f.write(" " + string(e.Op) + " ")
		// operators are left-associative, so an equal-precedence
		// right operand needs parentheses
		f.visitExpr(e.Right, op+1)
		if paren {
			f.write(")")
		}
	case *LetExpr:
		// a let extends as far right as possible and is not a factor,
		// so anywhere inside an operator it has to be parenthesized
		paren := prec > 0
		if paren {
			f.write("(")
		}
		f.write("let " + e.Var + " = ")
		f.visitExpr(e.Val, 0)
		f.write(" in ")
		f.visitExpr(e.Body, 0)
		if paren {
			f.write(")")
		}
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
