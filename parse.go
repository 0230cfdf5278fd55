package main

import "io"

// Grammar, lowest precedence first:
//
//	expr     := let_expr | add_expr
//	let_expr := "let" IDENT "=" expr "in" expr
//	add_expr := mul_expr ( "+" mul_expr )*
//	mul_expr := factor ( "*" factor )*
//	factor   := NUMBER | IDENT | "(" expr ")"

// operandStart is what the parser reports when a factor is missing.
var operandStart = []TokenKind{NUMBER, IDENT, LPAREN}

// parser is a recursive-descent parser with a single token of lookahead.
type parser struct {
	lex *lexer
	tok Token // current (not yet consumed) token
}

// parse reads one expression from r.
// The whole input must be consumed; anything after the expression is an error.
func parse(r io.Reader) (Expr, error) {
	p := &parser{lex: newLexer(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(EOF); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat consumes the current token if it is of the given kind and returns it.
// Only the kind is compared, never the payload.
func (p *parser) eat(kind TokenKind) (Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, &UnexpectedTokenError{Expected: []TokenKind{kind}, Actual: tok}
	}
	if err := p.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

func (p *parser) expr() (Expr, error) {
	if p.tok.Kind == LET {
		return p.letExpr()
	}
	return p.addExpr()
}

func (p *parser) letExpr() (Expr, error) {
	if _, err := p.eat(LET); err != nil {
		return nil, err
	}
	if p.tok.Kind != IDENT {
		return nil, &MissingIdentifierError{Actual: p.tok}
	}
	name, err := p.eat(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(EQUALS); err != nil {
		return nil, err
	}
	val, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(IN); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &LetExpr{Var: name.Name, Val: val, Body: body}, nil
}

func (p *parser) addExpr() (Expr, error) {
	return p.binary(PLUS, OpAdd, p.mulExpr)
}

func (p *parser) mulExpr() (Expr, error) {
	return p.binary(STAR, OpMul, p.factor)
}

// binary parses operand (tok operand)* and folds the result to the left,
// so a+b+c becomes (a+b)+c.
func (p *parser) binary(tok TokenKind, op Op, operand func() (Expr, error)) (Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == tok {
		if _, err := p.eat(tok); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) factor() (Expr, error) {
	switch p.tok.Kind {
	case NUMBER:
		tok, err := p.eat(NUMBER)
		if err != nil {
			return nil, err
		}
		return &IntExpr{Value: tok.Num}, nil
	case IDENT:
		tok, err := p.eat(IDENT)
		if err != nil {
			return nil, err
		}
		return &VarExpr{Name: tok.Name}, nil
	case LPAREN:
		if _, err := p.eat(LPAREN); err != nil {
			return nil, err
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, &UnexpectedTokenError{Expected: operandStart, Actual: p.tok}
	}
}
