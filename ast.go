package main

// Expr is one of *IntExpr, *VarExpr, *BinExpr, *LetExpr.
// The set is closed; every pass switches over all four.
type Expr interface {
	exprNode()
}

type Op string

const (
	OpAdd Op = "+"
	OpMul Op = "*"
)

type IntExpr struct {
	Value int64
}

type VarExpr struct {
	Name string
}

type BinExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

// LetExpr binds Var to the value of Val within Body (and only within Body).
type LetExpr struct {
	Var  string
	Val  Expr
	Body Expr
}

func (*IntExpr) exprNode() {}
func (*VarExpr) exprNode() {}
func (*BinExpr) exprNode() {}
func (*LetExpr) exprNode() {}
