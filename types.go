package main

import "fmt"

// types:
//   signed 64-bit integers
//
// that's it for now. Type is kept an open-ended interface so that
// strings or booleans can be added next to IntT later.

type Type interface {
	fmt.Stringer
	isType()
}

type IntT struct{}

func (IntT) isType()        {}
func (IntT) String() string { return "int" }

// TypeEnv maps the variables in scope to their types.
type TypeEnv map[string]Type

// bind makes name have type t until the returned function is called,
// which puts back whatever name meant before (including nothing at all).
func (env TypeEnv) bind(name string, t Type) (restore func()) {
	old, shadowed := env[name]
	env[name] = t
	return func() {
		if shadowed {
			env[name] = old
		} else {
			delete(env, name)
		}
	}
}

func typecheck(e Expr) (Type, error) {
	return typecheckExpr(TypeEnv{}, e)
}

// typecheckExpr returns the type of expr in env.
// env is modified while checking let bodies but is back to its original state on return.
func typecheckExpr(env TypeEnv, expr Expr) (Type, error) {
	switch e := expr.(type) {
	case *IntExpr:
		return IntT{}, nil
	case *VarExpr:
		t, ok := env[e.Name]
		if !ok {
			return nil, &UndefinedVariableError{Name: e.Name}
		}
		return t, nil
	case *BinExpr:
		t1, err1 := typecheckExpr(env, e.Left)
		t2, err2 := typecheckExpr(env, e.Right)
		if err1 != nil || err2 != nil {
			return nil, multiError(err1, err2)
		}
		if !assignable(IntT{}, t1) || !assignable(IntT{}, t2) {
			return nil, &OperandTypeMismatchError{Op: e.Op, Left: t1, Right: t2}
		}
		switch e.Op {
		case OpAdd, OpMul:
			return IntT{}, nil
		default:
			return nil, &UnsupportedOperatorError{Op: e.Op}
		}
	case *LetExpr:
		t1, err := typecheckExpr(env, e.Val)
		if err != nil {
			return nil, err
		}
		restore := env.bind(e.Var, t1)
		defer restore()
		return typecheckExpr(env, e.Body)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}

// assignable reports whether a value of type t can be used where want is expected.
// There are no implicit conversions.
func assignable(want, t Type) bool {
	return sameType(want, t)
}

func sameType(t1, t2 Type) bool {
	return t1 == t2
}
