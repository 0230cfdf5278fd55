// front-end passes that don't need types
//
// * free variables

package main

import (
	"fmt"
	"sort"
)

// scope is a chain of name sets, innermost first.
type scope struct {
	parent *scope
	vars   map[string]bool
}

func newscope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]bool)}
}

func (s *scope) push() *scope {
	return newscope(s)
}

func (s *scope) define(name string) {
	s.vars[name] = true
}

func (s *scope) has(name string) bool {
	for ; s != nil; s = s.parent {
		if s.vars[name] {
			return true
		}
	}
	return false
}

// freeVars returns the names that expr uses without binding them, sorted.
// A program type checks only if this list is empty.
func freeVars(e Expr) []string {
	free := make(map[string]bool)
	freeVarsExpr(newscope(nil), e, free)
	names := make([]string, 0, len(free))
	for name := range free {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func freeVarsExpr(s *scope, expr Expr, free map[string]bool) {
	switch e := expr.(type) {
	case *VarExpr:
		if !s.has(e.Name) {
			free[e.Name] = true
		}
	case *IntExpr:
		break
	case *BinExpr:
		freeVarsExpr(s, e.Left, free)
		freeVarsExpr(s, e.Right, free)
	case *LetExpr:
		// the name is not in scope in its own value
		freeVarsExpr(s, e.Val, free)
		inner := s.push()
		inner.define(e.Var)
		freeVarsExpr(inner, e.Body, free)
	default:
		panic(fmt.Sprintf("unhandled case: %T", e))
	}
}
