package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/solomonckwon/brewin/ast"
)

// displayTree prints the syntax tree of a program on the terminal.
func displayTree(label string, prog *ast.Program) {
	pterm.Println(label)
	root := pterm.NewTreeFromLeveledList(leveledProgram(prog))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledProgram flattens a syntax tree into a list of indented lines.
func leveledProgram(prog *ast.Program) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, fn := range prog.Functions {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fn.String()})
		ll = leveledBlock(fn.Body, ll, 1)
	}
	return ll
}

func leveledBlock(stmts []ast.Stmt, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, stmt := range stmts {
		ll = leveledStmt(stmt, ll, level)
	}
	return ll
}

func leveledStmt(stmt ast.Stmt, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string) {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	}
	switch s := stmt.(type) {
	case *ast.Assign:
		item(s.Name + " =")
		ll = leveledExpr(s.Expr, ll, level+1)
	case *ast.Call:
		ll = leveledExpr(s, ll, level)
	case *ast.Return:
		item("return")
		if s.Expr != nil {
			ll = leveledExpr(s.Expr, ll, level+1)
		}
	case *ast.If:
		item("if")
		ll = leveledExpr(s.Cond, ll, level+1)
		item("then")
		ll = leveledBlock(s.Then, ll, level+1)
		if s.Else != nil {
			item("else")
			ll = leveledBlock(s.Else, ll, level+1)
		}
	case *ast.While:
		item("while")
		ll = leveledExpr(s.Cond, ll, level+1)
		item("do")
		ll = leveledBlock(s.Body, ll, level+1)
	}
	return ll
}

func leveledExpr(expr ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string) {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	}
	switch e := expr.(type) {
	case *ast.IntLit:
		item(strconv.FormatInt(e.Val, 10))
	case *ast.StringLit:
		item(strconv.Quote(e.Val))
	case *ast.BoolLit:
		item(strconv.FormatBool(e.Val))
	case *ast.NilLit:
		item("nil")
	case *ast.Variable:
		item(e.Name)
	case *ast.Call:
		item(fmt.Sprintf("%s(…)", e.Name))
		for _, arg := range e.Args {
			ll = leveledExpr(arg, ll, level+1)
		}
	case *ast.Unary:
		item(e.Op.String())
		ll = leveledExpr(e.Operand, ll, level+1)
	case *ast.Binary:
		item(e.Op.String())
		ll = leveledExpr(e.Left, ll, level+1)
		ll = leveledExpr(e.Right, ll, level+1)
	case *ast.Lambda:
		item(e.String())
		ll = leveledBlock(e.Body, ll, level+1)
	}
	return ll
}
