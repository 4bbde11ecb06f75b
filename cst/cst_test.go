package cst_test

import (
	"testing"

	"github.com/sarvex/sunder-lang/core/assert"
	"github.com/sarvex/sunder-lang/core/log"
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
)

func TestModuleShape(t *testing.T) {
	ctx := log.Testing(t)

	mod := &cst.Module{
		Namespace: []string{"geom"},
		Imports:   []*cst.Import{{Path: "core"}},
		Decls: []cst.Decl{
			&cst.StructDecl{
				Name: "Point",
				Fields: []cst.StructField{
					{Name: "x", Type: &cst.NamedType{Name: "u32"}},
					{Name: "y", Type: &cst.NamedType{Name: "u32"}},
				},
			},
			&cst.FuncDecl{
				Name:   "main",
				Params: nil,
				Body: []cst.Stmt{
					&cst.ReturnStmt{},
				},
			},
		},
	}

	assert.For(ctx, "namespace").ThatSlice(mod.Namespace).Equals([]string{"geom"})
	assert.For(ctx, "decl count").ThatInteger(len(mod.Decls)).Equals(2)

	sd, ok := mod.Decls[0].(*cst.StructDecl)
	assert.For(ctx, "first decl is a struct").That(ok).Equals(true)
	assert.For(ctx, "field count").ThatInteger(len(sd.Fields)).Equals(2)

	fd, ok := mod.Decls[1].(*cst.FuncDecl)
	assert.For(ctx, "second decl is a function").That(ok).Equals(true)
	_, isReturn := fd.Body[0].(*cst.ReturnStmt)
	assert.For(ctx, "body is a return").That(isReturn).Equals(true)
}

func TestTypespecVariants(t *testing.T) {
	ctx := log.Testing(t)

	var specs []cst.Typespec = []cst.Typespec{
		&cst.NamedType{Name: "u8"},
		&cst.PointerType{Base: &cst.NamedType{Name: "u8"}},
		&cst.SliceType{Base: &cst.NamedType{Name: "u8"}},
		&cst.ArrayType{Count: &cst.IntegerLiteral{Digits: "4"}, Base: &cst.NamedType{Name: "u8"}},
		&cst.FunctionType{Return: &cst.NamedType{Name: "bool"}},
	}

	for _, s := range specs {
		var n cst.Node = s
		assert.For(ctx, "implements Node").That(n.Loc()).Equals(diag.Location{})
	}
}

func TestExprVariants(t *testing.T) {
	ctx := log.Testing(t)

	call := &cst.Call{
		Callee: &cst.Member{Base: &cst.Identifier{Name: "p"}, Name: "move"},
		Args:   []cst.Expr{&cst.IntegerLiteral{Digits: "1"}, &cst.Unary{Op: "-", Operand: &cst.IntegerLiteral{Digits: "2"}}},
	}
	assert.For(ctx, "call arg count").ThatInteger(len(call.Args)).Equals(2)

	member, ok := call.Callee.(*cst.Member)
	assert.For(ctx, "callee is a member").That(ok).Equals(true)
	assert.For(ctx, "member name").ThatString(member.Name).Equals("move")
}
