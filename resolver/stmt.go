package resolver

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/diag"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/tir"
)

// resolveFunctionBody implements §4.F.5's statement resolution for a
// function's outermost block, entered with table already populated with
// the function's receiver and parameters (§4.F.10).
func (rv *Resolver) resolveFunctionBody(stmts []cst.Stmt, table *symbol.Table) *tir.Block {
	return rv.resolveStmtList(stmts, table)
}

// resolveStmtList resolves stmts as one Block, nesting rv.scope in table
// (or a fresh child of the current scope, for a nested brace block).
func (rv *Resolver) resolveStmtList(stmts []cst.Stmt, table *symbol.Table) *tir.Block {
	savedScope := rv.scope
	rv.scope = table
	out := make([]tir.Statement, 0, len(stmts))
	for _, s := range stmts {
		if st := rv.resolveStmt(s); st != nil {
			out = append(out, st)
		}
	}
	rv.scope = savedScope
	return &tir.Block{Stmts: out, Table: table}
}

// resolveBlock resolves a brace-delimited nested block in its own child
// scope (§3.4).
func (rv *Resolver) resolveBlock(b *cst.Block) *tir.Block {
	block := rv.resolveStmtList(b.Stmts, symbol.NewTable(rv.scope))
	block.AST = b
	return block
}

func (rv *Resolver) resolveStmt(s cst.Stmt) tir.Statement {
	switch n := s.(type) {
	case *cst.DeclStmt:
		return rv.resolveDeclStmt(n)
	case *cst.AssignStmt:
		return rv.resolveAssignStmt(n)
	case *cst.DeferStmt:
		return rv.resolveDeferStmt(n)
	case *cst.IfStmt:
		return rv.resolveIfStmt(n)
	case *cst.ForRangeStmt:
		return rv.resolveForRangeStmt(n)
	case *cst.ForExprStmt:
		return rv.resolveForExprStmt(n)
	case *cst.BreakStmt:
		return rv.resolveBreakStmt(n)
	case *cst.ContinueStmt:
		return rv.resolveContinueStmt(n)
	case *cst.DumpStmt:
		v := rv.resolveExpr(n.Value)
		return &tir.Dump{AST: n, Value: v}
	case *cst.ReturnStmt:
		return rv.resolveReturnStmt(n)
	case *cst.ExprStmt:
		v := rv.resolveExpr(n.Value)
		return &tir.Expr{AST: n, Value: v}
	default:
		rv.icef(s.Loc(), "unrecognized statement node %T", s)
		return nil
	}
}

// resolveDeclStmt implements §4.F.5's local var/const declaration: same
// type-resolution/initializer-hinting shape as a global (declareGlobalVar),
// but storage is a stack slot carved from the current frame rather than a
// static address, and a const's initializer still folds at compile time.
func (rv *Resolver) resolveDeclStmt(n *cst.DeclStmt) tir.Statement {
	d := n.Decl
	if d.IsExtern {
		rv.errorf(d.Loc(), diag.TypeMismatch, "local declarations cannot be extern")
		return nil
	}
	if d.Init == nil {
		rv.errorf(d.Loc(), diag.NotConstant, "local declaration %q requires an initializer", d.Name)
		return nil
	}

	var t *symbol.Type
	if d.Type != nil {
		t = rv.resolveTypespec(d.Type)
	}
	initExpr := rv.resolveExprWithHint(d.Init, t)
	if t == nil {
		t = initExpr.ExpressionType()
	} else {
		rv.checkAssignable(d.Loc(), t, initExpr.ExpressionType())
	}

	if d.IsConst {
		wasConst := rv.isWithinConst
		rv.isWithinConst = true
		v := rv.eval().Rvalue(initExpr)
		rv.isWithinConst = wasConst
		if v == nil {
			return nil
		}
		c := &symbol.Constant{Type: t, Value: v}
		c.Location = d.Loc()
		c.Name = rv.ctx.Intern.Intern(d.Name)
		rv.insert(d.Loc(), d.Name, c)
		return &tir.DeclareLocal{AST: n, Sym: c, Init: initExpr}
	}

	if t.IsUnsized() {
		rv.errorf(d.Loc(), diag.Unsized, "local variable %q has unsized type %s", d.Name, t)
		return nil
	}
	rv.rbpOffset -= ceilTo8(t.Size)
	variable := &symbol.Variable{Type: t, Address: symbol.LocalAddress(rv.rbpOffset)}
	variable.Location = d.Loc()
	variable.Name = rv.ctx.Intern.Intern(d.Name)
	rv.insert(d.Loc(), d.Name, variable)
	return &tir.DeclareLocal{AST: n, Local: variable, Sym: variable, Init: initExpr}
}

// resolveAssignStmt implements §4.F.6's compound-assignment expansion:
// "Target op= Value" with op != "=" resolves to an Assign whose RHS is the
// equivalent Binary(Target, strippedOp, Value).
func (rv *Resolver) resolveAssignStmt(n *cst.AssignStmt) tir.Statement {
	target := rv.resolveExpr(n.Target)
	if !isLvalue(target) {
		rv.errorf(n.Loc(), diag.Lvalue, "assignment target is not an lvalue")
	}
	tt := target.ExpressionType()

	if n.Op == "=" {
		rhs := rv.resolveExprWithHint(n.Value, tt)
		rv.checkAssignable(n.Loc(), tt, rhs.ExpressionType())
		return &tir.Assign{AST: n, LHS: target, RHS: rhs}
	}

	op, ok := compoundOperator(n.Op)
	if !ok {
		rv.icef(n.Loc(), "unrecognized compound assignment operator %q", n.Op)
		return nil
	}
	value := rv.resolveExprWithHint(n.Value, tt)
	rhs := &tir.Binary{Type: tt, Operator: op, Left: target, Right: value}
	return &tir.Assign{AST: n, LHS: target, RHS: rhs}
}

func compoundOperator(op string) (string, bool) {
	switch op {
	case "+=":
		return "+", true
	case "-=":
		return "-", true
	case "*=":
		return "*", true
	case "/=":
		return "/", true
	case "%=":
		return "%", true
	case "&=":
		return "&", true
	case "|=":
		return "|", true
	case "^=":
		return "^", true
	default:
		return "", false
	}
}

func (rv *Resolver) resolveDeferStmt(n *cst.DeferStmt) tir.Statement {
	call, ok := rv.resolveExpr(n.Call).(*tir.Call)
	if !ok {
		rv.errorf(n.Loc(), diag.TypeMismatch, "defer requires a function call")
		return nil
	}
	d := &tir.Defer{AST: n, Call: call}
	rv.fn.Defers = append(rv.fn.Defers, call)
	return d
}

func (rv *Resolver) resolveIfStmt(n *cst.IfStmt) tir.Statement {
	clauses := make([]tir.IfClause, len(n.Clauses))
	for i, c := range n.Clauses {
		var cond tir.Expression
		if c.Cond != nil {
			cond = rv.resolveExprWithHint(c.Cond, rv.ctx.Types.Bool)
			if cond.ExpressionType() != rv.ctx.Types.Bool {
				rv.errorf(c.Cond.Loc(), diag.TypeMismatch, "if condition must be bool")
			}
		}
		clauses[i] = tir.IfClause{Cond: cond, Body: rv.resolveBlock(c.Body)}
	}
	return &tir.If{AST: n, Clauses: clauses}
}

// resolveForRangeStmt implements «for Name in Low..High { Body }»: Name is
// an usize-typed loop variable bound fresh in the loop body's own scope
// (§4.F.5).
func (rv *Resolver) resolveForRangeStmt(n *cst.ForRangeStmt) tir.Statement {
	usize := rv.ctx.Types.Integer("usize")
	low := rv.resolveExprWithHint(n.Low, usize)
	high := rv.resolveExprWithHint(n.High, usize)
	if !low.ExpressionType().IsAnyInteger() || !high.ExpressionType().IsAnyInteger() {
		rv.errorf(n.Loc(), diag.TypeMismatch, "for-range bounds must be integers")
	}

	savedLoop, savedMark := rv.isWithinLoop, rv.loopDeferMark
	rv.isWithinLoop, rv.loopDeferMark = true, len(rv.fn.Defers)

	table := symbol.NewTable(rv.scope)
	rv.rbpOffset -= ceilTo8(usize.Size)
	iter := &symbol.Variable{Type: usize, Address: symbol.LocalAddress(rv.rbpOffset)}
	iter.Location = n.Loc()
	iter.Name = rv.ctx.Intern.Intern(n.Name)
	table.Insert(n.Name, iter)

	body := rv.resolveStmtList(n.Body.Stmts, table)
	body.AST = n.Body

	rv.isWithinLoop, rv.loopDeferMark = savedLoop, savedMark
	return &tir.ForRange{AST: n, Iterator: iter, Low: low, High: high, Body: body}
}

func (rv *Resolver) resolveForExprStmt(n *cst.ForExprStmt) tir.Statement {
	savedLoop, savedMark := rv.isWithinLoop, rv.loopDeferMark

	table := symbol.NewTable(rv.scope)
	savedScope := rv.scope
	rv.scope = table

	var init tir.Statement
	if n.Init != nil {
		init = rv.resolveStmt(n.Init)
	}

	rv.isWithinLoop, rv.loopDeferMark = true, len(rv.fn.Defers)

	var cond tir.Expression
	if n.Cond != nil {
		cond = rv.resolveExprWithHint(n.Cond, rv.ctx.Types.Bool)
		if cond.ExpressionType() != rv.ctx.Types.Bool {
			rv.errorf(n.Cond.Loc(), diag.TypeMismatch, "for condition must be bool")
		}
	}
	var post tir.Statement
	if n.Post != nil {
		post = rv.resolveStmt(n.Post)
	}

	rv.scope = savedScope
	body := rv.resolveStmtList(n.Body.Stmts, symbol.NewTable(table))
	body.AST = n.Body

	rv.isWithinLoop, rv.loopDeferMark = savedLoop, savedMark
	return &tir.ForExpr{AST: n, Init: init, Cond: cond, Post: post, Body: body}
}

func (rv *Resolver) resolveBreakStmt(n *cst.BreakStmt) tir.Statement {
	if !rv.isWithinLoop {
		rv.errorf(n.Loc(), diag.TypeMismatch, "break outside a loop")
	}
	return &tir.Break{AST: n, DeferMark: len(rv.fn.Defers), LoopDeferMark: rv.loopDeferMark}
}

func (rv *Resolver) resolveContinueStmt(n *cst.ContinueStmt) tir.Statement {
	if !rv.isWithinLoop {
		rv.errorf(n.Loc(), diag.TypeMismatch, "continue outside a loop")
	}
	return &tir.Continue{AST: n, DeferMark: len(rv.fn.Defers), LoopDeferMark: rv.loopDeferMark}
}

// resolveReturnStmt implements §4.F.10's return handling: Value is
// hint-resolved against the enclosing function's declared return type, and
// absent entirely for a void function.
func (rv *Resolver) resolveReturnStmt(n *cst.ReturnStmt) tir.Statement {
	var retType *symbol.Type
	if rv.fn.ReturnSlot != nil {
		retType = rv.fn.ReturnSlot.Type
	}

	if n.Value == nil {
		if retType != nil {
			rv.errorf(n.Loc(), diag.TypeMismatch, "function %q must return a value", rv.fn.Name)
		}
		return &tir.Return{AST: n, Function: rv.fn, DeferMark: len(rv.fn.Defers)}
	}
	if retType == nil {
		rv.errorf(n.Loc(), diag.TypeMismatch, "void function %q cannot return a value", rv.fn.Name)
		v := rv.resolveExpr(n.Value)
		return &tir.Return{AST: n, Function: rv.fn, Value: v, DeferMark: len(rv.fn.Defers)}
	}

	v := rv.resolveExprWithHint(n.Value, retType)
	rv.checkAssignable(n.Loc(), retType, v.ExpressionType())
	return &tir.Return{AST: n, Function: rv.fn, Value: v, DeferMark: len(rv.fn.Defers)}
}
