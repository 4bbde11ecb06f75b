package tir

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/symbol"
)

// Block is a resolved statement list with its own lexical Table (§3.4).
// The function-wide defer chain (§3.7's "defer-chain head on entry/exit")
// is tracked as a flat, textually-ordered Function.Defers list rather than
// per-block: every Defer statement resolved anywhere in the function
// appends to it, and Return/Break/Continue each capture the chain length
// at their resolution point as their DeferMark, telling code generation
// exactly which defer calls (Defers[:DeferMark]) are active to unwind.
type Block struct {
	AST   *cst.Block
	Table *symbol.Table
	Stmts []Statement
}

func (*Block) isNode() {}

// DeclareLocal is a resolved local variable or constant declaration.
type DeclareLocal struct {
	AST   *cst.DeclStmt
	Local *symbol.Variable // or *symbol.Constant, stored as a Symbol below
	Sym   symbol.Symbol
	Init  Expression
}

func (*DeclareLocal) isNode()      {}
func (*DeclareLocal) isStatement() {}

// Assign is a resolved «lhs op= rhs» statement; binary compound operators
// have already been expanded into an equivalent Binary on RHS by the
// resolver (§4.F.6).
type Assign struct {
	AST *cst.AssignStmt
	LHS Expression
	RHS Expression
}

func (*Assign) isNode()      {}
func (*Assign) isStatement() {}

// Defer registers Call to run when the enclosing Block exits.
type Defer struct {
	AST  *cst.DeferStmt
	Call *Call
}

func (*Defer) isNode()      {}
func (*Defer) isStatement() {}

// If is a resolved if/else-if/else chain.
type If struct {
	AST     *cst.IfStmt
	Clauses []IfClause
}

func (*If) isNode()      {}
func (*If) isStatement() {}

// IfClause is one resolved conditional arm; Cond is nil for a trailing
// else.
type IfClause struct {
	Cond Expression
	Body *Block
}

// ForRange is a resolved «for x in low..high» loop.
type ForRange struct {
	AST      *cst.ForRangeStmt
	Iterator *symbol.Variable
	Low      Expression
	High     Expression
	Body     *Block
}

func (*ForRange) isNode()      {}
func (*ForRange) isStatement() {}

// ForExpr is a resolved C-like for loop; any clause may be nil.
type ForExpr struct {
	AST  *cst.ForExprStmt
	Init Statement
	Cond Expression
	Post Statement
	Body *Block
}

func (*ForExpr) isNode()      {}
func (*ForExpr) isStatement() {}

// Break exits the nearest enclosing loop. DeferMark is the function's
// defer-chain length at the break; LoopDeferMark is the chain length
// captured at that loop's entry — code generation unwinds
// Defers[LoopDeferMark:DeferMark] (§3.7, §4.F.5).
type Break struct {
	AST           *cst.BreakStmt
	DeferMark     int
	LoopDeferMark int
}

func (*Break) isNode()      {}
func (*Break) isStatement() {}

// Continue advances the nearest enclosing loop, unwinding
// Defers[LoopDeferMark:DeferMark] exactly as Break does.
type Continue struct {
	AST           *cst.ContinueStmt
	DeferMark     int
	LoopDeferMark int
}

func (*Continue) isNode()      {}
func (*Continue) isStatement() {}

// Dump prints Value's resolved type and, if it folds to a compile-time
// constant, its value — a debugging aid, never reachable from production
// output.
type Dump struct {
	AST   *cst.DumpStmt
	Value Expression
}

func (*Dump) isNode()      {}
func (*Dump) isStatement() {}

// Return exits Function with an optional Value. DeferMark is the
// function's defer-chain length at the return point; code generation
// unwinds Defers[:DeferMark], innermost (most recently registered) first
// (§3.7).
type Return struct {
	AST       *cst.ReturnStmt
	Function  *Function
	Value     Expression // nil for a void return
	DeferMark int
}

func (*Return) isNode()      {}
func (*Return) isStatement() {}

// Expr is an expression evaluated for its side effects.
type Expr struct {
	AST   *cst.ExprStmt
	Value Expression
}

func (*Expr) isNode()      {}
func (*Expr) isStatement() {}
