package tir

import (
	"github.com/sarvex/sunder-lang/cst"
	"github.com/sarvex/sunder-lang/symbol"
)

// Parameter is one resolved function parameter, already given a Local
// storage address (§3.5, §4.F.8).
type Parameter struct {
	AST     *cst.Param
	Name    string
	Type    *symbol.Type
	Address symbol.Address
}

func (*Parameter) isNode() {}

// Function is a fully resolved function: its signature, storage, and
// (unless extern) its resolved body — the terminal artifact §4.F.10
// produces for every function declaration (§3.7).
type Function struct {
	AST        *cst.FuncDecl
	Name       string
	Type       *symbol.Type // Kind == symbol.Function
	Address    symbol.Address
	Receiver   *Parameter // non-nil for a method
	Params     []*Parameter
	ReturnSlot *Parameter // nil for void; its Address is where Return stores
	Table      *symbol.Table
	Body       *Block // nil for extern
	Extern     bool

	// Defers is every defer call resolved anywhere in the function body, in
	// textual (resolution) order — see Block's doc comment.
	Defers []*Call

	// LowWaterMark is the lowest local-storage byte offset this function's
	// body ever allocates beneath its frame base, used by the backend to
	// size the stack frame (§4.F.8).
	LowWaterMark int
}

func (*Function) isNode() {}
