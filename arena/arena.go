// Package arena implements the front-end's "allocate, then freeze" memory
// discipline as a pure-Go typed arena.
//
// The teacher's core/memory/arena is a cgo-backed native allocator, because
// it hands raw buffers to GPU-trace-replay code outside the Go heap. This
// front-end has no such native boundary: every node it allocates (AST, TIR,
// types, symbols, values) is a plain Go value, so the arena's job shrinks to
// bookkeeping ownership and giving the resolver one place to assert that a
// node is never mutated after Freeze. Node storage is plain Go memory,
// managed by the Go garbage collector; the arena adds an append-only log of
// everything it has frozen and nothing more.
package arena

import (
	"context"
	"fmt"

	"github.com/sarvex/sunder-lang/core/context/keys"
)

// Arena owns every node allocated during one compiler invocation. It is not
// safe for concurrent use (matching the front-end's single-threaded
// resolution model, §5).
type Arena struct {
	frozen  []interface{}
	nbytes  int
}

// New constructs an empty arena.
func New() *Arena {
	return &Arena{}
}

// Freeze records obj as owned by the arena and returns it unchanged. Once
// frozen, a node's fields must not be mutated; callers build a value
// mutably, then call Freeze exactly once to transfer it into long-lived
// storage. size is the object's approximate byte footprint, used only for
// Stats.
func Freeze[T any](a *Arena, obj T, size int) T {
	a.frozen = append(a.frozen, obj)
	a.nbytes += size
	return obj
}

// Stats holds a snapshot of the arena's bookkeeping counters.
type Stats struct {
	NumFrozen int
	NumBytes  int
}

func (s Stats) String() string {
	return fmt.Sprintf("{frozen: %v, bytes: %v}", s.NumFrozen, s.NumBytes)
}

// Stats returns the arena's current Stats.
func (a *Arena) Stats() Stats {
	return Stats{NumFrozen: len(a.frozen), NumBytes: a.nbytes}
}

type arenaKeyTy string

const arenaKey = arenaKeyTy("arena")

// Bind returns a context carrying a, retrievable with Get.
func Bind(ctx context.Context, a *Arena) context.Context {
	return keys.WithValue(ctx, arenaKey, a)
}

// Get returns the arena bound to ctx by Bind, or nil if none was bound.
func Get(ctx context.Context) *Arena {
	a, _ := ctx.Value(arenaKey).(*Arena)
	return a
}
