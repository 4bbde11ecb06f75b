package arena_test

import (
	"context"
	"testing"

	"github.com/sarvex/sunder-lang/arena"
	"github.com/sarvex/sunder-lang/core/assert"
	"github.com/sarvex/sunder-lang/core/log"
)

type node struct {
	name string
}

func TestFreezeTracksStats(t *testing.T) {
	ctx := log.Testing(t)
	a := arena.New()
	arena.Freeze(a, &node{name: "a"}, 16)
	arena.Freeze(a, &node{name: "b"}, 16)
	stats := a.Stats()
	assert.For(ctx, "frozen").ThatInteger(stats.NumFrozen).Equals(2)
	assert.For(ctx, "bytes").ThatInteger(stats.NumBytes).Equals(32)
}

func TestBindAndGet(t *testing.T) {
	ctx := log.Testing(t).Unwrap()
	a := arena.New()
	ctx = arena.Bind(ctx, a)
	assert.For(log.Testing(t), "round trip").That(arena.Get(ctx)).Equals(a)
	assert.For(log.Testing(t), "unbound").That(arena.Get(context.Background())).IsNil()
}
