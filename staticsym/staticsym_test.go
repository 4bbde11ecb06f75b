package staticsym_test

import (
	"testing"

	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/core/assert"
	"github.com/sarvex/sunder-lang/core/log"
	"github.com/sarvex/sunder-lang/intern"
	"github.com/sarvex/sunder-lang/staticsym"
	"github.com/sarvex/sunder-lang/symbol"
	"github.com/sarvex/sunder-lang/value"
)

func TestNormalizeFirstOccurrenceHasNoSuffix(t *testing.T) {
	ctx := log.Testing(t)
	r := staticsym.New(intern.New())
	name := r.Normalize("geom", "Point::new")
	assert.For(ctx, "scrubbed and prefixed").ThatString(name).Equals(".geomPoint__new")
}

func TestNormalizeCollisionAppendsSmallestSuffix(t *testing.T) {
	ctx := log.Testing(t)
	r := staticsym.New(intern.New())
	first := r.Normalize("geom", "x")
	second := r.Normalize("geom", "x")
	third := r.Normalize("geom", "x")
	assert.For(ctx, "first").ThatString(first).Equals(".geomx")
	assert.For(ctx, "second").ThatString(second).Equals(".geomx.1")
	assert.For(ctx, "third").ThatString(third).Equals(".geomx.2")
}

func TestRegisterOrdersEntries(t *testing.T) {
	ctx := log.Testing(t)
	pool := intern.New()
	r := staticsym.New(pool)
	reg := symbol.NewRegistry(pool)
	u32 := reg.Integer("u32")

	n1 := r.Normalize("geom", "a")
	n2 := r.Normalize("geom", "b")
	r.Register(staticsym.Entry{Name: n1, Type: u32, Value: value.NewInteger(u32, bigint.FromInt64(1))})
	r.Register(staticsym.Entry{Name: n2, Type: u32, Value: value.NewInteger(u32, bigint.FromInt64(2))})

	entries := r.Entries()
	assert.For(ctx, "count").ThatInteger(len(entries)).Equals(2)
	assert.For(ctx, "insertion order preserved").ThatString(entries[0].Name).Equals(n1)
	assert.For(ctx, "insertion order preserved").ThatString(entries[1].Name).Equals(n2)
}

func TestRegisterPanicsOnUnreservedName(t *testing.T) {
	ctx := log.Testing(t)
	r := staticsym.New(intern.New())
	defer func() {
		recovered := recover()
		assert.For(ctx, "panics on unreserved name").That(recovered).IsNotNil()
	}()
	r.Register(staticsym.Entry{Name: ".never.normalized"})
}
