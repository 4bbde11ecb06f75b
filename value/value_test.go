package value_test

import (
	"testing"

	"github.com/sarvex/sunder-lang/bigint"
	"github.com/sarvex/sunder-lang/core/assert"
	"github.com/sarvex/sunder-lang/core/log"
	"github.com/sarvex/sunder-lang/value"
)

type fakeType struct {
	name string
	size int
}

func (f fakeType) String() string  { return f.name }
func (f fakeType) ByteSize() int   { return f.size }

func TestByteRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	u8 := fakeType{"u8", 1}
	v := value.NewInteger(u8, bigint.FromInt64(7))
	bytes, ok := v.ToBytes()
	assert.For(ctx, "serializes").That(ok).Equals(true)
	assert.For(ctx, "bytes").ThatSlice(bytes).Equals([]byte{7})
}

func TestArrayByteRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	u8 := fakeType{"u8", 1}
	arr := fakeType{"[3]u8", 3}
	v := value.NewArray(arr, []*value.Value{
		value.NewInteger(u8, bigint.FromInt64(1)),
		value.NewInteger(u8, bigint.FromInt64(2)),
		value.NewInteger(u8, bigint.FromInt64(3)),
	})
	bytes, ok := v.ToBytes()
	assert.For(ctx, "serializes").That(ok).Equals(true)
	assert.For(ctx, "bytes").ThatSlice(bytes).Equals([]byte{1, 2, 3})
}

func TestFunctionHasNoByteRepresentation(t *testing.T) {
	ctx := log.Testing(t)
	fn := fakeType{"func(u32) bool", 8}
	v := value.NewFunction(fn, struct{}{})
	_, ok := v.ToBytes()
	assert.For(ctx, "function cannot serialize").That(ok).Equals(false)
}

func TestCloneIsDeep(t *testing.T) {
	ctx := log.Testing(t)
	u8 := fakeType{"u8", 1}
	v := value.NewInteger(u8, bigint.FromInt64(5))
	clone := v.Clone()
	clone.Integer.Add(clone.Integer, bigint.FromInt64(1))
	assert.For(ctx, "original unchanged").ThatString(v.Integer.String()).Equals("5")
	assert.For(ctx, "clone changed").ThatString(clone.Integer.String()).Equals("6")
}

func TestEquality(t *testing.T) {
	ctx := log.Testing(t)
	u8 := fakeType{"u8", 1}
	a := value.NewInteger(u8, bigint.FromInt64(3))
	b := value.NewInteger(u8, bigint.FromInt64(3))
	c := value.NewInteger(u8, bigint.FromInt64(4))
	assert.For(ctx, "a == b").That(value.Eq(a, b)).Equals(true)
	assert.For(ctx, "a < c").That(value.Lt(a, c)).Equals(true)
	assert.For(ctx, "c > a").That(value.Gt(c, a)).Equals(true)
}
