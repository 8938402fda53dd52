/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/voedger/kommon/pkg/goutils/testingu/require"
)

type answer struct{}

func (answer) HashCode() int32 { return 42 }

type caseless string

func (c caseless) Equals(other any) bool {
	o, ok := other.(caseless)
	return ok && strings.EqualFold(string(o), string(c))
}

type point struct {
	X, Y int
}

type box[T any] struct {
	v T
}

type withSlice struct {
	S []int
}

func TestHashCodeOf(t *testing.T) {
	require := require.New(t)

	t.Run("integers", func(t *testing.T) {
		require.Equal(int32(5), HashCodeOf(int8(5)))
		require.Equal(int32(-1), HashCodeOf(int32(-1)))
		require.Equal(int32(-1), HashCodeOf(uint32(math.MaxUint32)))
		require.Equal(int32(97), HashCodeOf(uint16('a')))
		require.Equal(int32(0), HashCodeOf(int64(-1)))
		require.Equal(int32(1), HashCodeOf(int64(1<<32)))
		require.Equal(int32(7), HashCodeOf(7))
	})

	t.Run("floats", func(t *testing.T) {
		require.Equal(int32(1065353216), HashCodeOf(float32(1)))
		require.Equal(int32(1072693248), HashCodeOf(1.0))
		require.Equal(int32(2143289344), HashCodeOf(float32(math.NaN())))
		require.Equal(int32(2146959360), HashCodeOf(math.NaN()))
		require.Equal(int32(0), HashCodeOf(0.0))
	})

	t.Run("bool", func(t *testing.T) {
		require.Equal(int32(1231), HashCodeOf(true))
		require.Equal(int32(1237), HashCodeOf(false))
	})

	t.Run("strings", func(t *testing.T) {
		require.Equal(int32(0), HashCodeOf(""))
		require.Equal(int32(96354), HashCodeOf("abc"))
		require.Equal(int32(1772899), HashCodeOf("😀"), "hash must use UTF-16 code units")
		require.Equal(HashCodeOf("abc"), HashCodeOf(caseless("abc")))
	})
}

func TestHashCodeOfAny(t *testing.T) {
	require := require.New(t)

	require.Equal(int32(0), HashCodeOfAny(nil))
	require.Equal(int32(0), HashCodeOfAny((*point)(nil)))
	require.Equal(int32(42), HashCodeOfAny(answer{}))
	require.Equal(HashCodeOf("abc"), HashCodeOfAny("abc"))
	require.Equal(int32(30817), HashCodeOfAny([]int32{1, 2, 3}))
	require.Equal(int32(30817), HashCodeOfAny([3]int32{1, 2, 3}))
	require.Equal(int32(1), HashCodeOfAny([]int{}))
	require.Equal(int32(96), HashCodeOfAny(map[string]int{"a": 1}))
	require.Equal(int32(1089), HashCodeOfAny(struct {
		A int32
		b string
	}{1, "a"}))
	require.Equal(int32(31*(31+42)+42), HashCodeOfAny([]any{answer{}, answer{}}))

	t.Run("pointers hash by address", func(t *testing.T) {
		p := &point{1, 2}
		require.Equal(HashCodeOfAny(p), HashCodeOfAny(p))
	})

	t.Run("uuid hashes as byte array", func(t *testing.T) {
		u := uuid.New()
		require.Equal(HashSlice(u[:]), HashCodeOfAny(u))
	})
}

func TestHashCombinator(t *testing.T) {
	require := require.New(t)

	require.Equal(int32(36), Hash(int8(5)))
	require.Equal(int32(30817), HashSlice([]int32{1, 2, 3}))
	require.Equal(int32(0), HashSlice[int32](nil))
	require.Equal(HashSeed, HashSlice([]int32{}))
	require.Equal(HashSlice([]int32{1, 2, 3}), HashValues[int32](1, 2, 3))
	require.Equal(Hash("x"), HashValues("x"))

	require.Equal(int32(31*7+42), HashObjectWithSeed(7, answer{}))
	require.Equal(int32(31), HashObject(nil))
	require.Equal(int32(0), HashObjects(nil))
	require.Equal(HashSeed, HashObjects([]any{}))
	require.Equal(int32(3969), HashAll("a", 1))
	require.Equal(HashObjects([]any{"a", 1, nil, true}), HashAll("a", 1, nil, true))

	t.Run("deterministic", func(t *testing.T) {
		values := []any{"a", int64(1 << 40), 3.14, []string{"x", "y"}, map[int]bool{1: true}}
		require.Equal(HashObjects(values), HashObjects(values))
		require.Equal(HashAll(values[0], values[1:]...), HashObjects(values))
	})
}

func TestEquality(t *testing.T) {
	require := require.New(t)

	t.Run("comparable", func(t *testing.T) {
		require.True(Equal(1, 1))
		require.True(NotEqual("a", "b"))
	})

	t.Run("nil handling is symmetric", func(t *testing.T) {
		var nilPtr *point
		require.True(EqualAny(nil, nil))
		require.True(EqualAny(nil, nilPtr))
		require.True(EqualAny(nilPtr, nil))
		require.False(EqualAny(nil, 1))
		require.False(EqualAny(1, nil))
		require.True(NotEqualAny(nil, "a"))
		require.True(DeepEqual(nil, []int(nil)))
		require.False(DeepEqual([]int{}, nil))
		require.False(DeepEqual(nil, []int{}))
	})

	t.Run("EqualAny", func(t *testing.T) {
		require.True(EqualAny(point{1, 2}, point{1, 2}))
		require.False(EqualAny(point{1, 2}, &point{1, 2}))
		require.False(EqualAny(1, int64(1)))
		require.False(EqualAny([]int{1}, []int{1}))
		require.True(EqualAny(caseless("a"), caseless("a")))
		require.True(EqualAny(caseless("a"), caseless("A")))
		require.False(EqualAny(caseless("a"), "a"))
		require.True(EqualAny(errTest, errTest))
	})

	t.Run("EqualAny is reflexive for incomparable values", func(t *testing.T) {
		s := []int{1}
		require.True(EqualAny(s, s))
		m := map[string]int{"a": 1}
		require.True(EqualAny(m, m))
		require.False(EqualAny(m, map[string]int{"a": 1}))
		f := func() {}
		require.True(EqualAny(f, f))
	})

	t.Run("DeepEqual", func(t *testing.T) {
		require.True(DeepEqual([]int{1, 2}, []int{1, 2}))
		require.True(DeepEqual([]int{1, 2}, [2]int{1, 2}))
		require.False(DeepEqual([]int{1, 2}, []int{2, 1}))
		require.False(DeepEqual([]int{1}, []int64{1}))
		require.True(DeepEqual([][]string{{"a"}, nil}, [][]string{{"a"}, nil}))
		require.True(DeepEqual(map[string][]int{"a": {1}}, map[string][]int{"a": {1}}))
		require.False(DeepEqual(map[string][]int{"a": {1}}, map[string][]int{"b": {1}}))
		require.True(NotDeepEqual(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}))

		u := uuid.New()
		require.True(DeepEqual(u, uuid.UUID(u)))
		require.True(DeepEqual(u[:], u[:]))
	})

	t.Run("DeepEqual structs", func(t *testing.T) {
		w := withSlice{S: []int{1, 2}}
		require.True(DeepEqual(w, w))
		require.True(DeepEqual(w, withSlice{S: []int{1, 2}}))
		require.False(DeepEqual(w, withSlice{S: []int{2, 1}}))
		require.False(DeepEqual(w, withSlice{}))
		require.True(DeepEqual(point{1, 2}, point{1, 2}))
		require.False(DeepEqual(point{1, 2}, point{2, 1}))

		// unexported fields
		require.True(DeepEqual(box[[]any]{v: []any{1, "a"}}, box[[]any]{v: []any{1, "a"}}))
		require.False(DeepEqual(box[[]any]{v: []any{1, "a"}}, box[[]any]{v: []any{1, "b"}}))
		require.False(DeepEqual(box[[]any]{v: []any{1}}, box[[]any]{}))
		require.True(DeepEqual(box[any]{}, box[any]{}))
		require.False(DeepEqual(box[any]{v: 1}, box[any]{v: int64(1)}))
	})

	t.Run("values which contain themselves", func(t *testing.T) {
		a := []any{1, nil}
		a[1] = a
		b := []any{1, nil}
		b[1] = b
		require.True(DeepEqual(a, a))
		require.True(DeepEqual(a, b))
		require.Equal(hash0(hash0(HashSeed, 1), 0), HashCodeOfAny(a))
		require.Equal(HashCodeOfAny(a), HashCodeOfAny(b))
		require.Equal("[1, [...]]", ToStringOf(a))

		m := map[string]any{}
		m["m"] = m
		require.Equal(int32('m'), HashCodeOfAny(m))
		require.True(DeepEqual(m, map[string]any{"m": m}))

		shared := []int{1}
		require.Equal("[[1], [1]]", ToStringOf([]any{shared, shared}))
		require.Equal(HashCodeOfAny([]any{[]int{1}, []int{1}}), HashCodeOfAny([]any{shared, shared}))
	})

	t.Run("Identical", func(t *testing.T) {
		p1, p2 := &point{}, &point{}
		require.True(Identical(p1, p1))
		require.True(NotIdentical(p1, p2))
		s := []int{1, 2, 3}
		require.True(Identical(s, s))
		require.False(Identical(s, s[:1]))
		m := map[int]int{}
		require.True(Identical(m, m))
		require.False(Identical(m, map[int]int{}))
		require.True(Identical(1, 1))
		require.True(Identical(nil, nil))
		require.False(Identical(nil, p1))
	})
}

var errTest = errors.New("test")

func TestUtils(t *testing.T) {
	require := require.New(t)

	t.Run("IsNull", func(t *testing.T) {
		require.True(IsNull(nil))
		require.True(IsNull((*int)(nil)))
		require.True(IsNull(map[int]int(nil)))
		require.True(IsNull([]int(nil)))
		require.True(IsNull((func())(nil)))
		require.True(IsNull((chan int)(nil)))
		require.True(IsNotNull(0))
		require.True(IsNotNull(""))
		require.True(IsNotNull([]int{}))
	})

	t.Run("ToStringOf", func(t *testing.T) {
		require.Equal(NullString, ToStringOf(nil))
		require.Equal(NullString, ToStringOf((*point)(nil)))
		require.Equal("abc", ToStringOf("abc"))
		require.Equal("1", ToStringOf(1))
		require.Equal("test", ToStringOf(errTest))
		require.Equal("[1, null, a, [2, 3]]", ToStringOf([]any{1, nil, "a", []int{2, 3}}))
		require.Equal("[]", ToStringOf([0]int{}))
		u := uuid.New()
		require.Equal(u.String(), ToStringOf(u))
		require.Equal("-", ToStringOfOrDefault(nil, "-"))
		require.Equal("1", ToStringOfOrDefault(1, "-"))
	})

	t.Run("Compare", func(t *testing.T) {
		calls := 0
		cmp := func(l, r int) int {
			calls++
			return l - r
		}
		require.Zero(Compare(1, 1, cmp))
		require.Zero(calls, "comparator must not be called for identical values")
		require.Negative(Compare(1, 2, cmp))
		require.Positive(Compare(2, 1, cmp))
		require.Equal(2, calls)
		require.PanicsWith(func() { Compare(1, 1, nil) }, require.Is(ErrNilArgument))
	})

	t.Run("MustNotBeNull", func(t *testing.T) {
		p := &point{}
		require.Same(p, MustNotBeNull(p))
		require.PanicsWith(func() { MustNotBeNull[*point](nil) }, require.Is(ErrNilArgument))
		format := "point %d"
		require.PanicsWith(func() { MustNotBeNull[*point](nil, format, 1) },
			require.Is(ErrNilArgument), require.Has("point 1"))
	})

	t.Run("NullThen", func(t *testing.T) {
		p1, p2 := &point{1, 1}, &point{2, 2}
		require.Same(p2, NullThenUse(nil, p2))
		require.Same(p1, NullThenUse(p1, p2))
		require.Same(p2, NullThenGet(nil, func() *point { return p2 }))
		require.Same(p1, NullThenGet(p1, func() *point { return p2 }))
		require.PanicsWith(func() { NullThenGet(p1, nil) }, require.Is(ErrNilArgument))
	})

	t.Run("CastIfInstanceOf", func(t *testing.T) {
		s, ok := CastIfInstanceOf[string]("a")
		require.True(ok)
		require.Equal("a", s)
		_, ok = CastIfInstanceOf[string](1)
		require.False(ok)
		h, ok := CastIfInstanceOf[IHashable](answer{})
		require.True(ok)
		require.Equal(int32(42), h.HashCode())
	})
}

func TestToStringBuilder(t *testing.T) {
	require := require.New(t)

	t.Run("basic usage", func(t *testing.T) {
		b := NewToStringBuilder(point{}).Add("x", 1).Add("y", 2)
		require.Equal("point{x=1, y=2}", b.String())
		require.Equal("point{x=1, y=2}", b.String(), "String must be repeatable")
		require.Equal("point{x=1, y=2}\n", b.StringThenAddNewLine())
	})

	t.Run("pointer and generic types", func(t *testing.T) {
		require.Equal("point{}", NewToStringBuilder(&point{}).String())
		require.Equal("box{v=null}", NewToStringBuilder(box[int]{}).Add("v", nil).String())
	})

	t.Run("separators", func(t *testing.T) {
		b := NewToStringBuilder(point{}, WithFieldSeparator("; "), WithNameValueSeparator(": "))
		require.Equal("; ", b.FieldSeparator())
		require.Equal(": ", b.NameValueSeparator())
		require.Equal("point{x: 1; y: [1, 2]}", b.Add("x", 1).Add("y", []int{1, 2}).String())
	})

	t.Run("values and new lines", func(t *testing.T) {
		b := NewToStringBuilder(point{}).Add("x", 1).NewLine().Add("y", 2)
		require.Equal("point{x=1, \ny=2}", b.String())

		b = NewToStringBuilder(point{}).Value("a").ValueWithNoSeparator("b").Value("c")
		require.Equal("point{a, bc}", b.String())
	})

	t.Run("misuse", func(t *testing.T) {
		require.PanicsWith(func() { NewToStringBuilder(nil) }, require.Is(ErrNilArgument))
		require.PanicsWith(func() { NewToStringBuilder((*point)(nil)) }, require.Is(ErrNilArgument))
		require.PanicsWith(func() { NewToStringBuilder(point{}).Add("", 1) }, require.Is(ErrIllegalArgument))
	})
}
