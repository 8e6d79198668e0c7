package outcome

import (
	"iter"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// pulling yields items one by one and counts how many were requested.
func pulling[T any](items []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			*pulled++
			if !yield(item) {
				return
			}
		}
	}
}

func toIntOrError(s string) Outcome[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Error[int]("not a number: " + s)
	}
	return Success[int, string](n)
}

func TestMap(t *testing.T) {
	t.Parallel()

	calls := 0
	inc := func(v int) int {
		calls++
		return v + 1
	}

	assert.Equal(t, Success[int, string](6), Map(Success[int, string](5), inc))
	assert.Equal(t, 1, calls)

	assert.Equal(t, Error[int]("boom"), Map(Error[int]("boom"), inc))
	assert.Equal(t, 1, calls)
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()

	o := Map(Success[int, string](12), strconv.Itoa)
	assert.Equal(t, Success[string, string]("12"), o)
}

func TestBind(t *testing.T) {
	t.Parallel()

	calls := 0
	half := func(v int) Outcome[int, string] {
		calls++
		if v%2 != 0 {
			return Error[int]("odd")
		}
		return Success[int, string](v / 2)
	}

	assert.Equal(t, Success[int, string](2), Bind(Success[int, string](4), half))
	assert.Equal(t, Error[int]("odd"), Bind(Success[int, string](3), half))
	assert.Equal(t, 2, calls)

	assert.Equal(t, Error[int]("boom"), Bind(Error[int]("boom"), half))
	assert.Equal(t, 2, calls)
}

func TestMapThenBind(t *testing.T) {
	t.Parallel()

	o := Bind(
		Map(Success[int, string](5), func(v int) int { return v + 1 }),
		func(v int) Outcome[int, string] { return Success[int, string](v * 2) })

	assert.Equal(t, Success[int, string](12), o)
}

func TestMapAndBind_DoNotRecover(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "map", func() {
		Map(Success[int, string](1), func(int) int { panic("map") })
	})
	assert.PanicsWithValue(t, "bind", func() {
		Bind(Success[int, string](1), func(int) Outcome[int, string] { panic("bind") })
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Error[int](4), MapError(Error[int]("boom"), func(c string) int { return len(c) }))

	called := false
	o := MapError(Success[int, string](1), func(c string) int {
		called = true
		return 0
	})
	assert.Equal(t, Success[int, int](1), o)
	assert.False(t, called)
}

func TestFold_ExactlyOneBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      Outcome[int, string]
		want    string
		success int
		failure int
	}{
		{name: "success", in: Success[int, string](3), want: "value 3", success: 1},
		{name: "error", in: Error[int]("boom"), want: "cause boom", failure: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			success, failure := 0, 0
			got := Fold(tt.in,
				func(v int) string {
					success++
					return "value " + strconv.Itoa(v)
				},
				func(c string) string {
					failure++
					return "cause " + c
				})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.success, success)
			assert.Equal(t, tt.failure, failure)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10", Merge(Success[string, string]("10")))
	assert.Equal(t, "20", Merge(Error[string]("20")))
}

func TestSequence_AllSuccess(t *testing.T) {
	t.Parallel()

	o := SequenceSlice([]Outcome[int, string]{
		Success[int, string](1),
		Success[int, string](2),
		Success[int, string](3),
	})

	got, ok := o.Get()
	require.True(t, ok)
	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, EmptyList[int, string](), SequenceSlice[int, string](nil))

	pulled := 0
	assert.Equal(t, EmptyList[int, string](), Sequence(pulling([]Outcome[int, string]{}, &pulled)))
	assert.Equal(t, 0, pulled)
}

func TestSequence_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	items := []Outcome[int, string]{
		Success[int, string](1),
		Error[int]("first"),
		Success[int, string](3),
		Error[int]("second"),
	}

	pulled := 0
	o := Sequence(pulling(items, &pulled))

	assert.Equal(t, Error[[]int]("first"), o)
	assert.Equal(t, 2, pulled)
}

func TestTraverse_AllSuccess(t *testing.T) {
	t.Parallel()

	o := TraverseSlice([]string{"10", "20"}, toIntOrError)

	got, ok := o.Get()
	require.True(t, ok)
	if diff := cmp.Diff([]int{10, 20}, got); diff != "" {
		t.Fatalf("traverse mismatch (-want +got):\n%s", diff)
	}
}

func TestTraverse_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	var seen []string
	f := func(s string) Outcome[int, string] {
		seen = append(seen, s)
		return toIntOrError(s)
	}

	o := TraverseSlice([]string{"10", "bad", "30", "worse"}, f)

	assert.Equal(t, Error[[]int]("not a number: bad"), o)
	assert.Equal(t, []string{"10", "bad"}, seen)
	_, ok := o.Get()
	assert.False(t, ok)
}

func TestTraverse_LazyOverSeq(t *testing.T) {
	t.Parallel()

	pulled := 0
	o := Traverse(pulling([]string{"1", "x", "3"}, &pulled), toIntOrError)

	assert.True(t, o.IsError())
	assert.Equal(t, 2, pulled)
}

func TestTraverse_Empty(t *testing.T) {
	t.Parallel()

	called := false
	o := TraverseSlice([]string{}, func(s string) Outcome[int, string] {
		called = true
		return toIntOrError(s)
	})

	assert.Equal(t, EmptyList[int, string](), o)
	assert.False(t, called)
}
