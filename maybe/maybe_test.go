package maybe_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/pmatch/destructure"
	"github.com/npillmayer/pmatch/matcher"
	. "github.com/npillmayer/pmatch/maybe"
	"github.com/npillmayer/pmatch/pattern"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch c := x.Cases(); c {
	case c.Just(&v):
		t.Logf("Just(%d)", v)
	case c.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch c := y.Cases(); c {
	case c.Just(&w):
		t.Logf("Just(%d)", w)
	case c.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	s := Map(func(n int) string {
		return "#" + string(rune('0'+n))
	}, Just(5))
	if v, ok := s.Get(); !ok || v != "#5" {
		t.Logf("s = %v", s)
		t.Error("expected Map(…, Just 5) to return #5, didn't")
	}

	y := Nothing[int]()
	if y.Map(func(n int) int { return n * 2 }).IsJust() {
		t.Error("expected Nothing.Map(…) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	if isGreater, ok := AndThen(gt0, Just(7)).Get(); !ok || !isGreater {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Just(-7)).IsJust() {
		t.Error("expected Just(-7) |> andThen(gt0) to be Nothing, isn't")
	}
	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.pattern")
	defer teardown()
	//
	describe := func(m Maybe[int]) any {
		v, err := Match(m, func(b *pattern.Builder) {
			b.On(Some.Name(), matcher.Between(1, 10)).Then(destructure.Unary(func(n int) int { return n + 100 }))
			b.On(Some.Name()).Then(func(...any) any { return "large" })
			b.On(None.Name()).Then(func(...any) any { return "OHNO!" })
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
	if r := describe(Just(1).Map(func(n int) int { return n * 2 })); r != 102 {
		t.Logf("r = %v", r)
		t.Error("expected Just(2) to match first branch, didn't")
	}
	if r := describe(Just(50)); r != "large" {
		t.Logf("r = %v", r)
		t.Error("expected Just(50) to match second branch, didn't")
	}
	if r := describe(Nothing[int]()); r != "OHNO!" {
		t.Logf("r = %v", r)
		t.Error("expected Nothing to match none branch, didn't")
	}
}

func TestMaybeExhaustive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.pattern")
	defer teardown()
	//
	_, err := Match(Nothing[string](), func(b *pattern.Builder) {
		b.On(Some.Name()).Yield()
	}, pattern.Exhaustive(true))
	if !errors.Is(err, pattern.ErrExhaustive) {
		t.Logf("err = %v", err)
		t.Error("expected match without 'none' branch to be incomplete, isn't")
	}
	if !matcher.MustAll(matcher.Keys{"value": "x"}).Matches(Just("x")) {
		t.Error("expected Just(x) to expose its value, doesn't")
	}
}
