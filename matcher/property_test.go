package matcher_test

import (
	"testing"

	"pgregory.net/rapid"

	. "github.com/npillmayer/pmatch/matcher"
)

func TestWildcardMatchesEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		s := rapid.String().Draw(t, "s")
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		for _, v := range []any{n, s, xs, nil} {
			if !MatchValue(v, Any) {
				t.Fatalf("wildcard did not match %v", v)
			}
		}
	})
}

func TestCombinatorsAgreeWithConditions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bounds := rapid.SliceOfN(rapid.IntRange(-100, 100), 1, 5).Draw(t, "bounds")
		x := rapid.IntRange(-150, 150).Draw(t, "x")
		conds := make([]any, len(bounds))
		all, some := true, false
		for i, b := range bounds {
			conds[i] = Between(b, b+20)
			hit := x >= b && x <= b+20
			all = all && hit
			some = some || hit
		}
		if MustAll(conds...).Matches(x) != all {
			t.Fatalf("and-matcher disagrees for %d", x)
		}
		if MustAny(conds...).Matches(x) != some {
			t.Fatalf("or-matcher disagrees for %d", x)
		}
		if MustNone(conds...).Matches(x) != !some {
			t.Fatalf("not-matcher disagrees for %d", x)
		}
	})
}

func TestPositionalLengthMustBeEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		xs := rapid.SliceOfN(rapid.Int(), 0, 8).Draw(t, "xs")
		conds := make([]any, n)
		for i := range conds {
			conds[i] = Any
		}
		if MustAll(conds...).Matches(xs) != (len(xs) == n) {
			t.Fatalf("positional wildcards of length %d against %d elements", n, len(xs))
		}
	})
}
