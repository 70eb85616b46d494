package matcher

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

type selector struct {
	src string
	sel cascadia.Selector
}

// Selector creates a condition for HTML nodes (*html.Node) matching a CSS
// selector. Other candidates do not match.
func Selector(sel string) (Condition, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, err
	}
	return selector{src: sel, sel: s}, nil
}

// MustSelector is like Selector, but panics for an invalid selector.
func MustSelector(sel string) Condition {
	s, err := Selector(sel)
	if err != nil {
		panic("pmatch.matcher: " + err.Error())
	}
	return s
}

func (s selector) Matches(v any) bool {
	n, ok := v.(*html.Node)
	return ok && n != nil && s.sel.Match(n)
}

func (s selector) String() string {
	return "css(" + s.src + ")"
}
