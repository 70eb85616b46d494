package branch

import (
	"github.com/npillmayer/pmatch/matcher"
)

// Extractor maps a raw target to the value a branch's conditions are
// applied to.
type Extractor func(target any) any

// Identity is the default extractor.
func Identity(target any) any {
	return target
}

// Compose returns h = f . g
func Compose(g, f Extractor) Extractor {
	return func(target any) any {
		return f(g(target))
	}
}

// Chain composes extractors left to right. An empty chain is Identity.
func Chain(fns ...Extractor) Extractor {
	h := Extractor(Identity)
	for i, fn := range fns {
		if i == 0 {
			h = fn
			continue
		}
		h = Compose(h, fn)
	}
	return h
}

// FieldExtractor reads the key or field called name. A missing key or field
// is extracted as nil.
func FieldExtractor(name string) Extractor {
	return func(target any) any {
		if m, ok := matcher.AsKeyed(target); ok {
			v, _ := m.Lookup(name)
			return v
		}
		v, _ := matcher.FieldOf(target, name)
		return v
	}
}

// LastExtractor returns the last element of a sequence, or nil for an empty
// sequence. Targets which are not sequences are returned unchanged.
func LastExtractor(target any) any {
	seq, ok := matcher.AsIndexed(target)
	if !ok {
		return target
	}
	if seq.Len() == 0 {
		return nil
	}
	return seq.Index(seq.Len() - 1)
}

// IndexExtractor returns the element at position i of a sequence, or nil if
// the target has no such element.
func IndexExtractor(i int) Extractor {
	return func(target any) any {
		seq, ok := matcher.AsIndexed(target)
		if !ok || i < 0 || i >= seq.Len() {
			return nil
		}
		return seq.Index(i)
	}
}
