package matcher

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Dig creates a condition which follows a dot-separated path into the
// candidate and matches the value found there against cond. A missing path
// element yields nil, which only a nil or wildcard condition accepts.
//
// Candidates which are JSON documents (json.RawMessage, or strings and byte
// slices holding a JSON object or array) are queried with gjson path syntax.
// All other candidates are walked segment by segment: maps by key, sequences
// by numeric index, everything else by field or accessor name.
func Dig(path string, cond any) Condition {
	compiled := compile(cond, And)
	return ConditionFunc(func(v any) bool {
		found := DigValue(v, path)
		tracer().Debugf("dig %q: found %v", path, found)
		return matchValue(found, compiled)
	})
}

// DigValue returns the value at path inside v, or nil.
func DigValue(v any, path string) any {
	if doc, ok := jsonDocument(v); ok {
		r := gjson.Get(doc, path)
		if !r.Exists() {
			return nil
		}
		return r.Value()
	}
	if path == "" {
		return v
	}
	for _, seg := range strings.Split(path, ".") {
		var ok bool
		if v, ok = step(v, seg); !ok {
			return nil
		}
	}
	return v
}

func step(v any, seg string) (any, bool) {
	if m, ok := AsKeyed(v); ok {
		return m.Lookup(seg)
	}
	if seq, ok := AsIndexed(v); ok {
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, false
		}
		if i < 0 {
			i += seq.Len()
		}
		if i < 0 || i >= seq.Len() {
			return nil, false
		}
		return seq.Index(i), true
	}
	return FieldOf(v, seg)
}

// JSON parses a JSON document into plain Go values (map[string]any, []any,
// float64, string, bool, nil) suitable as a match target. Invalid documents
// result in nil.
func JSON(doc string) any {
	if !gjson.Valid(doc) {
		return nil
	}
	return gjson.Parse(doc).Value()
}

func jsonDocument(v any) (string, bool) {
	var s string
	switch x := v.(type) {
	case json.RawMessage:
		return string(x), gjson.Valid(string(x))
	case string:
		s = x
	case []byte:
		s = string(x)
	default:
		return "", false
	}
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return "", false
	}
	return s, gjson.Valid(s)
}
