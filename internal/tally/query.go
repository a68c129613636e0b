package tally

import "strconv"

// FindAllByTag walks the parsed tree depth-first and collects every value
// stored under a key equal to tag, at any depth. Sequence-valued matches
// are splatted element-wise, so the result is always a flat slice of
// element nodes. Traversal also descends into matched values, so a tag
// nested inside a same-named tag is collected twice; report layouts depend
// on that. Returns an empty slice, never nil.
func FindAllByTag(root any, tag string) []any {
	results := []any{}
	var search func(node any)
	search = func(node any) {
		switch v := node.(type) {
		case []any:
			for _, item := range v {
				search(item)
			}
		case map[string]any:
			for key, val := range v {
				if key == tag {
					if list, ok := val.([]any); ok {
						results = append(results, list...)
					} else {
						results = append(results, val)
					}
				}
				search(val)
			}
		}
	}
	search(root)
	return results
}

// ChildText resolves nested element text by walking path one key at a
// time. It reports absent the moment a step is missing or the current
// node is not a mapping, and only accepts a plain string leaf. Handlers
// lean on this for the "try tag A, fall back to tag B" idiom, so a miss
// must be a clean absent, never a panic.
func ChildText(el any, path ...string) (string, bool) {
	current := el
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current = m[key]
	}
	s, ok := current.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// Attr resolves an attribute on an element. Attributes share the element's
// key space (see Parse), so this is a plain-key lookup. Missing or falsy
// values (empty string, zero, false) are absent; non-string scalars are
// formatted, since callers always want text.
func Attr(el any, name string) (string, bool) {
	m, ok := el.(map[string]any)
	if !ok {
		return "", false
	}
	switch v := m[name].(type) {
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	}
	return "", false
}
