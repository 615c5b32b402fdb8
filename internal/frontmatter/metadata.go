package frontmatter

// Metadata is a parsed front-matter block. Values are string, []string or a
// nested Metadata.
type Metadata map[string]any

// String returns the scalar stored under key.
func (m Metadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// Strings returns key as a list. A scalar becomes a one-element list and any
// other shape yields nil.
func (m Metadata) Strings(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Map returns the nested mapping stored under key, or nil.
func (m Metadata) Map(key string) Metadata {
	nested, _ := m[key].(Metadata)
	return nested
}

// Lookup walks nested mappings along path.
func (m Metadata) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := m
	for _, key := range path[:len(path)-1] {
		cur = cur.Map(key)
		if cur == nil {
			return nil, false
		}
	}
	v, ok := cur[path[len(path)-1]]
	return v, ok
}

// First returns the first non-empty scalar among keys.
func (m Metadata) First(keys ...string) string {
	for _, key := range keys {
		if s, ok := m.String(key); ok && s != "" {
			return s
		}
	}
	return ""
}
