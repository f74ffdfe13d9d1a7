package tform

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Segment is one step in a Path: a property key or an array index.
// The zero value is the empty key segment.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key builds a property-name segment.
func Key(name string) Segment { return Segment{key: name} }

// Index builds an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// KeyName returns the property name, or "" for index segments.
func (s Segment) KeyName() string { return s.key }

// IndexValue returns the array index, or 0 for key segments.
func (s Segment) IndexValue() int { return s.index }

// Equal reports segment equality (kind and value).
func (s Segment) Equal(o Segment) bool {
	if s.isIndex != o.isIndex {
		return false
	}
	if s.isIndex {
		return s.index == o.index
	}
	return s.key == o.key
}

// String renders the segment as it appears inside a JSON Pointer,
// escaping '~' -> '~0' and '/' -> '~1' per RFC 6901.
func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return strings.ReplaceAll(strings.ReplaceAll(s.key, "~", "~0"), "/", "~1")
}

// MarshalJSON renders index segments as numbers and key segments as strings.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return json.Marshal(s.index)
	}
	return json.Marshal(s.key)
}

// UnmarshalJSON accepts a JSON number (index) or string (key).
func (s *Segment) UnmarshalJSON(b []byte) error {
	t := strings.TrimSpace(string(b))
	if len(t) > 0 && t[0] == '"' {
		var k string
		if err := json.Unmarshal(b, &k); err != nil {
			return err
		}
		*s = Key(k)
		return nil
	}
	var i int
	if err := json.Unmarshal(b, &i); err != nil {
		return err
	}
	*s = Index(i)
	return nil
}

// Path is an ordered list of segments locating a value within a structured
// root. A field's path is the concatenation of every composition step's
// segments from the root field to the field, in order.
type Path []Segment

// Append returns a new Path with extra segments; the receiver is not modified.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Join returns the concatenation of p and q as a new Path.
func (p Path) Join(q Path) Path { return p.Append(q...) }

// Equal reports element-wise path equality.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether p begins with exactly the segments of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if !p[i].Equal(prefix[i]) {
			return false
		}
	}
	return true
}

// TrimPrefix returns the remainder of p after prefix as a new Path.
// If p does not begin with prefix, p is returned unchanged.
func (p Path) TrimPrefix(prefix Path) Path {
	if !p.HasPrefix(prefix) {
		return p
	}
	return append(Path(nil), p[len(prefix):]...)
}

// Pointer renders the path as a JSON Pointer (for example: /items/2/price).
// The empty path renders as "/".
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return "/" + strings.Join(parts, "/")
}

// ParsePointer parses a JSON Pointer into a Path. Purely numeric tokens are
// treated as index segments; everything else is a key (with ~0/~1 unescaped).
// "" and "/" both parse to the empty path.
func ParsePointer(ptr string) Path {
	if ptr == "" || ptr == "/" {
		return Path{}
	}
	var p Path
	for _, tok := range strings.Split(ptr, "/") {
		if tok == "" {
			continue
		}
		if i, err := strconv.Atoi(tok); err == nil {
			p = append(p, Index(i))
			continue
		}
		name := strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		p = append(p, Key(name))
	}
	return p
}
