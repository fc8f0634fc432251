package validation

import "strconv"

// segment is one step of a property path: either a named field or a list index.
// The two kinds never compare equal, even when they render the same.
type segment struct {
	name    string
	index   int
	indexed bool
}

// PropertyPath is an immutable address of a field inside a nested structure,
// rendered as a dotted/bracketed string such as "items[0].tags[2].value".
// The zero value is the root path and renders as "".
type PropertyPath struct {
	segments []segment
}

// RootPath returns the empty path denoting the whole target value.
func RootPath() PropertyPath {
	return PropertyPath{}
}

// NewPath returns a path with a single named segment.
func NewPath(name string) PropertyPath {
	return PropertyPath{segments: []segment{{name: name}}}
}

// Child returns a new path extended with a trailing named segment.
// The receiver is never mutated; derived paths copy the segment slice so
// sibling derivations cannot alias each other.
func (p PropertyPath) Child(name string) PropertyPath {
	return p.extend(segment{name: name})
}

// Index returns a new path extended with a trailing indexed segment,
// rendered as "[i]".
func (p PropertyPath) Index(i int) PropertyPath {
	return p.extend(segment{index: i, indexed: true})
}

// Join returns a new path with every segment of sub appended after the
// receiver's segments. Joining the root path returns the receiver unchanged.
func (p PropertyPath) Join(sub PropertyPath) PropertyPath {
	if len(sub.segments) == 0 {
		return p
	}
	segments := make([]segment, 0, len(p.segments)+len(sub.segments))
	segments = append(segments, p.segments...)
	segments = append(segments, sub.segments...)
	return PropertyPath{segments: segments}
}

func (p PropertyPath) extend(s segment) PropertyPath {
	segments := make([]segment, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, s)
	return PropertyPath{segments: segments}
}

// IsRoot reports whether the path has no segments.
func (p PropertyPath) IsRoot() bool {
	return len(p.segments) == 0
}

// Equal reports structural equality: same segments, in the same order, of the
// same kind. An indexed segment never equals a named segment with the same text.
func (p PropertyPath) Equal(other PropertyPath) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		o := other.segments[i]
		if s.indexed != o.indexed {
			return false
		}
		if s.indexed {
			if s.index != o.index {
				return false
			}
		} else if s.name != o.name {
			return false
		}
	}
	return true
}

// String renders named segments dot-joined and indexed segments as bracket
// suffixes with no preceding dot. The root path renders as the empty string.
func (p PropertyPath) String() string {
	var b []byte
	for i, s := range p.segments {
		if s.indexed {
			b = append(b, '[')
			b = strconv.AppendInt(b, int64(s.index), 10)
			b = append(b, ']')
			continue
		}
		if i > 0 {
			b = append(b, '.')
		}
		b = append(b, s.name...)
	}
	return string(b)
}
