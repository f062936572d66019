// Package name implements composite names: ordered sequences of components
// that may span several naming systems.
package name

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
)

const (
	separator = '/'
	escape    = '\\'
)

// ErrBadName is returned when a composite name string cannot be parsed.
var ErrBadName = errors.New("malformed composite name")

// Name is a composite name. The zero value is the empty name.
//
// A Name is a plain mutable value; callers sharing one across goroutines
// must synchronize access themselves.
type Name struct {
	components []string
}

// New creates a Name from the given components
func New(components ...string) *Name {
	n := &Name{}
	if len(components) > 0 {
		n.components = append([]string(nil), components...)
	}
	return n
}

// Parse parses the slash separated composite form of a name.
// A backslash escapes the following separator or backslash.
func Parse(s string) (*Name, error) {
	n := &Name{}
	if s == "" {
		return n, nil
	}

	var comp strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case escape:
			if i+1 >= len(s) {
				return nil, ErrBadName
			}
			i++
			comp.WriteByte(s[i])
		case separator:
			n.components = append(n.components, comp.String())
			comp.Reset()
		default:
			comp.WriteByte(c)
		}
	}
	n.components = append(n.components, comp.String())
	// a run of bare separators has one empty component per separator
	if allEmpty(n.components) {
		n.components = n.components[1:]
	}
	return n, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests
// and constant names.
func MustParse(s string) *Name {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the composite form of the name
func (n *Name) String() string {
	if n == nil {
		return "null"
	}
	var b strings.Builder
	for i, comp := range n.components {
		if i > 0 {
			b.WriteByte(separator)
		}
		for j := 0; j < len(comp); j++ {
			if comp[j] == separator || comp[j] == escape {
				b.WriteByte(escape)
			}
			b.WriteByte(comp[j])
		}
	}
	if len(n.components) > 0 && allEmpty(n.components) {
		b.WriteByte(separator)
	}
	return b.String()
}

func allEmpty(components []string) bool {
	for _, comp := range components {
		if comp != "" {
			return false
		}
	}
	return true
}

// Clone returns a structurally independent copy of n.
// Cloning a nil Name yields nil.
func (n *Name) Clone() *Name {
	if n == nil {
		return nil
	}
	return New(n.components...)
}

// Size returns the number of components
func (n *Name) Size() int {
	if n == nil {
		return 0
	}
	return len(n.components)
}

// IsEmpty reports whether the name has no components
func (n *Name) IsEmpty() bool {
	return n.Size() == 0
}

// Get returns the component at position i. It panics if i is out of range.
func (n *Name) Get(i int) string {
	return n.components[i]
}

// Components returns a copy of the name's components
func (n *Name) Components() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.components...)
}

// Add appends a single component and returns n for chaining
func (n *Name) Add(comp string) *Name {
	n.components = append(n.components, comp)
	return n
}

// AddAll appends every component of other
func (n *Name) AddAll(other *Name) *Name {
	if other != nil {
		n.components = append(n.components, other.components...)
	}
	return n
}

// Prefix returns a new name made of the first i components
func (n *Name) Prefix(i int) *Name {
	return New(n.components[:i]...)
}

// Suffix returns a new name made of the components starting at i
func (n *Name) Suffix(i int) *Name {
	return New(n.components[i:]...)
}

// StartsWith reports whether prefix is a leading part of n
func (n *Name) StartsWith(prefix *Name) bool {
	if prefix.Size() > n.Size() {
		return false
	}
	return n.Prefix(prefix.Size()).Equal(prefix)
}

// EndsWith reports whether suffix is a trailing part of n
func (n *Name) EndsWith(suffix *Name) bool {
	if suffix.Size() > n.Size() {
		return false
	}
	return n.Suffix(n.Size() - suffix.Size()).Equal(suffix)
}

// Equal reports whether both names have the same components in the same order.
// Two nil names are equal; a nil name never equals a non-nil one.
func (n *Name) Equal(other *Name) bool {
	if n == nil || other == nil {
		return n == nil && other == nil
	}
	if len(n.components) != len(other.components) {
		return false
	}
	for i := range n.components {
		if n.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the name as its composite string form
func (n *Name) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(n.String())
}

// UnmarshalJSON decodes a name from its composite string form
func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	n.components = parsed.components
	return nil
}
