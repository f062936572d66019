// Package naming provides the errors raised while resolving names, most
// notably LinkError which carries resumable link resolution state.
package naming

import (
	"errors"
	"fmt"

	"github.com/yarlson/lnkname/internal/name"
)

// Sentinel errors for naming operations.
var (
	ErrNaming         = errors.New("naming error")
	ErrLinkResolution = errors.New("link resolution failed")
)

// NamingError is the base error for name resolution failures. Besides the
// message and an optional cause it records how far resolution got: the
// resolved part of the name, the object it resolved to, and the remainder.
//
// NamingError is not safe for concurrent use.
type NamingError struct {
	explanation   string
	cause         error
	resolvedName  *name.Name
	resolvedObj   any
	remainingName *name.Name
}

// NewNamingError creates a NamingError with the given explanation.
// All resolution fields start out unset.
func NewNamingError(explanation string) *NamingError {
	return &NamingError{explanation: explanation}
}

func (e *NamingError) Error() string {
	msg := e.explanation
	if msg == "" {
		msg = ErrNaming.Error()
	}
	if e.cause != nil {
		msg += " [root cause: " + e.cause.Error() + "]"
	}
	if e.remainingName != nil {
		msg += "; remaining name '" + e.remainingName.String() + "'"
	}
	return msg
}

func (e *NamingError) Unwrap() error {
	return e.cause
}

// Is matches ErrNaming so callers can test for the whole family.
func (e *NamingError) Is(target error) bool {
	return target == ErrNaming
}

// Explanation returns the message passed at construction
func (e *NamingError) Explanation() string {
	return e.explanation
}

// Cause returns the underlying error, if any
func (e *NamingError) Cause() error {
	return e.cause
}

// SetCause records the underlying error
func (e *NamingError) SetCause(err error) {
	e.cause = err
}

// ResolvedName returns the leading part of the name that resolved
func (e *NamingError) ResolvedName() *name.Name {
	return e.resolvedName
}

// SetResolvedName stores a copy of n. A nil n clears the field.
func (e *NamingError) SetResolvedName(n *name.Name) {
	e.resolvedName = n.Clone()
}

// ResolvedObj returns the object the resolved name is bound to
func (e *NamingError) ResolvedObj() any {
	return e.resolvedObj
}

// SetResolvedObj stores obj as is
func (e *NamingError) SetResolvedObj(obj any) {
	e.resolvedObj = obj
}

// RemainingName returns the part of the name that did not resolve
func (e *NamingError) RemainingName() *name.Name {
	return e.remainingName
}

// SetRemainingName stores a copy of n. A nil n clears the field.
func (e *NamingError) SetRemainingName(n *name.Name) {
	e.remainingName = n.Clone()
}

// AppendRemainingComponent adds comp to the end of the remaining name,
// creating it if unset.
func (e *NamingError) AppendRemainingComponent(comp string) {
	if e.remainingName == nil {
		e.remainingName = name.New()
	}
	e.remainingName.Add(comp)
}

// AppendRemainingName adds the components of n to the remaining name.
// A nil n is ignored.
func (e *NamingError) AppendRemainingName(n *name.Name) {
	if n == nil {
		return
	}
	if e.remainingName == nil {
		e.remainingName = name.New()
	}
	e.remainingName.AddAll(n)
}

// Format implements fmt.Formatter; %+v includes the resolved object.
func (e *NamingError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e.Error(), e.resolvedObj, "; resolved object: ")
}

func formatError(s fmt.State, verb rune, msg string, obj any, label string) {
	switch verb {
	case 'v':
		if s.Flag('+') && obj != nil {
			_, _ = fmt.Fprintf(s, "%s%s%v", msg, label, obj)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", msg)
	}
}
