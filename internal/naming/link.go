package naming

import (
	"fmt"

	"github.com/yarlson/lnkname/internal/name"
)

// LinkError describes a failure while resolving a link. In addition to the
// NamingError state it records how far resolution of the link name itself
// got, so a caller can resume from LinkRemainingName.
//
// Any of the link fields may be unset. Name fields are copied on set and
// returned as stored on get: mutating a returned Name changes the error.
//
// LinkError is not safe for concurrent use; callers sharing an instance
// must lock around it.
type LinkError struct {
	NamingError

	linkResolvedName  *name.Name
	linkResolvedObj   any
	linkRemainingName *name.Name
	linkExplanation   string
}

// NewLinkError creates a LinkError with the given explanation as its
// message. All link fields start out unset. The zero LinkError is
// equivalent to NewLinkError("").
func NewLinkError(explanation string) *LinkError {
	return &LinkError{NamingError: NamingError{explanation: explanation}}
}

// Error returns the base message followed by the link remaining name.
// It is meant for diagnostics only; use the accessors to inspect state.
func (e *LinkError) Error() string {
	return e.NamingError.Error() + "; Link Remaining Name: '" + e.linkRemainingName.String() + "'"
}

// ErrorDetail is Error with, when detail is set and a link resolved object
// is present, the textual form of that object appended.
func (e *LinkError) ErrorDetail(detail bool) string {
	if !detail || e.linkResolvedObj == nil {
		return e.Error()
	}
	return e.Error() + "; Link Resolved Object: " + fmt.Sprint(e.linkResolvedObj)
}

// Format implements fmt.Formatter; %+v prints ErrorDetail(true).
func (e *LinkError) Format(s fmt.State, verb rune) {
	formatError(s, verb, e.Error(), e.linkResolvedObj, "; Link Resolved Object: ")
}

// Is matches ErrLinkResolution as well as the ErrNaming family.
func (e *LinkError) Is(target error) bool {
	return target == ErrLinkResolution || target == ErrNaming
}

// LinkResolvedName returns the part of the link name that resolved
func (e *LinkError) LinkResolvedName() *name.Name {
	return e.linkResolvedName
}

// SetLinkResolvedName stores a copy of n; later changes to n are not seen
// by the error. A nil n clears the field.
func (e *LinkError) SetLinkResolvedName(n *name.Name) {
	e.linkResolvedName = n.Clone()
}

// LinkRemainingName returns the part of the link name left unresolved
func (e *LinkError) LinkRemainingName() *name.Name {
	return e.linkRemainingName
}

// SetLinkRemainingName stores a copy of n; later changes to n are not seen
// by the error. A nil n clears the field.
func (e *LinkError) SetLinkRemainingName(n *name.Name) {
	e.linkRemainingName = n.Clone()
}

// LinkResolvedObj returns the object the resolved link name is bound to
func (e *LinkError) LinkResolvedObj() any {
	return e.linkResolvedObj
}

// SetLinkResolvedObj stores obj without copying it. nil clears the field.
func (e *LinkError) SetLinkResolvedObj(obj any) {
	e.linkResolvedObj = obj
}

// LinkExplanation returns why link resolution failed, or "" if unset
func (e *LinkError) LinkExplanation() string {
	return e.linkExplanation
}

// SetLinkExplanation stores msg verbatim. "" clears the field.
func (e *LinkError) SetLinkExplanation(msg string) {
	e.linkExplanation = msg
}
