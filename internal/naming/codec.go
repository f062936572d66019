package naming

import (
	"errors"

	"github.com/bytedance/sonic"
	pkgerrors "github.com/pkg/errors"

	"github.com/yarlson/lnkname/internal/name"
)

// document is the serialized form of NamingError and LinkError.
type document struct {
	Explanation   string     `json:"explanation,omitempty"`
	RootCause     string     `json:"rootCause,omitempty"`
	ResolvedName  *name.Name `json:"resolvedName,omitempty"`
	ResolvedObj   any        `json:"resolvedObj,omitempty"`
	RemainingName *name.Name `json:"remainingName,omitempty"`

	LinkResolvedName  *name.Name `json:"linkResolvedName,omitempty"`
	LinkResolvedObj   any        `json:"linkResolvedObj,omitempty"`
	LinkRemainingName *name.Name `json:"linkRemainingName,omitempty"`
	LinkExplanation   string     `json:"linkExplanation,omitempty"`
}

func (e *NamingError) toDocument() document {
	doc := document{
		Explanation:   e.explanation,
		ResolvedName:  e.resolvedName,
		ResolvedObj:   e.resolvedObj,
		RemainingName: e.remainingName,
	}
	if e.cause != nil {
		doc.RootCause = e.cause.Error()
	}
	return doc
}

func (e *NamingError) fromDocument(doc document) {
	e.explanation = doc.Explanation
	e.cause = nil
	if doc.RootCause != "" {
		e.cause = errors.New(doc.RootCause)
	}
	e.resolvedName = doc.ResolvedName
	e.resolvedObj = doc.ResolvedObj
	e.remainingName = doc.RemainingName
}

// MarshalJSON encodes the error's message, cause text and resolution state.
func (e *NamingError) MarshalJSON() ([]byte, error) {
	data, err := sonic.Marshal(e.toDocument())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode naming error")
	}
	return data, nil
}

// UnmarshalJSON restores an error encoded by MarshalJSON. The cause comes
// back as a plain error with the original text.
func (e *NamingError) UnmarshalJSON(data []byte) error {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return pkgerrors.Wrap(err, "decode naming error")
	}
	e.fromDocument(doc)
	return nil
}

// MarshalJSON encodes the base state together with the four link fields.
func (e *LinkError) MarshalJSON() ([]byte, error) {
	doc := e.NamingError.toDocument()
	doc.LinkResolvedName = e.linkResolvedName
	doc.LinkResolvedObj = e.linkResolvedObj
	doc.LinkRemainingName = e.linkRemainingName
	doc.LinkExplanation = e.linkExplanation

	data, err := sonic.Marshal(doc)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode link error")
	}
	return data, nil
}

// UnmarshalJSON restores a LinkError encoded by MarshalJSON. Resolved
// objects come back as generic JSON values.
func (e *LinkError) UnmarshalJSON(data []byte) error {
	var doc document
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return pkgerrors.Wrap(err, "decode link error")
	}
	e.NamingError.fromDocument(doc)
	e.linkResolvedName = doc.LinkResolvedName
	e.linkResolvedObj = doc.LinkResolvedObj
	e.linkRemainingName = doc.LinkRemainingName
	e.linkExplanation = doc.LinkExplanation
	return nil
}

// DecodeLinkError parses a serialized LinkError document.
func DecodeLinkError(data []byte) (*LinkError, error) {
	e := &LinkError{}
	if err := e.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return e, nil
}
